package token

import (
	"fmt"
	"strings"
)

const eos = rune(-1)

// Parser is a stateful byte-cursor parser for the tagged-token grammar,
// grounded on original_source/tn/token_parser.py's TokenParser
// (load/read/parse_ws/parse_char/parse_key/parse_value) and the
// teacher's proc/mfscanner.go cursor-advance idiom.
type Parser struct {
	text  []rune
	index int
	char  rune
}

// NewParser constructs a Parser bound to input. Parse is the normal
// entry point; the exported step methods exist for unit testing the
// grammar in isolation.
func NewParser(input string) *Parser {
	p := &Parser{text: []rune(input)}
	p.load()
	return p
}

func (p *Parser) load() {
	p.index = 0
	if len(p.text) == 0 {
		p.char = eos
		return
	}
	p.char = p.text[0]
}

func (p *Parser) read() bool {
	if p.index < len(p.text)-1 {
		p.index++
		p.char = p.text[p.index]
		return true
	}
	p.char = eos
	return false
}

func (p *Parser) parseWS() bool {
	notEOS := p.char != eos
	for notEOS && p.char == ' ' {
		notEOS = p.read()
	}
	return notEOS
}

func (p *Parser) parseChar(exp rune) bool {
	if p.char == exp {
		p.read()
		return true
	}
	return false
}

func (p *Parser) parseChars(exp string) bool {
	ok := false
	for _, x := range exp {
		if p.parseChar(x) {
			ok = true
		}
	}
	return ok
}

func isKeyRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func (p *Parser) parseKey() (string, error) {
	if p.char == eos {
		return "", fmt.Errorf("token: unexpected end of input while reading a key")
	}
	var b strings.Builder
	for isKeyRune(p.char) {
		b.WriteRune(p.char)
		p.read()
	}
	return b.String(), nil
}

func (p *Parser) parseValue() (string, error) {
	if p.char == eos {
		return "", fmt.Errorf("token: unexpected end of input while reading a value")
	}
	var b strings.Builder
	for p.char != '"' {
		if p.char == eos {
			return "", fmt.Errorf("token: unterminated quoted value")
		}
		if p.char == '\\' {
			p.read()
			if p.char == eos {
				return "", fmt.Errorf("token: unterminated escape sequence")
			}
		}
		b.WriteRune(p.char)
		p.read()
	}
	return b.String(), nil
}

// Parse consumes the whole bound input and returns its tokens.
func (p *Parser) Parse() ([]Token, error) {
	var tokens []Token
	for p.parseWS() {
		name, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		p.parseChars(" { ")

		tok := Token{Name: name}
		for p.parseWS() {
			if p.char == '}' {
				p.parseChar('}')
				break
			}
			key, err := p.parseKey()
			if err != nil {
				return nil, err
			}
			p.parseChars(`: "`)
			value, err := p.parseValue()
			if err != nil {
				return nil, err
			}
			p.parseChar('"')
			tok.Fields = append(tok.Fields, Field{key, value})
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// Parse is the package-level convenience entry point: parse input into
// its tokens in one call.
func Parse(input string) ([]Token, error) {
	return NewParser(input).Parse()
}

// Reorder parses input and re-renders it with each token's fields
// arranged per CanonicalOrders[orderKey], mirroring TokenParser.reorder.
func Reorder(orderKey, input string) (string, error) {
	tokens, err := Parse(input)
	if err != nil {
		return "", err
	}
	return Render(orderKey, tokens), nil
}
