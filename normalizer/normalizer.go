package normalizer

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/width"

	"github.com/czcorpus/tn-wfst/audit"
	"github.com/czcorpus/tn-wfst/cache"
	"github.com/czcorpus/tn-wfst/classes"
	"github.com/czcorpus/tn-wfst/classes/en"
	"github.com/czcorpus/tn-wfst/classes/ja"
	"github.com/czcorpus/tn-wfst/classes/zh"
	"github.com/czcorpus/tn-wfst/fst"
	"github.com/czcorpus/tn-wfst/grammar"
	"github.com/czcorpus/tn-wfst/token"
)

// compiledClass bundles a registered class grammar with its compiled
// tagger/verbalizer transducers, so ShortestPath never has to recompile
// the FST algebra on a hot path.
type compiledClass struct {
	entry      classes.Entry
	processor  *grammar.Processor
	tagger     *fst.Transducer
	verbalizer *fst.Transducer
}

// Normalizer runs the tag -> reorder -> verbalize pipeline described in
// spec.md §4.5, grounded 1:1 on original_source/tn/processor.py's
// tag/verbalize/normalize methods.
type Normalizer struct {
	Language  string
	Direction string
	Options   classes.Options

	classes []compiledClass
	tagger  *fst.Transducer

	auditWriter audit.Writer
}

func registryFor(language, direction string, opts classes.Options) (*classes.Registry, error) {
	switch language {
	case "zh":
		return zh.BuildRegistry(direction, opts), nil
	case "en":
		return en.BuildRegistry(direction, opts), nil
	case "ja":
		return ja.BuildRegistry(direction, opts), nil
	default:
		return nil, fmt.Errorf("normalizer: unsupported language %q", language)
	}
}

// orderKeyFor picks the CanonicalOrders table a (language, direction)
// pair verbalizes against: English TN uses its own date order (spec.md
// §4.4's en_tn table), every other pair just uses its direction's
// generic table.
func orderKeyFor(language, direction string) string {
	if language == "en" && direction == "tn" {
		return "en_tn"
	}
	return direction
}

// New builds a Normalizer for (language, direction) per conf. If
// conf.CacheDir is set and already holds a cache for this (language,
// direction), the compiled per-class transducers are reloaded from
// there instead of recompiled from the class registry, mirroring
// db/sqlite/main.go's Initialize(appendMode)'s "dbExisted -> reuse"
// branch.
func New(language, direction string, conf Config) (*Normalizer, error) {
	opts := conf.Options
	if opts == (classes.Options{}) {
		opts = classes.DefaultOptions()
	}
	registry, err := registryFor(language, direction, opts)
	if err != nil {
		return nil, err
	}

	n := &Normalizer{
		Language:    language,
		Direction:   direction,
		Options:     opts,
		auditWriter: audit.NewWriter(conf.Audit),
	}
	if err := n.auditWriter.Initialize(true); err != nil {
		log.Warn().Err(err).Msg("failed to initialize audit writer, falling back to no-op")
		n.auditWriter = &audit.NullWriter{}
	}

	var store *cache.Store
	if conf.CacheDir != "" {
		store = cache.New(conf.CacheDir)
	}

	var cached map[string]cache.Entry
	if store != nil && store.Exists(language, direction) {
		entries, err := store.Load(language, direction)
		if err != nil {
			log.Warn().Err(err).Msg("failed to load cached grammar, rebuilding")
		} else {
			cached = make(map[string]cache.Entry, len(entries))
			for _, e := range entries {
				cached[e.Class+"/"+e.Kind] = e
			}
		}
	}

	var freshEntries []cache.Entry
	var taggerBranches []*fst.Transducer
	for _, entry := range registry.Entries() {
		name := entry.Grammar.Name()
		p := grammar.NewProcessor(name)

		var tagger, verbalizer *fst.Transducer
		if ct, ok := cached[name+"/tagger"]; ok {
			if cv, ok := cached[name+"/verbalizer"]; ok {
				tagger = fst.AddWeight(fst.FromCompact(ct.Form), entry.Weight)
				verbalizer = fst.FromCompact(cv.Form)
			}
		}
		if tagger == nil || verbalizer == nil {
			rawTagger := entry.Grammar.Tagger(p)
			verbalizer = entry.Grammar.Verbalizer(p)
			tagger = fst.AddWeight(rawTagger, entry.Weight)
			st := fst.NewSymbolTable()
			freshEntries = append(freshEntries,
				cache.Entry{Language: language, Direction: direction, Class: name, Kind: "tagger", Form: rawTagger.ToCompact(st)},
				cache.Entry{Language: language, Direction: direction, Class: name, Kind: "verbalizer", Form: verbalizer.ToCompact(st)},
			)
		}

		cc := compiledClass{entry: entry, processor: p, tagger: tagger, verbalizer: verbalizer}
		n.classes = append(n.classes, cc)
		taggerBranches = append(taggerBranches, tagger)
	}
	if len(taggerBranches) == 0 {
		return nil, fmt.Errorf("normalizer: empty class registry for language %q", language)
	}

	if store != nil && len(freshEntries) > 0 {
		if err := store.Store(language, direction, freshEntries); err != nil {
			log.Warn().Err(err).Msg("failed to persist compiled grammar cache")
		}
	}

	oneToken := taggerBranches[0]
	for _, b := range taggerBranches[1:] {
		oneToken = fst.Union(oneToken, b)
	}
	// Each branch already ends in AddTokens' trailing " } ", so repeated
	// tokens come out space-separated without an extra spacer arc.
	n.tagger = fst.Optimize(fst.Plus(oneToken))
	return n, nil
}

func (n *Normalizer) classEntry(name string) (compiledClass, bool) {
	for _, c := range n.classes {
		if c.entry.Grammar.Name() == name {
			return c, true
		}
	}
	return compiledClass{}, false
}

// Normalize runs text through tag -> reorder -> verbalize, logging the
// outcome through the configured audit.Writer.
func (n *Normalizer) Normalize(ctx context.Context, text string) (string, error) {
	out, matchedClass, err := n.normalize(text)
	rec := audit.Record{
		Language:  n.Language,
		Direction: n.Direction,
		Class:     matchedClass,
		Input:     text,
		Output:    out,
		Success:   err == nil,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if logErr := n.auditWriter.Log(ctx, rec); logErr != nil {
		log.Warn().Err(logErr).Msg("failed to write audit record")
	}
	return out, err
}

// normalize folds fullwidth digits/punctuation to their halfwidth forms
// before tagging, mirroring the character-category normalization
// original_source/tn/english/rules/word.py does with unicodedata.category.
// Options.FullToHalf and Options.RemoveErhua gate preprocessing steps
// (spec.md §6); Options.RemovePuncts strips punctuation from the final
// rendered output.
func (n *Normalizer) normalize(text string) (string, string, error) {
	if n.Options.FullToHalf {
		text = width.Fold.String(text)
	}
	if n.Options.RemoveErhua {
		text = stripErhua(text)
	}
	composed := fst.Compose(fst.Accept(text), n.tagger)
	tagged, ok := fst.ShortestPath(composed)
	if !ok {
		return "", "", fmt.Errorf("normalizer: no class grammar matched %q", text)
	}

	tokens, err := token.Parse(tagged)
	if err != nil {
		return "", "", fmt.Errorf("normalizer: failed to parse tagged output %q: %w", tagged, err)
	}

	orderKey := orderKeyFor(n.Language, n.Direction)
	parts := make([]string, len(tokens))
	var lastClass string
	for i, tok := range tokens {
		cc, ok := n.classEntry(tok.Name)
		if !ok {
			return "", "", fmt.Errorf("normalizer: tagged class %q has no registered verbalizer", tok.Name)
		}
		lastClass = tok.Name

		composed := fst.Compose(fst.Accept(tok.String(orderKey)), cc.verbalizer)
		piece, ok := fst.ShortestPath(composed)
		if !ok {
			return "", "", fmt.Errorf("normalizer: verbalizer rejected tagged token %q", tok.String(orderKey))
		}
		if pv, ok := cc.entry.Grammar.(classes.PostVerbalizer); ok {
			piece = pv.ApplySuffix(piece)
		}
		parts[i] = piece
	}

	var out string
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	if n.Options.RemovePuncts {
		out = stripPuncts(out)
	}
	return out, lastClass, nil
}

// stripErhua removes a trailing 儿 suffix from each 儿化 word in text,
// a coarse pre-tagging approximation of original_source's erhua removal
// (which runs a dedicated word list); punctuation/whitespace boundaries
// are treated as word boundaries.
func stripErhua(text string) string {
	runes := []rune(text)
	var b strings.Builder
	for i, r := range runes {
		if r == '儿' && i > 0 {
			prev := runes[i-1]
			if prev >= 0x4e00 && prev <= 0x9fff {
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripPuncts drops Unicode punctuation from the verbalized output,
// leaving word-internal separators such as the space between tokens
// untouched.
func stripPuncts(text string) string {
	var b strings.Builder
	for _, r := range text {
		if unicode.IsPunct(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close releases the audit writer's resources.
func (n *Normalizer) Close() error {
	return n.auditWriter.Close()
}
