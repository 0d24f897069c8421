package token

import "strings"

// Token is one `NAME { key: "value" ... }` span: a class name plus its
// ordered fields.
type Token struct {
	Name   string
	Fields FieldList
}

// String renders the token back into markup, reordering Fields per
// CanonicalOrders[orderKey][Name] unless the field list opts out via
// preserve_order. orderKey is one of "tn", "itn", or "en_tn".
func (t Token) String(orderKey string) string {
	var b strings.Builder
	b.WriteString(t.Name)
	b.WriteString(" {")
	for _, f := range t.Fields.Reorder(OrderFor(orderKey, t.Name)) {
		if f.Key() == "preserve_order" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(f.Key())
		b.WriteString(`: "`)
		b.WriteString(escapeValue(f.Value()))
		b.WriteString(`"`)
	}
	b.WriteString(" }")
	return b.String()
}

func escapeValue(v string) string {
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "\"", "\\\"")
	return v
}

// Render joins a sequence of tokens back into a single space-separated
// markup string, the output shape of Parser.Reorder.
func Render(orderKey string, tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String(orderKey)
	}
	return strings.Join(parts, " ")
}
