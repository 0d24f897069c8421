package token

// CanonicalOrders is the per-(direction,class) verbalization field order,
// carried over from original_source/tn/token_parser.py's ORDERS dict
// (spec.md §4.4). TN and ITN keep separate tables since the same class
// name is built from a different field sequence in each direction (e.g.
// money's decimal field only exists on the ITN side); English TN further
// overrides date's table since its surface order (weekday/month/day/year
// prose) differs from the zh/ja digit-group reading. A class name absent
// from the direction's table keeps the parser's as-encountered order.
var CanonicalOrders = map[string]map[string][]string{
	"tn": {
		"date":     {"year", "month", "day"},
		"fraction": {"denominator", "numerator"},
		"measure":  {"denominator", "numerator", "value"},
		"money":    {"value", "currency"},
		"time":     {"noon", "hour", "minute", "second"},
	},
	"itn": {
		"date":     {"year", "month", "day"},
		"fraction": {"sign", "numerator", "denominator"},
		"measure":  {"numerator", "denominator", "value"},
		"money":    {"currency", "value", "decimal"},
		"time":     {"hour", "minute", "second", "noon"},
	},
	"en_tn": {
		"date": {"preserve_order", "text", "day", "month", "year"},
	},
}

// OrderFor returns the canonical field order for class under orderKey, or
// nil if neither is registered (meaning: keep as-parsed order).
func OrderFor(orderKey, class string) []string {
	return CanonicalOrders[orderKey][class]
}
