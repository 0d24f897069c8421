package classes

// Options carries the per-run boolean toggles spec.md §6 exposes as CLI
// flags (and normalizer.Config fields), grounded on
// original_source/itn/chinese/inverse_normalizer.py's InverseNormalizer
// constructor kwargs of the same names. Each language's BuildRegistry
// threads Options into the class constructors that read them; a class
// with nothing to gate simply ignores the fields it doesn't use.
type Options struct {
	EnableStandaloneNumber bool
	Enable0To9             bool
	EnableMillion          bool
	RemoveInterjections    bool
	RemoveErhua            bool
	TraditionalToSimple    bool
	RemovePuncts           bool
	FullToHalf             bool
	TagOOV                 bool
}

// DefaultOptions mirrors the original CLI's defaults: the number-reading
// toggles and the orthography cleanups other than punctuation removal
// are on; million-scale cardinals, OOV tagging and punctuation removal
// are off.
func DefaultOptions() Options {
	return Options{
		EnableStandaloneNumber: true,
		Enable0To9:             true,
		EnableMillion:          false,
		RemoveInterjections:    true,
		RemoveErhua:            true,
		TraditionalToSimple:    true,
		RemovePuncts:           false,
		FullToHalf:             true,
		TagOOV:                 false,
	}
}
