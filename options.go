package lexema

// Options adjusts validation behavior. The zero value matches the default
// behavior of atproto lexicon tooling.
type Options struct {
	// MaxDepth bounds schema/data nesting during a single validation call.
	// Zero disables the guard. Reference cycles are detected independently
	// of this limit; MaxDepth exists to defend against adversarially deep
	// plain object/array nesting.
	MaxDepth int
}

func pickOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}
