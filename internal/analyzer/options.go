package analyzer

// options tunes a scan. Zero values fall back to the built-in limits.
type options struct {
	ignoreDirs   map[string]bool
	contentLimit int64
}

// Option adjusts analysis behavior.
type Option func(*options)

// WithIgnoreDirs excludes extra directory names on top of the built-in
// denylist.
func WithIgnoreDirs(names ...string) Option {
	return func(o *options) {
		if o.ignoreDirs == nil {
			o.ignoreDirs = make(map[string]bool, len(names))
		}
		for _, name := range names {
			o.ignoreDirs[name] = true
		}
	}
}

// WithContentScanLimit caps the size of source files read for content
// pattern matching. Values <= 0 keep the default.
func WithContentScanLimit(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.contentLimit = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{contentLimit: maxContentBytes}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
