package argdef

import "io"

// An Option customizes a Context at creation time.
type Option func(c *Context)

// AppName overrides the name shown in usage and diagnostics, normally
// derived from the basename of argv[0].
func AppName(name string) Option {
	return func(c *Context) {
		c.appName = name
	}
}

// Version enables the --version/-v switch and the version banner line.
func Version(version string) Option {
	return func(c *Context) {
		c.appVersion = version
	}
}

// Documentation adds a free form block between the usage line and the
// argument listing in help text.
func Documentation(doc string) Option {
	return func(c *Context) {
		c.appDoc = doc
	}
}

// Writes help text and diagnostics to w instead of standard output.
func Output(w io.Writer) Option {
	return func(c *Context) {
		c.out = w
	}
}
