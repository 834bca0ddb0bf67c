package argdef

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Context owns one parse attempt: the raw argument vector, every
// declaration made against it, and the parsed values. Build it, declare
// arguments, call Submit exactly once, read values back, then Destroy.
// Nothing here is safe for concurrent use.
type Context struct {
	argv []string

	appName    string
	appVersion string
	appDoc     string
	out        io.Writer

	args       []*Arg
	helpArg    *Arg
	versionArg *Arg

	submitted bool
	destroyed bool

	stats MemStats
}

// NewContext builds a context around argv, which must hold at least the
// program name at index 0. A short argv is a host programming error,
// reported as an error rather than as a user facing diagnostic.
//
// --help/-h is declared on every context; --version/-v only when the
// Version option supplied a version string.
func NewContext(argv []string, opts ...Option) (*Context, error) {
	if len(argv) < 1 {
		return nil, errors.Errorf("argv must hold at least the program name, got %d entries", len(argv))
	}
	c := &Context{
		argv: argv,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.appName == "" {
		c.appName = baseName(argv[0])
		if c.appName == "" {
			c.appName = "app"
		}
	}
	var err error
	c.helpArg, err = c.Declare("help", "h", "", "print this help text", TypeSwitch)
	if err != nil {
		return nil, err
	}
	if c.appVersion != "" {
		c.versionArg, err = c.Declare("version", "v", "", "print the app version", TypeSwitch)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Declare registers one argument. name is the long form (--name);
// shortName may be empty, or equal to name to show only the -short form
// in help text. A declaration with no type bit defaults to TypeString,
// and an empty valueTip gets the type's default tip. Declaration
// failures are host programming errors and return an error without
// printing anything.
func (c *Context) Declare(name, shortName, valueTip, desc string, flags Flag) (*Arg, error) {
	if c.destroyed {
		return nil, errors.New("cannot declare arguments on a destroyed context")
	}
	if c.submitted {
		return nil, errors.New("cannot declare arguments after Submit")
	}
	if name == "" {
		return nil, errors.New("argument name must not be empty")
	}
	if !validName(name) {
		return nil, errors.Errorf("argument name %q must be alphanumeric", name)
	}
	if shortName != "" && !validShortName(shortName) {
		return nil, errors.Errorf("argument short name %q must be alphanumeric", shortName)
	}
	if flags.typeCount() > 1 {
		return nil, errors.Errorf("argument %q declares more than one type", name)
	}
	if flags.typeBits() == 0 {
		flags |= TypeString
	}
	// A required switch is meaningless: absence already reads as false.
	if flags.typeBits() == TypeSwitch {
		flags &^= Required
	}
	for _, existing := range c.args {
		if existing.name == name {
			return nil, errors.Errorf("argument name conflict: %q", name)
		}
		if shortName != "" && existing.shortName == shortName {
			return nil, errors.Errorf("argument short name conflict: %q", shortName)
		}
	}
	if valueTip == "" {
		valueTip = flags.defaultValueTip()
	}
	arg := &Arg{
		name:      name,
		shortName: shortName,
		valueTip:  valueTip,
		desc:      desc,
		flags:     flags,
	}
	c.args = append(c.args, arg)
	return arg, nil
}

// Destroy drops every value buffer the context retained. Views returned
// by the array accessors are invalid afterwards. Safe to call twice.
func (c *Context) Destroy() {
	for _, a := range c.args {
		a.store = store{}
		a.hasValue = false
	}
	c.stats = MemStats{}
	c.destroyed = true
}

// Stats reports the context's live value buffer accounting.
func (c *Context) Stats() MemStats {
	return c.stats
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Context) storeString(a *Arg, s string) {
	a.store.strs = append(a.store.strs, s)
	a.hasValue = true
	c.stats.Live++
	c.stats.Bytes += int64(len(s))
}

func (c *Context) storeBool(a *Arg, b bool) {
	a.store.bools = append(a.store.bools, b)
	a.hasValue = true
	c.stats.Live++
	c.stats.Bytes++
}

func (c *Context) storeInt(a *Arg, n int64) {
	a.store.ints = append(a.store.ints, n)
	a.hasValue = true
	c.stats.Live++
	c.stats.Bytes += 8
}

func (c *Context) storeDouble(a *Arg, d float64) {
	a.store.doubles = append(a.store.doubles, d)
	a.hasValue = true
	c.stats.Live++
	c.stats.Bytes += 8
}

func isAlnum(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// validName allows alphanumeric names with interior hyphens, so
// --dry-run style flags can be declared. The leading byte must be
// alphanumeric or the flag prefix would be ambiguous.
func validName(name string) bool {
	if !isAlnum(name[0]) {
		return false
	}
	for i := 1; i < len(name); i++ {
		if !isAlnum(name[i]) && name[i] != '-' {
			return false
		}
	}
	return true
}

func validShortName(name string) bool {
	for i := 0; i < len(name); i++ {
		if !isAlnum(name[i]) {
			return false
		}
	}
	return true
}

// baseName strips the directory and every extension from a program
// path: /a/b/c.e.f yields c. An empty result means the caller should
// fall back to a fixed name.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i != -1 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '.'); i != -1 {
		path = path[:i]
	}
	return path
}
