package argdef

// matchForm records which of the four syntax forms a token used. The
// assignment forms carry the inline value found after '='.
type matchForm int

const (
	matchLong matchForm = iota
	matchLongAssign
	matchShort
	matchShortAssign
)

type match struct {
	arg       *Arg
	form      matchForm
	inline    string
	hasInline bool
}

// matchToken resolves one raw token against the declarations. The first
// declared argument wins, which also makes the outcome deterministic
// when one short name is a prefix of another. A token like -abc matches
// only a short name that is exactly "abc"; it is never unpacked into
// -a -b -c.
func (c *Context) matchToken(tok string) (match, bool) {
	if len(tok) > 2 && tok[0] == '-' && tok[1] == '-' {
		rest := tok[2:]
		for _, a := range c.args {
			if rest == a.name {
				return match{arg: a, form: matchLong}, true
			}
			if isAssign(rest, a.name) {
				return match{
					arg:       a,
					form:      matchLongAssign,
					inline:    rest[len(a.name)+1:],
					hasInline: true,
				}, true
			}
		}
		return match{}, false
	}
	if len(tok) > 1 && tok[0] == '-' {
		rest := tok[1:]
		for _, a := range c.args {
			if a.shortName == "" {
				continue
			}
			if rest == a.shortName {
				return match{arg: a, form: matchShort}, true
			}
			if isAssign(rest, a.shortName) {
				return match{
					arg:       a,
					form:      matchShortAssign,
					inline:    rest[len(a.shortName)+1:],
					hasInline: true,
				}, true
			}
		}
	}
	return match{}, false
}

// isAssign reports whether rest is name immediately followed by '='.
// Everything after the '=' is the inline value, even when empty or
// containing further '=' bytes.
func isAssign(rest, name string) bool {
	return len(rest) > len(name) && rest[:len(name)] == name && rest[len(name)] == '='
}
