package argdef

import "github.com/pkg/errors"

// Submit parses the argument vector against the declarations. A nil
// return means every token was consumed and every required argument has
// a value. Any other outcome has already been written to the context's
// output: user input failures print one diagnostic and a --help hint,
// while help and version requests print their text and come back as
// ErrHelp and ErrVersion. Submit runs at most once per context; the
// scan stops at the first error.
func (c *Context) Submit() error {
	if c.destroyed {
		return errors.New("cannot submit a destroyed context")
	}
	if c.submitted {
		return errors.New("Submit may only be called once per context")
	}
	c.submitted = true

	for i := 1; i < len(c.argv); i++ {
		tok := c.argv[i]
		if tok == "" {
			continue
		}
		// Every declared form starts with '-' and is at least two
		// bytes, so anything else cannot name an argument.
		if len(tok) == 1 || tok[0] != '-' {
			return c.failUnknown(tok)
		}
		m, ok := c.matchToken(tok)
		if !ok {
			return c.failUnknown(tok)
		}
		if err := c.consume(&i, m); err != nil {
			return err
		}
	}

	// Help and version short circuit after the scan but before the
	// required argument checks, so --help works on an otherwise
	// incomplete command line.
	if set, _ := c.helpArg.TryBool(); set {
		c.WriteUsage(c.out)
		return ErrHelp
	}
	if c.versionArg != nil {
		if set, _ := c.versionArg.TryBool(); set {
			c.printf("%s version %s\n", c.appName, c.appVersion)
			return ErrVersion
		}
	}

	for _, a := range c.args {
		if a.flags.required() && !a.hasValue {
			if a.shortName != "" {
				c.printf("Error: argument --%s / -%s is required.\n", a.name, a.shortName)
			} else {
				c.printf("Error: argument --%s is required.\n", a.name)
			}
			return c.failTryHelp("argument --" + a.name + " is required")
		}
	}
	return nil
}

func (c *Context) failUnknown(tok string) error {
	c.printf("Error: unknown argument %q\n", tok)
	return c.failTryHelp("unknown argument " + tok)
}

// failTryHelp prints the standard hint and wraps msg as a user error.
// Every user input failure funnels through here so the hint appears
// exactly once.
func (c *Context) failTryHelp(msg string) error {
	c.printf("Try: %s --help\n", c.appName)
	return userError{msg}
}

// consume applies one matched token, advancing i past every value token
// it takes from argv.
func (c *Context) consume(i *int, m match) error {
	tok := c.argv[*i]
	a := m.arg

	// The duplicate check runs before any type dispatch so every
	// scalar type rejects repetition the same way.
	if a.hasValue && !a.flags.isArray() {
		c.printf("Error: %s was provided multiple times which is unsupported.\n", tok)
		return c.failTryHelp(tok + " provided multiple times")
	}

	if a.flags.isArray() {
		return c.consumeArray(i, m)
	}

	if a.flags.typeBits() == TypeSwitch {
		if m.hasInline {
			c.printf("Error: Invalid value provided for %s\na switch takes no value.\n", tok)
			return c.failTryHelp("invalid value for " + tok)
		}
		a.hasValue = true
		return nil
	}

	// The remaining scalar types all want exactly one value: inline
	// after '=', or the next token consumed unconditionally.
	value := m.inline
	if !m.hasInline {
		if *i+1 >= len(c.argv) {
			c.printf("Error: No value provided for %s\n", tok)
			return c.failTryHelp("no value provided for " + tok)
		}
		*i++
		value = c.argv[*i]
	}

	switch a.flags.typeBits() {
	case TypeString:
		// Verbatim, including empty values and literal quote marks.
		c.storeString(a, value)
	case TypeBool:
		b, err := parseBool(value)
		if err != nil {
			return c.failInvalidBool(tok)
		}
		c.storeBool(a, b)
	case TypeInt:
		n, err := parseInt64(value)
		if err != nil {
			return c.failInvalidInt(tok, value)
		}
		c.storeInt(a, n)
	case TypeDouble:
		d, err := parseFloat64(value)
		if err != nil {
			return c.failInvalidDouble(tok, value)
		}
		c.storeDouble(a, d)
	}
	return nil
}

// consumeArray handles the four array types. The first value is
// mandatory and arrives as a separate token; the assignment form is not
// supported for arrays. Subsequent tokens are slurped as elements until
// one matches a declared argument or argv runs out.
func (c *Context) consumeArray(i *int, m match) error {
	tok := c.argv[*i]
	a := m.arg

	if m.hasInline {
		c.printf("Error: Invalid value provided for %s\narray arguments take space separated values.\n", tok)
		return c.failTryHelp("invalid value for " + tok)
	}
	if *i+1 >= len(c.argv) {
		c.printf("Error: No value provided for %s\n", tok)
		return c.failTryHelp("no value provided for " + tok)
	}
	*i++
	if err := c.appendElement(a, tok, c.argv[*i]); err != nil {
		return err
	}
	for *i+1 < len(c.argv) {
		next := c.argv[*i+1]
		if _, ok := c.matchToken(next); ok {
			// Leave the token for the outer scan; it names an
			// argument, possibly this one again.
			break
		}
		*i++
		if err := c.appendElement(a, tok, next); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) appendElement(a *Arg, tok, value string) error {
	switch a.flags.typeBits() {
	case TypeStringArray:
		c.storeString(a, value)
	case TypeBoolArray:
		b, err := parseBool(value)
		if err != nil {
			return c.failInvalidBool(tok)
		}
		c.storeBool(a, b)
	case TypeIntArray:
		n, err := parseInt64(value)
		if err != nil {
			return c.failInvalidInt(tok, value)
		}
		c.storeInt(a, n)
	case TypeDoubleArray:
		d, err := parseFloat64(value)
		if err != nil {
			return c.failInvalidDouble(tok, value)
		}
		c.storeDouble(a, d)
	}
	return nil
}

func (c *Context) failInvalidBool(tok string) error {
	c.printf("Error: Invalid value provided for %s\nexpected true or false.\n", tok)
	return c.failTryHelp("invalid value for " + tok)
}

func (c *Context) failInvalidInt(tok, value string) error {
	c.printf("Error: Value %q for %s is not a valid integer or is out of range.\n", value, tok)
	return c.failTryHelp("invalid value for " + tok)
}

func (c *Context) failInvalidDouble(tok, value string) error {
	c.printf("Error: Value %q for %s is not a valid number or is out of range.\n", value, tok)
	return c.failTryHelp("invalid value for " + tok)
}
