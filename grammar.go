package argdef

import (
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// The value grammars are deliberately stricter than strconv alone:
// tokens are taken exactly as typed on the command line, so surrounding
// whitespace, Go-only literal conveniences (underscores, 0b/0o prefixes)
// and trailing garbage are all rejected.

func hasSurroundingSpace(s string) bool {
	return s != strings.TrimSpace(s)
}

// goOnlyIntLiteral reports literal forms strconv accepts with base 0
// that a C strtoll would not.
func goOnlyIntLiteral(s string) bool {
	if strings.ContainsRune(s, '_') {
		return true
	}
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'b', 'B', 'o', 'O':
			return true
		}
	}
	return false
}

// parseInt64 parses a C style integer literal: optional sign, then
// decimal, 0x hex or leading-0 octal digits. The full token must be
// consumed and the value must fit in 64 bits.
func parseInt64(s string) (int64, error) {
	if s == "" {
		return 0, xerrors.New("empty value")
	}
	if hasSurroundingSpace(s) || goOnlyIntLiteral(s) {
		return 0, xerrors.Errorf("invalid integer %q", s)
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// parseFloat64 parses standard float syntax including inf, infinity and
// nan in any case, each with an optional sign. Out of range values
// saturate to an infinity the way strtod does rather than failing.
func parseFloat64(s string) (float64, error) {
	if s == "" {
		return 0, xerrors.New("empty value")
	}
	if hasSurroundingSpace(s) || strings.ContainsRune(s, '_') {
		return 0, xerrors.Errorf("invalid number %q", s)
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if xerrors.As(err, &ne) && ne.Err == strconv.ErrRange {
			return d, nil
		}
		return 0, xerrors.Errorf("invalid number %q: %w", s, err)
	}
	return d, nil
}

// parseBool accepts exactly the eight literal spellings below. There is
// no case folding beyond the listed variants.
func parseBool(s string) (bool, error) {
	switch s {
	case "1", "true", "True", "TRUE":
		return true, nil
	case "0", "false", "False", "FALSE":
		return false, nil
	}
	return false, xerrors.Errorf("invalid bool %q: expected true or false", s)
}
