package argdef

import "errors"

// Help flag was provided. Submit fails without a diagnostic so the host
// exits without acting on the other arguments.
var ErrHelp = errors.New("help requested")

// Version flag was provided.
var ErrVersion = errors.New("version requested")

// userError is a failure caused by the command line rather than by the
// hosting program. The diagnostic has already been written when Submit
// returns one.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}
