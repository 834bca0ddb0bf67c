package argdef

import "fmt"

// Arg is the handle returned by Declare. Once Submit has succeeded its
// value is readable through the TryX accessor matching the declared
// type; calling any other accessor is a caller bug and panics.
type Arg struct {
	name      string
	shortName string
	valueTip  string
	desc      string
	flags     Flag

	hasValue bool
	store    store
}

// store backs one argument's values. Exactly one slice is in use,
// chosen by the argument's type bit; scalars write a single element and
// arrays append in command line encounter order.
type store struct {
	strs    []string
	bools   []bool
	ints    []int64
	doubles []float64
}

func (a *Arg) Name() string {
	return a.name
}

func (a *Arg) assertType(want Flag) {
	if a.flags.typeBits() != want {
		panic(fmt.Sprintf("argument --%s is a %v, not a %v", a.name, a.flags, want))
	}
}

func (a *Arg) TryString() (string, bool) {
	a.assertType(TypeString)
	if !a.hasValue {
		return "", false
	}
	return a.store.strs[0], true
}

// TryBool reads a bool or switch argument. A switch is always found:
// absent reads as false.
func (a *Arg) TryBool() (bool, bool) {
	if a.flags.typeBits() == TypeSwitch {
		return a.hasValue, true
	}
	a.assertType(TypeBool)
	if !a.hasValue {
		return false, false
	}
	return a.store.bools[0], true
}

func (a *Arg) TryInt() (int64, bool) {
	a.assertType(TypeInt)
	if !a.hasValue {
		return 0, false
	}
	return a.store.ints[0], true
}

func (a *Arg) TryDouble() (float64, bool) {
	a.assertType(TypeDouble)
	if !a.hasValue {
		return 0, false
	}
	return a.store.doubles[0], true
}

// The array accessors return views into context owned storage, valid
// until the context is destroyed.

func (a *Arg) TryStringArray() ([]string, bool) {
	a.assertType(TypeStringArray)
	if !a.hasValue {
		return nil, false
	}
	return a.store.strs, true
}

func (a *Arg) TryBoolArray() ([]bool, bool) {
	a.assertType(TypeBoolArray)
	if !a.hasValue {
		return nil, false
	}
	return a.store.bools, true
}

func (a *Arg) TryIntArray() ([]int64, bool) {
	a.assertType(TypeIntArray)
	if !a.hasValue {
		return nil, false
	}
	return a.store.ints, true
}

func (a *Arg) TryDoubleArray() ([]float64, bool) {
	a.assertType(TypeDoubleArray)
	if !a.hasValue {
		return nil, false
	}
	return a.store.doubles, true
}

// flagSummary is the left hand column of a help line. An argument whose
// short name equals its name shows only the short form.
func (a *Arg) flagSummary() string {
	var s string
	switch {
	case a.shortName != "" && a.shortName == a.name:
		s = "-" + a.shortName
	case a.shortName != "":
		s = "--" + a.name + ", -" + a.shortName
	default:
		s = "--" + a.name
	}
	if a.valueTip != "" {
		s += " " + a.valueTip
	}
	return s
}
