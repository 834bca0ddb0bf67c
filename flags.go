package argdef

import "math/bits"

// Flag carries an argument's type bit and modifiers. At most one type
// bit may be set; a declaration with none defaults to TypeString.
type Flag uint32

const (
	TypeString Flag = 1 << iota
	TypeSwitch
	TypeBool
	TypeInt
	TypeDouble
	TypeStringArray
	TypeBoolArray
	TypeIntArray
	TypeDoubleArray

	// Required makes Submit fail when the argument is absent. Ignored
	// for switches: an absent switch already means false.
	Required
)

const allTypes = TypeString | TypeSwitch | TypeBool | TypeInt | TypeDouble |
	TypeStringArray | TypeBoolArray | TypeIntArray | TypeDoubleArray

const arrayTypes = TypeStringArray | TypeBoolArray | TypeIntArray | TypeDoubleArray

func (f Flag) typeBits() Flag {
	return f & allTypes
}

func (f Flag) typeCount() int {
	return bits.OnesCount32(uint32(f.typeBits()))
}

func (f Flag) isArray() bool {
	return f.typeBits()&arrayTypes != 0
}

func (f Flag) required() bool {
	return f&Required != 0
}

// defaultValueTip is shown in help text when the declaration supplied
// none. Switches take no value and so have no tip.
func (f Flag) defaultValueTip() string {
	switch f.typeBits() {
	case TypeString:
		return "<text>"
	case TypeBool:
		return "<true|false>"
	case TypeInt:
		return "<integer>"
	case TypeDouble:
		return "<number>"
	case TypeStringArray:
		return "[text]"
	case TypeBoolArray:
		return "[true|false]"
	case TypeIntArray:
		return "[integer]"
	case TypeDoubleArray:
		return "[number]"
	}
	return ""
}

func (f Flag) String() string {
	switch f.typeBits() {
	case TypeString:
		return "string"
	case TypeSwitch:
		return "switch"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeStringArray:
		return "string array"
	case TypeBoolArray:
		return "bool array"
	case TypeIntArray:
		return "int array"
	case TypeDoubleArray:
		return "double array"
	}
	return "invalid"
}
