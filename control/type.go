package control

type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// Value returns the bits of b that are not part of the type prefix.
func (t Type) Value(b byte) byte {
	return b & t.Mask
}

func (t Type) String() string {
	return t.Abbr
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown = Type{}

	// Run control bytes.
	Run     = Type{0b_0000_0000, 0b_0111_1111, "r"}
	Literal = Type{0b_1000_0000, 0b_0111_1111, "l"}

	// Version 2 header bytes.
	ShortRepeat = Type{0b_0000_0000, 0b_0011_1111, "sr"}
	Direct      = Type{0b_0100_0000, 0b_0011_1111, "d"}
	PatchedBase = Type{0b_1000_0000, 0b_0011_1111, "pb"}
	Delta       = Type{0b_1100_0000, 0b_0011_1111, "dt"}

	Types = types{
		Run,
		Literal,
	}

	Headers = types{
		ShortRepeat,
		Direct,
		PatchedBase,
		Delta,
	}
)
