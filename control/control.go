package control

import "fmt"

// MinRepeat is the shortest run a Run control byte can describe.
const MinRepeat = 3

// Mode is the state of a run-length decoder between pulls.
type Mode uint8

const (
	// ModeIdle means the next pull reads a control byte.
	ModeIdle Mode = iota
	// ModeRepeat means the decoder is replaying a repeated (or delta) run.
	ModeRepeat
	// ModeLiteral means the decoder is passing through literal values.
	ModeLiteral
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeRepeat:
		return "repeat"
	case ModeLiteral:
		return "literal"
	}

	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Parse returns the control byte type and the run length it encodes.
func Parse(b byte) (t Type, length int) {
	t, _ = Types.Match(b)

	switch t {
	case Run:
		return Run, int(Run.Value(b)) + MinRepeat
	default:
		return Literal, int(Literal.Value(b))
	}
}

// ParseHeader returns the version 2 sub-encoding selected by a header byte
// and the header's remaining 6 bits.
func ParseHeader(b byte) (t Type, value byte) {
	t, _ = Headers.Match(b)

	return t, t.Value(b)
}

// Encode returns the control byte for a run of the given type and length.
// It returns false if the length cannot be represented.
func Encode(t Type, length int) (b byte, ok bool) {
	switch t {
	case Run:
		if length < MinRepeat || length > MinRepeat+int(Run.Mask) {
			return 0, false
		}

		return Run.Prefix | byte(length-MinRepeat), true
	case Literal:
		if length < 0 || length > int(Literal.Mask) {
			return 0, false
		}

		return Literal.Prefix | byte(length), true
	}

	return 0, false
}
