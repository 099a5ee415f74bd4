package integer

// widths maps a 5 bit width code to a bit width.
var widths = [32]int{
	1, 2, 3, 4, 5, 6, 7, 15,
	9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24,
	26, 28, 30, 32, 40, 48, 56, 64,
}

// BitWidth returns the bit width selected by a 5 bit width code. Only the low
// 5 bits of code are used.
func BitWidth(code byte) int {
	return widths[code&0b_0001_1111]
}

// DeltaBitWidth is BitWidth for Delta runs, where code 0 means every delta
// is the same and no deltas are packed.
func DeltaBitWidth(code byte) int {
	if code&0b_0001_1111 == 0 {
		return 0
	}

	return BitWidth(code)
}

// ClosestFixedBits rounds width up to the nearest width a code can express.
// Patch list entries are packed at this width.
func ClosestFixedBits(width int) int {
	switch {
	case width <= 0:
		return 1
	case width <= 24:
		return width
	case width <= 26:
		return 26
	case width <= 28:
		return 28
	case width <= 30:
		return 30
	case width <= 32:
		return 32
	case width <= 40:
		return 40
	case width <= 48:
		return 48
	case width <= 56:
		return 56
	}

	return 64
}
