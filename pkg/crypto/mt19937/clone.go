package mt19937

import (
	"errors"
	"fmt"
)

var ErrOutputCount = errors.New("mt19937: recovery needs exactly 624 outputs")

// Untemper inverts the output tempering, returning the raw state word.
func Untemper(y uint32) uint32 {
	y = undoRightShift(y, 18)
	y = undoLeftShift(y, 15, temperingC)
	y = undoLeftShift(y, 7, temperingB)
	y = undoRightShift(y, 11)
	return y
}

// undoRightShift inverts y ^= y >> shift.
func undoRightShift(y uint32, shift uint) uint32 {
	x := y
	for i := shift; i < 32; i += shift {
		x = y ^ (x >> shift)
	}
	return x
}

// undoLeftShift inverts y ^= (y << shift) & mask.
func undoLeftShift(y uint32, shift uint, mask uint32) uint32 {
	x := y
	for i := shift; i < 32; i += shift {
		x = y ^ ((x << shift) & mask)
	}
	return x
}

// Recover rebuilds a generator from 624 consecutive outputs of another one.
// The returned generator continues the sequence right after the last output,
// regardless of where the outputs fell relative to a twist.
func Recover(outputs []uint32) (*Generator, error) {
	if len(outputs) != N {
		return nil, fmt.Errorf("%w: got %d", ErrOutputCount, len(outputs))
	}
	g := new(Generator)
	for i, y := range outputs {
		g.words[i] = Untemper(y)
	}
	g.cursor = N
	return g, nil
}
