// Package ct implements constant-time hexadecimal and Base64 transforms.
//
// Encoding and decoding never branch on, or index memory by, the value of an
// input byte. Running time depends only on the input length. Validity is
// tracked in a mask and reported once the whole input has been processed.
package ct

import (
	"errors"
	"math"
)

// Transform errors.
var (
	// ErrOverflow indicates the output length does not fit in an int.
	ErrOverflow = errors.New("ct: output length overflow")

	// ErrInvalidLength indicates the input length is invalid for the encoding.
	ErrInvalidLength = errors.New("ct: invalid input length")

	// ErrInvalidCharacter indicates the input contains a character outside the alphabet.
	ErrInvalidCharacter = errors.New("ct: invalid character")

	// ErrInvalidPadding indicates missing, excess or non-canonical padding.
	ErrInvalidPadding = errors.New("ct: invalid padding")
)

// Mask helpers over uint32. Each returns 0xFF when the predicate holds and 0 otherwise.

func eq(x, y uint32) uint32 {
	return (((0 - (x ^ y)) >> 8) & 0xFF) ^ 0xFF
}

func gt(x, y uint32) uint32 {
	return ((y - x) >> 8) & 0xFF
}

func ge(x, y uint32) uint32 {
	return gt(y, x) ^ 0xFF
}

func lt(x, y uint32) uint32 {
	return gt(y, x)
}

func le(x, y uint32) uint32 {
	return ge(y, x)
}

// EncodedHexLen returns the hex length for n bytes.
func EncodedHexLen(n int) (int, error) {
	if n < 0 || n > math.MaxInt/2 {
		return 0, ErrOverflow
	}
	return n * 2, nil
}

// EncodedBase64Len returns the padded Base64 length for n bytes.
func EncodedBase64Len(n int) (int, error) {
	if n < 0 || n/3 > (math.MaxInt-4)/4 {
		return 0, ErrOverflow
	}
	return (n + 2) / 3 * 4, nil
}
