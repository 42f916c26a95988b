package ct

// EncodeHex returns the lowercase hexadecimal encoding of src.
func EncodeHex(src []byte) (string, error) {
	n, err := EncodedHexLen(len(src))
	if err != nil {
		return "", err
	}

	dst := make([]byte, n)
	for i, v := range src {
		hi := int(v >> 4)
		lo := int(v & 0x0F)
		dst[i*2] = hexChar(hi)
		dst[i*2+1] = hexChar(lo)
	}
	return string(dst), nil
}

// DecodeHex decodes a hexadecimal string. Upper- and lowercase digits are
// both accepted. Odd-length input returns ErrInvalidLength; any character
// outside [0-9a-fA-F] returns ErrInvalidCharacter.
func DecodeHex(src string) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrInvalidLength
	}

	dst := make([]byte, len(src)/2)
	bad := 0
	for i := 0; i < len(src); i += 2 {
		hi, hiBad := hexValue(int(src[i]))
		lo, loBad := hexValue(int(src[i+1]))
		bad |= hiBad | loBad
		dst[i/2] = byte(hi<<4 | lo)
	}

	if bad != 0 {
		return nil, ErrInvalidCharacter
	}
	return dst, nil
}

// hexChar maps a nibble to '0'-'9' or 'a'-'f' without a lookup table.
func hexChar(x int) byte {
	return byte(87 + x + (((x - 10) >> 8) &^ 38))
}

// hexValue maps a hex digit to its nibble. bad is -1 for an invalid digit
// and 0 otherwise.
func hexValue(c int) (v int, bad int) {
	num := c ^ 48
	num0 := (num - 10) >> 8
	alpha := (c &^ 32) - 55
	alpha0 := ((alpha - 10) ^ (alpha - 16)) >> 8
	v = (num0 & num) | (alpha0 & alpha)
	return v & 0x0F, ^(num0 | alpha0)
}
