package ct

// Variant selects the Base64 alphabet.
type Variant uint8

const (
	// Standard uses '+' and '/' for values 62 and 63.
	Standard Variant = iota
	// URLSafe uses '-' and '_' for values 62 and 63.
	URLSafe
)

const padChar = '='

// symbols returns the characters for sextets 62 and 63.
func (v Variant) symbols() (uint32, uint32) {
	if v == URLSafe {
		return '-', '_'
	}
	return '+', '/'
}

// EncodeBase64 returns the padded Base64 encoding of src.
func EncodeBase64(src []byte, v Variant) (string, error) {
	n, err := EncodedBase64Len(len(src))
	if err != nil {
		return "", err
	}

	c62, c63 := v.symbols()
	dst := make([]byte, 0, n)

	var acc uint32
	var accLen uint
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		accLen += 8
		for accLen >= 6 {
			accLen -= 6
			dst = append(dst, base64Char((acc>>accLen)&0x3F, c62, c63))
		}
	}
	if accLen > 0 {
		dst = append(dst, base64Char((acc<<(6-accLen))&0x3F, c62, c63))
	}
	for len(dst) < n {
		dst = append(dst, padChar)
	}
	return string(dst), nil
}

// DecodeBase64 decodes padded Base64 text in the given variant.
//
// The input length must be a multiple of four, with at most two trailing
// '=' characters and zero bits in the unused tail of the final sextet.
// Characters from the other variant's alphabet are rejected.
func DecodeBase64(src string, v Variant) ([]byte, error) {
	if len(src)%4 != 0 {
		return nil, ErrInvalidLength
	}

	pad := 0
	for pad < len(src) && src[len(src)-1-pad] == padChar {
		pad++
	}
	if pad > 2 {
		return nil, ErrInvalidPadding
	}

	body := src[:len(src)-pad]
	c62, c63 := v.symbols()
	dst := make([]byte, 0, len(body)*3/4)

	var acc uint32
	var accLen uint
	var bad uint32
	for i := 0; i < len(body); i++ {
		d := base64Value(uint32(body[i]), c62, c63)
		bad |= eq(d, 0xFF)
		acc = acc<<6 | (d & 0x3F)
		accLen += 6
		if accLen >= 8 {
			accLen -= 8
			dst = append(dst, byte(acc>>accLen))
		}
	}

	if bad != 0 {
		return nil, ErrInvalidCharacter
	}
	if accLen > 4 || acc&((1<<accLen)-1) != 0 {
		return nil, ErrInvalidPadding
	}
	return dst, nil
}

// base64Char maps a sextet to its alphabet character using masks only.
func base64Char(x, c62, c63 uint32) byte {
	return byte((lt(x, 26) & (x + 'A')) |
		(ge(x, 26) & lt(x, 52) & (x + ('a' - 26))) |
		(ge(x, 52) & lt(x, 62) & (x - (52 - '0'))) |
		(eq(x, 62) & c62) |
		(eq(x, 63) & c63))
}

// base64Value maps an alphabet character to its sextet, or 0xFF when c is
// not in the alphabet.
func base64Value(c, c62, c63 uint32) uint32 {
	x := (ge(c, 'A') & le(c, 'Z') & (c - 'A')) |
		(ge(c, 'a') & le(c, 'z') & (c - ('a' - 26))) |
		(ge(c, '0') & le(c, '9') & (c + (52 - '0'))) |
		(eq(c, c62) & 62) |
		(eq(c, c63) & 63)
	return x | (eq(x, 0) & (eq(c, 'A') ^ 0xFF))
}
