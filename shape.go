package slug

// Encoder is the encode half of the capability set. Every shape implements it.
type Encoder interface {
	ToHex() (string, error)
	ToBase32() (string, error)
	ToBase32Unpadded() (string, error)
	ToBase58() (string, error)
	ToBase64() (string, error)
	ToBase64URL() (string, error)
}

// Decoder is the decode half of the capability set, implemented by pointers
// to every shape. On error the receiver is left unchanged.
type Decoder interface {
	DecodeHex(text string) error
	DecodeBase32(text string) error
	DecodeBase32Unpadded(text string) error
	DecodeBase58(text string) error
	DecodeBase64(text string) error
	DecodeBase64URL(text string) error
}

// Bytes is a dynamically sized byte buffer.
type Bytes []byte

// Fixed-size shapes for common digest and key lengths. Encoding them needs
// no length check; decoding into them fails with ErrInvalidLength when the
// decoded size differs.
type (
	Bytes28 [28]byte // SHA-224, SHA3-224
	Bytes32 [32]byte // SHA-256, BLAKE2b-256, Ed25519 keys
	Bytes48 [48]byte // SHA-384, SHA3-384
	Bytes64 [64]byte // SHA-512, BLAKE2b-512, Ed25519 signatures
)

// decodeInto decodes text with fn and copies the result into dst, which
// must match the decoded length exactly.
func decodeInto(dst []byte, text string, fn func(string) ([]byte, error)) error {
	b, err := fn(text)
	if err != nil {
		return err
	}
	if len(b) != len(dst) {
		return lengthError(len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// decodeBytes decodes text with fn and replaces the contents of *dst.
func decodeBytes(dst *Bytes, text string, fn func(string) ([]byte, error)) error {
	b, err := fn(text)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}

// --- Bytes ---

func (b Bytes) ToHex() (string, error)            { return ToHex(b) }
func (b Bytes) ToBase32() (string, error)         { return ToBase32(b) }
func (b Bytes) ToBase32Unpadded() (string, error) { return ToBase32Unpadded(b) }
func (b Bytes) ToBase58() (string, error)         { return ToBase58(b) }
func (b Bytes) ToBase64() (string, error)         { return ToBase64(b) }
func (b Bytes) ToBase64URL() (string, error)      { return ToBase64URL(b) }

func (b *Bytes) DecodeHex(text string) error    { return decodeBytes(b, text, FromHex) }
func (b *Bytes) DecodeBase32(text string) error { return decodeBytes(b, text, FromBase32) }
func (b *Bytes) DecodeBase32Unpadded(text string) error {
	return decodeBytes(b, text, FromBase32Unpadded)
}
func (b *Bytes) DecodeBase58(text string) error    { return decodeBytes(b, text, FromBase58) }
func (b *Bytes) DecodeBase64(text string) error    { return decodeBytes(b, text, FromBase64) }
func (b *Bytes) DecodeBase64URL(text string) error { return decodeBytes(b, text, FromBase64URL) }

// --- Bytes28 ---

func (b Bytes28) ToHex() (string, error)            { return ToHex(b[:]) }
func (b Bytes28) ToBase32() (string, error)         { return ToBase32(b[:]) }
func (b Bytes28) ToBase32Unpadded() (string, error) { return ToBase32Unpadded(b[:]) }
func (b Bytes28) ToBase58() (string, error)         { return ToBase58(b[:]) }
func (b Bytes28) ToBase64() (string, error)         { return ToBase64(b[:]) }
func (b Bytes28) ToBase64URL() (string, error)      { return ToBase64URL(b[:]) }

func (b *Bytes28) DecodeHex(text string) error    { return decodeInto(b[:], text, FromHex) }
func (b *Bytes28) DecodeBase32(text string) error { return decodeInto(b[:], text, FromBase32) }
func (b *Bytes28) DecodeBase32Unpadded(text string) error {
	return decodeInto(b[:], text, FromBase32Unpadded)
}
func (b *Bytes28) DecodeBase58(text string) error    { return decodeInto(b[:], text, FromBase58) }
func (b *Bytes28) DecodeBase64(text string) error    { return decodeInto(b[:], text, FromBase64) }
func (b *Bytes28) DecodeBase64URL(text string) error { return decodeInto(b[:], text, FromBase64URL) }

// --- Bytes32 ---

func (b Bytes32) ToHex() (string, error)            { return ToHex(b[:]) }
func (b Bytes32) ToBase32() (string, error)         { return ToBase32(b[:]) }
func (b Bytes32) ToBase32Unpadded() (string, error) { return ToBase32Unpadded(b[:]) }
func (b Bytes32) ToBase58() (string, error)         { return ToBase58(b[:]) }
func (b Bytes32) ToBase64() (string, error)         { return ToBase64(b[:]) }
func (b Bytes32) ToBase64URL() (string, error)      { return ToBase64URL(b[:]) }

func (b *Bytes32) DecodeHex(text string) error    { return decodeInto(b[:], text, FromHex) }
func (b *Bytes32) DecodeBase32(text string) error { return decodeInto(b[:], text, FromBase32) }
func (b *Bytes32) DecodeBase32Unpadded(text string) error {
	return decodeInto(b[:], text, FromBase32Unpadded)
}
func (b *Bytes32) DecodeBase58(text string) error    { return decodeInto(b[:], text, FromBase58) }
func (b *Bytes32) DecodeBase64(text string) error    { return decodeInto(b[:], text, FromBase64) }
func (b *Bytes32) DecodeBase64URL(text string) error { return decodeInto(b[:], text, FromBase64URL) }

// --- Bytes48 ---

func (b Bytes48) ToHex() (string, error)            { return ToHex(b[:]) }
func (b Bytes48) ToBase32() (string, error)         { return ToBase32(b[:]) }
func (b Bytes48) ToBase32Unpadded() (string, error) { return ToBase32Unpadded(b[:]) }
func (b Bytes48) ToBase58() (string, error)         { return ToBase58(b[:]) }
func (b Bytes48) ToBase64() (string, error)         { return ToBase64(b[:]) }
func (b Bytes48) ToBase64URL() (string, error)      { return ToBase64URL(b[:]) }

func (b *Bytes48) DecodeHex(text string) error    { return decodeInto(b[:], text, FromHex) }
func (b *Bytes48) DecodeBase32(text string) error { return decodeInto(b[:], text, FromBase32) }
func (b *Bytes48) DecodeBase32Unpadded(text string) error {
	return decodeInto(b[:], text, FromBase32Unpadded)
}
func (b *Bytes48) DecodeBase58(text string) error    { return decodeInto(b[:], text, FromBase58) }
func (b *Bytes48) DecodeBase64(text string) error    { return decodeInto(b[:], text, FromBase64) }
func (b *Bytes48) DecodeBase64URL(text string) error { return decodeInto(b[:], text, FromBase64URL) }

// --- Bytes64 ---

func (b Bytes64) ToHex() (string, error)            { return ToHex(b[:]) }
func (b Bytes64) ToBase32() (string, error)         { return ToBase32(b[:]) }
func (b Bytes64) ToBase32Unpadded() (string, error) { return ToBase32Unpadded(b[:]) }
func (b Bytes64) ToBase58() (string, error)         { return ToBase58(b[:]) }
func (b Bytes64) ToBase64() (string, error)         { return ToBase64(b[:]) }
func (b Bytes64) ToBase64URL() (string, error)      { return ToBase64URL(b[:]) }

func (b *Bytes64) DecodeHex(text string) error    { return decodeInto(b[:], text, FromHex) }
func (b *Bytes64) DecodeBase32(text string) error { return decodeInto(b[:], text, FromBase32) }
func (b *Bytes64) DecodeBase32Unpadded(text string) error {
	return decodeInto(b[:], text, FromBase32Unpadded)
}
func (b *Bytes64) DecodeBase58(text string) error    { return decodeInto(b[:], text, FromBase58) }
func (b *Bytes64) DecodeBase64(text string) error    { return decodeInto(b[:], text, FromBase64) }
func (b *Bytes64) DecodeBase64URL(text string) error { return decodeInto(b[:], text, FromBase64URL) }

// Compile-time checks that every shape carries the full capability set.
var (
	_ Encoder = Bytes(nil)
	_ Encoder = Bytes28{}
	_ Encoder = Bytes32{}
	_ Encoder = Bytes48{}
	_ Encoder = Bytes64{}

	_ Decoder = (*Bytes)(nil)
	_ Decoder = (*Bytes28)(nil)
	_ Decoder = (*Bytes32)(nil)
	_ Decoder = (*Bytes48)(nil)
	_ Decoder = (*Bytes64)(nil)
)

// EncodeWith encodes any shape with the given kind. An out-of-range kind
// returns ErrEncoding.
func EncodeWith(e Encoder, k EncodingKind) (string, error) {
	switch k {
	case Hex:
		return e.ToHex()
	case Base32:
		return e.ToBase32()
	case Base32Unpadded:
		return e.ToBase32Unpadded()
	case Base58:
		return e.ToBase58()
	case Base64:
		return e.ToBase64()
	case Base64URL:
		return e.ToBase64URL()
	default:
		return "", ErrEncoding
	}
}

// DecodeWith decodes text into any shape with the given kind. An
// out-of-range kind returns ErrDecoding.
func DecodeWith(d Decoder, k EncodingKind, text string) error {
	switch k {
	case Hex:
		return d.DecodeHex(text)
	case Base32:
		return d.DecodeBase32(text)
	case Base32Unpadded:
		return d.DecodeBase32Unpadded(text)
	case Base58:
		return d.DecodeBase58(text)
	case Base64:
		return d.DecodeBase64(text)
	case Base64URL:
		return d.DecodeBase64URL(text)
	default:
		return ErrDecoding
	}
}
