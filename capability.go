package slug

// EncodingKind selects one of the supported text encodings.
// The zero value is Hex.
type EncodingKind uint8

const (
	// Hex is lowercase hexadecimal. Constant-time.
	Hex EncodingKind = iota

	// Base32 is RFC 4648 Base32 with '=' padding.
	Base32

	// Base32Unpadded is RFC 4648 Base32 without padding.
	Base32Unpadded

	// Base58 uses the Bitcoin alphabet. Intended for human-facing
	// identifiers, not secret material.
	Base58

	// Base64 is the standard alphabet with '=' padding. Constant-time.
	Base64

	// Base64URL is the URL-safe alphabet ('-' and '_') with '=' padding.
	// Constant-time.
	Base64URL
)

// kindNames holds the canonical names, indexed by EncodingKind.
var kindNames = [...]string{
	Hex:            "hex",
	Base32:         "base32",
	Base32Unpadded: "base32-unpadded",
	Base58:         "base58",
	Base64:         "base64",
	Base64URL:      "base64-url",
}

// constantTimeKinds contains the encodings whose transforms do not depend on byte values.
var constantTimeKinds = map[EncodingKind]bool{
	Hex:       true,
	Base64:    true,
	Base64URL: true,
}

// Kinds returns every EncodingKind in declaration order.
func Kinds() []EncodingKind {
	return []EncodingKind{Hex, Base32, Base32Unpadded, Base58, Base64, Base64URL}
}

// Valid reports whether k is one of the declared kinds.
func (k EncodingKind) Valid() bool {
	return int(k) < len(kindNames)
}

// ConstantTime reports whether encoding and decoding with k run in time
// independent of the byte values.
func (k EncodingKind) ConstantTime() bool {
	return constantTimeKinds[k]
}

func (k EncodingKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return kindNames[k]
}
