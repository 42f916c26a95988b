package slug

import (
	"encoding/base32"

	"github.com/mr-tron/base58"

	"github.com/zoobzio/slug/internal/ct"
)

// base32Alphabet is the RFC 4648 alphabet in lowercase.
const base32Alphabet = "abcdefghijklmnopqrstuvwxyz234567"

var (
	base32Padded   = base32.NewEncoding(base32Alphabet)
	base32Unpadded = base32Padded.WithPadding(base32.NoPadding)
)

// ToHex encodes data as lowercase hexadecimal in constant time.
// The result has length 2*len(data).
func ToHex(data []byte) (string, error) {
	return ct.EncodeHex(data)
}

// FromHex decodes hexadecimal text in constant time.
// Both upper- and lowercase digits are accepted.
func FromHex(text string) ([]byte, error) {
	return ct.DecodeHex(text)
}

// ToBase32 encodes data as padded RFC 4648 Base32 in lowercase.
// Not constant-time.
func ToBase32(data []byte) (string, error) {
	return base32Padded.EncodeToString(data), nil
}

// FromBase32 decodes padded RFC 4648 Base32. Letters of either case are
// accepted. Returns base32.CorruptInputError on malformed input, including
// line breaks and non-zero trailing bits.
func FromBase32(text string) ([]byte, error) {
	return decodeBase32(base32Padded, text)
}

// ToBase32Unpadded encodes data as lowercase RFC 4648 Base32 without padding.
// Not constant-time.
func ToBase32Unpadded(data []byte) (string, error) {
	return base32Unpadded.EncodeToString(data), nil
}

// FromBase32Unpadded decodes RFC 4648 Base32 without padding.
// Any '=' in the input is rejected.
func FromBase32Unpadded(text string) ([]byte, error) {
	return decodeBase32(base32Unpadded, text)
}

// decodeBase32 decodes text with enc and accepts it only if it is the
// canonical encoding of the result. encoding/base32 skips '\r' and '\n'
// and ignores trailing bits, so both surface here as a mismatch.
func decodeBase32(enc *base32.Encoding, text string) ([]byte, error) {
	folded := foldBase32(text)
	b, err := enc.DecodeString(folded)
	if err != nil {
		return nil, err
	}
	if canonical := enc.EncodeToString(b); canonical != folded {
		return nil, base32.CorruptInputError(firstMismatch(canonical, folded))
	}
	return b, nil
}

// foldBase32 maps ASCII uppercase letters to lowercase and leaves every
// other byte alone.
func foldBase32(text string) string {
	b := []byte(text)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func firstMismatch(a, b string) int64 {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return int64(i)
		}
	}
	return int64(n)
}

// ToBase58 encodes data with the Bitcoin Base58 alphabet. Leading zero
// bytes become leading '1' characters. Not constant-time.
func ToBase58(data []byte) (string, error) {
	return base58.Encode(data), nil
}

// FromBase58 decodes Bitcoin Base58 text. The empty string decodes to an
// empty slice.
func FromBase58(text string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(text)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ToBase64 encodes data as padded standard Base64 in constant time.
func ToBase64(data []byte) (string, error) {
	return ct.EncodeBase64(data, ct.Standard)
}

// FromBase64 decodes padded standard Base64 in constant time.
func FromBase64(text string) ([]byte, error) {
	return ct.DecodeBase64(text, ct.Standard)
}

// ToBase64URL encodes data as padded URL-safe Base64 in constant time.
func ToBase64URL(data []byte) (string, error) {
	return ct.EncodeBase64(data, ct.URLSafe)
}

// FromBase64URL decodes padded URL-safe Base64 in constant time.
func FromBase64URL(text string) ([]byte, error) {
	return ct.DecodeBase64(text, ct.URLSafe)
}

// transform pairs the encode and decode functions of one EncodingKind.
type transform struct {
	encode func([]byte) (string, error)
	decode func(string) ([]byte, error)
}

// transforms is indexed by EncodingKind.
var transforms = [...]transform{
	Hex:            {ToHex, FromHex},
	Base32:         {ToBase32, FromBase32},
	Base32Unpadded: {ToBase32Unpadded, FromBase32Unpadded},
	Base58:         {ToBase58, FromBase58},
	Base64:         {ToBase64, FromBase64},
	Base64URL:      {ToBase64URL, FromBase64URL},
}

// transformFor returns the transform for k, or false if k is out of range.
func transformFor(k EncodingKind) (transform, bool) {
	if !k.Valid() {
		return transform{}, false
	}
	return transforms[k], true
}
