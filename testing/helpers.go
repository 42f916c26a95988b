// Package testing provides test fixtures for slug.
package testing

import (
	"github.com/zoobzio/slug"
)

// Vector is a known input with its expected text in every encoding.
type Vector struct {
	Name           string
	Input          []byte
	Hex            string
	Base32         string
	Base32Unpadded string
	Base58         string
	Base64         string
	Base64URL      string
}

// Expected returns the vector's text for kind.
func (v Vector) Expected(kind slug.EncodingKind) string {
	switch kind {
	case slug.Hex:
		return v.Hex
	case slug.Base32:
		return v.Base32
	case slug.Base32Unpadded:
		return v.Base32Unpadded
	case slug.Base58:
		return v.Base58
	case slug.Base64:
		return v.Base64
	case slug.Base64URL:
		return v.Base64URL
	default:
		return ""
	}
}

// Vectors returns the reference vectors.
func Vectors() []Vector {
	return []Vector{
		{
			Name:  "empty",
			Input: []byte{},
		},
		{
			Name:           "hnma",
			Input:          []byte("Hnma"),
			Hex:            "486e6d61",
			Base32:         "jbxg2yi=",
			Base32Unpadded: "jbxg2yi",
			Base58:         "2rPCb2",
			Base64:         "SG5tYQ==",
			Base64URL:      "SG5tYQ==",
		},
		{
			Name:           "foobar",
			Input:          []byte("foobar"),
			Hex:            "666f6f626172",
			Base32:         "mzxw6ytboi======",
			Base32Unpadded: "mzxw6ytboi",
			Base58:         "t1Zv2yaZ",
			Base64:         "Zm9vYmFy",
			Base64URL:      "Zm9vYmFy",
		},
		{
			Name:           "leading zeros",
			Input:          []byte{0x00, 0x00, 0x28, 0x7f, 0xb4, 0xcd},
			Hex:            "0000287fb4cd",
			Base32:         "aaacq75uzu======",
			Base32Unpadded: "aaacq75uzu",
			Base58:         "11233QC4",
			Base64:         "AAAof7TN",
			Base64URL:      "AAAof7TN",
		},
		{
			Name:           "url alphabet",
			Input:          []byte{0xfb, 0xff, 0xbf, 0xfe},
			Hex:            "fbffbffe",
			Base32:         "7p7377q=",
			Base32Unpadded: "7p7377q",
			Base58:         "7Sbo9P",
			Base64:         "+/+//g==",
			Base64URL:      "-_-__g==",
		},
		{
			Name:           "hello world",
			Input:          []byte("Hello World!"),
			Hex:            "48656c6c6f20576f726c6421",
			Base32:         "jbswy3dpeblw64tmmqqq====",
			Base32Unpadded: "jbswy3dpeblw64tmmqqq",
			Base58:         "2NEpo7TZRRrLZSi2U",
			Base64:         "SGVsbG8gV29ybGQh",
			Base64URL:      "SGVsbG8gV29ybGQh",
		},
	}
}

// Sequence returns n bytes counting up from start, wrapping at 256.
func Sequence(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

// Token is a test type with tagged byte fields of every supported shape.
type Token struct {
	ID        string
	Digest    slug.Bytes32 `slug:"hex"`
	Key       [28]byte     `slug:"base32"`
	Nonce     []byte       `slug:"base64-url,nonce"`
	Signature slug.Bytes64 `slug:"base64"`
	Handle    slug.Bytes   `slug:"base58"`
	Tag       slug.Bytes48 `slug:"base32-unpadded"`
}

// SampleToken returns a Token with every tagged field populated.
func SampleToken() Token {
	t := Token{
		ID:     "tok-1",
		Digest: slug.Sum256([]byte("payload")),
		Nonce:  Sequence(0xf0, 12),
		Handle: slug.Bytes("user-42"),
		Tag:    slug.Sum384([]byte("tag")),
	}
	copy(t.Key[:], Sequence(1, 28))
	t.Signature = slug.Blake2b512([]byte("signature"))
	return t
}
