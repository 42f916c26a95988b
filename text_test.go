package slug_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/zoobzio/slug"
)

type textRecord struct {
	Hex      slug.HexText            `json:"hex"`
	B32      slug.Base32Text         `json:"b32"`
	B32NoPad slug.Base32UnpaddedText `json:"b32_nopad"`
	B58      slug.Base58Text         `json:"b58"`
	B64      slug.Base64Text         `json:"b64"`
	B64URL   slug.Base64URLText      `json:"b64_url"`
}

func TestTextTypes_JSON(t *testing.T) {
	in := []byte("Hnma")
	rec := textRecord{
		Hex:      slug.HexText(in),
		B32:      slug.Base32Text(in),
		B32NoPad: slug.Base32UnpaddedText(in),
		B58:      slug.Base58Text(in),
		B64:      slug.Base64Text(in),
		B64URL:   slug.Base64URLText(in),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}

	want := `{"hex":"486e6d61","b32":"jbxg2yi=","b32_nopad":"jbxg2yi","b58":"2rPCb2","b64":"SG5tYQ==","b64_url":"SG5tYQ=="}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}

	var back textRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	for name, got := range map[string][]byte{
		"hex": back.Hex, "b32": back.B32, "b32_nopad": back.B32NoPad,
		"b58": back.B58, "b64": back.B64, "b64_url": back.B64URL,
	} {
		if !bytes.Equal(got, in) {
			t.Errorf("%s round trip = %q, want %q", name, got, in)
		}
	}
}

func TestTextTypes_UnmarshalInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		dst  any
	}{
		{"hex", `"xyz"`, new(slug.HexText)},
		{"base32", `"JBXG2YI"`, new(slug.Base32Text)},
		{"base32 unpadded", `"JBXG2YI="`, new(slug.Base32UnpaddedText)},
		{"base58", `"0OIl"`, new(slug.Base58Text)},
		{"base64", `"-_8="`, new(slug.Base64Text)},
		{"base64 url", `"+/8="`, new(slug.Base64URLText)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := json.Unmarshal([]byte(tt.data), tt.dst); err == nil {
				t.Errorf("json.Unmarshal(%s) should return error", tt.data)
			}
		})
	}
}

func TestTextTypes_Empty(t *testing.T) {
	text, err := slug.Base58Text{}.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	if len(text) != 0 {
		t.Errorf("MarshalText() = %q, want empty", text)
	}

	var b slug.Base58Text
	if err := b.UnmarshalText(nil); err != nil {
		t.Fatalf("UnmarshalText(nil) error: %v", err)
	}
	if b == nil || len(b) != 0 {
		t.Errorf("UnmarshalText(nil) = %#v, want empty non-nil", b)
	}
}
