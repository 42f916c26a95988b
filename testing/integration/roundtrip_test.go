package integration

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/slug"
	"github.com/zoobzio/slug/bson"
	"github.com/zoobzio/slug/json"
	"github.com/zoobzio/slug/msgpack"
	"github.com/zoobzio/slug/xml"
	"github.com/zoobzio/slug/yaml"
	slugtest "github.com/zoobzio/slug/testing"
)

func codecs() map[string]slug.Codec {
	return map[string]slug.Codec{
		"json":    json.New(),
		"xml":     xml.New(),
		"yaml":    yaml.New(),
		"msgpack": msgpack.New(),
		"bson":    bson.New(),
	}
}

func TestFieldCodec_MarshalUnmarshal(t *testing.T) {
	ctx := context.Background()
	fc, err := slug.Use[slugtest.Token]()
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			original := slugtest.SampleToken()

			data, err := fc.Marshal(ctx, c, &original)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			var restored slugtest.Token
			if err := fc.Unmarshal(ctx, c, data, &restored); err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if restored.Digest != original.Digest || restored.Key != original.Key ||
				restored.Signature != original.Signature || restored.Tag != original.Tag {
				t.Error("fixed-size fields differ after round trip")
			}
			if !bytes.Equal(restored.Nonce, original.Nonce) || !bytes.Equal(restored.Handle, original.Handle) {
				t.Error("slice fields differ after round trip")
			}
			if restored.ID != "" {
				t.Errorf("untagged ID = %q, want empty", restored.ID)
			}
		})
	}
}

func TestFieldCodec_MarshalContainsEncodedText(t *testing.T) {
	ctx := context.Background()
	fc, _ := slug.Use[slugtest.Token]()
	original := slugtest.SampleToken()
	digest, _ := original.Digest.ToHex()

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			data, err := fc.Marshal(ctx, c, &original)
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}
			if !bytes.Contains(data, []byte(digest)) {
				t.Errorf("%s output does not contain hex digest %s", name, digest)
			}
		})
	}
}

func TestFieldCodec_UnmarshalInvalid(t *testing.T) {
	ctx := context.Background()
	fc, _ := slug.Use[slugtest.Token]()

	for name, c := range codecs() {
		t.Run(name, func(t *testing.T) {
			data, err := c.Marshal(slug.Record{
				Type:   "Token",
				Fields: []slug.Field{{Name: "Digest", Encoding: "hex", Value: "zz"}},
			})
			if err != nil {
				t.Fatalf("Marshal error: %v", err)
			}

			var restored slugtest.Token
			err = fc.Unmarshal(ctx, c, data, &restored)
			if !errors.Is(err, slug.ErrDecoding) {
				t.Errorf("Unmarshal error = %v, want %v", err, slug.ErrDecoding)
			}
		})
	}
}

func TestFieldCodec_UnmarshalMalformed(t *testing.T) {
	ctx := context.Background()
	fc, _ := slug.Use[slugtest.Token]()

	var restored slugtest.Token
	if err := fc.Unmarshal(ctx, json.New(), []byte("{not json"), &restored); err == nil {
		t.Error("Unmarshal(malformed) should return error")
	}
}

func TestDispatcher_AcrossKinds(t *testing.T) {
	ctx := context.Background()
	data := slug.Sum256([]byte("integration"))

	for _, kind := range slug.Kinds() {
		d := slug.New(kind)
		text, err := d.Encode(ctx, data[:])
		if err != nil {
			t.Fatalf("%s: Encode error: %v", kind, err)
		}

		var fixed slug.Bytes32
		if err := slug.DecodeWith(&fixed, kind, text); err != nil {
			t.Fatalf("%s: DecodeWith error: %v", kind, err)
		}
		if fixed != data {
			t.Errorf("%s: DecodeWith = %x, want %x", kind, fixed, data)
		}
	}
}
