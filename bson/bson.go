// Package bson provides a BSON codec implementation.
//
// The codec's registry stores slug text types (HexText, Base64Text, ...) as
// BSON strings holding their encoded form, instead of BSON binary.
package bson

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"

	"github.com/zoobzio/slug"
)

// textTypes are registered to encode as BSON strings.
var textTypes = []reflect.Type{
	reflect.TypeFor[slug.HexText](),
	reflect.TypeFor[slug.Base32Text](),
	reflect.TypeFor[slug.Base32UnpaddedText](),
	reflect.TypeFor[slug.Base58Text](),
	reflect.TypeFor[slug.Base64Text](),
	reflect.TypeFor[slug.Base64URLText](),
}

// bsonCodec implements slug.Codec for BSON.
type bsonCodec struct {
	registry *bsoncodec.Registry
}

// New returns a BSON codec.
func New() slug.Codec {
	return &bsonCodec{registry: Registry()}
}

// Registry returns a BSON registry with the default codecs plus string
// encoders and decoders for the slug text types.
func Registry() *bsoncodec.Registry {
	reg := bson.NewRegistry()
	for _, t := range textTypes {
		reg.RegisterTypeEncoder(t, bsoncodec.ValueEncoderFunc(encodeText))
		reg.RegisterTypeDecoder(t, bsoncodec.ValueDecoderFunc(decodeText))
	}
	return reg
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	buf := new(bytes.Buffer)
	vw, err := bsonrw.NewBSONValueWriter(buf)
	if err != nil {
		return nil, err
	}
	enc, err := bson.NewEncoder(vw)
	if err != nil {
		return nil, err
	}
	if err := enc.SetRegistry(c.registry); err != nil {
		return nil, err
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	dec, err := bson.NewDecoder(bsonrw.NewBSONDocumentReader(data))
	if err != nil {
		return err
	}
	if err := dec.SetRegistry(c.registry); err != nil {
		return err
	}
	return dec.Decode(v)
}

func encodeText(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
	m, ok := val.Interface().(encoding.TextMarshaler)
	if !ok {
		return fmt.Errorf("bson: %s is not a text marshaler", val.Type())
	}
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	return vw.WriteString(string(text))
}

func decodeText(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
	if !val.CanSet() {
		return fmt.Errorf("bson: cannot set %s", val.Type())
	}

	switch vr.Type() {
	case bsontype.Null:
		val.Set(reflect.Zero(val.Type()))
		return vr.ReadNull()
	case bsontype.String:
	default:
		return fmt.Errorf("bson: cannot decode %s into %s", vr.Type(), val.Type())
	}

	s, err := vr.ReadString()
	if err != nil {
		return err
	}
	u, ok := val.Addr().Interface().(encoding.TextUnmarshaler)
	if !ok {
		return fmt.Errorf("bson: %s is not a text unmarshaler", val.Type())
	}
	return u.UnmarshalText([]byte(s))
}
