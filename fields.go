package slug

import (
	"context"
	"encoding/xml"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag read by FieldCodec: `slug:"kind[,key]"`.
const tagName = "slug"

func init() {
	sentinel.Tag(tagName)
}

// ParseKind returns the EncodingKind whose canonical name is name
// (as returned by EncodingKind.String).
func ParseKind(name string) (EncodingKind, error) {
	for k, n := range kindNames {
		if n == name {
			return EncodingKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Field is one encoded struct field.
type Field struct {
	Name     string `json:"name" xml:"name,attr" yaml:"name" msgpack:"name" bson:"name"`
	Encoding string `json:"encoding" xml:"encoding,attr" yaml:"encoding" msgpack:"encoding" bson:"encoding"`
	Value    string `json:"value" xml:",chardata" yaml:"value" msgpack:"value" bson:"value"`
}

// Record is the document written by FieldCodec.Marshal.
type Record struct {
	XMLName xml.Name `json:"-" xml:"record" yaml:"-" msgpack:"-" bson:"-"`
	Type    string   `json:"type" xml:"type,attr" yaml:"type" msgpack:"type" bson:"type"`
	Fields  []Field  `json:"fields" xml:"field" yaml:"fields" msgpack:"fields" bson:"fields"`
}

// FieldCodec encodes the tagged byte fields of T as text.
//
// Fields are declared with the slug tag:
//
//	type Token struct {
//	    Digest slug.Bytes32 `slug:"hex"`
//	    Nonce  []byte       `slug:"base64-url,nonce"`
//	}
//
// The first tag element is the encoding name (see ParseKind); the optional
// second element overrides the field key, which defaults to the Go field
// name. Only byte slices and byte arrays may be tagged.
//
// A FieldCodec is immutable after construction and safe for concurrent use.
type FieldCodec[T any] struct {
	typeName string
	plans    []fieldPlan
}

// fieldPlan describes how to transform a single field.
type fieldPlan struct {
	index []int        // reflect.Value.FieldByIndex access path
	name  string       // Go field name for error messages
	key   string       // key written to Field.Name
	kind  EncodingKind // encoding declared by the tag
	size  int          // array length, or 0 for slices
}

// NewFieldCodec scans T and returns a FieldCodec for its tagged fields.
// Untagged struct fields are descended into, and their tagged fields get
// dotted names ("Inner.Digest"). Invalid tags and unsupported field types
// are reported here, not at encode time.
func NewFieldCodec[T any]() (*FieldCodec[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnsupportedField, rt)
	}

	meta := sentinel.Scan[T]()
	c := &FieldCodec[T]{typeName: meta.TypeName}
	seen := make(map[string]string)

	if err := c.buildPlans(meta, rt, nil, "", seen); err != nil {
		return nil, err
	}

	emitFieldsCreated(context.Background(), c.typeName, len(c.plans))
	return c, nil
}

// buildPlans adds plans for the fields of st, a struct reached from T
// through parentIndex.
func (c *FieldCodec[T]) buildPlans(meta sentinel.Metadata, st reflect.Type, parentIndex []int, namePrefix string, seen map[string]string) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}
		exported := st.FieldByIndex(field.Index).IsExported()
		ft := field.ReflectType

		val, tagged := field.Tags[tagName]
		if !tagged {
			switch {
			case ft.Kind() == reflect.Struct:
				if !exported {
					if hasTaggedFields(ft) {
						return fmt.Errorf("%w: field %s is unexported", ErrUnsupportedField, fullName)
					}
					continue
				}
				if err := c.buildPlans(scanNestedType(ft), ft, fullIndex, fullName, seen); err != nil {
					return err
				}
			case ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct && hasTaggedFields(ft.Elem()):
				return fmt.Errorf("%w: field %s points to a struct with tagged fields", ErrUnsupportedField, fullName)
			}
			continue
		}

		kindName, key, _ := strings.Cut(val, ",")
		kind, err := ParseKind(strings.TrimSpace(kindName))
		if err != nil {
			return fmt.Errorf("%w: %q on field %s: %w", ErrInvalidTag, val, fullName, err)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			key = fullName
		}
		if other, dup := seen[key]; dup {
			return fmt.Errorf("%w: key %q used by fields %s and %s", ErrInvalidTag, key, other, fullName)
		}
		seen[key] = fullName

		if !exported {
			return fmt.Errorf("%w: field %s is unexported", ErrUnsupportedField, fullName)
		}

		plan := fieldPlan{
			index: fullIndex,
			name:  fullName,
			key:   key,
			kind:  kind,
		}
		switch {
		case ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Uint8:
		case ft.Kind() == reflect.Array && ft.Elem().Kind() == reflect.Uint8:
			plan.size = ft.Len()
		default:
			return fmt.Errorf("%w: field %s has type %s", ErrUnsupportedField, fullName, ft)
		}
		c.plans = append(c.plans, plan)
	}

	return nil
}

// scanNestedType returns metadata for a nested struct type, from the
// sentinel cache when it has been scanned already.
func scanNestedType(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        make(map[string]string),
		}
		if val, ok := sf.Tag.Lookup(tagName); ok {
			fm.Tags[tagName] = val
		}
		meta.Fields = append(meta.Fields, fm)
	}
	return meta
}

// hasTaggedFields reports whether any direct field of the struct rt carries
// a slug tag.
func hasTaggedFields(rt reflect.Type) bool {
	for i := 0; i < rt.NumField(); i++ {
		if _, ok := rt.Field(i).Tag.Lookup(tagName); ok {
			return true
		}
	}
	return false
}

// TypeName returns the scanned type's name.
func (c *FieldCodec[T]) TypeName() string {
	return c.typeName
}

// Encode returns the tagged fields of v, in declaration order.
func (c *FieldCodec[T]) Encode(ctx context.Context, v *T) ([]Field, error) {
	start := time.Now()
	fields, err := c.encode(v)
	emitFieldsEncoded(ctx, c.typeName, len(c.plans), time.Since(start), err)
	return fields, err
}

func (c *FieldCodec[T]) encode(v *T) ([]Field, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil *%s", ErrNilTarget, c.typeName)
	}
	rv := reflect.ValueOf(v).Elem()
	fields := make([]Field, 0, len(c.plans))

	for _, plan := range c.plans {
		fv := rv.FieldByIndex(plan.index)
		var b []byte
		if plan.size > 0 {
			b = fv.Slice(0, plan.size).Bytes()
		} else {
			b = fv.Bytes()
		}

		text, err := transforms[plan.kind].encode(b)
		if err != nil {
			return nil, newFieldError(ErrFailed, plan.name, plan.kind, err)
		}
		fields = append(fields, Field{
			Name:     plan.key,
			Encoding: plan.kind.String(),
			Value:    text,
		})
	}

	return fields, nil
}

// Decode sets the tagged fields of v from fields. Every tagged field must be
// present. v is only modified if all fields decode successfully.
//
// A Field whose Encoding is set must name the tag's encoding.
func (c *FieldCodec[T]) Decode(ctx context.Context, fields []Field, v *T) error {
	start := time.Now()
	err := c.decode(fields, v)
	emitFieldsDecoded(ctx, c.typeName, len(c.plans), time.Since(start), err)
	return err
}

func (c *FieldCodec[T]) decode(fields []Field, v *T) error {
	if v == nil {
		return fmt.Errorf("%w: nil *%s", ErrNilTarget, c.typeName)
	}
	byKey := make(map[string]Field, len(fields))
	for _, f := range fields {
		byKey[f.Name] = f
	}

	decoded := make([][]byte, len(c.plans))
	for i, plan := range c.plans {
		f, ok := byKey[plan.key]
		if !ok {
			return newFieldError(ErrMissingField, plan.name, plan.kind, nil)
		}
		if f.Encoding != "" && f.Encoding != plan.kind.String() {
			return newFieldError(ErrDecoding, plan.name, plan.kind,
				fmt.Errorf("%w: %q", ErrUnknownKind, f.Encoding))
		}

		b, err := transforms[plan.kind].decode(f.Value)
		if err != nil {
			return newFieldError(ErrDecoding, plan.name, plan.kind, err)
		}
		if plan.size > 0 && len(b) != plan.size {
			return newFieldError(ErrInvalidLength, plan.name, plan.kind, lengthError(plan.size, len(b)))
		}
		decoded[i] = b
	}

	rv := reflect.ValueOf(v).Elem()
	for i, plan := range c.plans {
		fv := rv.FieldByIndex(plan.index)
		if plan.size > 0 {
			reflect.Copy(fv, reflect.ValueOf(decoded[i]))
		} else {
			fv.SetBytes(decoded[i])
		}
	}

	return nil
}

// Marshal encodes the tagged fields of v into a Record and marshals it with codec.
func (c *FieldCodec[T]) Marshal(ctx context.Context, codec Codec, v *T) ([]byte, error) {
	fields, err := c.Encode(ctx, v)
	if err != nil {
		return nil, err
	}

	data, err := codec.Marshal(Record{Type: c.typeName, Fields: fields})
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", codec.ContentType(), err)
	}
	return data, nil
}

// Unmarshal reads a Record from data with codec and decodes it into v.
func (c *FieldCodec[T]) Unmarshal(ctx context.Context, codec Codec, data []byte, v *T) error {
	var rec Record
	if err := codec.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("unmarshal %s: %w", codec.ContentType(), err)
	}
	return c.Decode(ctx, rec.Fields, v)
}
