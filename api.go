// Package slug provides one API over several byte-to-text encodings.
//
// Supported encodings are hexadecimal, Base32 (padded and unpadded), Base58
// and Base64 (standard and URL-safe, both padded). Hex and Base64 run in
// constant time with respect to the byte values, so they are suitable for
// keys, digests and tokens. Base32 and Base58 are not; use them for
// human-facing identifiers.
//
// # Runtime Selection
//
// A Dispatcher is bound to one EncodingKind and routes every call to the
// matching transform:
//
//	d := slug.New(slug.Base64)
//	text, err := d.Encode(ctx, []byte("Hnma")) // "SG5tYQ=="
//	data, err := d.Decode(ctx, text)
//
// Dispatcher errors are collapsed into EncodingError: ErrFailed for an
// encode fault and ErrDecoding for invalid text. The underlying cause is
// attached to the emitted capitan event.
//
// # Compile-Time Selection
//
// The free functions ToHex, FromHex, ToBase32, FromBase32, ... operate on
// plain byte slices. Byte shapes carry the same set as methods:
//
//   - Bytes: dynamically sized buffer
//   - Bytes28, Bytes32, Bytes48, Bytes64: fixed digest and key sizes
//
// These return the transform's own error (ct, base32 or base58), unchanged.
//
//	var digest slug.Bytes32 = slug.Sum256(payload)
//	s, _ := digest.ToHex()
//	err := digest.DecodeHex(s)
//
// # Text Types
//
// HexText, Base32Text, Base32UnpaddedText, Base58Text, Base64Text and
// Base64URLText are byte slices that marshal as encoded text.
//
// # Struct Tags
//
// FieldCodec encodes tagged byte fields and writes them as a Record through
// any Codec:
//
//	type Token struct {
//	    Digest slug.Bytes32 `slug:"hex"`
//	    Nonce  []byte       `slug:"base64-url,nonce"`
//	}
//
//	fc, _ := slug.Use[Token]()
//	data, _ := fc.Marshal(ctx, json.New(), &token)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package slug
