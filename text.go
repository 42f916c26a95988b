package slug

// Byte slices that marshal as encoded text. They implement
// encoding.TextMarshaler and encoding.TextUnmarshaler, so fields of these
// types travel through JSON, XML, YAML and MessagePack as strings.
type (
	HexText            []byte
	Base32Text         []byte
	Base32UnpaddedText []byte
	Base58Text         []byte
	Base64Text         []byte
	Base64URLText      []byte
)

func marshalText(b []byte, encode func([]byte) (string, error)) ([]byte, error) {
	s, err := encode(b)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func unmarshalText(text []byte, decode func(string) ([]byte, error)) ([]byte, error) {
	return decode(string(text))
}

func (t HexText) MarshalText() ([]byte, error) { return marshalText(t, ToHex) }

func (t *HexText) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromHex)
	if err != nil {
		return err
	}
	*t = b
	return nil
}

func (t Base32Text) MarshalText() ([]byte, error) { return marshalText(t, ToBase32) }

func (t *Base32Text) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromBase32)
	if err != nil {
		return err
	}
	*t = b
	return nil
}

func (t Base32UnpaddedText) MarshalText() ([]byte, error) {
	return marshalText(t, ToBase32Unpadded)
}

func (t *Base32UnpaddedText) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromBase32Unpadded)
	if err != nil {
		return err
	}
	*t = b
	return nil
}

func (t Base58Text) MarshalText() ([]byte, error) { return marshalText(t, ToBase58) }

func (t *Base58Text) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromBase58)
	if err != nil {
		return err
	}
	*t = b
	return nil
}

func (t Base64Text) MarshalText() ([]byte, error) { return marshalText(t, ToBase64) }

func (t *Base64Text) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromBase64)
	if err != nil {
		return err
	}
	*t = b
	return nil
}

func (t Base64URLText) MarshalText() ([]byte, error) { return marshalText(t, ToBase64URL) }

func (t *Base64URLText) UnmarshalText(text []byte) error {
	b, err := unmarshalText(text, FromBase64URL)
	if err != nil {
		return err
	}
	*t = b
	return nil
}
