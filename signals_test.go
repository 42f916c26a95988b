package slug

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitDispatcherCreated(_ *testing.T) {
	// Should not panic
	emitDispatcherCreated(context.Background(), Base58)
}

func TestEmitEncodeComplete_Success(_ *testing.T) {
	emitEncodeComplete(context.Background(), Hex, 32, time.Microsecond, nil)
}

func TestEmitEncodeComplete_Error(_ *testing.T) {
	emitEncodeComplete(context.Background(), EncodingKind(9), 32, time.Microsecond, errors.New("test error"))
}

func TestEmitDecodeComplete_Success(_ *testing.T) {
	emitDecodeComplete(context.Background(), Base64, 8, time.Microsecond, nil)
}

func TestEmitDecodeComplete_Error(_ *testing.T) {
	emitDecodeComplete(context.Background(), Base64URL, 3, time.Microsecond, errors.New("test error"))
}

func TestEmitFieldsCreated(_ *testing.T) {
	emitFieldsCreated(context.Background(), "TestType", 3)
}

func TestEmitFieldsEncoded_Success(_ *testing.T) {
	emitFieldsEncoded(context.Background(), "TestType", 3, time.Microsecond, nil)
}

func TestEmitFieldsEncoded_Error(_ *testing.T) {
	emitFieldsEncoded(context.Background(), "TestType", 3, time.Microsecond, errors.New("test error"))
}

func TestEmitFieldsDecoded_Success(_ *testing.T) {
	emitFieldsDecoded(context.Background(), "TestType", 3, time.Microsecond, nil)
}

func TestEmitFieldsDecoded_Error(_ *testing.T) {
	emitFieldsDecoded(context.Background(), "TestType", 0, time.Microsecond, errors.New("test error"))
}

func TestSignalsDefined(t *testing.T) {
	signals := []struct {
		name   string
		signal any
	}{
		{"SignalDispatcherCreated", SignalDispatcherCreated},
		{"SignalEncodeComplete", SignalEncodeComplete},
		{"SignalDecodeComplete", SignalDecodeComplete},
		{"SignalFieldsCreated", SignalFieldsCreated},
		{"SignalFieldsEncoded", SignalFieldsEncoded},
		{"SignalFieldsDecoded", SignalFieldsDecoded},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeysDefined(t *testing.T) {
	keys := []struct {
		name string
		key  any
	}{
		{"KeyEncoding", KeyEncoding},
		{"KeyTypeName", KeyTypeName},
		{"KeySize", KeySize},
		{"KeyFieldCount", KeyFieldCount},
		{"KeyDuration", KeyDuration},
		{"KeyError", KeyError},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
