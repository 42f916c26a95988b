package slug

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for slug events.
var (
	SignalDispatcherCreated = capitan.NewSignal("slug.dispatcher.created", "Dispatcher instantiated")
	SignalEncodeComplete    = capitan.NewSignal("slug.encode.complete", "Encode operation finished")
	SignalDecodeComplete    = capitan.NewSignal("slug.decode.complete", "Decode operation finished")
	SignalFieldsCreated     = capitan.NewSignal("slug.fields.created", "Field codec instantiated")
	SignalFieldsEncoded     = capitan.NewSignal("slug.fields.encoded", "Field encode operation finished")
	SignalFieldsDecoded     = capitan.NewSignal("slug.fields.decoded", "Field decode operation finished")
)

// Keys for typed event data.
var (
	KeyEncoding   = capitan.NewStringKey("encoding")
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeySize       = capitan.NewIntKey("size")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitDispatcherCreated emits an event when a dispatcher is created.
func emitDispatcherCreated(ctx context.Context, kind EncodingKind) {
	capitan.Emit(ctx, SignalDispatcherCreated,
		KeyEncoding.Field(kind.String()),
	)
}

// emitEncodeComplete emits an event when encode finishes.
// size is the input length in bytes; cause is the native transform error.
func emitEncodeComplete(ctx context.Context, kind EncodingKind, size int, duration time.Duration, cause error) {
	fields := []capitan.Field{
		KeyEncoding.Field(kind.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if cause != nil {
		fields = append(fields, KeyError.Field(cause))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeComplete emits an event when decode finishes.
// size is the input text length; cause is the native transform error.
func emitDecodeComplete(ctx context.Context, kind EncodingKind, size int, duration time.Duration, cause error) {
	fields := []capitan.Field{
		KeyEncoding.Field(kind.String()),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if cause != nil {
		fields = append(fields, KeyError.Field(cause))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitFieldsCreated emits an event when a field codec is built.
func emitFieldsCreated(ctx context.Context, typeName string, fieldCount int) {
	capitan.Emit(ctx, SignalFieldsCreated,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
	)
}

// emitFieldsEncoded emits an event when a field codec finishes encoding.
func emitFieldsEncoded(ctx context.Context, typeName string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFieldsEncoded, fields...)
	} else {
		capitan.Emit(ctx, SignalFieldsEncoded, fields...)
	}
}

// emitFieldsDecoded emits an event when a field codec finishes decoding.
func emitFieldsDecoded(ctx context.Context, typeName string, fieldCount int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalFieldsDecoded, fields...)
	} else {
		capitan.Emit(ctx, SignalFieldsDecoded, fields...)
	}
}
