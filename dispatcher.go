package slug

import (
	"context"
	"time"
)

// Dispatcher encodes and decodes with one EncodingKind chosen at construction.
//
// A Dispatcher is an immutable value. It holds no resources and is safe to
// share across goroutines without synchronization. Encode and Decode are pure
// functions of the stored kind and their input.
type Dispatcher struct {
	kind EncodingKind
}

// New returns a Dispatcher for kind. It always succeeds.
func New(kind EncodingKind) Dispatcher {
	emitDispatcherCreated(context.Background(), kind)
	return Dispatcher{kind: kind}
}

// Encoding returns the kind selected at construction.
func (d Dispatcher) Encoding() EncodingKind {
	return d.kind
}

// Encode encodes data with the dispatcher's kind. It is equivalent to calling
// the matching To* function.
//
// Any transform fault is reported as ErrFailed; the original error is
// attached to the SignalEncodeComplete event. An out-of-range kind returns
// ErrEncoding.
func (d Dispatcher) Encode(ctx context.Context, data []byte) (string, error) {
	start := time.Now()

	tr, ok := transformFor(d.kind)
	if !ok {
		emitEncodeComplete(ctx, d.kind, len(data), time.Since(start), ErrEncoding)
		return "", ErrEncoding
	}

	text, err := tr.encode(data)
	emitEncodeComplete(ctx, d.kind, len(data), time.Since(start), err)
	if err != nil {
		return "", ErrFailed
	}
	return text, nil
}

// Decode decodes text with the dispatcher's kind. It is equivalent to calling
// the matching From* function.
//
// Invalid input is reported as ErrDecoding; the original error is attached to
// the SignalDecodeComplete event. No partial output is returned on error.
func (d Dispatcher) Decode(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()

	tr, ok := transformFor(d.kind)
	if !ok {
		emitDecodeComplete(ctx, d.kind, len(text), time.Since(start), ErrDecoding)
		return nil, ErrDecoding
	}

	data, err := tr.decode(text)
	emitDecodeComplete(ctx, d.kind, len(text), time.Since(start), err)
	if err != nil {
		return nil, ErrDecoding
	}
	return data, nil
}
