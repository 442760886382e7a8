package trace

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
)

// ErrSpanContextCorrupted is returned when DD_TRACE_ID or DD_SPAN_ID
// cannot be parsed.
var ErrSpanContextCorrupted = errors.New("span context corrupted")

// SpanContext is a parent span handed to otable by the process that
// started it. dd-trace-go keeps its own implementation private, so this
// one provides just enough of ddtrace.SpanContextW3C to parent spans.
type SpanContext struct {
	traceID [16]byte // big endian, upper half first
	spanID  uint64
}

var _ ddtrace.SpanContextW3C = (*SpanContext)(nil)

// ParseSpanContext parses hex trace and span IDs. The trace ID may be
// 64 or 128 bits wide.
func ParseSpanContext(traceID, spanID string) (*SpanContext, error) {
	c := &SpanContext{}
	if len(traceID) > 32 {
		traceID = traceID[len(traceID)-32:]
	}
	traceID = strings.TrimLeft(traceID, "0")
	upper := ""
	if len(traceID) > 16 {
		upper, traceID = traceID[:len(traceID)-16], traceID[len(traceID)-16:]
	}
	if upper != "" {
		u, err := strconv.ParseUint(upper, 16, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrSpanContextCorrupted, "trace id: %s", err)
		}
		binary.BigEndian.PutUint64(c.traceID[:8], u)
	}
	if traceID == "" {
		traceID = "0"
	}
	lower, err := strconv.ParseUint(traceID, 16, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrSpanContextCorrupted, "trace id: %s", err)
	}
	binary.BigEndian.PutUint64(c.traceID[8:], lower)

	c.spanID, err = strconv.ParseUint(spanID, 16, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrSpanContextCorrupted, "span id: %s", err)
	}
	return c, nil
}

func (c *SpanContext) SpanID() uint64 {
	return c.spanID
}

func (c *SpanContext) TraceID() uint64 {
	return binary.BigEndian.Uint64(c.traceID[8:])
}

func (c *SpanContext) TraceID128() string {
	return hex.EncodeToString(c.traceID[:])
}

func (c *SpanContext) TraceID128Bytes() [16]byte {
	return c.traceID
}

func (c *SpanContext) ForeachBaggageItem(handler func(k, v string) bool) {}
