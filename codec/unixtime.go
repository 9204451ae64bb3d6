package codec

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/blockkit"
)

// Codec converts between a wire representation A and a domain value B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// UnixTime returns a Codec between timestamp strings and Unix seconds, the
// representation of an attachment's ts. Decode accepts RFC3339 (with or
// without fractional seconds) and plain integer seconds; Encode emits
// canonical RFC3339 in UTC.
func UnixTime() Codec[string, int64] { return unixTimeCodec{} }

type unixTimeCodec struct{}

func (unixTimeCodec) Decode(ctx context.Context, a string) (int64, error) {
	a = strings.TrimSpace(a)
	if n, err := strconv.ParseInt(a, 10, 64); err == nil {
		if n < 0 {
			return 0, blockkit.Issues{{Path: "/", Code: blockkit.CodeInvalidFormat, Message: "negative timestamp"}}
		}
		return n, nil
	}
	t, err := parseRFC3339(a)
	if err != nil {
		return 0, blockkit.Issues{{Path: "/", Code: blockkit.CodeInvalidFormat, Message: "invalid RFC3339 time", Cause: err}}
	}
	return t.Unix(), nil
}

func (unixTimeCodec) Encode(ctx context.Context, b int64) (string, error) {
	if b < 0 {
		return "", blockkit.Issues{{Path: "/", Code: blockkit.CodeInvalidFormat, Message: "negative timestamp"}}
	}
	return formatRFC3339Canonical(time.Unix(b, 0)), nil
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC; whole seconds only since ts has no sub-second part
	return t.UTC().Format(time.RFC3339)
}
