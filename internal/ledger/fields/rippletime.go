package fields

import (
	"fmt"
	"time"
)

// rippleEpochOffset is the Unix timestamp of the ledger epoch,
// 2000-01-01T00:00:00Z.
const rippleEpochOffset int64 = 946684800

// RippleTime converts ledger timestamps (seconds since the ripple epoch)
// to calendar time and back.
var RippleTime Codec = rippleTimeCodec{}

type rippleTimeCodec struct{}

func (rippleTimeCodec) Decode(v any) (any, error) {
	sec, ok := v.(uint32)
	if !ok {
		return nil, fmt.Errorf("ripple time expects uint32, got %T", v)
	}
	return time.Unix(rippleEpochOffset+int64(sec), 0).UTC(), nil
}

func (rippleTimeCodec) Encode(v any) (any, error) {
	ts, ok := v.(time.Time)
	if !ok {
		return nil, fmt.Errorf("ripple time expects time.Time, got %T", v)
	}
	unix := ts.Unix()
	if unix < rippleEpochOffset {
		return nil, fmt.Errorf("time %v predates the ledger epoch", ts)
	}
	return uint32(unix - rippleEpochOffset), nil
}
