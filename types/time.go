package types

import (
	"fmt"
	"strconv"
	"time"
)

// Time represents a time.Time decoded from a millisecond Unix timestamp. The
// exchange always reports milliseconds, so the width of the encoded integer is
// never used to guess its unit.
type Time time.Time

// UnmarshalJSON deserializes a millisecond timestamp which may be quoted.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	switch s {
	case "null", `""`:
		*t = Time(time.Time{})
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %s into Time: %w", string(data), err)
	}
	if ms == 0 {
		*t = Time(time.Time{})
		return nil
	}
	*t = Time(time.UnixMilli(ms))
	return nil
}

// Time represents a time instance.
func (t Time) Time() time.Time { return time.Time(t) }

// UnixMilli returns the timestamp as it was received from the exchange. A
// zero Time returns 0.
func (t Time) UnixMilli() int64 {
	if t.Time().IsZero() {
		return 0
	}
	return t.Time().UnixMilli()
}

// String returns a string representation of the time.
func (t Time) String() string {
	return t.Time().String()
}

// MarshalJSON serializes the time back into a millisecond timestamp.
func (t Time) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.UnixMilli(), 10), nil
}
