package types

import (
	"fmt"
	"strings"
	"time"
)

// localLayout is the dateTime form without a time zone. CWMP uses it for
// times relative to the CPE clock.
const localLayout = "2006-01-02T15:04:05"

// localFormat renders a zone-less dateTime, keeping fractional seconds.
const localFormat = localLayout + ".999999999"

// DateTime is a CWMP dateTime. The zero value is the unknown time and
// renders as "0001-01-01T00:00:00Z". A value parsed without a time zone
// keeps its wall clock in UTC and renders without a zone again.
type DateTime struct {
	time.Time

	zoneless bool
}

// UnknownTime is the dateTime a CPE reports when the time is not known.
var UnknownTime = DateTime{}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// IsUnknown returns true for the unknown time.
func (d DateTime) IsUnknown() bool {
	return d.Time.IsZero()
}

// HasZone reports whether the time carries a time zone. Only values parsed
// from the zone-less form lack one.
func (d DateTime) HasZone() bool {
	return !d.zoneless
}

func (d DateTime) String() string {
	if d.zoneless {
		return d.Time.Format(localFormat)
	}
	return d.Time.Format(time.RFC3339Nano)
}

// MarshalText renders the time in RFC 3339 form, or in the zone-less form
// it was parsed from.
func (d DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts RFC 3339 and the zone-less CWMP form. An empty
// string is the unknown time.
func (d *DateTime) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		*d = UnknownTime
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = DateTime{Time: t}
		return nil
	}
	t, err := time.Parse(localLayout, s)
	if err != nil {
		return fmt.Errorf("invalid dateTime %q", s)
	}
	*d = DateTime{Time: t, zoneless: true}
	return nil
}
