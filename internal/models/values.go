package models

import (
	"bytes"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

var nullLiteral = []byte("null")

// ID is a CRM record identifier. The CRM is loose about how it encodes ids
// (number, numeric string, null, or an object carrying "value"), so decoding
// never fails: anything that is not a positive integer becomes 0.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	*id = 0
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, nullLiteral) {
		return nil
	}

	var raw any
	if data[0] == '{' {
		var obj struct {
			Value any `json:"value"`
			ID    any `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil
		}
		raw = obj.Value
		if raw == nil {
			raw = obj.ID
		}
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	v, err := cast.ToInt64E(raw)
	if err != nil || v < 0 {
		return nil
	}
	*id = ID(v)
	return nil
}

func (id ID) Valid() bool {
	return id > 0
}

// OwnerID returns the canonical owner identifier for a user id.
func (id ID) OwnerID() OwnerID {
	if !id.Valid() {
		return ""
	}
	return OwnerID(cast.ToString(int64(id)))
}

// Flag decodes booleans sent as true/false, 1/0 or "1"/"0".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*f = false
		return nil
	}
	*f = Flag(cast.ToBool(raw))
	return nil
}

const (
	crmTimeLayout  = "2006-01-02 15:04:05"
	crmDateLayout  = "2006-01-02"
	TimestampLabel = "2006-01-02 15:04"
)

// Timestamp is a CRM instant. The CRM writes "2006-01-02 15:04:05" in UTC;
// RFC3339 is accepted too. Bare dates such as due_date carry no zone: they
// are kept as UTC midnight and flagged so they are never shifted on display.
// A zero value means the field was absent.
type Timestamp struct {
	time.Time
	dateOnly bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}
	if t, err := time.ParseInLocation(crmTimeLayout, s, time.UTC); err == nil {
		return Timestamp{Time: t}, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{Time: t}, true
	}
	if t, err := time.ParseInLocation(crmDateLayout, s, time.UTC); err == nil {
		return Timestamp{Time: t, dateOnly: true}, true
	}
	return Timestamp{}, false
}

// DateOnly reports a calendar date without a time of day.
func (t Timestamp) DateOnly() bool {
	return t.dateOnly
}

// Label formats t for people in loc. Dates are printed as written.
func (t Timestamp) Label(loc *time.Location) string {
	if !t.Valid() {
		return ""
	}
	if t.dateOnly {
		return t.Time.Format(crmDateLayout)
	}
	return t.In(loc).Format(TimestampLabel)
}

func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	if parsed, ok := ParseTimestamp(raw); ok {
		*t = parsed
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nullLiteral, nil
	}
	if t.dateOnly {
		return json.Marshal(t.Time.Format(crmDateLayout))
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}
