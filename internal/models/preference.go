package models

import (
	"strconv"
	"time"
)

// Preference is one stored key/value pair. Exactly one of IntValue and
// StringValue is set.
type Preference struct {
	Namespace   string    `json:"namespace"`
	Key         string    `json:"key"`
	IntValue    *int64    `json:"int_value,omitempty"`
	StringValue *string   `json:"string_value,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Display renders the value for listings.
func (p *Preference) Display() string {
	switch {
	case p.StringValue != nil:
		return strconv.Quote(*p.StringValue)
	case p.IntValue != nil:
		return strconv.FormatInt(*p.IntValue, 10)
	default:
		return ""
	}
}
