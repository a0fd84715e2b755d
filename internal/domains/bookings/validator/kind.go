package validator

import "fmt"

// ErrorKind names the booking rule a draft broke.
type ErrorKind int

const (
	MalformedTime ErrorKind = iota + 1
	PastDate
	PastTime
	EndBeforeStart
	TooShort
	OutsideOperatingHours
)

var kindNames = map[ErrorKind]string{
	MalformedTime:         "malformed_time",
	PastDate:              "past_date",
	PastTime:              "past_time",
	EndBeforeStart:        "end_before_start",
	TooShort:              "too_short",
	OutsideOperatingHours: "outside_operating_hours",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("error_kind(%d)", int(k))
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Violation is the single rule failure reported for a draft.
type Violation struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (v *Violation) Error() string {
	return v.Message
}
