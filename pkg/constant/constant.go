package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "courtside"
)

const (
	RequestParamID = "id"
)

const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusRejected  = "rejected"
)

const (
	DefaultDraftStartTime   = "08:00"
	DefaultDraftEndTime     = "10:00"
	DefaultDraftCourtNumber = 1

	MinBookingMinutes = 60
)

const (
	BackendPathCourt    = "/courts/%d"
	BackendPathBookings = "/bookings"
)

const (
	EventBookingSubmitted = "booking.submitted"
)

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	HoursFormat    = "15:04"

	SecondsPerHour     = 3600
	MinutesPerHour     = 60
	MicrosecondsPerSec = 1000000
)

const (
	UserRoleAdmin = "9"
	UserRoleUser  = "1"
)

const (
	JwtFieldUser  = "user_id"
	JwtFieldEmail = "email"
	JwtFieldLevel = "level"
	JwtFieldToken = "token"
)

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrInvalidContextUserType = errors.New("invalid user type in context")
)
