package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var ict = time.FixedZone("ICT", 7*60*60)

func mustWindow(t *testing.T) Window {
	t.Helper()

	w, err := NewWindow("06:00", "22:00", 100000)
	require.NoError(t, err)

	return w
}

func TestValidate_Scenarios(t *testing.T) {
	window := mustWindow(t)
	now := time.Date(2026, time.October, 16, 7, 0, 0, 0, ict)
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	tests := []struct {
		name     string
		draft    Draft
		now      time.Time
		kind     ErrorKind
		duration int
		price    int64
	}{
		{
			name:     "valid two hour booking today",
			draft:    Draft{Date: today, CourtNumber: 1, StartTime: "08:00", EndTime: "10:00"},
			now:      now,
			duration: 2,
			price:    200000,
		},
		{
			name:  "half hour is too short",
			draft: Draft{Date: today, StartTime: "08:00", EndTime: "08:30"},
			now:   now,
			kind:  TooShort,
		},
		{
			name:  "end before start",
			draft: Draft{Date: today, StartTime: "10:00", EndTime: "09:00"},
			now:   now,
			kind:  EndBeforeStart,
		},
		{
			name:  "too short wins over operating hours",
			draft: Draft{Date: today, StartTime: "23:00", EndTime: "23:30"},
			now:   now,
			kind:  TooShort,
		},
		{
			name:  "24:00 is malformed",
			draft: Draft{Date: today, StartTime: "23:00", EndTime: "24:00"},
			now:   now,
			kind:  MalformedTime,
		},
		{
			name:  "time format checked before date",
			draft: Draft{Date: yesterday, StartTime: "xx", EndTime: "10:00"},
			now:   now,
			kind:  MalformedTime,
		},
		{
			name:  "yesterday is past regardless of time order",
			draft: Draft{Date: yesterday, StartTime: "10:00", EndTime: "09:00"},
			now:   now,
			kind:  PastDate,
		},
		{
			name:  "start already elapsed today",
			draft: Draft{Date: today, StartTime: "14:00", EndTime: "16:00"},
			now:   time.Date(2026, time.October, 16, 14, 5, 0, 0, ict),
			kind:  PastTime,
		},
		{
			name:     "earlier time on a future date is fine",
			draft:    Draft{Date: DateOf(now.AddDate(0, 0, 1)), StartTime: "06:00", EndTime: "07:00"},
			now:      time.Date(2026, time.October, 16, 21, 0, 0, 0, ict),
			duration: 1,
			price:    100000,
		},
		{
			name:  "start before opening",
			draft: Draft{Date: today, StartTime: "05:00", EndTime: "07:00"},
			now:   time.Date(2026, time.October, 16, 4, 0, 0, 0, ict),
			kind:  OutsideOperatingHours,
		},
		{
			name:  "end at closing hour",
			draft: Draft{Date: today, StartTime: "20:00", EndTime: "22:00"},
			now:   now,
			kind:  OutsideOperatingHours,
		},
		{
			name:     "single digit hour accepted",
			draft:    Draft{Date: today, StartTime: "8:00", EndTime: "9:00"},
			now:      now,
			duration: 1,
			price:    100000,
		},
		{
			name:     "minutes truncated when pricing",
			draft:    Draft{Date: today, StartTime: "08:30", EndTime: "09:45"},
			now:      now,
			duration: 1,
			price:    100000,
		},
		{
			name:     "minutes inside the last open hour accepted",
			draft:    Draft{Date: today, StartTime: "19:30", EndTime: "21:59"},
			now:      now,
			duration: 2,
			price:    200000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Validate(tt.draft, window, tt.now)

			if tt.kind != 0 {
				require.False(t, out.Valid())
				assert.Equal(t, tt.kind, out.Violation.Kind)
				assert.NotEmpty(t, out.Violation.Message)
				assert.Error(t, out.Err())
				assert.Equal(t, Quote{}, out.Quote)

				return
			}

			require.True(t, out.Valid(), "unexpected violation: %v", out.Violation)
			assert.NoError(t, out.Err())
			assert.Equal(t, tt.duration, out.Quote.DurationHours)
			assert.Equal(t, tt.price, out.Quote.TotalPrice)
		})
	}
}

func TestValidate_Boundaries(t *testing.T) {
	window := mustWindow(t)
	now := time.Date(2026, time.October, 16, 9, 15, 42, 0, ict)
	today := DateOf(now)

	t.Run("exactly sixty minutes passes", func(t *testing.T) {
		out := Validate(Draft{Date: today, StartTime: "10:10", EndTime: "11:10"}, window, now)
		assert.True(t, out.Valid())
		assert.Equal(t, 1, out.Quote.DurationHours)
	})

	t.Run("fifty nine minutes fails", func(t *testing.T) {
		out := Validate(Draft{Date: today, StartTime: "10:10", EndTime: "11:09"}, window, now)
		require.False(t, out.Valid())
		assert.Equal(t, TooShort, out.Violation.Kind)
	})

	t.Run("start equal to now minute passes", func(t *testing.T) {
		out := Validate(Draft{Date: today, StartTime: "09:15", EndTime: "10:15"}, window, now)
		assert.True(t, out.Valid())
	})

	t.Run("one minute before now fails", func(t *testing.T) {
		out := Validate(Draft{Date: today, StartTime: "09:14", EndTime: "10:15"}, window, now)
		require.False(t, out.Valid())
		assert.Equal(t, PastTime, out.Violation.Kind)
	})

	t.Run("start at closing hour fails", func(t *testing.T) {
		late := time.Date(2026, time.October, 16, 6, 0, 0, 0, ict)
		out := Validate(Draft{Date: today, StartTime: "22:00", EndTime: "23:00"}, window, late)
		require.False(t, out.Valid())
		assert.Equal(t, OutsideOperatingHours, out.Violation.Kind)
	})

	t.Run("equal start and end is not strictly later", func(t *testing.T) {
		out := Validate(Draft{Date: today, StartTime: "12:00", EndTime: "12:00"}, window, now)
		require.False(t, out.Valid())
		assert.Equal(t, EndBeforeStart, out.Violation.Kind)
	})
}

func TestValidate_Invariants(t *testing.T) {
	window := mustWindow(t)
	now := time.Date(2026, time.October, 16, 0, 0, 0, 0, ict)
	today := DateOf(now)

	times := []string{"00:00", "05:59", "06:00", "06:30", "07:00", "8:15", "12:00", "21:00", "21:59", "22:00", "23:59", "24:00", "ab:cd", ""}

	for _, start := range times {
		for _, end := range times {
			draft := Draft{Date: today, StartTime: start, EndTime: end}

			first := Validate(draft, window, now)
			second := Validate(draft, window, now)
			assert.Equal(t, first, second, "%s-%s not deterministic", start, end)

			if first.Valid() {
				assert.GreaterOrEqual(t, first.Quote.DurationHours, 1)
				assert.Equal(t, int64(first.Quote.DurationHours)*window.PricePerHour, first.Quote.TotalPrice)

				continue
			}

			assert.NotZero(t, first.Violation.Kind)
		}
	}
}

func TestValidate_CheckOrder(t *testing.T) {
	window := mustWindow(t)
	now := time.Date(2026, time.October, 16, 15, 0, 0, 0, ict)
	today := DateOf(now)
	yesterday := DateOf(now.AddDate(0, 0, -1))

	// each draft breaks its own rule and every later one
	tests := []struct {
		draft Draft
		kind  ErrorKind
	}{
		{Draft{Date: yesterday, StartTime: "25:00", EndTime: "01:00"}, MalformedTime},
		{Draft{Date: yesterday, StartTime: "14:00", EndTime: "05:00"}, PastDate},
		{Draft{Date: today, StartTime: "14:00", EndTime: "05:00"}, PastTime},
		{Draft{Date: today, StartTime: "23:00", EndTime: "05:00"}, EndBeforeStart},
		{Draft{Date: today, StartTime: "23:00", EndTime: "23:30"}, TooShort},
		{Draft{Date: today, StartTime: "21:00", EndTime: "23:00"}, OutsideOperatingHours},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			out := Validate(tt.draft, window, now)
			require.False(t, out.Valid())
			assert.Equal(t, tt.kind, out.Violation.Kind)
		})
	}
}

func TestValidate_FreeCourt(t *testing.T) {
	window, err := NewWindow("06:00", "22:00", 0)
	require.NoError(t, err)

	now := time.Date(2026, time.October, 16, 7, 0, 0, 0, ict)
	out := Validate(Draft{Date: DateOf(now), StartTime: "08:00", EndTime: "11:00"}, window, now)

	require.True(t, out.Valid())
	assert.Equal(t, 3, out.Quote.DurationHours)
	assert.Equal(t, int64(0), out.Quote.TotalPrice)
}

func TestNewWindow(t *testing.T) {
	w, err := NewWindow("6:00", "22:30", 50000)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 6}, w.Open)
	assert.Equal(t, TimeOfDay{Hour: 22, Minute: 30}, w.Close)

	_, err = NewWindow("06:00", "22:00", -1)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewWindow("6am", "22:00", 1)
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestNewDraft(t *testing.T) {
	today := Date{Year: 2026, Month: time.October, Day: 16}
	d := NewDraft(today)

	assert.Equal(t, today, d.Date)
	assert.Equal(t, 1, d.CourtNumber)
	assert.Equal(t, "08:00", d.StartTime)
	assert.Equal(t, "10:00", d.EndTime)
	assert.Empty(t, d.Notes)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, language.Vietnamese, MatchLanguage("vi-VN,vi;q=0.9,en;q=0.8"))
	assert.Equal(t, language.English, MatchLanguage("fr-FR"))
	assert.Equal(t, language.English, MatchLanguage(""))

	assert.Equal(t, "minimum booking duration is 1 hour", Message(TooShort, language.English))
	assert.Equal(t, "giờ bắt đầu đã qua", Message(PastTime, language.Vietnamese))
	assert.Equal(t, "error_kind(42)", Message(ErrorKind(42), language.English))

	text, err := OutsideOperatingHours.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "outside_operating_hours", string(text))
}
