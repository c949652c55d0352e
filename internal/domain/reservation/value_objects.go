package reservation

import (
	"strings"
	"time"

	"coach-booking-api/internal/pkg/errs"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidDayOfWeek = errs.Class("invalid day of week", errs.ErrValidation)
	ErrInvalidDate      = errs.Class("date must be formatted as YYYY-MM-DD", errs.ErrValidation)
	ErrInvalidTime      = errs.Class("time must be formatted as HH:MM", errs.ErrValidation)
	ErrInvalidTimeRange = errs.Class("start time must be before end time", errs.ErrValidation)
	ErrDayDateMismatch  = errs.Class("day of week does not match date", errs.ErrValidation)
)

// Schedule is copied from the activity when the reservation is made and is
// not updated if the activity's timetable changes later.
type Schedule struct {
	dayOfWeek time.Weekday
	date      time.Time
	startTime string
	endTime   string
}

func NewSchedule(dayOfWeek, date, startTime, endTime string) (Schedule, error) {
	day, err := parseWeekday(dayOfWeek)
	if err != nil {
		return Schedule{}, err
	}

	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Schedule{}, ErrInvalidDate
	}
	if d.Weekday() != day {
		return Schedule{}, ErrDayDateMismatch
	}

	start, err := time.Parse(TimeLayout, strings.TrimSpace(startTime))
	if err != nil {
		return Schedule{}, ErrInvalidTime
	}
	end, err := time.Parse(TimeLayout, strings.TrimSpace(endTime))
	if err != nil {
		return Schedule{}, ErrInvalidTime
	}
	if !start.Before(end) {
		return Schedule{}, ErrInvalidTimeRange
	}

	return Schedule{
		dayOfWeek: day,
		date:      d,
		startTime: start.Format(TimeLayout),
		endTime:   end.Format(TimeLayout),
	}, nil
}

func (s Schedule) DayOfWeek() string { return strings.ToLower(s.dayOfWeek.String()) }
func (s Schedule) Date() time.Time   { return s.date }
func (s Schedule) DateString() string {
	return s.date.Format(DateLayout)
}
func (s Schedule) StartTime() string { return s.startTime }
func (s Schedule) EndTime() string   { return s.endTime }

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, ErrInvalidDayOfWeek
}
