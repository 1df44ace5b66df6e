package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component.
// It marshals to and from "YYYY-MM-DD".
type Date struct {
	time.Time
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Duration is a jog duration stored as whole seconds.
// It marshals as "HH:MM:SS" and accepts "HH:MM" or "HH:MM:SS" on input.
type Duration int64

// ParseJogDuration parses "HH:MM" or "HH:MM:SS" into a Duration.
func ParseJogDuration(s string) (Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid duration %q, use HH:MM or HH:MM:SS", s)
	}
	var total int64
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q, use HH:MM or HH:MM:SS", s)
		}
		total = total*60 + int64(n)
	}
	if len(parts) == 2 {
		// "HH:MM" carries no seconds component
		total *= 60
	}
	if total <= 0 {
		return 0, fmt.Errorf("duration must be positive")
	}
	return Duration(total), nil
}

// Seconds returns the duration as whole seconds.
func (d Duration) Seconds() int64 { return int64(d) }

// Hours returns the duration in hours, used for speed calculations.
func (d Duration) Hours() float64 { return float64(d) / 3600.0 }

func (d Duration) String() string {
	secs := int64(d)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("duration must be a JSON string: %w", err)
	}
	parsed, err := ParseJogDuration(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// JoggingRecord represents a single jogging session
type JoggingRecord struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Date      Date      `json:"date"`
	Duration  Duration  `json:"time"`
	Distance  float64   `json:"distance"` // kilometers
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJoggingRequest is used for creating a new jogging record
type CreateJoggingRequest struct {
	Date     Date     `json:"date" binding:"required"`
	Duration Duration `json:"time" binding:"required"`
	Distance float64  `json:"distance" binding:"required,gt=0"`
}

// UpdateJoggingRequest allows partial updates of a jogging record
type UpdateJoggingRequest struct {
	Date     *Date     `json:"date,omitempty"`
	Duration *Duration `json:"time,omitempty"`
	Distance *float64  `json:"distance,omitempty" binding:"omitempty,gt=0"`
}

// JoggingFilters contains optional date-range filter parameters.
// The range is applied only when both bounds are present.
type JoggingFilters struct {
	From *Date
	To   *Date
}

// WeeklyReportRow is one aggregated row of the weekly report
type WeeklyReportRow struct {
	Year        int     `json:"year"`
	Week        int     `json:"week"`
	AvgDistance float64 `json:"avg_distance"` // kilometers
	AvgSpeed    float64 `json:"avg_speed"`    // kilometers per hour
}
