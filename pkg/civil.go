package pkg

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/jackc/pgx/v5/pgtype"
)

const hourMinuteLayout = "15:04"

// ParseHourMinute parses a wall clock time in "HH:MM" form.
func ParseHourMinute(s string) (civil.Time, error) {
	t, err := time.Parse(hourMinuteLayout, s)
	if err != nil {
		return civil.Time{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return civil.TimeOf(t), nil
}

// FormatHourMinute formats t as "HH:MM", dropping seconds.
func FormatHourMinute(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func DateToPg(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

func DateFromPg(d pgtype.Date) civil.Date {
	return civil.DateOf(d.Time)
}

// TimeToPg converts an optional wall clock time to a postgres TIME value.
func TimeToPg(t *civil.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	seconds := int64(t.Hour)*3600 + int64(t.Minute)*60 + int64(t.Second)
	return pgtype.Time{
		Microseconds: seconds*1_000_000 + int64(t.Nanosecond)/1000,
		Valid:        true,
	}
}

// TimeFromPg is the inverse of TimeToPg, NULL gives nil.
func TimeFromPg(t pgtype.Time) *civil.Time {
	if !t.Valid {
		return nil
	}
	micros := t.Microseconds
	return &civil.Time{
		Hour:       int(micros / 3_600_000_000),
		Minute:     int(micros / 60_000_000 % 60),
		Second:     int(micros / 1_000_000 % 60),
		Nanosecond: int(micros%1_000_000) * 1000,
	}
}

// WallClockToPg converts the wall clock reading of t, in its own location, to a
// postgres TIMESTAMP (without time zone) value.
func WallClockToPg(t time.Time) pgtype.Timestamp {
	return pgtype.Timestamp{Time: civil.DateTimeOf(t).In(time.UTC), Valid: true}
}
