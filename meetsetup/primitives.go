package meetsetup

import (
	"fmt"
	"strconv"
	"time"
)

const (
	dateExpected     = "8 digits formatted as YYYYMMDD"
	timeExpected     = "4 digits formatted as 24 hour HHMM, from 0000 to 2359"
	durationExpected = "8 characters formatted as MM:ss:hh with leading zeroes"
	qualExpected     = "6 characters formatted as MMsshh with leading zeroes"
)

var boolTokens = []string{"TRUE", "FALSE"}

// Year is a calendar year as written in the vendor files. Range checks belong
// to the callers that give the year a meaning.
type Year int16

// TimeOfDay is a wall clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func ParseBool(s string) (bool, error) {
	switch s {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	default:
		return false, &UnknownVariantError{Input: s, Allowed: boolTokens}
	}
}

// ParseDate reads YYYYMMDD and rejects dates that do not exist in the
// Gregorian calendar. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if len(s) != 8 || !isDigits(s) {
		return time.Time{}, invalid(ErrInvalidDate, s, dateExpected, nil)
	}
	year, _ := strconv.Atoi(s[0:4])
	month, _ := strconv.Atoi(s[4:6])
	day, _ := strconv.Atoi(s[6:8])
	if month < 1 || month > 12 || day < 1 || day > daysIn(time.Month(month), year) {
		return time.Time{}, invalid(ErrInvalidDate, s, dateExpected, nil)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func ParseTime(s string) (TimeOfDay, error) {
	if len(s) != 4 || !isDigits(s) {
		return TimeOfDay{}, invalid(ErrInvalidTime, s, timeExpected, nil)
	}
	hour, _ := strconv.Atoi(s[0:2])
	minute, _ := strconv.Atoi(s[2:4])
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, invalid(ErrInvalidTime, s, timeExpected, nil)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseDuration reads the event qualification time layout "MM:ss:hh".
//
// The vendor only looks at single digits for seconds and hundredths: minutes
// come from offsets 0-1, seconds from offset 4 and hundredths from offset 7,
// and every hundredth digit counts as 100ms. Files in the wild depend on this
// arithmetic, so it is reproduced as is.
func ParseDuration(s string) (time.Duration, error) {
	return fixedWidthDuration(s, 8, [3]int{0, 4, 7}, durationExpected)
}

// ParseQualificationDuration is the 6 character "MMsshh" variant used inside
// QualificationSet, read at offsets 0-1, 3 and 5.
func ParseQualificationDuration(s string) (time.Duration, error) {
	return fixedWidthDuration(s, 6, [3]int{0, 3, 5}, qualExpected)
}

func fixedWidthDuration(s string, width int, offsets [3]int, expected string) (time.Duration, error) {
	if len(s) != width {
		return 0, invalid(ErrInvalidValue, s, expected, nil)
	}
	minutes, err := strconv.ParseUint(s[offsets[0]:offsets[0]+2], 10, 8)
	if err != nil {
		return 0, invalid(ErrInvalidValue, s, expected, err)
	}
	seconds, err := strconv.ParseUint(s[offsets[1]:offsets[1]+1], 10, 8)
	if err != nil {
		return 0, invalid(ErrInvalidValue, s, expected, err)
	}
	hundredths, err := strconv.ParseUint(s[offsets[2]:offsets[2]+1], 10, 8)
	if err != nil {
		return 0, invalid(ErrInvalidValue, s, expected, err)
	}
	ms := minutes*60*1000 + seconds*1000 + hundredths*100
	return time.Duration(ms) * time.Millisecond, nil
}

// ParseYear reads an unsigned run of digits without leading zeros.
func ParseYear(s string) (Year, error) {
	if !isCanonicalNumber(s) {
		return 0, invalid(ErrInvalidValue, s, "a year", nil)
	}
	y, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, invalid(ErrInvalidValue, s, "a year", err)
	}
	return Year(y), nil
}

func parseUint[T ~uint8 | ~uint16 | ~uint32](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			return 0, invalid(ErrInvalidValue, s, fmt.Sprintf("an unsigned %d bit integer", bits), err)
		}
		return T(v), nil
	}
}

func parseString(s string) (string, error) {
	return s, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isCanonicalNumber rejects signs, spaces and leading zeros.
func isCanonicalNumber(s string) bool {
	return s != "" && isDigits(s) && (s[0] != '0' || len(s) == 1)
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
