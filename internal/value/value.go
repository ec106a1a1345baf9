// Package value implements the iCalendar value types: structural
// validation of raw value text against a type tag, and a typed parse used
// to render values for display.
package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Type identifies the semantic kind a property value must satisfy.
type Type int

const (
	Binary Type = iota
	Boolean
	CalAddress
	Date
	DateTime
	Duration
	Float
	Integer
	PeriodOfTime
	RecurrenceRule
	Text
	Time
	URI
	UTCOffset
)

var typeNames = [...]string{
	Binary:         "Binary",
	Boolean:        "Boolean",
	CalAddress:     "CalAddress",
	Date:           "Date",
	DateTime:       "DateTime",
	Duration:       "Duration",
	Float:          "Float",
	Integer:        "Integer",
	PeriodOfTime:   "PeriodOfTime",
	RecurrenceRule: "RecurrenceRule",
	Text:           "Text",
	Time:           "Time",
	URI:            "Uri",
	UTCOffset:      "UtcOffset",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// A Value is the typed result of parsing a property value.
type Value interface {
	// Prettify renders the value for hover display.
	Prettify() string
}

// DateValue is a YYYYMMDD date. No calendar-validity check is applied.
type DateValue struct {
	Year  int
	Month int
	Day   int
}

// TimeValue is a HHMMSS time with an optional trailing Z.
type TimeValue struct {
	Hour   int
	Minute int
	Second int
	UTC    bool
}

// DateTimeValue is a date and a time joined by T.
type DateTimeValue struct {
	Date DateValue
	Time TimeValue
}

// BooleanValue is a TRUE or FALSE value.
type BooleanValue bool

// CalAddressValue is the address following the mailto: prefix.
type CalAddressValue string

// FloatValue is a 64-bit floating point value.
type FloatValue float64

// IntegerValue is a signed 64-bit integer value.
type IntegerValue int64

// RawValue carries the text of a type this server does not validate
// beyond its presence (Duration, PeriodOfTime, RecurrenceRule, Text, Uri,
// UtcOffset, Binary).
type RawValue struct {
	Type Type
	Text string
}

func (v DateValue) Prettify() string {
	return fmt.Sprintf("%d%s %s %d", v.Day, ordinal(v.Day), monthName(v.Month), v.Year)
}

func (v TimeValue) Prettify() string {
	return fmt.Sprintf("%02d:%02d:%02d", v.Hour, v.Minute, v.Second)
}

func (v DateTimeValue) Prettify() string {
	return v.Time.Prettify() + " " + v.Date.Prettify()
}

func (v BooleanValue) Prettify() string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func (v CalAddressValue) Prettify() string { return string(v) }

func (v FloatValue) Prettify() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (v IntegerValue) Prettify() string { return strconv.FormatInt(int64(v), 10) }

func (v RawValue) Prettify() string { return v.Text }

// ordinal returns the English ordinal suffix for a day of the month.
func ordinal(day int) string {
	switch day {
	case 1, 21, 31:
		return "st"
	case 2, 22:
		return "nd"
	case 3, 23:
		return "rd"
	}
	return "th"
}

func monthName(month int) string {
	if month >= 1 && month <= 12 {
		return time.Month(month).String()
	}
	return strconv.Itoa(month)
}

// Check reports whether text is well-formed for the given type. The
// returned error is a human-readable reason suitable for direct display.
func Check(t Type, text string) error {
	_, err := Parse(t, text)
	return err
}

// Parse validates text against the given type and returns its typed form.
func Parse(t Type, text string) (Value, error) {
	switch t {
	case Boolean:
		return parseBoolean(text)
	case CalAddress:
		return parseCalAddress(text)
	case Date:
		d, err := ParseDate(text)
		if err != nil {
			return nil, err
		}
		return d, nil
	case DateTime:
		dt, err := ParseDateTime(text)
		if err != nil {
			return nil, err
		}
		return dt, nil
	case Time:
		tm, err := ParseTime(text)
		if err != nil {
			return nil, err
		}
		return tm, nil
	case Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("not a valid float: %q", text)
		}
		return FloatValue(f), nil
	case Integer:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("not a valid integer: %q", text)
		}
		return IntegerValue(i), nil
	}
	// Remaining types are passed through without semantic validation.
	return RawValue{Type: t, Text: text}, nil
}

func parseBoolean(text string) (Value, error) {
	if strings.EqualFold(text, "true") {
		return BooleanValue(true), nil
	}
	if strings.EqualFold(text, "false") {
		return BooleanValue(false), nil
	}
	return nil, fmt.Errorf("a boolean must be TRUE or FALSE, got %q", text)
}

func parseCalAddress(text string) (Value, error) {
	const prefix = "mailto:"
	if !strings.HasPrefix(text, prefix) {
		return nil, fmt.Errorf("a cal-address must start with %s", prefix)
	}
	address := strings.TrimPrefix(text, prefix)
	if !strings.Contains(address, "@") {
		return nil, fmt.Errorf("cal-address %q does not contain an @", address)
	}
	return CalAddressValue(address), nil
}

// ParseDate parses a YYYYMMDD date.
func ParseDate(text string) (DateValue, error) {
	if len(text) != 8 {
		return DateValue{}, fmt.Errorf("a date must be 8 characters long, got %d", len(text))
	}
	if !allDigits(text) {
		return DateValue{}, fmt.Errorf("a date must contain only digits, got %q", text)
	}
	year, _ := strconv.Atoi(text[:4])
	month, _ := strconv.Atoi(text[4:6])
	day, _ := strconv.Atoi(text[6:8])
	return DateValue{Year: year, Month: month, Day: day}, nil
}

// ParseTime parses a HHMMSS time with an optional trailing Z.
func ParseTime(text string) (TimeValue, error) {
	if len(text) != 6 && len(text) != 7 {
		return TimeValue{}, fmt.Errorf("a time must be 6 or 7 characters long, got %d", len(text))
	}
	utc := false
	if len(text) == 7 {
		if text[6] != 'Z' {
			return TimeValue{}, fmt.Errorf("a 7 character time must end in Z, got %q", text[6])
		}
		utc = true
	}
	if !allDigits(text[:6]) {
		return TimeValue{}, fmt.Errorf("a time must contain only digits, got %q", text)
	}
	hour, _ := strconv.Atoi(text[:2])
	minute, _ := strconv.Atoi(text[2:4])
	second, _ := strconv.Atoi(text[4:6])
	return TimeValue{Hour: hour, Minute: minute, Second: second, UTC: utc}, nil
}

// ParseDateTime parses a date and a time joined by a single T.
func ParseDateTime(text string) (DateTimeValue, error) {
	parts := strings.Split(text, "T")
	if len(parts) != 2 {
		return DateTimeValue{}, fmt.Errorf("a date-time must contain a single T separating date and time, got %q", text)
	}
	date, err := ParseDate(parts[0])
	if err != nil {
		return DateTimeValue{}, fmt.Errorf("invalid date part: %w", err)
	}
	tm, err := ParseTime(parts[1])
	if err != nil {
		return DateTimeValue{}, fmt.Errorf("invalid time part: %w", err)
	}
	return DateTimeValue{Date: date, Time: tm}, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
