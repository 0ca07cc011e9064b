// Package timecode converts between the two textual timestamp grammars used by
// line-timed lyric files and block-based subtitle files.
//
// Compact form:  M{1,3}:SS.CC      (minutes, seconds, centiseconds)
// Expanded form: HH:MM:SS,mmm      ('.' accepted in place of ',' on input)
package timecode

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformedTimeCode is wrapped by every parse failure in this package.
var ErrMalformedTimeCode = errors.New("malformed time code")

var (
	compactPattern  = regexp.MustCompile(`^(\d{1,3}):(\d{2})\.(\d{2})$`)
	expandedPattern = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})[,.](\d{3})$`)
)

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute

	// MaxExpandedHours is the largest hour value the two-digit expanded field holds.
	MaxExpandedHours = 99
	// MaxCompactMinutes is the largest minute value the compact grammar accepts.
	MaxCompactMinutes = 999
)

// TimeCode is a non-negative offset from media start in milliseconds.
type TimeCode int64

// FromMillis builds a TimeCode, clamping negative input to zero.
func FromMillis(ms int64) TimeCode {
	if ms < 0 {
		return 0
	}
	return TimeCode(ms)
}

// Millis returns the offset in milliseconds.
func (t TimeCode) Millis() int64 { return int64(t) }

// Add returns t shifted by ms milliseconds, never below zero.
func (t TimeCode) Add(ms int64) TimeCode { return FromMillis(int64(t) + ms) }

// Sub returns t-u in milliseconds. The result may be negative.
func (t TimeCode) Sub(u TimeCode) int64 { return int64(t) - int64(u) }

// OverflowsExpanded reports whether the hour field needs more than two digits.
func (t TimeCode) OverflowsExpanded() bool {
	return int64(t)/millisPerHour > MaxExpandedHours
}

// OverflowsCompact reports whether the minute field needs more than three
// digits, which ParseCompact would reject.
func (t TimeCode) OverflowsCompact() bool {
	return int64(t)/millisPerMinute > MaxCompactMinutes
}

// Compact renders t as MM:SS.CC. Milliseconds are truncated to centiseconds.
// Minutes past MaxCompactMinutes widen the field.
func (t TimeCode) Compact() string {
	ms := int64(t)
	minutes := ms / millisPerMinute
	seconds := (ms % millisPerMinute) / millisPerSecond
	centis := (ms % millisPerSecond) / 10
	return fmt.Sprintf("%02d:%02d.%02d", minutes, seconds, centis)
}

// Expanded renders t as HH:MM:SS,mmm. Hours of 100 or more widen the field.
func (t TimeCode) Expanded() string {
	ms := int64(t)
	hours := ms / millisPerHour
	minutes := (ms % millisPerHour) / millisPerMinute
	seconds := (ms % millisPerMinute) / millisPerSecond
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, ms%millisPerSecond)
}

func (t TimeCode) String() string { return t.Expanded() }

// ParseCompact parses the compact grammar.
func ParseCompact(s string) (TimeCode, error) {
	m := compactPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeCode, s)
	}

	minutes, _ := strconv.ParseInt(m[1], 10, 64)
	seconds, _ := strconv.ParseInt(m[2], 10, 64)
	centis, _ := strconv.ParseInt(m[3], 10, 64)
	if seconds > 59 {
		return 0, fmt.Errorf("%w: seconds out of range in %q", ErrMalformedTimeCode, s)
	}

	return TimeCode(minutes*millisPerMinute + seconds*millisPerSecond + centis*10), nil
}

// ParseExpanded parses the expanded grammar, accepting ',' or '.' before the milliseconds.
func ParseExpanded(s string) (TimeCode, error) {
	m := expandedPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTimeCode, s)
	}

	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)
	millis, _ := strconv.ParseInt(m[4], 10, 64)
	if minutes > 59 || seconds > 59 {
		return 0, fmt.Errorf("%w: field out of range in %q", ErrMalformedTimeCode, s)
	}

	return TimeCode(hours*millisPerHour + minutes*millisPerMinute + seconds*millisPerSecond + millis), nil
}

// ToExpanded converts compact text to expanded text.
func ToExpanded(compact string) (string, error) {
	t, err := ParseCompact(compact)
	if err != nil {
		return "", err
	}
	return t.Expanded(), nil
}

// ToCompact converts expanded text to compact text. The centiseconds are the
// leading two digits of the milliseconds, never rounded.
func ToCompact(expanded string) (string, error) {
	t, err := ParseExpanded(expanded)
	if err != nil {
		return "", err
	}
	return t.Compact(), nil
}
