package scheduling

import (
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"fmt"
	"strconv"
	"strings"
)

type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Slot struct {
	Time      string
	Available bool
	Duration  int
}

// ParseTimeOfDay reads "HH:MM" or "HH:MM:SS" into minutes since midnight.
func ParseTimeOfDay(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, exceptions.ErrInvalidTimeOfDay(value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, exceptions.ErrInvalidTimeOfDay(value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, exceptions.ErrInvalidTimeOfDay(value)
	}
	return hours*60 + minutes, nil
}

// AddMinutes adds n minutes to a time of day. Results past midnight are not
// wrapped, so "23:50" plus 20 renders as "24:10".
func AddMinutes(value string, n int) (string, error) {
	start, err := ParseTimeOfDay(value)
	if err != nil {
		return "", err
	}
	total := start + n
	if total < 0 {
		return "", exceptions.ErrInvalidTimeOfDay(value)
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// NormalizeTimeOfDay trims seconds, turning "09:00:00" into "09:00".
func NormalizeTimeOfDay(value string) string {
	minutes, err := ParseTimeOfDay(value)
	if err != nil {
		return value
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ComputeDaySlots keeps available slots and turns each into an interval,
// using a 30 minute duration when none is given. Unparseable times are skipped.
func ComputeDaySlots(slots []Slot) []Interval {
	intervals := make([]Interval, 0, len(slots))
	for _, slot := range slots {
		if !slot.Available {
			continue
		}
		duration := slot.Duration
		if duration <= 0 {
			duration = constvars.DefaultSlotDuration
		}
		end, err := AddMinutes(slot.Time, duration)
		if err != nil {
			continue
		}
		intervals = append(intervals, Interval{
			Start: NormalizeTimeOfDay(slot.Time),
			End:   end,
		})
	}
	return intervals
}

// NormalizeDate drops the time part of upstream timestamps such as
// "2024-05-10T00:00:00", keeping "2024-05-10".
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > 10 && (value[10] == 'T' || value[10] == ' ') {
		return value[:10]
	}
	return value
}
