package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"carexyz/utils"
)

const minLocationLength = 5

var durationPattern = regexp.MustCompile(`^(\d+)\s*(hour|hours)?$`)

// ParseDurationHours extracts the hour count from the human duration string
// ("4 hours", "1 hour" or a bare number). The count must be positive.
func ParseDurationHours(duration string) (int, error) {
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(strings.ToLower(duration)))
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q", duration)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil || hours <= 0 {
		return 0, fmt.Errorf("invalid duration %q", duration)
	}
	return hours, nil
}

// validateIntake checks the booking form fields before any side effect.
// now is injected so date comparisons are testable.
func validateIntake(in CreateBookingInput, now time.Time) map[string]string {
	fields := make(map[string]string)

	if in.ServiceID == "" {
		fields["serviceId"] = "service is required"
	}

	if in.Date == "" {
		fields["date"] = "date is required"
	} else if d, err := time.Parse(utils.DateLayout, in.Date); err != nil {
		fields["date"] = "date must be in YYYY-MM-DD format"
	} else {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if d.Before(today) {
			fields["date"] = "date must be today or later"
		}
	}

	if in.Time == "" {
		fields["time"] = "time is required"
	} else if _, err := time.Parse(utils.TimeLayout, in.Time); err != nil {
		fields["time"] = "time must be in HH:MM format"
	}

	if _, err := ParseDurationHours(in.Duration); err != nil {
		fields["duration"] = "duration must be a positive hour count"
	}

	if len(strings.TrimSpace(in.Location)) < minLocationLength {
		fields["location"] = fmt.Sprintf("location must be at least %d characters", minLocationLength)
	}

	if in.TotalCost <= 0 {
		fields["totalCost"] = "totalCost must be positive"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
