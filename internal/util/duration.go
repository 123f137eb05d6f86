package util

import (
	"fmt"
	"strconv"
	"time"
)

// ParseInterval parses an interval given either as a plain number of
// seconds ("90") or as a Go duration string ("90s", "2m"). The result is
// rounded down to whole seconds.
func ParseInterval(input string) (int, error) {
	if seconds, err := strconv.Atoi(input); err == nil {
		return seconds, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid interval format: %s (use seconds like \"90\" or a duration like \"2m\")", input)
	}
	return int(d.Seconds()), nil
}
