package config

import (
	"fmt"
	"strings"
)

const (
	// IntervalMin and IntervalMax bound every interval field, in seconds.
	IntervalMin = 10
	IntervalMax = 3600

	// PixelsMin and PixelsMax bound the pointer movement distance.
	PixelsMin = 1
	PixelsMax = 100
)

// ValidationError describes a single out-of-bound configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Validate checks every field against its bounds. It returns nil when the
// configuration is valid and a ValidationErrors otherwise. Values are
// never clamped or defaulted.
func (c Config) Validate() error {
	var errs ValidationErrors

	if c.IntervalSeconds < IntervalMin || c.IntervalSeconds > IntervalMax {
		errs = append(errs, ValidationError{
			Field:   "interval_seconds",
			Message: fmt.Sprintf("must be between %d and %d, got %d", IntervalMin, IntervalMax, c.IntervalSeconds),
		})
	}

	if c.MovementPixels < PixelsMin || c.MovementPixels > PixelsMax {
		errs = append(errs, ValidationError{
			Field:   "movement_pixels",
			Message: fmt.Sprintf("must be between %d and %d, got %d", PixelsMin, PixelsMax, c.MovementPixels),
		})
	}

	if c.LogFilePath == "" {
		errs = append(errs, ValidationError{
			Field:   "log_file_path",
			Message: "must be a non-empty path",
		})
	}

	if c.IntervalRangeMin < IntervalMin || c.IntervalRangeMin > IntervalMax {
		errs = append(errs, ValidationError{
			Field:   "interval_range_min",
			Message: fmt.Sprintf("must be between %d and %d, got %d", IntervalMin, IntervalMax, c.IntervalRangeMin),
		})
	}

	if c.IntervalRangeMax < IntervalMin || c.IntervalRangeMax > IntervalMax {
		errs = append(errs, ValidationError{
			Field:   "interval_range_max",
			Message: fmt.Sprintf("must be between %d and %d, got %d", IntervalMin, IntervalMax, c.IntervalRangeMax),
		})
	}

	// Checked regardless of random_interval so that toggling the flag can
	// never expose an invalid range.
	if c.IntervalRangeMin > c.IntervalRangeMax {
		errs = append(errs, ValidationError{
			Field:   "interval_range_min",
			Message: fmt.Sprintf("must not exceed interval_range_max (%d > %d)", c.IntervalRangeMin, c.IntervalRangeMax),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
