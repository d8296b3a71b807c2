package cronparser

import (
	"fmt"
	"strings"
	"time"

	cron "github.com/netresearch/go-cron"
)

const defaultTimezone = "UTC"

var _parser = cron.MustNewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// Schedule is a parsed five-field cron expression bound to a timezone.
type Schedule struct {
	spec     string
	schedule cron.Schedule
}

// Parse parses a five-field cron expression (or a descriptor like @hourly).
// If tz is non-empty and the spec carries no CRON_TZ=/TZ= prefix, CRON_TZ=<tz>
// is prepended. UTC is used when neither is given.
func Parse(spec, tz string) (*Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	schedule, err := _parser.Parse(withTimezone(spec, tz))
	if err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", spec, err)
	}

	return &Schedule{
		spec:     spec,
		schedule: schedule,
	}, nil
}

// Next returns the next occurrence strictly after `after`.
func (s *Schedule) Next(after time.Time) time.Time {
	return s.schedule.Next(after)
}

// Until returns how long to sleep from now to the next occurrence.
func (s *Schedule) Until(now time.Time) time.Duration {
	return s.schedule.Next(now).Sub(now)
}

func (s *Schedule) String() string {
	return s.spec
}

func withTimezone(spec, tz string) string {
	if strings.HasPrefix(spec, "CRON_TZ=") || strings.HasPrefix(spec, "TZ=") {
		return spec
	}

	if tz == "" {
		tz = defaultTimezone
	}

	return "CRON_TZ=" + tz + " " + spec
}
