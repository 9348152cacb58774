// Package session carries the logged-in identity and the internship cycle
// configuration. Both are loaded once at a well-defined boundary and passed
// into whatever needs them, instead of being read from ambient flags all over
// the feature modules.
package session

import (
	"fmt"
	"time"

	// Load .env file to environments
	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"

	"scadhub-backend/internal/model"
	"scadhub-backend/internal/utilities"
)

// Session identifies the current user to the derived aggregators.
type Session struct {
	Email string
	Role  string
}

// IsStudent reports whether the session belongs to a student account of
// either tier.
func (s Session) IsStudent() bool {
	return s.Role == model.RoleStudent || s.Role == model.RoleProStudent
}

// Cycle is the active internship cycle window.
type Cycle struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the cycle, inclusive of both
// boundary days.
func (c Cycle) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(c.Start) && !day.After(c.End)
}

type cycleEnv struct {
	Start string `envconfig:"CYCLE_START"`
	End   string `envconfig:"CYCLE_END"`
}

// LoadCycle reads the cycle window from the environment. This is the single
// load boundary for cycle dates.
func LoadCycle() (*Cycle, error) {
	c := new(cycleEnv)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.Start == "" {
		return nil, fmt.Errorf("set CYCLE_START")
	}
	if c.End == "" {
		return nil, fmt.Errorf("set CYCLE_END")
	}

	start, ok := utilities.ParseDate(c.Start)
	if !ok {
		return nil, fmt.Errorf("CYCLE_START %q is not a calendar date", c.Start)
	}
	end, ok := utilities.ParseDate(c.End)
	if !ok {
		return nil, fmt.Errorf("CYCLE_END %q is not a calendar date", c.End)
	}

	return &Cycle{Start: start, End: end}, nil
}
