package units

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Period is a span of time that reads from YAML either as a Go duration
// string ("24h", "1h30m") or as a plain number of seconds, and writes back
// as a duration string.
type Period time.Duration

// Duration returns the period as a time.Duration.
func (p Period) Duration() time.Duration { return time.Duration(p) }

// String implements fmt.Stringer.
func (p Period) String() string { return time.Duration(p).String() }

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *Period) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("parsing period %q: %w", s, err)
		}
		*p = Period(d)
		return nil
	}

	var seconds float64
	if err := value.Decode(&seconds); err != nil {
		return fmt.Errorf("period must be a duration string or seconds: %w", err)
	}
	*p = Period(time.Duration(seconds * float64(time.Second)))
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (p Period) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
