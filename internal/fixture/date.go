package fixture

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const isoDate = "2006-01-02"

// Relative date markers accepted in fixture files. They resolve against the
// clock at submission time, not at parse time.
const (
	dateToday     = "today"
	dateYesterday = "yesterday"
)

// DateSpec is either a literal ISO calendar date or a relative marker.
type DateSpec struct {
	spec string
}

// UnmarshalYAML validates the spec.
func (d *DateSpec) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	switch s {
	case dateToday, dateYesterday:
	default:
		if _, err := time.Parse(isoDate, s); err != nil {
			return fmt.Errorf("date %q: want %q, %q or YYYY-MM-DD", s, dateToday, dateYesterday)
		}
	}
	d.spec = s
	return nil
}

// MarshalYAML renders the spec back out.
func (d DateSpec) MarshalYAML() (any, error) {
	return d.spec, nil
}

// IsZero reports whether the spec was never set.
func (d DateSpec) IsZero() bool {
	return d.spec == ""
}

// Resolve returns the concrete ISO date for this spec relative to now.
func (d DateSpec) Resolve(now time.Time) string {
	switch d.spec {
	case dateToday:
		return now.Format(isoDate)
	case dateYesterday:
		return now.AddDate(0, 0, -1).Format(isoDate)
	default:
		return d.spec
	}
}
