package fixture

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a monetary value parsed from a YAML scalar. The backend takes
// amounts as decimal strings; Wire renders them with two fractional digits.
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML parses the scalar as a decimal.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return fmt.Errorf("amount %q: %w", value.Value, err)
	}
	a.Decimal = d
	return nil
}

// MarshalYAML renders the amount in wire form.
func (a Amount) MarshalYAML() (any, error) {
	return a.Wire(), nil
}

// Wire returns the decimal string sent to the backend.
func (a Amount) Wire() string {
	return a.StringFixed(2)
}
