package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TransactionType is the backend's transaction type enum.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// UnmarshalYAML validates the enum value.
func (t *TransactionType) UnmarshalYAML(value *yaml.Node) error {
	switch TransactionType(value.Value) {
	case TypeIncome, TypeExpense:
		*t = TransactionType(value.Value)
		return nil
	default:
		return fmt.Errorf("transaction type %q: want %q or %q", value.Value, TypeIncome, TypeExpense)
	}
}
