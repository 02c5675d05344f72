// Package fixture defines the declarative seeding dataset. A Fixture is a
// YAML document naming the demo user, the reference entities to provision,
// and the dependent records to inject; dependent records reference their
// account and category by name, resolved to server ids at run time.
package fixture

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultFixture []byte

// Credentials is the demo user to register and log in.
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Account is a reference account to create. Accounts are recreated on every
// run; the backend is free to accumulate duplicates.
type Account struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// Transaction is a dependent record referencing its account and category by
// name.
type Transaction struct {
	Account     string          `yaml:"account"`
	Category    string          `yaml:"category"`
	Amount      Amount          `yaml:"amount"`
	Type        TransactionType `yaml:"type"`
	Date        DateSpec        `yaml:"date"`
	Description string          `yaml:"description"`
}

// Budget is a dependent record referencing its category by name.
type Budget struct {
	Category string   `yaml:"category"`
	Amount   Amount   `yaml:"amount"`
	Period   string   `yaml:"period"`
	Start    DateSpec `yaml:"start"`
}

// Fixture is one complete seeding scenario.
type Fixture struct {
	User            Credentials   `yaml:"user"`
	PrimaryAccount  string        `yaml:"primary_account"`
	PrimaryCategory string        `yaml:"primary_category"`
	Accounts        []Account     `yaml:"accounts"`
	Categories      []string      `yaml:"categories"`
	Transactions    []Transaction `yaml:"transactions"`
	Budgets         []Budget      `yaml:"budgets"`
}

// Default returns the embedded demo scenario.
func Default() (*Fixture, error) {
	return Parse(defaultFixture)
}

// Load reads and validates a fixture file.
func Load(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML scenario document.
func Parse(raw []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}
	return &f, nil
}

// Validate checks the structural invariants the seeder relies on.
func (f *Fixture) Validate() error {
	if f.User.Username == "" || f.User.Password == "" {
		return fmt.Errorf("user credentials are required")
	}
	if f.PrimaryAccount == "" {
		return fmt.Errorf("primary_account is required")
	}
	if f.PrimaryCategory == "" {
		return fmt.Errorf("primary_category is required")
	}

	for i, acc := range f.Accounts {
		if acc.Name == "" {
			return fmt.Errorf("accounts[%d]: name is required", i)
		}
		if acc.Currency == "" {
			return fmt.Errorf("accounts[%d] (%s): currency is required", i, acc.Name)
		}
	}

	for i, name := range f.Categories {
		if name == "" {
			return fmt.Errorf("categories[%d]: name is required", i)
		}
	}

	for i, tx := range f.Transactions {
		if tx.Account == "" || tx.Category == "" {
			return fmt.Errorf("transactions[%d]: account and category are required", i)
		}
		if tx.Type == "" {
			return fmt.Errorf("transactions[%d]: type is required", i)
		}
		if tx.Date.IsZero() {
			return fmt.Errorf("transactions[%d]: date is required", i)
		}
	}

	for i, b := range f.Budgets {
		if b.Category == "" {
			return fmt.Errorf("budgets[%d]: category is required", i)
		}
		if b.Period == "" {
			return fmt.Errorf("budgets[%d]: period is required", i)
		}
		if b.Start.IsZero() {
			return fmt.Errorf("budgets[%d]: start is required", i)
		}
	}

	return nil
}
