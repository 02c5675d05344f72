// Package seed orchestrates the demo-data run: authenticate, provision the
// reference entities (accounts, categories), then inject the dependent
// records (transactions, budgets) that point at them. Every step is
// best-effort; failures are tallied on the Report instead of aborting the
// run, with the one hard gate being authentication.
package seed

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-seeder/internal/backend"
	"github.com/carson-networks/budget-seeder/internal/fixture"
	"github.com/carson-networks/budget-seeder/internal/logging"
	"github.com/carson-networks/budget-seeder/internal/reporter"
)

// Seeder runs one fixture against one backend session. Construct a fresh
// Seeder (and Client) per run; nothing is shared through package state.
type Seeder struct {
	client  *backend.Client
	fixture *fixture.Fixture
	console *reporter.Reporter
	logger  *logrus.Logger
}

func New(client *backend.Client, fx *fixture.Fixture, console *reporter.Reporter, logger *logrus.Logger) *Seeder {
	return &Seeder{
		client:  client,
		fixture: fx,
		console: console,
		logger:  logger,
	}
}

// Run executes the seeding sequence and returns the per-kind tallies. The
// returned report is never nil.
func (s *Seeder) Run(ctx context.Context) *Report {
	report := NewReport()

	err := logging.StepWrapper("Authenticate", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		return s.authenticate(ctx, logData)
	})(ctx)
	if err != nil {
		report.AuthFailed = true
		return report
	}

	var accounts map[string]int64
	_ = logging.StepWrapper("ProvisionAccounts", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		accounts = s.provisionAccounts(ctx, logData, report)
		return nil
	})(ctx)

	var categories map[string]int64
	_ = logging.StepWrapper("ProvisionCategories", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		categories = s.provisionCategories(ctx, logData, report)
		return nil
	})(ctx)

	if len(accounts) == 0 || len(categories) == 0 {
		report.Transactions.Skipped += len(s.fixture.Transactions)
		report.Budgets.Skipped += len(s.fixture.Budgets)
		return report
	}

	_ = logging.StepWrapper("InjectTransactions", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		return s.injectTransactions(ctx, logData, accounts, categories, report)
	})(ctx)

	_ = logging.StepWrapper("ApplyBudgets", s.logger, func(ctx context.Context, logData *logging.LogData) error {
		s.applyBudgets(ctx, logData, categories, report)
		return nil
	})(ctx)

	s.console.Plain("")
	s.console.Success("Data injection complete! Now go verify in the TUI")
	s.console.Plain("Login Username: %s", s.fixture.User.Username)
	s.console.Plain("Login Password: %s", s.fixture.User.Password)

	return report
}
