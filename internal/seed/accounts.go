package seed

import (
	"context"

	"github.com/carson-networks/budget-seeder/api"
	"github.com/carson-networks/budget-seeder/internal/logging"
)

// provisionAccounts creates every fixture account and returns the name to id
// mapping for the ones that succeeded. Accounts are created unconditionally;
// rerunning the seeder accumulates duplicates on backends that allow them.
func (s *Seeder) provisionAccounts(ctx context.Context, logData *logging.LogData, report *Report) map[string]int64 {
	s.console.Step("Creating accounts...")

	ids := make(map[string]int64, len(s.fixture.Accounts))
	for _, acc := range s.fixture.Accounts {
		created, result, err := s.client.CreateAccount(ctx, api.CreateAccountRequest{
			Name:     acc.Name,
			Currency: acc.Currency,
		})
		if err != nil {
			report.Accounts.Failed++
			s.console.Error("Account %s failed: %v", acc.Name, err)
			continue
		}
		if created == nil {
			report.Accounts.Failed++
			s.console.Error("Account %s failed: %s", acc.Name, result.Body)
			continue
		}

		id, ok := created.AccountID()
		if !ok {
			report.Accounts.Failed++
			s.console.Error("Account %s failed: response carried no id", acc.Name)
			continue
		}

		ids[acc.Name] = id
		report.Accounts.Created++
		s.console.Success("Account created: %s (ID: %d)", acc.Name, id)
	}

	logData.AddData("created", report.Accounts.Created)
	logData.AddData("failed", report.Accounts.Failed)

	return ids
}
