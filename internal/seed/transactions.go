package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/budget-seeder/api"
	"github.com/carson-networks/budget-seeder/internal/logging"
)

// injectTransactions submits the fixture transactions. The whole step is
// gated on the primary account and category resolving; individual entries
// with other unresolved references are skipped without a request, and each
// submission is independent of its siblings.
func (s *Seeder) injectTransactions(ctx context.Context, logData *logging.LogData, accounts, categories map[string]int64, report *Report) error {
	s.console.Step("Injecting transaction records...")

	_, accountOK := accounts[s.fixture.PrimaryAccount]
	_, categoryOK := categories[s.fixture.PrimaryCategory]
	if !accountOK || !categoryOK {
		report.Transactions.Skipped += len(s.fixture.Transactions)
		s.console.Error("Failed to get Account or Category IDs, skipping transaction injection")
		return fmt.Errorf("primary references unresolved: account %q, category %q",
			s.fixture.PrimaryAccount, s.fixture.PrimaryCategory)
	}

	now := time.Now()
	for _, tx := range s.fixture.Transactions {
		accountID, accountOK := accounts[tx.Account]
		categoryID, categoryOK := categories[tx.Category]
		if !accountOK || !categoryOK {
			report.Transactions.Skipped++
			continue
		}

		result, err := s.client.CreateTransaction(ctx, api.CreateTransactionRequest{
			AccountID:   accountID,
			CategoryID:  categoryID,
			Amount:      tx.Amount.Wire(),
			Type:        string(tx.Type),
			Date:        tx.Date.Resolve(now),
			Description: tx.Description,
		})
		if err != nil {
			report.Transactions.Failed++
			s.console.Error("Transaction failed: %v", err)
			continue
		}
		if !result.OK() {
			report.Transactions.Failed++
			s.console.Error("Transaction failed: %s", result.Body)
			continue
		}

		report.Transactions.Created++
		s.console.Success("Transaction success: %s $%s -> %s", tx.Type, tx.Amount.Wire(), tx.Description)
	}

	logData.AddData("created", report.Transactions.Created)
	logData.AddData("skipped", report.Transactions.Skipped)
	logData.AddData("failed", report.Transactions.Failed)

	return nil
}
