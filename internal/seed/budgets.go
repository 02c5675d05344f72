package seed

import (
	"context"
	"time"

	"github.com/carson-networks/budget-seeder/api"
	"github.com/carson-networks/budget-seeder/internal/logging"
)

// applyBudgets submits the fixture budgets. A budget whose category never
// resolved is skipped without a request.
func (s *Seeder) applyBudgets(ctx context.Context, logData *logging.LogData, categories map[string]int64, report *Report) {
	s.console.Step("Setting budget...")

	now := time.Now()
	for _, budget := range s.fixture.Budgets {
		categoryID, ok := categories[budget.Category]
		if !ok {
			report.Budgets.Skipped++
			continue
		}

		result, err := s.client.CreateBudget(ctx, api.CreateBudgetRequest{
			CategoryID: categoryID,
			Amount:     budget.Amount.Wire(),
			Period:     budget.Period,
			StartDate:  budget.Start.Resolve(now),
		})
		if err != nil {
			report.Budgets.Failed++
			s.console.Error("Budget setting failed: %v", err)
			continue
		}
		if !result.OK() {
			report.Budgets.Failed++
			s.console.Error("Budget setting failed: %s", result.Body)
			continue
		}

		report.Budgets.Created++
		s.console.Success("%s budget set successfully: $%s", budget.Category, budget.Amount.Wire())
	}

	logData.AddData("created", report.Budgets.Created)
	logData.AddData("skipped", report.Budgets.Skipped)
	logData.AddData("failed", report.Budgets.Failed)
}
