package seed

import (
	"context"

	"github.com/carson-networks/budget-seeder/api"
	"github.com/carson-networks/budget-seeder/internal/logging"
)

// provisionCategories is the one idempotent step: list what exists, create
// only the missing names, then re-list and trust the server's ids. Creation
// responses are never parsed; the final listing is the authoritative mapping
// whichever path a name took.
func (s *Seeder) provisionCategories(ctx context.Context, logData *logging.LogData, report *Report) map[string]int64 {
	s.console.Step("Creating categories...")

	existing := make(map[string]int64)
	if listed, _, err := s.client.ListCategories(ctx); err == nil {
		for _, cat := range listed {
			existing[cat.Name] = cat.ID
		}
	}

	for _, name := range s.fixture.Categories {
		if _, ok := existing[name]; ok {
			continue
		}

		result, err := s.client.CreateCategory(ctx, api.CreateCategoryRequest{Name: name})
		if err != nil {
			s.console.Error("Category %s failed: %v", name, err)
			continue
		}
		if !result.OK() {
			s.console.Error("Category %s failed: %s", name, result.Body)
		}
	}

	ids := make(map[string]int64)
	listed, result, err := s.client.ListCategories(ctx)
	switch {
	case err != nil:
		s.console.Error("Category listing failed: %v", err)
	case !result.OK():
		s.console.Error("Category listing failed: %s", result.Body)
	default:
		for _, cat := range listed {
			ids[cat.Name] = cat.ID
			s.console.Success("Category ready: %s (ID: %d)", cat.Name, cat.ID)
		}
	}

	// Tally against the target list only; the backend may return extras such
	// as the defaults it creates on registration.
	for _, name := range s.fixture.Categories {
		switch {
		case existing[name] != 0 && ids[name] != 0:
			report.Categories.Reused++
		case ids[name] != 0:
			report.Categories.Created++
		default:
			report.Categories.Failed++
		}
	}

	logData.AddData("created", report.Categories.Created)
	logData.AddData("reused", report.Categories.Reused)
	logData.AddData("failed", report.Categories.Failed)

	return ids
}
