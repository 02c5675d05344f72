package seed

// Counts tallies the outcomes for one entity kind. Not every field applies to
// every kind: Reused is only meaningful for categories (idempotent hits),
// Skipped only for dependent records left unsubmitted over unresolved ids.
type Counts struct {
	Created int
	Reused  int
	Skipped int
	Failed  int
}

// Report is the structured outcome of one run. It exists so callers can tell
// "fully seeded" from "partially seeded" without scraping log lines.
type Report struct {
	AuthFailed   bool
	Accounts     Counts
	Categories   Counts
	Transactions Counts
	Budgets      Counts
}

func NewReport() *Report {
	return &Report{}
}

// Clean reports whether every record was seeded (or already present, for
// categories). Skipped dependent records count as incomplete seeding.
func (r *Report) Clean() bool {
	if r.AuthFailed {
		return false
	}
	if r.Accounts.Failed > 0 || r.Categories.Failed > 0 {
		return false
	}
	if r.Transactions.Failed > 0 || r.Transactions.Skipped > 0 {
		return false
	}
	if r.Budgets.Failed > 0 || r.Budgets.Skipped > 0 {
		return false
	}
	return true
}

// Exit codes: 0 fully seeded, 1 backend unreachable (set by main before a
// report exists), 2 partially seeded.
const (
	ExitSeeded      = 0
	ExitUnreachable = 1
	ExitPartial     = 2
)

// ExitCode maps the report onto the process exit code.
func (r *Report) ExitCode() int {
	if r.Clean() {
		return ExitSeeded
	}
	return ExitPartial
}
