// Package api holds the wire contract of the budget backend's HTTP JSON API
// as consumed by the seeder. Field names and shapes follow the backend's
// documented responses; ids are server-assigned integers.
package api

// Credentials is the request body for both /auth/register and /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is the body of a successful POST /auth/register.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

// LoginResponse is the body of a successful POST /auth/login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"user_id"`
}

// ErrorResponse is the body the backend returns on non-200 statuses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreateAccountRequest is the request body for POST /accounts.
type CreateAccountRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// AccountPayload is an account object as returned by the backend.
type AccountPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// CreateAccountResponse is the body of a successful POST /accounts. The
// backend has shipped two shapes for it: a flat object carrying a top-level
// id, and a wrapped object nesting the account under "account". Both are
// modeled here; use AccountID instead of reading the fields directly.
type CreateAccountResponse struct {
	ID      int64           `json:"id,omitempty"`
	Account *AccountPayload `json:"account,omitempty"`
}

// AccountID resolves the server-assigned id regardless of response shape.
// The second return is false when neither shape carried an id.
func (r *CreateAccountResponse) AccountID() (int64, bool) {
	if r == nil {
		return 0, false
	}
	if r.ID != 0 {
		return r.ID, true
	}
	if r.Account != nil && r.Account.ID != 0 {
		return r.Account.ID, true
	}
	return 0, false
}

// CategoryPayload is a category object as returned by GET /categories.
type CategoryPayload struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// CreateTransactionRequest is the request body for POST /transactions.
// Amount is a decimal string; Date is an ISO calendar date (YYYY-MM-DD).
type CreateTransactionRequest struct {
	AccountID   int64  `json:"account_id"`
	CategoryID  int64  `json:"category_id"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CreateBudgetRequest is the request body for POST /budgets.
type CreateBudgetRequest struct {
	CategoryID int64  `json:"category_id"`
	Amount     string `json:"amount"`
	Period     string `json:"period"`
	StartDate  string `json:"start_date"`
}
