package seed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carson-networks/budget-seeder/api"
)

// fakeBackend is an in-memory stand-in for the budget backend, implementing
// just enough of its contract for the seeding scenarios: bearer auth, the
// already-exists registration conflict, duplicate-friendly accounts, and
// categories resolved by listing.
type fakeBackend struct {
	t *testing.T

	registered map[string]string
	token      string

	wrapAccounts     bool
	rejectLogin      bool
	failAccounts     map[string]bool
	failTransactions map[string]bool
	failCategoryList bool
	failBudgets      bool

	nextID       int64
	accounts     []api.AccountPayload
	categories   []api.CategoryPayload
	transactions []api.CreateTransactionRequest
	budgets      []api.CreateBudgetRequest

	calls map[string]int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	return &fakeBackend{
		t:                t,
		registered:       make(map[string]string),
		failAccounts:     make(map[string]bool),
		failTransactions: make(map[string]bool),
		calls:            make(map[string]int),
	}
}

func (f *fakeBackend) start() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", f.count(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	}))
	mux.HandleFunc("/api/auth/register", f.count(f.handleRegister))
	mux.HandleFunc("/api/auth/login", f.count(f.handleLogin))
	mux.HandleFunc("/api/accounts", f.count(f.handleAccounts))
	mux.HandleFunc("/api/categories", f.count(f.handleCategories))
	mux.HandleFunc("/api/transactions", f.count(f.handleTransactions))
	mux.HandleFunc("/api/budgets", f.count(f.handleBudgets))

	server := httptest.NewServer(mux)
	f.t.Cleanup(server.Close)
	return server
}

func (f *fakeBackend) count(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls[r.Method+" "+r.URL.Path]++
		next(w, r)
	}
}

func (f *fakeBackend) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) authorized(r *http.Request) bool {
	return f.token != "" && r.Header.Get("Authorization") == "Bearer "+f.token
}

func (f *fakeBackend) addCategory(name string) {
	f.categories = append(f.categories, api.CategoryPayload{ID: f.id(), Name: name})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (f *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	json.NewDecoder(r.Body).Decode(&creds)

	if _, ok := f.registered[creds.Username]; ok {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Username already exists"})
		return
	}

	f.registered[creds.Username] = creds.Password
	writeJSON(w, http.StatusOK, api.RegisterResponse{Message: "User registered", UserID: 1})
}

func (f *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds api.Credentials
	json.NewDecoder(r.Body).Decode(&creds)

	if f.rejectLogin || f.registered[creds.Username] != creds.Password {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid credentials"})
		return
	}

	f.token = "tok-" + creds.Username
	writeJSON(w, http.StatusOK, api.LoginResponse{Message: "ok", Token: f.token, UserID: 1})
}

func (f *fakeBackend) handleAccounts(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req api.CreateAccountRequest
	json.NewDecoder(r.Body).Decode(&req)

	if f.failAccounts[req.Name] {
		writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
		return
	}

	account := api.AccountPayload{ID: f.id(), Name: req.Name, Currency: req.Currency, Balance: "0.00"}
	f.accounts = append(f.accounts, account)

	if f.wrapAccounts {
		writeJSON(w, http.StatusOK, api.CreateAccountResponse{Account: &account})
		return
	}
	writeJSON(w, http.StatusOK, api.CreateAccountResponse{ID: account.ID})
}

func (f *fakeBackend) handleCategories(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	if r.Method == http.MethodGet {
		if f.failCategoryList {
			writeJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: "Database error"})
			return
		}
		writeJSON(w, http.StatusOK, f.categories)
		return
	}

	var req api.CreateCategoryRequest
	json.NewDecoder(r.Body).Decode(&req)
	f.addCategory(req.Name)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category created"})
}

func (f *fakeBackend) handleTransactions(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req api.CreateTransactionRequest
	json.NewDecoder(r.Body).Decode(&req)

	if f.failTransactions[req.Description] {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid transaction"})
		return
	}

	f.transactions = append(f.transactions, req)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Transaction created"})
}

func (f *fakeBackend) handleBudgets(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req api.CreateBudgetRequest
	json.NewDecoder(r.Body).Decode(&req)

	if f.failBudgets {
		writeJSON(w, http.StatusBadRequest, api.ErrorResponse{Error: "Invalid budget"})
		return
	}

	f.budgets = append(f.budgets, req)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Budget created"})
}
