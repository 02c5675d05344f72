package seed

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/carson-networks/budget-seeder/api"
	"github.com/carson-networks/budget-seeder/internal/logging"
)

// authenticate registers the demo user, then logs in and installs the bearer
// token on the session. Registration is allowed to fail (the user may exist
// from an earlier run); login is the authoritative check, and its failure
// short-circuits the whole run.
func (s *Seeder) authenticate(ctx context.Context, logData *logging.LogData) error {
	creds := api.Credentials{
		Username: s.fixture.User.Username,
		Password: s.fixture.User.Password,
	}
	logData.AddData("username", creds.Username)

	s.console.Step("Attempting to register user: %s...", creds.Username)
	registration, err := s.client.Register(ctx, creds)
	if err != nil {
		return err
	}

	switch {
	case registration.OK():
		s.console.Success("Registration successful")
	case registration.Status == http.StatusBadRequest && strings.Contains(string(registration.Body), "already exists"):
		s.console.Step("User already exists, logging in directly...")
	default:
		s.console.Error("Registration failed: %s", registration.Body)
	}

	s.console.Step("Logging in...")
	login, result, err := s.client.Login(ctx, creds)
	if err != nil {
		return err
	}
	if login == nil {
		s.console.Error("Login failed: %s", result.Body)
		return fmt.Errorf("login rejected with status %d", result.Status)
	}

	s.client.SetToken(login.Token)
	logData.AddData("user_id", login.UserID)
	s.console.Success("Login successful, Token retrieved")

	return nil
}
