package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-seeder/internal/backend"
	"github.com/carson-networks/budget-seeder/internal/config"
	"github.com/carson-networks/budget-seeder/internal/fixture"
	"github.com/carson-networks/budget-seeder/internal/logging"
	"github.com/carson-networks/budget-seeder/internal/reporter"
	"github.com/carson-networks/budget-seeder/internal/seed"
)

const healthProbeTimeout = 5 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (exitCode int) {
	console := reporter.New(os.Stdout)

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		console.Error("Configuration error: %v", err)
		return seed.ExitPartial
	}

	flags := flag.NewFlagSet("budget-seeder", flag.ContinueOnError)
	baseURL := flags.String("base-url", envConfig.BaseURL, "backend API base URL")
	fixturePath := flags.String("fixture", envConfig.FixturePath, "fixture file (default: embedded demo scenario)")
	verbose := flags.Bool("v", envConfig.Verbose, "verbose output")
	if err := flags.Parse(args); err != nil {
		return seed.ExitPartial
	}

	logger := logging.SetupLogging(*verbose)
	runID := uuid.Must(uuid.NewV4())
	logger.WithField("run_id", runID.String()).Info("budget-seeder starting")

	// Mirrors the best-effort contract: an unexpected panic is reported, not
	// re-raised, and the run counts as partial.
	defer func() {
		if r := recover(); r != nil {
			console.Error("Script execution error: %v", r)
			logger.WithField("run_id", runID.String()).Errorf("Run.Panic: %v", r)
			exitCode = seed.ExitPartial
		}
	}()

	var fx *fixture.Fixture
	if *fixturePath == "" {
		fx, err = fixture.Default()
	} else {
		fx, err = fixture.Load(*fixturePath)
	}
	if err != nil {
		console.Error("Fixture error: %v", err)
		logger.WithError(err).Error("Fixture.Load.Error")
		return seed.ExitPartial
	}
	logger.Debug(spew.Sdump(fx))

	client := backend.NewClient(*baseURL)

	probeCtx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
	defer cancel()
	if err := client.Health(probeCtx); err != nil {
		console.Error("Cannot connect to backend. Please ensure it is running at %s", *baseURL)
		logger.WithError(err).Error("HealthProbe.Error")
		return seed.ExitUnreachable
	}

	report := seed.New(client, fx, console, logger).Run(context.Background())

	logger.WithFields(logrus.Fields{
		"run_id":               runID.String(),
		"auth_failed":          report.AuthFailed,
		"accounts_created":     report.Accounts.Created,
		"accounts_failed":      report.Accounts.Failed,
		"categories_created":   report.Categories.Created,
		"categories_reused":    report.Categories.Reused,
		"categories_failed":    report.Categories.Failed,
		"transactions_created": report.Transactions.Created,
		"transactions_skipped": report.Transactions.Skipped,
		"transactions_failed":  report.Transactions.Failed,
		"budgets_created":      report.Budgets.Created,
		"budgets_skipped":      report.Budgets.Skipped,
		"budgets_failed":       report.Budgets.Failed,
	}).Info("Run.Complete")

	return report.ExitCode()
}
