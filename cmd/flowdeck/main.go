package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flowdeck/internal/cli"
	"flowdeck/internal/db"
	"flowdeck/internal/lifecycle"
	"flowdeck/internal/repository"
	"flowdeck/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.flowdeck/flowdeck.db
	dbPath := os.Getenv("FLOWDECK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".flowdeck", "flowdeck.db")
	}

	// Determine the timezone the midnight boundary is computed in.
	loc := time.Local
	if tz := os.Getenv("FLOWDECK_TZ"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("loading FLOWDECK_TZ: %w", err)
		}
		loc = l
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteWorkItemRepo(database)
	markRepo := repository.NewSQLiteCompletionMarkRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the escalation scanner and services
	scanner := lifecycle.NewScanner(itemRepo, loc)

	// Use-case logging is opt-in; a CLI should stay quiet by default.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("FLOWDECK_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		WorkItems:  service.NewWorkItemService(itemRepo),
		Completion: service.NewCompletionService(markRepo, itemRepo, observer),
		Ranking:    service.NewRankingService(itemRepo, markRepo, loc, observer),
		Escalation: service.NewEscalationService(scanner, observer),
		Rescue:     service.NewRescueService(itemRepo, uow, observer),
		Scanner:    scanner,
		Loc:        loc,
	}

	// Detect interactive terminal for the form and checklist surfaces.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
