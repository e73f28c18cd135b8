// Package cmd holds employeectl's cobra commands.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/aanand-mishra/employee-dashboard/internal/config"
	"github.com/aanand-mishra/employee-dashboard/internal/employee"
	"github.com/aanand-mishra/employee-dashboard/internal/session"
	"github.com/aanand-mishra/employee-dashboard/internal/storage"
	"github.com/aanand-mishra/employee-dashboard/internal/storage/sqlite"
	"github.com/aanand-mishra/employee-dashboard/internal/utils/logger"
	"github.com/aanand-mishra/employee-dashboard/internal/validation"
)

var (
	cfgFile string

	log       *slog.Logger
	store     storage.Storage
	sess      *session.Store
	employees *employee.Store
)

var errNotLoggedIn = errors.New("not logged in: run `employeectl login` first")

var rootCmd = &cobra.Command{
	Use:   "employeectl",
	Short: "Manage the employee roster from the terminal",
	Long: `employeectl reads and writes the same store as the employee
dashboard server: log in, look at the dashboard counters, and list, add,
edit, toggle or delete employees.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	log = logger.NewWithWriter(cfg.Env, os.Stderr)

	db, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	store = db

	ctx := cmd.Context()
	sess = session.New(store, log, cfg.Auth.Token)
	if err := sess.Initialize(ctx); err != nil {
		return err
	}

	employees = employee.New(store, log)
	return employees.Load(ctx)
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if store == nil {
		return nil
	}
	return store.Close()
}

// requireSession is the PreRunE of every command behind the login gate.
func requireSession(_ *cobra.Command, _ []string) error {
	if !sess.IsAuthenticated() {
		return errNotLoggedIn
	}
	return nil
}

// printFieldErrors writes a form's errors one per line, sorted by field,
// and returns the matching error.
func printFieldErrors(errs validation.Errors) error {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", f, errs[f])
	}
	return errs.Err()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the configuration YAML file (or CONFIG_PATH)")

	rootCmd.AddCommand(loginCmd, logoutCmd, dashboardCmd, listCmd, addCmd, editCmd, toggleCmd, deleteCmd)
}
