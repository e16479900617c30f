// Package cmd implements the bplan CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mectus11/bplan/internal/config"
	"github.com/mectus11/bplan/internal/i18n"
	"github.com/mectus11/bplan/internal/store"

	"github.com/spf13/cobra"
)

var flagDataDir string

var rootCmd = &cobra.Command{
	Use:   "bplan",
	Short: "Personal monthly budget planner",
	Long:  "Track salary, income and expenses per profile, save monthly budgets, and export PDF reports.",
	RunE:  runShow,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (default: XDG data dir)")
}

// appEnv bundles everything a command needs: config, the open store,
// the active profile, and display preferences.
type appEnv struct {
	cfg     config.Config
	st      *store.Store
	profile string
	tr      i18n.Strings
	symbol  string
}

// openEnv is the shared startup path used by all commands.
func openEnv() (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dataDir := config.DataDir(cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}

	st, err := store.Open(config.StorePath(dataDir))
	if err != nil {
		return nil, err
	}

	env := &appEnv{cfg: cfg, st: st}

	profile, err := st.ActiveProfile()
	if err != nil {
		warn(err)
	}
	env.profile = profile

	lang, err := st.Language()
	if err != nil {
		warn(err)
	}
	env.tr = i18n.ByCode(string(lang))

	currency, err := st.Currency()
	if err != nil {
		warn(err)
	}
	env.symbol = currency.Symbol()

	return env, nil
}

func (e *appEnv) close() {
	if err := e.st.Close(); err != nil {
		warn(err)
	}
}

// warn prints a non-fatal diagnostic. Malformed persisted slots land
// here: the store already recovered with defaults.
func warn(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "  warning: %v\n", err)
}

// requireProfile errors unless name is in the profile set.
func requireProfile(st *store.Store, name string) error {
	profiles, err := st.Profiles()
	if err != nil {
		warn(err)
	}
	for _, p := range profiles {
		if p == name {
			return nil
		}
	}
	return fmt.Errorf("unknown profile %q", name)
}

// friendlyErr rewrites store sentinel errors for terminal output.
func friendlyErr(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateProfile):
		return errors.New("a profile with that name already exists")
	case errors.Is(err, store.ErrCannotDeleteActiveProfile):
		return errors.New("the active profile cannot be deleted; switch profiles first")
	default:
		return err
	}
}
