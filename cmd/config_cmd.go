package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/config"
	"github.com/mectus11/bplan/internal/store"
	"github.com/mectus11/bplan/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configCurrencyCmd = &cobra.Command{
	Use:   "currency <code>",
	Short: "Set the display currency (TND, USD, EUR, GBP)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCurrency,
}

var configLanguageCmd = &cobra.Command{
	Use:   "language <code>",
	Short: "Set the interface language (en, fr)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigLanguage,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme <name>",
	Short: "Set the color theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigTheme,
}

func init() {
	configCmd.AddCommand(configCurrencyCmd, configLanguageCmd, configThemeCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	dataDir := config.DataDir(env.cfg)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	fmt.Printf("    Data directory: %s\n", dataDir)
	fmt.Printf("    Store:          %s\n", config.StorePath(dataDir))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", env.cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Report]")
	if env.cfg.Report.FontPath != "" {
		fmt.Printf("    Font: %s\n", env.cfg.Report.FontPath)
	} else {
		fmt.Println("    Font: auto-detected")
	}
	fmt.Println()

	currency, err := env.st.Currency()
	if err != nil {
		warn(err)
	}
	lang, err := env.st.Language()
	if err != nil {
		warn(err)
	}

	fmt.Println("  [Preferences]")
	fmt.Printf("    Profile:  %s\n", env.profile)
	fmt.Printf("    Currency: %s (%s)\n", currency, currency.Symbol())
	fmt.Printf("    Language: %s\n", lang)
	return nil
}

func runConfigCurrency(_ *cobra.Command, args []string) error {
	var picked store.Currency
	for _, c := range store.Currencies {
		if string(c) == args[0] {
			picked = c
		}
	}
	if picked == "" {
		return fmt.Errorf("unknown currency %q: want one of %v", args[0], store.Currencies)
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.st.SetCurrency(picked); err != nil {
		return err
	}
	fmt.Printf("  Currency set to %s (%s).\n", picked, picked.Symbol())
	return nil
}

func runConfigLanguage(_ *cobra.Command, args []string) error {
	var picked store.Language
	for _, l := range store.Languages {
		if string(l) == args[0] {
			picked = l
		}
	}
	if picked == "" {
		return fmt.Errorf("unknown language %q: want one of %v", args[0], store.Languages)
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.st.SetLanguage(picked); err != nil {
		return err
	}
	fmt.Printf("  Language set to %s.\n", picked)
	return nil
}

func runConfigTheme(_ *cobra.Command, args []string) error {
	if !theme.Exists(args[0]) {
		return fmt.Errorf("unknown theme %q: want one of %v", args[0], theme.Names())
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Appearance.Theme = args[0]
	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Theme set to %s.\n", args[0])
	return nil
}
