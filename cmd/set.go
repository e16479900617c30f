package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagSetMonth  string
	flagSetSalary string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the draft month or base salary",
	Example: `  bplan set --salary 2000
  bplan set --month 2025-07`,
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&flagSetMonth, "month", "", `Budget month ("YYYY-MM")`)
	setCmd.Flags().StringVar(&flagSetSalary, "salary", "", "Base salary amount")
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, _ []string) error {
	if flagSetMonth == "" && flagSetSalary == "" {
		return fmt.Errorf("nothing to set: pass --month and/or --salary")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	if flagSetMonth != "" {
		if _, err := model.ParseMonth(flagSetMonth); err != nil {
			return fmt.Errorf("invalid month %q: want \"YYYY-MM\"", flagSetMonth)
		}
		in.Month = flagSetMonth
	}
	if flagSetSalary != "" {
		salary, err := parseAmount(flagSetSalary)
		if err != nil {
			return fmt.Errorf("invalid salary: %w", err)
		}
		in.BaseSalary = salary
	}

	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  %s: %s, %s %s\n",
		env.profile, cli.FormatMonth(in.Month),
		env.tr.BaseSalary, cli.FormatAmount(in.BaseSalary, env.symbol))
	return nil
}
