package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/cli"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current draft as the budget for its month",
	Long:  "Computes totals for the current draft and stores the snapshot in the archive, replacing any earlier save for the same month.",
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	saved, err := env.st.SaveBudget(env.profile, in)
	if err != nil {
		return err
	}

	fmt.Printf("  Saved %s: %s %s, %s %s, %s %s\n",
		cli.FormatMonth(saved.Month),
		env.tr.TotalIncome, cli.FormatAmount(saved.TotalIncome, env.symbol),
		env.tr.TotalExpenses, cli.FormatAmount(saved.TotalExpenses, env.symbol),
		env.tr.RemainingBudget, cli.FormatAmount(saved.RemainingBudget, env.symbol))
	return nil
}
