package cmd

import (
	"fmt"
	"sort"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved budgets",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved budgets, newest first",
	RunE:  runHistoryList,
}

var historyLoadCmd = &cobra.Command{
	Use:   "load <month>",
	Short: "Load a saved budget back into the draft",
	Long:  "Replaces the current draft with the inputs of the saved budget for the given month (\"YYYY-MM\").",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryLoad,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <month>",
	Short: "Delete a saved budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.AddCommand(historyListCmd, historyLoadCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

// sortedMonths returns the archive's month keys newest first. The keys
// sort lexically because of the fixed "YYYY-MM" layout.
func sortedMonths(archive map[string]model.SavedBudget) []string {
	months := make([]string, 0, len(archive))
	for m := range archive {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	archive, err := env.st.LoadArchive(env.profile)
	if err != nil {
		warn(err)
	}

	if len(archive) == 0 {
		fmt.Printf("\n  %s\n", env.tr.NoSavedBudgets)
		return nil
	}

	rows := make([][]string, 0, len(archive))
	for _, m := range sortedMonths(archive) {
		b := archive[m]
		rows = append(rows, []string{
			b.Month,
			cli.FormatAmount(b.TotalIncome, env.symbol),
			cli.FormatAmount(b.TotalExpenses, env.symbol),
			cli.FormatAmount(b.RemainingBudget, env.symbol),
			cli.FormatPercent(b.PercentageSpent),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("%s [%s]", env.tr.SavedBudgets, env.profile),
		Headers: []string{env.tr.Month, env.tr.TotalIncome, env.tr.TotalExpenses, env.tr.RemainingBudget, env.tr.PercentageSpent},
		Rows:    rows,
	}))
	fmt.Printf("\n  %s %s\n", cli.FormatNumber(int64(len(archive))), env.tr.SavedBudgets)
	return nil
}

func runHistoryLoad(_ *cobra.Command, args []string) error {
	if _, err := model.ParseMonth(args[0]); err != nil {
		return err
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	b, ok, err := env.st.LoadBudget(env.profile, args[0])
	if err != nil {
		warn(err)
	}
	if !ok {
		return fmt.Errorf("no saved budget for %s", args[0])
	}

	if err := env.st.SaveDraft(env.profile, b.Inputs); err != nil {
		return err
	}
	fmt.Printf("  %s: %s\n", env.tr.BudgetLoaded, cli.FormatMonth(b.Month))
	return nil
}

func runHistoryDelete(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.st.DeleteBudget(env.profile, args[0]); err != nil {
		return err
	}
	fmt.Printf("  %s: %s\n", env.tr.BudgetDeleted, args[0])
	return nil
}
