package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile's current budget",
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}
	sum := model.Compute(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  %s  [%s]",
		env.tr.BudgetTitle, cli.FormatMonth(in.Month), env.profile)))
	fmt.Println()

	rows := [][]string{
		{env.tr.BaseSalary, cli.FormatAmount(in.BaseSalary, env.symbol)},
		{env.tr.ExtraIncome, cli.FormatAmount(sum.TotalIncome-in.BaseSalary, env.symbol)},
		{env.tr.TotalIncome, cli.FormatAmount(sum.TotalIncome, env.symbol)},
		{"---"},
		{env.tr.TotalExpenses, cli.FormatAmount(sum.TotalExpenses, env.symbol)},
		{env.tr.RemainingBudget, cli.FormatAmount(sum.RemainingBudget, env.symbol)},
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))

	fmt.Printf("\n  %s  %s\n", env.tr.PercentageSpent, cli.RenderSpentBar(sum.PercentageSpent, 30))

	if len(in.Expenses) > 0 {
		labels := make([]string, 0, len(in.Expenses))
		amounts := make([]float64, 0, len(in.Expenses))
		for _, e := range in.Expenses {
			labels = append(labels, cli.Truncate(e.Name, 18))
			amounts = append(amounts, e.Amount)
		}
		fmt.Println()
		fmt.Print(cli.RenderBreakdown(labels, amounts, env.symbol, 24))
	}

	fmt.Printf("\n  %s\n", env.tr.Advice(model.Advise(sum)))
	return nil
}
