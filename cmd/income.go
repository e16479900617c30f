package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagIncomeColor string
	flagIncomeDate  string

	flagIncomeEditName   string
	flagIncomeEditAmount string
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage extra income items in the draft",
	RunE:  runIncomeList,
}

var incomeAddCmd = &cobra.Command{
	Use:     "add <name> <amount>",
	Short:   "Add an extra income item",
	Example: `  bplan income add "Freelance" 300 --date 2025-06-15`,
	Args:    cobra.ExactArgs(2),
	RunE:    runIncomeAdd,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List extra income items",
	RunE:  runIncomeList,
}

var incomeEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an extra income item in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeEdit,
}

var incomeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an extra income item",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeRemove,
}

func init() {
	incomeAddCmd.Flags().StringVar(&flagIncomeColor, "color", "", "Display color (hex)")
	incomeAddCmd.Flags().StringVar(&flagIncomeDate, "date", "", `Item date ("YYYY-MM-DD")`)
	incomeEditCmd.Flags().StringVar(&flagIncomeEditName, "name", "", "New name")
	incomeEditCmd.Flags().StringVar(&flagIncomeEditAmount, "amount", "", "New amount")
	incomeCmd.AddCommand(incomeAddCmd, incomeListCmd, incomeEditCmd, incomeRemoveCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeAdd(_ *cobra.Command, args []string) error {
	amount, err := parseItemAmount(args[1])
	if err != nil {
		return err
	}
	date, err := parseItemDate(flagIncomeDate)
	if err != nil {
		return err
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

	item := model.NewIncomeItem(args[0], amount, flagIncomeColor, date)
	in.AddIncome(item)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  + %s  %s  [%s]\n", item.Name, cli.FormatAmount(item.Amount, env.symbol), shortID(item.ID))
	return nil
}

func runIncomeList(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	if len(in.ExtraIncome) == 0 {
		fmt.Printf("\n  %s\n", env.tr.NoItems)
		return nil
	}

	fmt.Println()
	t := incomeTable(in.ExtraIncome, env.symbol)
	t.Title = fmt.Sprintf("%s [%s]", env.tr.ExtraIncome, env.profile)
	fmt.Print(cli.RenderTable(t))
	return nil
}

func runIncomeEdit(_ *cobra.Command, args []string) error {
	if flagIncomeEditName == "" && flagIncomeEditAmount == "" {
		return fmt.Errorf("nothing to edit: pass --name and/or --amount")
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

	ids := make([]string, 0, len(in.ExtraIncome))
	for _, item := range in.ExtraIncome {
		ids = append(ids, item.ID)
	}
	id, err := matchID(ids, args[0])
	if err != nil {
		return err
	}

	var edited model.IncomeItem
	for _, item := range in.ExtraIncome {
		if item.ID == id {
			edited = item
		}
	}
	if flagIncomeEditName != "" {
		edited.Name = flagIncomeEditName
	}
	if flagIncomeEditAmount != "" {
		amount, err := parseItemAmount(flagIncomeEditAmount)
		if err != nil {
			return err
		}
		edited.Amount = amount
	}

	in.UpdateIncome(edited)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  ~ %s  %s\n", edited.Name, cli.FormatAmount(edited.Amount, env.symbol))
	return nil
}

func runIncomeRemove(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	ids := make([]string, 0, len(in.ExtraIncome))
	for _, item := range in.ExtraIncome {
		ids = append(ids, item.ID)
	}
	id, err := matchID(ids, args[0])
	if err != nil {
		return err
	}

	in.RemoveIncome(id)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  - removed %s\n", shortID(id))
	return nil
}
