package cmd

import (
	"fmt"

	"github.com/mectus11/bplan/internal/cli"
	"github.com/mectus11/bplan/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagExpenseColor string
	flagExpenseDate  string

	flagExpenseEditName   string
	flagExpenseEditAmount string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage expense items in the draft",
	RunE:  runExpenseList,
}

var expenseAddCmd = &cobra.Command{
	Use:     "add <name> <amount>",
	Short:   "Add an expense item",
	Example: `  bplan expense add "Rent" 500 --color "#D14D41"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expense items",
	RunE:  runExpenseList,
}

var expenseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense item in place",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseEdit,
}

var expenseRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an expense item",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRemove,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseColor, "color", "", "Display color (hex)")
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", `Item date ("YYYY-MM-DD")`)
	expenseEditCmd.Flags().StringVar(&flagExpenseEditName, "name", "", "New name")
	expenseEditCmd.Flags().StringVar(&flagExpenseEditAmount, "amount", "", "New amount")
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseEditCmd, expenseRemoveCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	amount, err := parseItemAmount(args[1])
	if err != nil {
		return err
	}
	date, err := parseItemDate(flagExpenseDate)
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

	item := model.NewExpenseItem(args[0], amount, flagExpenseColor, date)
	in.AddExpense(item)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  + %s  %s  [%s]\n", item.Name, cli.FormatAmount(item.Amount, env.symbol), shortID(item.ID))
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	if len(in.Expenses) == 0 {
		fmt.Printf("\n  %s\n", env.tr.NoItems)
		return nil
	}

	fmt.Println()
	t := expenseTable(in.Expenses, env.symbol)
	t.Title = fmt.Sprintf("%s [%s]", env.tr.Expenses, env.profile)
	fmt.Print(cli.RenderTable(t))
	return nil
}

func runExpenseEdit(_ *cobra.Command, args []string) error {
	if flagExpenseEditName == "" && flagExpenseEditAmount == "" {
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

	ids := make([]string, 0, len(in.Expenses))
	for _, item := range in.Expenses {
		ids = append(ids, item.ID)
	}
	id, err := matchID(ids, args[0])
	if err != nil {
		return err
	}

	var edited model.ExpenseItem
	for _, item := range in.Expenses {
		if item.ID == id {
			edited = item
		}
	}
	if flagExpenseEditName != "" {
		edited.Name = flagExpenseEditName
	}
	if flagExpenseEditAmount != "" {
		amount, err := parseItemAmount(flagExpenseEditAmount)
		if err != nil {
			return err
		}
		edited.Amount = amount
	}

	in.UpdateExpense(edited)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  ~ %s  %s\n", edited.Name, cli.FormatAmount(edited.Amount, env.symbol))
	return nil
}

func runExpenseRemove(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	ids := make([]string, 0, len(in.Expenses))
	for _, item := range in.Expenses {
		ids = append(ids, item.ID)
	}
	id, err := matchID(ids, args[0])
	if err != nil {
		return err
	}

	in.RemoveExpense(id)
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  - removed %s\n", shortID(id))
	return nil
}
