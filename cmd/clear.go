package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the draft for the current month",
	Long:  "Zeroes the salary and removes all income and expense items. The selected month is kept.",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	in, err := env.st.LoadDraft(env.profile)
	if err != nil {
		warn(err)
	}

	in.Clear()
	if err := env.st.SaveDraft(env.profile, in); err != nil {
		return err
	}

	fmt.Printf("  %s.\n", env.tr.InputsCleared)
	return nil
}
