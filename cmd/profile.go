package cmd

import (
	"fmt"
	"strings"

	"github.com/mectus11/bplan/internal/cli"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage budget profiles",
	RunE:  runProfileList,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	RunE:  runProfileList,
}

var profileCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a profile and switch to it",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileCreate,
}

var profileSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSwitch,
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a profile, carrying its data along",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileRename,
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a profile and its stored data",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileDelete,
}

func init() {
	profileCmd.AddCommand(profileListCmd, profileCreateCmd, profileSwitchCmd, profileRenameCmd, profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(_ *cobra.Command, _ []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	profiles, err := env.st.Profiles()
	if err != nil {
		warn(err)
	}

	fmt.Println()
	for _, p := range profiles {
		marker := " "
		name := p
		if p == env.profile {
			marker = "*"
			name = cli.GoodStyle.Render(p)
		}
		fmt.Printf("  %s %s\n", marker, name)
	}
	return nil
}

func runProfileCreate(_ *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.st.CreateProfile(name); err != nil {
		return friendlyErr(err)
	}
	fmt.Printf("  Created profile %q and switched to it.\n", name)
	return nil
}

func runProfileSwitch(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := requireProfile(env.st, args[0]); err != nil {
		return err
	}
	if err := env.st.SwitchProfile(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Switched to profile %q.\n", args[0])
	return nil
}

func runProfileRename(_ *cobra.Command, args []string) error {
	newName := strings.TrimSpace(args[1])
	if newName == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := requireProfile(env.st, args[0]); err != nil {
		return err
	}
	if err := env.st.RenameProfile(args[0], newName); err != nil {
		return friendlyErr(err)
	}
	fmt.Printf("  Renamed profile %q to %q.\n", args[0], newName)
	return nil
}

func runProfileDelete(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	if err := requireProfile(env.st, args[0]); err != nil {
		return err
	}
	if err := env.st.DeleteProfile(args[0]); err != nil {
		return friendlyErr(err)
	}
	fmt.Printf("  Deleted profile %q.\n", args[0])
	return nil
}
