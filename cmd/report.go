package cmd

import (
	"fmt"
	"os"

	"github.com/mectus11/bplan/internal/model"
	"github.com/mectus11/bplan/internal/report"

	"github.com/spf13/cobra"
)

var flagReportOutput string

var reportCmd = &cobra.Command{
	Use:   "report [month]",
	Short: "Export a budget as a PDF report",
	Long:  "Without an argument, reports on the current draft. With a month (\"YYYY-MM\"), reports on that saved budget.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOutput, "output", "o", "", "Output path (default: budget-report-<month>.pdf)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.close()

	var b model.SavedBudget
	if len(args) == 1 {
		if _, err := model.ParseMonth(args[0]); err != nil {
			return err
		}
		saved, ok, err := env.st.LoadBudget(env.profile, args[0])
		if err != nil {
			warn(err)
		}
		if !ok {
			return fmt.Errorf("no saved budget for %s", args[0])
		}
		b = saved
	} else {
		in, err := env.st.LoadDraft(env.profile)
		if err != nil {
			warn(err)
		}
		b = model.Snapshot(in)
	}

	fontPath, err := report.FindFont(env.cfg.Report.FontPath)
	if err != nil {
		return fmt.Errorf("%w; set report.font_path in the config file", err)
	}

	data, err := report.Render(b, env.tr, env.symbol, fontPath)
	if err != nil {
		return err
	}

	out := flagReportOutput
	if out == "" {
		out = report.Filename(b.Month)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("  Wrote %s (%d bytes).\n", out, len(data))
	return nil
}
