package main

import (
	"fmt"

	"github.com/decker502/gingerrain/pkg/app"
	"github.com/decker502/gingerrain/pkg/embedded"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that configuration and assets are consistent",
	Long: `Load gameplay.yaml, droppables.yaml and the resource table, then check
that every referenced resource ID is registered and every registered
file exists.

Examples:
  gingerrain validate
  gingerrain validate --config-dir ./mydata`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	problems, err := app.ValidateAssets(embedded.FS())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(problems) == 0 {
		fmt.Fprintln(out, goodStyle.Render("✅ configuration and assets OK"))
		return nil
	}
	for _, p := range problems {
		fmt.Fprintln(out, badStyle.Render("❌ "+p))
	}
	return fmt.Errorf("%d problems found", len(problems))
}
