package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/validator"
	"github.com/aretw0/dfa/pkg/adapters/file"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check the definition for consistency",
	Long: `Reports undeclared start, accepting, source and destination states, symbols
outside the declared alphabet, overlapping labels and unreachable states.
Errors make the command fail; warnings are only printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := file.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		issues := validator.Validate(def)
		errorCount := 0
		for _, issue := range issues {
			if issue.Severity == validator.SeverityError {
				errorCount++
			}
			fmt.Fprintln(out, issue.String())
		}

		if errorCount > 0 {
			return fmt.Errorf("validation failed: %d errors, %d warnings", errorCount, len(issues)-errorCount)
		}
		fmt.Fprintln(out, "Definition is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
