package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var acceptCmd = &cobra.Command{
	Use:   "accept FILE INPUT...",
	Short: "Decide whether each input is accepted",
	Long: `Loads the automaton defined in FILE and prints one line per INPUT with the
verdict. Use --fail to exit non-zero when any input is rejected.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, _ := cmd.Flags().GetBool("strict")
		failOnReject, _ := cmd.Flags().GetBool("fail")

		eng, err := loadEngine(args[0], strict)
		if err != nil {
			return err
		}

		rejected := 0
		for _, input := range args[1:] {
			verdict := "accepted"
			if !eng.IsAccepted(input) {
				verdict = "rejected"
				rejected++
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q\t%s\n", input, verdict)
		}

		if failOnReject && rejected > 0 {
			return fmt.Errorf("%d of %d inputs rejected", rejected, len(args)-1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(acceptCmd)

	acceptCmd.Flags().Bool("strict", false, "Refuse definitions with validation errors")
	acceptCmd.Flags().Bool("fail", false, "Exit with an error if any input is rejected")
}
