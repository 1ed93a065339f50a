package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/trace"
)

var traceCmd = &cobra.Command{
	Use:   "trace FILE INPUT",
	Short: "Show the path an input takes through the automaton",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonMode, _ := cmd.Flags().GetBool("json")

		eng, err := loadEngine(args[0], false)
		if err != nil {
			return err
		}
		res := trace.Run(eng, args[1])
		out := cmd.OutOrStdout()

		if jsonMode {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Fprintf(out, "start %s\n", eng.Start())
		for _, step := range res.Steps {
			fmt.Fprintf(out, "%3d  %q  %s --[%s]--> %s\n", step.Index, step.Char, step.From, step.Symbol, step.To)
		}
		switch {
		case res.Stuck:
			fmt.Fprintf(out, "rejected: no transition from %s at index %d\n", res.Final, res.StuckAt)
		case res.Accepted:
			fmt.Fprintf(out, "accepted in %s\n", res.Final)
		default:
			fmt.Fprintf(out, "rejected: %s is not accepting\n", res.Final)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().Bool("json", false, "Print the trace as JSON")
}
