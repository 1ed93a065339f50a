package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/aretw0/dfa/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Describe the automaton as a table",
	Long: `Prints a summary of the automaton and its transition table. On a terminal the
Markdown is rendered with colors; otherwise (or with --plain) it is printed
as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		eng, err := loadEngine(args[0], false)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if plain || out != os.Stdout || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprint(out, tui.Markdown(eng.Name(), eng))
			return nil
		}

		tui.PrintBanner(out)
		rendered, err := tui.RenderTable(eng.Name(), eng)
		if err != nil {
			logger.Warn("markdown rendering failed", "error", err)
			rendered = tui.Markdown(eng.Name(), eng)
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("plain", false, "Print raw Markdown")
}
