package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/presentation/graph"
	"github.com/aretw0/dfa/internal/trace"
)

// graphCmd represents the graph command
const defaultDiagramTitle = "DFA"

var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the automaton diagram",
	Long: `Renders the automaton defined in FILE as a Graphviz digraph or a Mermaid
flowchart and writes it to the diagrams directory (diagrams.dir in the config,
or --out). The file is named after the title with spaces replaced by
underscores. Use --stdout to print instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		title, _ := cmd.Flags().GetString("title")
		input, _ := cmd.Flags().GetString("input")
		toStdout, _ := cmd.Flags().GetBool("stdout")
		outDir := cfg.Diagrams.Dir
		if cmd.Flags().Changed("out") {
			outDir, _ = cmd.Flags().GetString("out")
		}

		eng, err := loadEngine(args[0], false)
		if err != nil {
			return err
		}
		if title == "" {
			title = eng.Name()
		}
		if title == "" {
			title = defaultDiagramTitle
		}

		var output, ext string
		switch format {
		case "dot":
			output, ext = graph.GenerateDOT(eng, title), ".dot"
		case "mermaid":
			var overlay *graph.Overlay
			if cmd.Flags().Changed("input") {
				res := trace.Run(eng, input)
				overlay = &graph.Overlay{VisitedStates: res.Path(eng.Start()), CurrentState: res.Final}
			}
			output, ext = graph.GenerateMermaid(eng, overlay), ".mmd"
		default:
			return fmt.Errorf("unknown format %q (want dot or mermaid)", format)
		}

		if toStdout {
			fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		}

		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create diagrams directory: %w", err)
		}
		path := filepath.Join(outDir, graph.DiagramFileName(title)+ext)
		if err := os.WriteFile(path, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write diagram: %w", err)
		}
		logger.Debug("diagram written", "path", path, "format", format)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringP("format", "f", "dot", "Diagram format: dot or mermaid")
	graphCmd.Flags().StringP("out", "o", "diagrams", "Directory to write the diagram to")
	graphCmd.Flags().StringP("title", "t", "", "Diagram title (default: the automaton name)")
	graphCmd.Flags().String("input", "", "Highlight the path taken by this input (mermaid only)")
	graphCmd.Flags().Bool("stdout", false, "Print the diagram instead of writing a file")
}
