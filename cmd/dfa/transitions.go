package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/dfa/internal/presentation/graph"
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions FILE",
	Short: "List every transition as \"source -> destination : symbol\"",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := loadEngine(args[0], false)
		if err != nil {
			return err
		}
		return graph.WriteTransitions(cmd.OutOrStdout(), eng)
	},
}

func init() {
	rootCmd.AddCommand(transitionsCmd)
}
