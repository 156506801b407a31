package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anggasct/junction/visualization"
)

var graphOutput string

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Emit the intersection as Graphviz DOT",
	Long: `Renders the current state of the configured store as a Graphviz
graph: one node per direction colored by its light, one edge per conflict
pair. Writes to stdout unless --output is given.`,
	RunE: runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "write DOT to a file instead of stdout")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) error {
	controller, closeStore, err := newController()
	if err != nil {
		return err
	}
	defer closeStore()

	generator := visualization.NewDOTGenerator(controller.CurrentState())

	if graphOutput != "" {
		return generator.GenerateToFile(graphOutput)
	}

	content, err := generator.Generate()
	if err != nil {
		return err
	}
	fmt.Print(content)
	return nil
}
