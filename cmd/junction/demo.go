package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anggasct/junction"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demonstration flow",
	Long: `Runs the full demonstration: prints the initial state, executes the
standard signal sequence, attempts a conflicting green, and shows the tail
of the merged change history.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	controller, closeStore, err := newController()
	if err != nil {
		return err
	}
	defer closeStore()

	fmt.Println("Initial state:")
	printState(controller)

	fmt.Println("\nExecuting standard sequence...")
	if err := controller.ExecuteSequence(); err != nil {
		return err
	}
	printState(controller)

	fmt.Println("\nAttempting conflicting change (NORTH green while EAST/WEST green):")
	if err := controller.ChangeLight(junction.North, junction.Green); err != nil {
		fmt.Println("  prevented:", err)
	} else {
		fmt.Println("  unexpected: change was accepted")
	}

	full := controller.FullHistory()
	fmt.Printf("\nTotal state changes: %d\n", len(full))
	tail := full
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}
	for _, change := range tail {
		fmt.Printf("  %s  %s: %s\n",
			change.Timestamp.Format("15:04:05"), change.Direction, change.Color)
	}

	return nil
}

func printState(controller *junction.Controller) {
	state := controller.CurrentState()
	for _, direction := range junction.Directions() {
		fmt.Printf("  %s: %s\n", direction, state[direction])
	}
}
