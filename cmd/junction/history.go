package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/anggasct/junction"
)

var historyDirection string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Dump the persisted change history",
	Long: `Prints the change history from the configured store, merged across
all directions and sorted by timestamp. Use --direction to restrict the
output to a single approach.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyDirection, "direction", "d", "", "restrict to one direction (NORTH, SOUTH, EAST, WEST)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	controller, closeStore, err := newController()
	if err != nil {
		return err
	}
	defer closeStore()

	var changes []junction.StateChange
	if historyDirection != "" {
		direction, err := junction.ParseDirection(historyDirection)
		if err != nil {
			return err
		}
		changes, err = controller.History(direction)
		if err != nil {
			return err
		}
	} else {
		changes = controller.FullHistory()
	}

	if len(changes) == 0 {
		fmt.Println("No recorded changes.")
		return nil
	}

	for _, change := range changes {
		fmt.Printf("%s  %-5s -> %s  (%s)\n",
			change.Timestamp.Format(time.RFC3339), change.Direction, change.Color, change.ID)
	}
	return nil
}
