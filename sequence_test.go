package junction

import (
	"testing"
)

func TestStandardSequence_Phases(t *testing.T) {
	sequence := StandardSequence()

	if len(sequence) != 8 {
		t.Fatalf("Expected 8 phases, got %d", len(sequence))
	}

	expected := Sequence{
		{North, Green}, {South, Green},
		{North, Yellow}, {South, Yellow},
		{North, Red}, {South, Red},
		{East, Green}, {West, Green},
	}
	for i, phase := range expected {
		if sequence[i] != phase {
			t.Errorf("Phase %d: expected %s/%s, got %s/%s", i,
				phase.Direction, phase.Color,
				sequence[i].Direction, sequence[i].Color)
		}
	}
}

// Scenario: a fresh controller runs the standard sequence and ends with
// north-south red and east-west green, recording exactly 8 changes.
func TestController_ExecuteSequence(t *testing.T) {
	controller, _, publisher := CreateTestController(t)

	if err := controller.ExecuteSequence(); err != nil {
		t.Fatalf("Expected sequence to succeed, got: %v", err)
	}

	AssertColor(t, controller, North, Red)
	AssertColor(t, controller, South, Red)
	AssertColor(t, controller, East, Green)
	AssertColor(t, controller, West, Green)

	if len(publisher.Published()) != 8 {
		t.Errorf("Expected 8 published changes, got %d", len(publisher.Published()))
	}

	northColors := historyColors(t, controller, North)
	if !equalColors(northColors, []LightColor{Green, Yellow, Red}) {
		t.Errorf("Expected NORTH trace GREEN,YELLOW,RED, got %v", northColors)
	}
	southColors := historyColors(t, controller, South)
	if !equalColors(southColors, []LightColor{Green, Yellow, Red}) {
		t.Errorf("Expected SOUTH trace GREEN,YELLOW,RED, got %v", southColors)
	}
	if !equalColors(historyColors(t, controller, East), []LightColor{Green}) {
		t.Error("Expected EAST trace GREEN")
	}
	if !equalColors(historyColors(t, controller, West), []LightColor{Green}) {
		t.Error("Expected WEST trace GREEN")
	}
}

func TestController_ExecuteSequencePaused(t *testing.T) {
	controller, store, publisher := CreateTestController(t)

	controller.Pause()
	err := controller.ExecuteSequence()
	if !IsPausedError(err) {
		t.Fatalf("Expected paused error, got: %v", err)
	}

	if len(publisher.Published()) != 0 || store.Saves != 0 {
		t.Error("Expected no phase applied while paused")
	}
}

func TestController_RunSequenceStopsOnConflict(t *testing.T) {
	controller, _, _ := CreateTestController(t)

	if err := controller.ChangeLight(East, Green); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// First phase of the standard sequence asks NORTH for green, which
	// conflicts with EAST
	err := controller.ExecuteSequence()
	if !IsConflictError(err) {
		t.Fatalf("Expected conflict error, got: %v", err)
	}

	AssertColor(t, controller, North, Red)
	AssertColor(t, controller, East, Green)
}

func TestController_RunSequencePartialProgressKept(t *testing.T) {
	controller, _, _ := CreateTestController(t)

	// NORTH's green succeeds before EAST's request conflicts with it
	sequence := Sequence{
		{North, Green},
		{East, Green},
	}
	err := controller.RunSequence(sequence)
	if !IsConflictError(err) {
		t.Fatalf("Expected conflict error, got: %v", err)
	}

	AssertColor(t, controller, North, Green)
	AssertColor(t, controller, East, Red)
}

func TestController_RunSequenceValidatesUpFront(t *testing.T) {
	controller, store, _ := CreateTestController(t)

	sequence := Sequence{
		{North, Green},
		{Direction(9), Red},
	}
	err := controller.RunSequence(sequence)
	if !IsValidationError(err) {
		t.Fatalf("Expected validation error, got: %v", err)
	}

	// Validation happens before any phase runs
	AssertColor(t, controller, North, Red)
	if store.Saves != 0 {
		t.Errorf("Expected no saves, got %d", store.Saves)
	}
}

func historyColors(t *testing.T, controller *Controller, direction Direction) []LightColor {
	t.Helper()

	history, err := controller.History(direction)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	colors := make([]LightColor, len(history))
	for i, change := range history {
		colors[i] = change.Color
	}
	return colors
}

func equalColors(got, expected []LightColor) bool {
	if len(got) != len(expected) {
		return false
	}
	for i := range got {
		if got[i] != expected[i] {
			return false
		}
	}
	return true
}
