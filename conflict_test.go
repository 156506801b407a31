package junction

import "testing"

func allRed() map[Direction]LightColor {
	snapshot := make(map[Direction]LightColor)
	for _, direction := range Directions() {
		snapshot[direction] = Red
	}
	return snapshot
}

func TestWouldConflict_AllRed(t *testing.T) {
	snapshot := allRed()

	for _, direction := range Directions() {
		if WouldConflict(direction, snapshot) {
			t.Errorf("Expected no conflict for %s with all lights red", direction)
		}
	}
}

func TestWouldConflict_CrossingAxis(t *testing.T) {
	snapshot := allRed()
	snapshot[North] = Green

	if !WouldConflict(East, snapshot) {
		t.Error("Expected EAST to conflict with NORTH green")
	}
	if !WouldConflict(West, snapshot) {
		t.Error("Expected WEST to conflict with NORTH green")
	}
	if WouldConflict(South, snapshot) {
		t.Error("Expected SOUTH to be compatible with NORTH green")
	}
}

func TestWouldConflict_NonGreenNeverConflicts(t *testing.T) {
	snapshot := allRed()
	snapshot[North] = Yellow

	for _, direction := range Directions() {
		if WouldConflict(direction, snapshot) {
			t.Errorf("Expected no conflict for %s with NORTH yellow", direction)
		}
	}
}

func TestConflictTable_Symmetric(t *testing.T) {
	for _, a := range Directions() {
		for _, b := range ConflictSet(a) {
			found := false
			for _, back := range ConflictSet(b) {
				if back == a {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected conflict table symmetric: %s in ConflictSet(%s)", a, b)
			}
		}
	}
}

func TestConflictSet_ReturnsCopy(t *testing.T) {
	set := ConflictSet(North)
	set[0] = North

	fresh := ConflictSet(North)
	if fresh[0] == North {
		t.Error("Expected ConflictSet to return a copy of the table row")
	}
}

func TestConflictingWith_NamesGreens(t *testing.T) {
	snapshot := allRed()
	snapshot[North] = Green
	snapshot[South] = Green

	conflicting := ConflictingWith(East, snapshot)
	if len(conflicting) != 2 {
		t.Fatalf("Expected 2 conflicting directions, got %d", len(conflicting))
	}
	if conflicting[0] != North || conflicting[1] != South {
		t.Errorf("Expected [NORTH SOUTH], got %v", conflicting)
	}

	if got := ConflictingWith(South, snapshot); len(got) != 0 {
		t.Errorf("Expected no conflicts for SOUTH, got %v", got)
	}
}
