package junction

// conflictTable maps each direction to the directions it may never share
// green with. The table is symmetric: the north-south axis and the east-west
// axis are mutually exclusive, directions on the same axis are compatible.
var conflictTable = map[Direction][]Direction{
	North: {East, West},
	South: {East, West},
	East:  {North, South},
	West:  {North, South},
}

// ConflictSet returns the directions that may never hold green together with
// the given direction
func ConflictSet(direction Direction) []Direction {
	conflicts := conflictTable[direction]
	set := make([]Direction, len(conflicts))
	copy(set, conflicts)
	return set
}

// WouldConflict reports whether setting the given direction to green would
// conflict with the colors in the snapshot. Pure function, no side effects.
func WouldConflict(direction Direction, snapshot map[Direction]LightColor) bool {
	for _, conflict := range conflictTable[direction] {
		if snapshot[conflict] == Green {
			return true
		}
	}
	return false
}

// ConflictingWith returns the directions in the given direction's conflict
// set that currently hold green in the snapshot, in canonical order
func ConflictingWith(direction Direction, snapshot map[Direction]LightColor) []Direction {
	var conflicting []Direction
	for _, conflict := range conflictTable[direction] {
		if snapshot[conflict] == Green {
			conflicting = append(conflicting, conflict)
		}
	}
	return conflicting
}
