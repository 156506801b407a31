// Package junction models a single road intersection's traffic-light
// controller: four directional approaches, a shared light-state map guarded
// by one mutex, and a conflict table that keeps crossing directions from
// ever holding green at the same time.
//
// The Controller is the only writer of light state. It depends on two narrow
// ports: a StateStore for persistence and an EventPublisher for change
// notifications. Concrete adapters for both live under pkg/stores and
// pkg/publishers.
//
// Basic usage:
//
//	store := stores.NewMemoryStore()
//	ctrl, err := junction.NewController(store, junction.NopPublisher{})
//	if err != nil {
//		// ...
//	}
//
//	if err := ctrl.ChangeLight(junction.North, junction.Green); err != nil {
//		// a *ConflictError names the directions currently holding green
//	}
//
// The controller guarantees safety (no conflicting greens), not ordering: a
// light may move between any two colors on request. Cycle discipline such as
// RED to GREEN to YELLOW is the caller's choice; StandardSequence encodes
// the usual one.
package junction
