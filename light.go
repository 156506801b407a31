package junction

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Direction identifies one of the four approaches of the intersection
type Direction int

const (
	// North approach
	North Direction = iota
	// South approach
	South
	// East approach
	East
	// West approach
	West
)

// Directions returns all directions in their canonical order
func Directions() []Direction {
	return []Direction{North, South, East, West}
}

// IsValid reports whether d is one of the four defined directions
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// String returns the name of the direction
func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case South:
		return "SOUTH"
	case East:
		return "EAST"
	case West:
		return "WEST"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a direction name to a Direction
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "NORTH":
		return North, nil
	case "SOUTH":
		return South, nil
	case "EAST":
		return East, nil
	case "WEST":
		return West, nil
	default:
		return 0, NewValidationError("direction", s, "unknown direction")
	}
}

// MarshalText implements encoding.TextMarshaler
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, NewValidationError("direction", d.String(), "unknown direction")
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// LightColor represents the color a traffic light shows
type LightColor int

const (
	// Red means stop
	Red LightColor = iota
	// Yellow means clear the intersection
	Yellow
	// Green means go
	Green
)

// IsValid reports whether c is one of the three defined colors
func (c LightColor) IsValid() bool {
	return c >= Red && c <= Green
}

// String returns the name of the color
func (c LightColor) String() string {
	switch c {
	case Red:
		return "RED"
	case Yellow:
		return "YELLOW"
	case Green:
		return "GREEN"
	default:
		return fmt.Sprintf("LightColor(%d)", int(c))
	}
}

// ParseLightColor converts a color name to a LightColor
func ParseLightColor(s string) (LightColor, error) {
	switch s {
	case "RED":
		return Red, nil
	case "YELLOW":
		return Yellow, nil
	case "GREEN":
		return Green, nil
	default:
		return 0, NewValidationError("color", s, "unknown color")
	}
}

// MarshalText implements encoding.TextMarshaler
func (c LightColor) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, NewValidationError("color", c.String(), "unknown color")
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *LightColor) UnmarshalText(text []byte) error {
	parsed, err := ParseLightColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// StateChange is an immutable record of one accepted color change
type StateChange struct {
	ID        string     `json:"id"`
	Direction Direction  `json:"direction"`
	Color     LightColor `json:"color"`
	Timestamp time.Time  `json:"timestamp"`
}

// newStateChange creates a change record with a unique ID
func newStateChange(direction Direction, color LightColor, at time.Time) StateChange {
	return StateChange{
		ID:        uuid.New().String(),
		Direction: direction,
		Color:     color,
		Timestamp: at,
	}
}

// TrafficLight is the mutable entity for a single approach. Its direction is
// fixed at creation; its color changes only through the controller, and every
// accepted change is appended to an ordered history.
type TrafficLight struct {
	direction Direction
	color     LightColor
	history   []StateChange
}

// NewTrafficLight creates a light for the given direction, starting at Red
// with an empty history
func NewTrafficLight(direction Direction) *TrafficLight {
	return &TrafficLight{
		direction: direction,
		color:     Red,
	}
}

// Direction returns the approach this light controls
func (l *TrafficLight) Direction() Direction {
	return l.direction
}

// Color returns the current color
func (l *TrafficLight) Color() LightColor {
	return l.color
}

// History returns a copy of the light's change records in chronological order
func (l *TrafficLight) History() []StateChange {
	history := make([]StateChange, len(l.history))
	copy(history, l.history)
	return history
}

// changeColor applies a new color and records it. Only the controller calls
// this, under its lock.
func (l *TrafficLight) changeColor(color LightColor, at time.Time) StateChange {
	l.color = color
	change := newStateChange(l.direction, color, at)
	l.history = append(l.history, change)
	return change
}

// Clone returns a deep copy of the light including its history
func (l *TrafficLight) Clone() *TrafficLight {
	return &TrafficLight{
		direction: l.direction,
		color:     l.color,
		history:   l.History(),
	}
}

// trafficLightJSON is the wire form of a TrafficLight
type trafficLightJSON struct {
	Direction Direction     `json:"direction"`
	Color     LightColor    `json:"color"`
	History   []StateChange `json:"history,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (l *TrafficLight) MarshalJSON() ([]byte, error) {
	return json.Marshal(trafficLightJSON{
		Direction: l.direction,
		Color:     l.color,
		History:   l.history,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (l *TrafficLight) UnmarshalJSON(data []byte) error {
	var wire trafficLightJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	l.direction = wire.Direction
	l.color = wire.Color
	l.history = wire.History
	return nil
}
