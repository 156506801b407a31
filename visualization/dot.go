// Package visualization renders intersection snapshots as Graphviz DOT.
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/anggasct/junction"
)

// DOTGenerator generates Graphviz DOT representations of an intersection
// snapshot: one node per direction filled with its current color, and one
// edge per conflict pair.
type DOTGenerator struct {
	snapshot map[junction.Direction]junction.LightColor
	options  DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowConflictEdges bool
	RankDirection     string // "TB", "LR", "BT", "RL"
	NodeShape         string
	ConflictEdgeStyle string
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowConflictEdges: true,
		RankDirection:     "TB",
		NodeShape:         "circle",
		ConflictEdgeStyle: "dashed",
	}
}

// NewDOTGenerator creates a new DOT generator for the given snapshot
func NewDOTGenerator(snapshot map[junction.Direction]junction.LightColor, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		snapshot: snapshot,
		options:  opts,
	}
}

// Generate creates a DOT representation of the intersection
func (g *DOTGenerator) Generate() (string, error) {
	var dot strings.Builder

	dot.WriteString("graph Intersection {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  node [shape=%s style=filled];\n\n", g.options.NodeShape))

	g.generateDirections(&dot)
	if g.options.ShowConflictEdges {
		g.generateConflictEdges(&dot)
	}

	dot.WriteString("}\n")

	return dot.String(), nil
}

// generateDirections generates one DOT node per direction
func (g *DOTGenerator) generateDirections(dot *strings.Builder) {
	dot.WriteString("  // Directions\n")

	for _, direction := range junction.Directions() {
		color, ok := g.snapshot[direction]
		if !ok {
			continue
		}
		dot.WriteString(fmt.Sprintf("  \"%s\" [fillcolor=%s label=\"%s\\n%s\"];\n",
			direction, fillColorFor(color), direction, color))
	}
	dot.WriteString("\n")
}

// generateConflictEdges generates one undirected edge per conflict pair
func (g *DOTGenerator) generateConflictEdges(dot *strings.Builder) {
	dot.WriteString("  // Conflict pairs\n")

	seen := make(map[string]bool)
	for _, direction := range junction.Directions() {
		for _, conflict := range junction.ConflictSet(direction) {
			key := edgeKey(direction, conflict)
			if seen[key] {
				continue
			}
			seen[key] = true
			dot.WriteString(fmt.Sprintf("  \"%s\" -- \"%s\" [style=%s];\n",
				direction, conflict, g.options.ConflictEdgeStyle))
		}
	}
}

// edgeKey builds an order-independent key for a conflict pair
func edgeKey(a, b junction.Direction) string {
	if b < a {
		a, b = b, a
	}
	return a.String() + "--" + b.String()
}

// fillColorFor maps a light color to a Graphviz fill color
func fillColorFor(color junction.LightColor) string {
	switch color {
	case junction.Green:
		return "palegreen"
	case junction.Yellow:
		return "khaki"
	default:
		return "lightcoral"
	}
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// SVGGenerator generates SVG representations by calling Graphviz
type SVGGenerator struct {
	dotGenerator *DOTGenerator
}

// NewSVGGenerator creates a new SVG generator
func NewSVGGenerator(snapshot map[junction.Direction]junction.LightColor, options ...DOTOptions) *SVGGenerator {
	return &SVGGenerator{
		dotGenerator: NewDOTGenerator(snapshot, options...),
	}
}

// Generate creates an SVG representation of the intersection
func (g *SVGGenerator) Generate() (string, error) {
	dotContent, err := g.dotGenerator.Generate()
	if err != nil {
		return "", err
	}

	// Use Graphviz dot command to convert DOT to SVG
	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}

// GenerateSVG creates an SVG representation of the intersection
// This is a convenience method on DOTGenerator for compatibility
func (g *DOTGenerator) GenerateSVG() (string, error) {
	svgGen := &SVGGenerator{dotGenerator: g}
	return svgGen.Generate()
}
