// Package scene describes what gets rendered: the ground plane, the one
// selected solid and the light.
package scene

import (
	"fmt"
	"strings"

	"github.com/geofpwhite/asciiray/internal/tracer"
)

// Selection names the solid shown on top of the ground plane.
type Selection int

const (
	Sphere Selection = iota
	Box
	numSelections
)

var selectionNames = [numSelections]string{"sphere", "box"}

func (s Selection) String() string {
	if s < 0 || s >= numSelections {
		return fmt.Sprintf("Selection(%d)", int(s))
	}
	return selectionNames[s]
}

// Next cycles to the following solid, wrapping around.
func (s Selection) Next() Selection { return (s + 1) % numSelections }

// Names lists the selectable solids in cycling order.
func Names() []string { return selectionNames[:] }

// Parse maps a solid name (case insensitive) to its Selection.
func Parse(name string) (Selection, error) {
	for i, n := range selectionNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Selection(i), nil
		}
	}
	return 0, fmt.Errorf("unknown object %q, want one of %s", name, strings.Join(Names(), ", "))
}

// DefaultLight points down and away from the camera.
var DefaultLight = tracer.Vec3{-1, -2, -1}

// Scene is everything a single render reads.
type Scene struct {
	Selected Selection
	Light    tracer.Vec3
	// TrueNormal shades the sphere with its geometric normal instead of
	// the hit point.
	TrueNormal bool
}

func New(sel Selection) Scene {
	return Scene{Selected: sel, Light: DefaultLight}
}

// Ground is the floor plane z = 1, always present.
func Ground() tracer.Primitive { return tracer.Plane(tracer.Vec3{0, 0, -1}) }

// Solid returns the primitive for the current selection.
func (s Scene) Solid() tracer.Primitive {
	switch s.Selected {
	case Box:
		return tracer.Box(tracer.Vec3{1, 1, 1})
	default:
		sp := tracer.Sphere(tracer.Vec3{}, 1)
		sp.TrueNormal = s.TrueNormal
		return sp
	}
}

// Primitives returns the ground followed by the selected solid.
func (s Scene) Primitives() []tracer.Primitive {
	return []tracer.Primitive{Ground(), s.Solid()}
}

// Render draws one frame of s.
func (s Scene) Render(r tracer.Renderer, cols, rows int, angle float64) tracer.Frame {
	return r.Render(cols, rows, angle, s.Light, s.Primitives())
}
