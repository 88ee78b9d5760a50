package tracer

import "strings"

// GlyphAspect is the width/height ratio of a monospace glyph cell.
const GlyphAspect = 663.0 / 1100.0

// Frame is a cols x rows glyph grid stored row-major: cell (i, j) is at
// Cells[i+j*Cols].
type Frame struct {
	Cols, Rows int
	Cells      []rune
}

func NewFrame(cols, rows int) Frame {
	if cols <= 0 || rows <= 0 {
		return Frame{}
	}
	return Frame{Cols: cols, Rows: rows, Cells: make([]rune, cols*rows)}
}

func (f Frame) At(i, j int) rune { return f.Cells[i+j*f.Cols] }

// Row returns row j as a string.
func (f Frame) Row(j int) string {
	return string(f.Cells[j*f.Cols : (j+1)*f.Cols])
}

func (f Frame) Lines() []string {
	lines := make([]string, f.Rows)
	for j := range lines {
		lines[j] = f.Row(j)
	}
	return lines
}

func (f Frame) String() string { return strings.Join(f.Lines(), "\n") }

// Renderer holds the fixed camera and output settings of a render.
type Renderer struct {
	Camera Vec3 // eye position before rotation, looking down +x
	// Aspect corrects for non square glyph cells; it multiplies the
	// horizontal device coordinate along with cols/rows.
	Aspect    float64
	Intensity float64 // scales raw luminance into palette range
	Yaw       float64 // rotation about Y applied before the Z rotation
	Palette   Palette
}

// DefaultRenderer matches the classic look: camera 3 units back, glyph
// aspect 663/1100, intensity 10.
func DefaultRenderer() Renderer {
	return Renderer{
		Camera:    Vec3{-3, 0, 0},
		Aspect:    GlyphAspect,
		Intensity: 10,
		Palette:   DefaultPalette,
	}
}

// CellRay builds the camera ray through cell (i, j) of a cols x rows grid,
// with the scene rotated by angle radians about Z.
func (r Renderer) CellRay(i, j, cols, rows int, angle float64) Ray {
	uv := Vec3{float64(i), float64(j)}.Div(Vec3{float64(cols), float64(rows)})
	uv = uv.Scale(2).SubScalar(1)
	uv[0] *= float64(cols) / float64(rows) * r.Aspect
	ray := NewRay(r.Camera, Vec3{1, uv[0], uv[1]})
	return ray.RotateY(r.Yaw).RotateZ(angle)
}

// Render shades every cell of a cols x rows grid. light is normalized here;
// a zero light leaves every cell dark.
func (r Renderer) Render(cols, rows int, angle float64, light Vec3, prims []Primitive) Frame {
	f := NewFrame(cols, rows)
	if f.Cells == nil {
		return f
	}
	if light.Len() != 0 {
		light = light.Norm()
	}
	for i := range cols {
		for j := range rows {
			lum := Shade(r.CellRay(i, j, cols, rows, angle), light, prims) * r.Intensity
			f.Cells[i+j*cols] = r.Palette.Glyph(lum)
		}
	}
	return f
}
