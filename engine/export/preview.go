package export

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/spaghettifunk/meshforge/engine/math"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"golang.org/x/exp/slices"
	"golang.org/x/image/vector"
)

// PreviewOptions configures RenderPreview. Zero fields take the defaults
// of DefaultPreviewOptions.
type PreviewOptions struct {
	Size int
	// Yaw and Pitch place the orthographic camera, in degrees.
	Yaw   float32
	Pitch float32
	// Background fills the image; Base tints the surfaces.
	Background color.RGBA
	Base       color.RGBA
	// LineWidth is the pixel width of line meshes.
	LineWidth float32
}

func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Size:       512,
		Yaw:        35,
		Pitch:      25,
		Background: color.RGBA{R: 18, G: 18, B: 24, A: 255},
		Base:       color.RGBA{R: 120, G: 190, B: 255, A: 255},
		LineWidth:  1.5,
	}
}

func (o PreviewOptions) withDefaults() PreviewOptions {
	d := DefaultPreviewOptions()
	if o.Size <= 0 {
		o.Size = d.Size
	}
	if o.Yaw == 0 && o.Pitch == 0 {
		o.Yaw, o.Pitch = d.Yaw, d.Pitch
	}
	if o.Background == (color.RGBA{}) {
		o.Background = d.Background
	}
	if o.Base == (color.RGBA{}) {
		o.Base = d.Base
	}
	if o.LineWidth <= 0 {
		o.LineWidth = d.LineWidth
	}
	return o
}

// projected is one screen space polygon waiting to be painted.
type projected struct {
	points [4][2]float32
	n      int
	depth  float32
	color  color.RGBA
}

/**
 * @brief Renders an orthographic preview of m. Triangles facing away from
 * the camera are culled, the rest are painted back to front with a Lambert
 * shade scaled by the vertex alpha. Line meshes are drawn as thin quads.
 * @param m The mesh to render.
 * @param opts The camera and colours.
 * @return The rendered image.
 */
func RenderPreview(m *mesh.Mesh, opts PreviewOptions) *image.RGBA {
	opts = opts.withDefaults()
	size := opts.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if m == nil || m.IsEmpty() {
		return img
	}

	bounds := m.Bounds()
	center := bounds.Min.Add(bounds.Max).MulScalar(0.5)
	radius := math.Max(bounds.Max.Sub(bounds.Min).Length()/2, math.K_GEOMETRY_EPSILON)
	yaw, pitch := math.DegToRad(opts.Yaw), math.DegToRad(opts.Pitch)
	eyeDir := math.NewVec3(
		math32.Cos(pitch)*math32.Sin(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch)*math32.Cos(yaw))
	view := math.NewMat4LookAt(center.Add(eyeDir.MulScalar(radius*3)), center, math.NewVec3Up())
	light := eyeDir.Add(math.NewVec3(0.3, 0.6, 0)).Normalized()

	scale := float32(size) * 0.45 / radius
	half := float32(size) / 2
	toScreen := func(p math.Vec3) ([2]float32, float32) {
		c := p.Transform(view)
		return [2]float32{half + c.X*scale, half - c.Y*scale}, c.Z
	}
	shade := func(n math.Vec3, alpha float32) color.RGBA {
		k := 0.25 + 0.75*math.Max(0, n.Dot(light))
		a := math.Clamp(alpha, 0, 1)
		return color.RGBA{
			R: uint8(float32(opts.Base.R) * k * a),
			G: uint8(float32(opts.Base.G) * k * a),
			B: uint8(float32(opts.Base.B) * k * a),
			A: uint8(255 * a),
		}
	}

	var polys []projected
	m.ForEachTriangle(func(a, b, c mesh.Vertex) {
		n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		if n.LengthSquared() < math.K_FLOAT_EPSILON {
			return
		}
		n = n.Normalized()
		if n.Dot(eyeDir) <= 0 {
			return
		}
		pa, za := toScreen(a.Position)
		pb, zb := toScreen(b.Position)
		pc, zc := toScreen(c.Position)
		polys = append(polys, projected{
			points: [4][2]float32{pa, pb, pc},
			n:      3,
			depth:  (za + zb + zc) / 3,
			color:  shade(n, (a.Alpha+b.Alpha+c.Alpha)/3),
		})
	})
	m.ForEachLine(func(a, b mesh.Vertex) {
		pa, za := toScreen(a.Position)
		pb, zb := toScreen(b.Position)
		dx, dy := pb[0]-pa[0], pb[1]-pa[1]
		l := math32.Sqrt(dx*dx + dy*dy)
		if l < math.K_GEOMETRY_EPSILON {
			return
		}
		ox, oy := -dy/l*opts.LineWidth/2, dx/l*opts.LineWidth/2
		polys = append(polys, projected{
			points: [4][2]float32{
				{pa[0] + ox, pa[1] + oy}, {pb[0] + ox, pb[1] + oy},
				{pb[0] - ox, pb[1] - oy}, {pa[0] - ox, pa[1] - oy},
			},
			n:     4,
			depth: (za + zb) / 2,
			color: shade(eyeDir, (a.Alpha+b.Alpha)/2),
		})
	})

	// Camera space z grows towards the eye, so paint ascending.
	slices.SortStableFunc(polys, func(a, b projected) int { return cmp.Compare(a.depth, b.depth) })

	r := vector.NewRasterizer(size, size)
	for _, p := range polys {
		r.Reset(size, size)
		r.MoveTo(p.points[0][0], p.points[0][1])
		for k := 1; k < p.n; k++ {
			r.LineTo(p.points[k][0], p.points[k][1])
		}
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(p.color), image.Point{})
	}
	return img
}

// WritePNG renders m and encodes the preview as PNG.
func WritePNG(w io.Writer, m *mesh.Mesh, opts PreviewOptions) error {
	return png.Encode(w, RenderPreview(m, opts))
}
