package tui

import (
	"math"

	"github.com/periodica/orbsim/internal/geom"
)

const nearPlane = 0.1

// Camera projects world points onto the braille canvas with a single
// perspective divide. Rotation goes through a geom.Backend, so the view
// exercises whichever vector implementation is selected.
type Camera struct {
	RotX, RotY float64
	Distance   float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 4, Zoom: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.25) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.2, c.Zoom/1.25) }

func (c *Camera) matrix(vb geom.Backend) geom.Mat3 {
	return vb.MulMat(vb.RotationY(c.RotY), vb.RotationX(c.RotX))
}

// Project maps a rotated view-space point to pixel coordinates. Points at
// unit radius fill about a third of the smaller canvas dimension before
// zoom, which keeps whole clouds on screen while they spin.
func (c *Camera) Project(q geom.Vec3, pw, ph int) (int, int, bool) {
	if q.Z >= c.Distance-nearPlane {
		return 0, 0, false
	}
	persp := c.Distance / (c.Distance - q.Z)
	scale := c.Zoom * math.Min(float64(pw), float64(ph)) / 3
	px := pw/2 + int(q.X*persp*scale)
	py := ph/2 - int(q.Y*persp*scale)
	return px, py, px >= 0 && px < pw && py >= 0 && py < ph
}

// RenderPoints rotates, projects and plots a point cloud. maxExtent is
// the world radius mapped to unit view space; zero or negative falls back
// to 1.
func RenderPoints(c *Canvas, vb geom.Backend, cam *Camera, points []geom.Vec3, maxExtent float64) {
	if c == nil || cam == nil || len(points) == 0 {
		return
	}
	if maxExtent <= 0 {
		maxExtent = 1
	}
	rot := cam.matrix(vb)
	pw, ph := c.PixelWidth(), c.PixelHeight()
	inv := 1 / maxExtent
	for _, p := range points {
		q := vb.Apply(rot, geom.Vec3{X: p.X * inv, Y: p.Y * inv, Z: p.Z * inv})
		if px, py, ok := cam.Project(q, pw, ph); ok {
			c.Set(px, py)
		}
	}
}
