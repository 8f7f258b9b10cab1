package tui

import (
	"math"
	"testing"

	"github.com/periodica/orbsim/internal/geom"
)

func TestCamera_ProjectOriginCenters(t *testing.T) {
	cam := NewCamera()
	px, py, ok := cam.Project(geom.Vec3{}, 112, 88)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if px != 56 || py != 44 {
		t.Fatalf("origin projected to (%d,%d), want canvas center (56,44)", px, py)
	}
}

func TestCamera_ProjectCullsBehindCamera(t *testing.T) {
	cam := NewCamera()
	if _, _, ok := cam.Project(geom.Vec3{Z: cam.Distance}, 112, 88); ok {
		t.Fatal("point at the camera plane should be culled")
	}
}

func TestCamera_PerspectiveShrinksWithDepth(t *testing.T) {
	cam := NewCamera()
	nearX, _, ok := cam.Project(geom.Vec3{X: 1, Z: 1}, 112, 88)
	if !ok {
		t.Fatal("near point should be visible")
	}
	farX, _, ok := cam.Project(geom.Vec3{X: 1, Z: -1}, 112, 88)
	if !ok {
		t.Fatal("far point should be visible")
	}
	if nearX <= farX {
		t.Fatalf("near point at x=%d should project farther out than far point at x=%d", nearX, farX)
	}
}

func TestCamera_ZoomClamps(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Fatalf("zoom %g exceeds cap", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.2 {
		t.Fatalf("zoom %g below floor", cam.Zoom)
	}
}

func TestRenderPoints_PlotsCloud(t *testing.T) {
	c := NewCanvas(20, 10)
	pts := []geom.Vec3{
		{X: 1}, {Y: 1}, {Z: -1},
		{X: -0.5, Y: 0.2, Z: 0.3},
	}
	RenderPoints(c, geom.NewPureBackend(), NewCamera(), pts, 1)

	set := 0
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			set++
		}
	}
	if set == 0 {
		t.Fatal("expected pixels set")
	}
}

func TestRenderPoints_RotationChangesProjection(t *testing.T) {
	vb := geom.NewPureBackend()
	pts := []geom.Vec3{{X: 0.9}}

	a := NewCanvas(20, 10)
	RenderPoints(a, vb, NewCamera(), pts, 1)

	rotated := NewCamera()
	rotated.RotateY(math.Pi / 2)
	b := NewCanvas(20, 10)
	RenderPoints(b, vb, rotated, pts, 1)

	if a.String() == b.String() {
		t.Fatal("quarter turn should move the projected point")
	}
}

func TestRenderPoints_ZeroExtentFallsBack(t *testing.T) {
	c := NewCanvas(20, 10)
	RenderPoints(c, geom.NewPureBackend(), NewCamera(), []geom.Vec3{{X: 0.5}}, 0)

	set := 0
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			set++
		}
	}
	if set != 1 {
		t.Fatalf("got %d cells set, want 1", set)
	}
}
