package export

import (
	"strings"
	"testing"

	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/nucleus"
)

func TestPointsSVG(t *testing.T) {
	pts := []geom.Vec3{{X: 1}, {Y: -0.5, Z: 0.2}, {Z: -1}}
	out := PointsSVG(pts, 640, 640, "#62d0ff")

	if !strings.HasPrefix(out, `<?xml version="1.0"`) {
		t.Fatal("missing xml prologue")
	}
	if !strings.Contains(out, `viewBox="0 0 640 640"`) {
		t.Fatal("missing viewBox")
	}
	if got := strings.Count(out, "<circle"); got != len(pts) {
		t.Fatalf("got %d circles, want %d", got, len(pts))
	}
	if !strings.Contains(out, `<g fill="#62d0ff">`) {
		t.Fatal("missing fill group")
	}
	if !strings.HasSuffix(out, "</svg>") {
		t.Fatal("unterminated document")
	}
}

func TestPointsSVG_Empty(t *testing.T) {
	if out := PointsSVG(nil, 640, 640, "#fff"); out != "" {
		t.Fatalf("empty input should render nothing, got %q", out)
	}
}

func TestPointsSVG_PaintsFarToNear(t *testing.T) {
	pts := []geom.Vec3{
		{X: 0.5, Z: 1},
		{X: -0.5, Z: -1},
	}
	out := PointsSVG(pts, 640, 640, "#fff")

	// extent 1 and scale 288 put the near point at cx=464, far at cx=176
	far := strings.Index(out, `cx="176.0"`)
	near := strings.Index(out, `cx="464.0"`)
	if far == -1 || near == -1 {
		t.Fatalf("projected circles missing:\n%s", out)
	}
	if far > near {
		t.Fatal("far point should be drawn before the near point")
	}
}

func TestNucleonsSVG_Colors(t *testing.T) {
	ns := []nucleus.Nucleon{
		{Pos: geom.Vec3{X: 1}, Proton: true},
		{Pos: geom.Vec3{X: -1}},
	}
	out := NucleonsSVG(ns, 400, 400)

	if strings.Count(out, "<circle") != 2 {
		t.Fatal("want one circle per nucleon")
	}
	if !strings.Contains(out, protonFill) || !strings.Contains(out, neutronFill) {
		t.Fatal("nucleon types should use distinct fills")
	}
}

func TestNucleonsSVG_Empty(t *testing.T) {
	if out := NucleonsSVG(nil, 400, 400); out != "" {
		t.Fatal("empty input should render nothing")
	}
}

func TestCurveSVG(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0.5, 2}
	out := CurveSVG(xs, ys, 800, 400, "#00ff88")

	if !strings.Contains(out, `stroke="#00ff88"`) {
		t.Fatal("missing stroke")
	}
	if !strings.Contains(out, `d="M`) {
		t.Fatal("path should start with a move")
	}
	if got := strings.Count(out, " L"); got != len(xs)-1 {
		t.Fatalf("got %d line segments, want %d", got, len(xs)-1)
	}
}

func TestCurveSVG_Degenerate(t *testing.T) {
	if out := CurveSVG([]float64{1}, []float64{1}, 100, 100, "#fff"); out != "" {
		t.Fatal("single point renders nothing")
	}
	if out := CurveSVG([]float64{1, 2}, []float64{1}, 100, 100, "#fff"); out != "" {
		t.Fatal("mismatched lengths render nothing")
	}
}
