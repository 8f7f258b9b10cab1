// Package tui is the interactive terminal front end: braille-rendered
// orbital density slices, sampled electron clouds and nucleon layouts
// with live backend switching, plus static scatter rendering for the
// non-interactive commands.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/periodica/orbsim/internal/backend"
	"github.com/periodica/orbsim/internal/config"
	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/nucleus"
	"github.com/periodica/orbsim/internal/orbital"
)

const (
	canvasWidth  = 56
	canvasHeight = 22
	maxElement   = 92
	spinStep     = 0.045

	cloudSamplePoints = 1200
	defaultSeed       = 42
)

// viewMode selects what the canvas shows.
type viewMode int

const (
	viewSlice viewMode = iota
	viewCloud
	viewNucleus
)

func (v viewMode) String() string {
	switch v {
	case viewCloud:
		return "sampled cloud"
	case viewNucleus:
		return "nucleus"
	default:
		return "density slice"
	}
}

// Ordered 4x4 dither thresholds on a 16-step ramp. Dithering keeps the
// binary braille pixels readable across the density falloff.
var bayer = [4][4]float64{
	{0.5, 8.5, 2.5, 10.5},
	{12.5, 4.5, 14.5, 6.5},
	{3.5, 11.5, 1.5, 9.5},
	{15.5, 7.5, 13.5, 5.5},
}

type TickMsg time.Time

// cloudKey and nucKey identify the parameters the cached point sets were
// built from, so stale caches regenerate on the next key press.
type cloudKey struct {
	idx      int
	element  int
	screened bool
	seed     int64
}

type nucKey struct {
	element int
	model   nucleus.Model
	seed    int64
}

// Model drives the explorer. The slice view renders one orbital as a
// density cross-section through the z axis, with the slice plane spinning
// about z so lobed orbitals show their full shape. The cloud and nucleus
// views rotate seeded point sets in front of a perspective camera.
type Model struct {
	reg    *backend.Registry
	engine *orbital.Engine

	orbitals []orbital.Orbital
	idx      int
	element  int
	screened bool

	view viewMode
	cam  *Camera
	seed int64

	cloud       []geom.Vec3
	cloudFrom   cloudKey
	cloudExtent float64

	gen       *nucleus.Generator
	nucModel  nucleus.Model
	nuc       []geom.Vec3
	nucFrom   nucKey
	nucExtent float64

	slicePhi float64
	spinning bool
	zoom     float64

	canvas *Canvas

	report     *backend.Report
	tolerance  float64
	showReport bool
	showHelp   bool
	status     string
}

func NewModel(reg *backend.Registry, cfg *config.Config) Model {
	m := Model{
		reg:       reg,
		engine:    orbital.NewEngine(reg),
		orbitals:  orbital.Orbitals(4),
		element:   1,
		cam:       NewCamera(),
		seed:      defaultSeed,
		gen:       nucleus.NewGenerator(),
		nucModel:  nucleus.ModelLiquidDrop,
		spinning:  true,
		zoom:      1,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		tolerance: config.DefaultTolerance,
	}
	m.cam.RotX = -0.35
	if cfg != nil {
		if cfg.Orbital.Z >= 1 && cfg.Orbital.Z <= maxElement {
			m.element = cfg.Orbital.Z
		}
		if cfg.Tolerance > 0 {
			m.tolerance = cfg.Tolerance
		}
		if cfg.Seed != 0 {
			m.seed = cfg.Seed
		}
		m.screened = cfg.Orbital.Screened
		m.gen = cfg.Generator()
		m.nucModel = nucleus.Model(cfg.Nucleus.Model)
		for i, o := range m.orbitals {
			if o.N == cfg.Orbital.N && o.L == cfg.Orbital.L && o.M == cfg.Orbital.M {
				m.idx = i
				break
			}
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.spinning = !m.spinning
		case "1":
			m.view = viewSlice
		case "2":
			m.view = viewCloud
		case "3":
			m.view = viewNucleus
		case "tab", "right", "l":
			m.idx = (m.idx + 1) % len(m.orbitals)
		case "shift+tab", "left", "h":
			m.idx = (m.idx + len(m.orbitals) - 1) % len(m.orbitals)
		case "z", "up", "k":
			if m.element < maxElement {
				m.element++
			}
		case "Z", "down", "j":
			if m.element > 1 {
				m.element--
			}
		case "s":
			m.screened = !m.screened
		case "n":
			m.seed++
		case "d":
			if m.nucModel == nucleus.ModelLiquidDrop {
				m.nucModel = nucleus.ModelShell
			} else {
				m.nucModel = nucleus.ModelLiquidDrop
			}
		case "m":
			m.toggleBackend(backend.SubsystemMath)
		case "v":
			m.toggleBackend(backend.SubsystemVector)
		case "c":
			if m.report == nil {
				m.report = m.reg.Validate(m.tolerance)
			}
			m.showReport = !m.showReport
		case "C":
			m.report = m.reg.Validate(m.tolerance)
			m.showReport = true
		case "+", "=":
			if m.view == viewSlice {
				m.zoom *= 1.25
			} else {
				m.cam.ZoomIn()
			}
		case "-", "_":
			if m.view == viewSlice {
				if m.zoom > 0.2 {
					m.zoom /= 1.25
				}
			} else {
				m.cam.ZoomOut()
			}
		case "r":
			m.slicePhi = 0
			m.zoom = 1
			m.cam.RotX = -0.35
			m.cam.RotY = 0
			m.cam.Zoom = 1
			m.status = ""
		case "?":
			m.showHelp = !m.showHelp
		}
		m.refreshPoints()
	case TickMsg:
		if m.spinning {
			m.slicePhi += spinStep
			if m.slicePhi > 2*math.Pi {
				m.slicePhi -= 2 * math.Pi
			}
			m.cam.RotateY(spinStep)
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// refreshPoints regenerates a cached point set when the view needs it and
// the parameters feeding it changed. Sampling happens here, on key
// presses, never per frame.
func (m *Model) refreshPoints() {
	switch m.view {
	case viewCloud:
		key := cloudKey{idx: m.idx, element: m.element, screened: m.screened, seed: m.seed}
		if m.cloud != nil && key == m.cloudFrom {
			return
		}
		o := m.orbitals[m.idx]
		Z := m.charge(o)
		pts, err := m.engine.SampleCloud(o.N, o.L, o.M, Z, cloudSamplePoints, m.seed)
		if err != nil {
			m.status = err.Error()
			m.cloud = nil
			return
		}
		m.cloud = pts
		m.cloudFrom = key
		m.cloudExtent = (2*float64(o.N*o.N) + 10) / Z

	case viewNucleus:
		key := nucKey{element: m.element, model: m.nucModel, seed: m.seed}
		if m.nuc != nil && key == m.nucFrom {
			return
		}
		protons := m.element
		neutrons := stableNeutrons(m.element)
		nucleons, err := m.gen.Nucleons(m.nucModel, protons, neutrons, m.seed)
		if err != nil {
			m.status = err.Error()
			m.nuc = nil
			return
		}
		pts := make([]geom.Vec3, len(nucleons))
		ext := 0.0
		for i, nn := range nucleons {
			pts[i] = nn.Pos
			if l := nn.Pos.Length(); l > ext {
				ext = l
			}
		}
		m.nuc = pts
		m.nucFrom = key
		m.nucExtent = ext
	}
}

// stableNeutrons approximates the neutron count of the most stable
// isotope. The quadratic excess tracks the valley of stability closely
// enough for display.
func stableNeutrons(z int) int {
	if z <= 1 {
		return 0
	}
	return z + int(math.Round(0.0061*float64(z)*float64(z)))
}

// toggleBackend flips a subsystem between the two implementations, keeping
// the selection unchanged when the library build is absent.
func (m *Model) toggleBackend(sub backend.Subsystem) {
	next := backend.ImplLibrary
	if m.reg.Current(sub) == backend.ImplLibrary {
		next = backend.ImplSelfContained
	}
	if err := m.reg.Select(sub, next); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("%s -> %s", sub, next)
	m.report = nil
}

// charge resolves the Z the wavefunctions see for the current settings.
func (m *Model) charge(o orbital.Orbital) float64 {
	if m.screened {
		return orbital.EffectiveCharge(m.element, o.N, o.L)
	}
	return float64(m.element)
}

func (m *Model) draw() {
	switch m.view {
	case viewCloud:
		m.drawPoints(m.cloud, m.cloudExtent)
	case viewNucleus:
		m.drawPoints(m.nuc, m.nucExtent)
	default:
		m.drawSlice()
	}
}

// drawPoints spins a cached point set in front of the camera through the
// active vector backend.
func (m *Model) drawPoints(pts []geom.Vec3, extent float64) {
	m.canvas.Clear()
	RenderPoints(m.canvas, m.reg.Vec(), m.cam, pts, extent)
}

// drawSlice renders the density slice. The plane contains the z axis and
// spins about it by slicePhi; real-harmonic lobes sweep through it as it
// turns.
func (m *Model) drawSlice() {
	m.canvas.Clear()
	o := m.orbitals[m.idx]
	Z := m.charge(o)
	cw, ch := m.canvas.PixelWidth(), m.canvas.PixelHeight()
	rMax := (2*float64(o.N*o.N) + 10) / Z / m.zoom
	scale := rMax / float64(ch/2)

	sf := m.reg.Math()
	dens := make([]float64, cw*ch)
	maxDens := 0.0
	for py := 0; py < ch; py++ {
		for px := 0; px < cw; px++ {
			x := float64(px-cw/2) * scale
			zc := float64(ch/2-py) * scale
			r := math.Hypot(x, zc)
			theta := math.Atan2(math.Abs(x), zc)
			phi := m.slicePhi
			if x < 0 {
				phi += math.Pi
			}
			w, err := m.engine.RadialWavefunction(o.N, o.L, r, Z)
			if err != nil {
				continue
			}
			y, err := sf.SphericalHarmonicReal(o.L, o.M, theta, phi)
			if err != nil {
				continue
			}
			d := w * w * y * y
			dens[py*cw+px] = d
			if d > maxDens {
				maxDens = d
			}
		}
	}
	if maxDens <= 0 {
		return
	}
	for py := 0; py < ch; py++ {
		for px := 0; px < cw; px++ {
			t := math.Sqrt(dens[py*cw+px] / maxDens)
			if t > bayer[py%4][px%4]/16 {
				m.canvas.Set(px, py)
			}
		}
	}

	// Scale bar: one Bohr radius, bottom left.
	bar := int(1 / scale)
	if bar > cw-4 {
		bar = cw - 4
	}
	if bar > 1 {
		m.canvas.DrawLine(2, ch-2, 2+bar, ch-2)
	}
}

func (m Model) View() string {
	m.draw()
	o := m.orbitals[m.idx]
	Z := m.charge(o)

	var s strings.Builder
	s.WriteString(headerStyle.Render("ORBSIM") + "\n")
	s.WriteString(labelStyle.Render("View") + valueStyle.Render(m.view.String()) + "\n")

	if m.view == viewNucleus {
		protons := m.element
		neutrons := stableNeutrons(m.element)
		s.WriteString(labelStyle.Render("Element Z") + valueStyle.Render(fmt.Sprintf("%d", m.element)) + "\n")
		s.WriteString(labelStyle.Render("Model") + activeStyle.Render(string(m.nucModel)) + "\n")
		s.WriteString(labelStyle.Render("Nucleons") +
			valueStyle.Render(fmt.Sprintf("%d (%dp %dn)", protons+neutrons, protons, neutrons)) + "\n")
		s.WriteString(labelStyle.Render("Radius") +
			valueStyle.Render(fmt.Sprintf("%.2f fm", m.gen.Radius(protons+neutrons))) + "\n")
		s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n")
		s.WriteString(labelStyle.Render("Rotation") +
			valueStyle.Render(fmt.Sprintf("%.0f°", math.Mod(m.cam.RotY, 2*math.Pi)*180/math.Pi)) + "\n\n")
	} else {
		s.WriteString(labelStyle.Render("Orbital") + activeStyle.Render(o.Name) +
			valueStyle.Render(fmt.Sprintf("  (n=%d l=%d m=%+d)", o.N, o.L, o.M)) + "\n")
		s.WriteString(labelStyle.Render("Element Z") + valueStyle.Render(fmt.Sprintf("%d", m.element)) + "\n")
		if m.screened {
			s.WriteString(labelStyle.Render("Screening") +
				valueStyle.Render(fmt.Sprintf("on, Zeff=%.3f", Z)) + "\n")
		} else {
			s.WriteString(labelStyle.Render("Screening") + valueStyle.Render("off") + "\n")
		}
		s.WriteString(labelStyle.Render("Shell radius") +
			valueStyle.Render(fmt.Sprintf("%.3f Å", orbital.ShellRadiusAngstrom(o.N, o.L, m.element))) + "\n")
		if m.view == viewCloud {
			s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d", len(m.cloud))) + "\n")
			s.WriteString(labelStyle.Render("Seed") + valueStyle.Render(fmt.Sprintf("%d", m.seed)) + "\n\n")
		} else {
			s.WriteString(labelStyle.Render("Slice angle") +
				valueStyle.Render(fmt.Sprintf("%.0f°", m.slicePhi*180/math.Pi)) + "\n\n")
		}

		rs, ds, err := m.engine.RadialDistribution(o.N, o.L, Z, (2*float64(o.N*o.N)+10)/Z, 56)
		if err == nil && len(rs) > 1 {
			chart := asciigraph.Plot(ds, asciigraph.Height(4), asciigraph.Width(36), asciigraph.Caption("r² R²(r)"))
			s.WriteString(graphStyle.Render(chart) + "\n\n")
		}
	}

	s.WriteString("BACKENDS\n")
	for _, st := range m.reg.Status() {
		line := fmt.Sprintf("%-7s %-15s %s", st.Subsystem, st.Selected, st.ActiveName)
		if st.LibraryAvailable {
			s.WriteString("  " + valueStyle.Render(line) + "\n")
		} else {
			s.WriteString("  " + warnStyle.Render(line+" (library absent)") + "\n")
		}
	}

	if m.report != nil {
		verdict := passStyle.Render("PASS")
		if !m.report.AllPassed() {
			verdict = failStyle.Render(fmt.Sprintf("FAIL (%d)", len(m.report.Failed())))
		}
		s.WriteString(labelStyle.Render("Validation") + verdict +
			valueStyle.Render(fmt.Sprintf(" @ %.0e", m.report.Tolerance)) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + warnStyle.Render(m.status) + "\n")
	}
	s.WriteString(helpStyle.Render("\n──────────────────────\n1/2/3:view  TAB:orbital  Z/z:element\nS:screening  M/V:backend  C:validate\nN:reseed  D:nuclear model  SPACE:spin\n+/-:zoom  R:reset  Q:quit  ?:help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	if m.showReport && m.report != nil {
		return m.reportOverlay() + "\n" + mainView
	}
	return mainView
}

func (m Model) reportOverlay() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("VALIDATION @ %.0e", m.report.Tolerance)) + "\n")
	if !m.report.LibraryAvailable {
		b.WriteString(warnStyle.Render("library implementation absent, nothing to compare") + "\n")
		return b.String()
	}
	for _, f := range m.report.Functions {
		verdict := passStyle.Render("PASS")
		if !f.Passed {
			verdict = failStyle.Render("FAIL")
		}
		b.WriteString(fmt.Sprintf("  %-24s %4d tests  rel %.2e  %s\n",
			f.Name, f.Tests, f.MaxRelError, verdict))
	}
	return b.String()
}

const helpOverlay = `
╔════════════════════════════════════════╗
║           KEYBOARD SHORTCUTS           ║
╠════════════════════════════════════════╣
║  1/2/3     - Slice / cloud / nucleus   ║
║  Tab/←→    - Cycle orbitals            ║
║  z/Z, ↑↓   - Element up/down           ║
║  S         - Toggle charge screening   ║
║  N         - Next seed                 ║
║  D         - Liquid-drop / shell       ║
║  M         - Switch math backend       ║
║  V         - Switch vector backend     ║
║  C         - Run validation report     ║
║  Space     - Pause/resume rotation     ║
║  +/-       - Zoom in/out               ║
║  R         - Reset view                ║
║  Q         - Quit                      ║
╚════════════════════════════════════════╝`

// Run starts the interactive explorer on the given registry and config.
func Run(reg *backend.Registry, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(reg, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
