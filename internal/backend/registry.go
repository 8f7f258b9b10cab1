package backend

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/special"
)

type Subsystem string

const (
	SubsystemMath   Subsystem = "math"
	SubsystemVector Subsystem = "vector"
)

// Subsystems lists every selectable subsystem in display order.
var Subsystems = []Subsystem{SubsystemMath, SubsystemVector}

type Impl string

const (
	// ImplAuto resolves to the library implementation when available.
	ImplAuto          Impl = "auto"
	ImplLibrary       Impl = "library"
	ImplSelfContained Impl = "self-contained"
)

var (
	// ErrUnavailable indicates the library implementation is excluded from
	// this build.
	ErrUnavailable = errors.New("backend: implementation not available in this build")

	ErrUnknownSubsystem = errors.New("backend: unknown subsystem")
	ErrUnknownImpl      = errors.New("backend: unknown implementation")
)

// Backends carries the four concrete implementations a Registry arbitrates
// between. Tests inject fakes here; production code uses New.
type Backends struct {
	MathLibrary special.Backend
	MathPure    special.Backend
	VecLibrary  geom.Backend
	VecPure     geom.Backend
}

// Registry holds the per-subsystem selection state. The zero value is not
// usable; construct with New or NewWithBackends.
type Registry struct {
	b       Backends
	mathSel atomic.Value
	vecSel  atomic.Value
}

func New() *Registry {
	return NewWithBackends(Backends{
		MathLibrary: special.NewGonumBackend(),
		MathPure:    special.NewPureBackend(),
		VecLibrary:  geom.NewGonumBackend(),
		VecPure:     geom.NewPureBackend(),
	})
}

func NewWithBackends(b Backends) *Registry {
	r := &Registry{b: b}
	r.mathSel.Store(autoImpl(b.MathLibrary.Available()))
	r.vecSel.Store(autoImpl(b.VecLibrary.Available()))
	return r
}

func autoImpl(libAvailable bool) Impl {
	if libAvailable {
		return ImplLibrary
	}
	return ImplSelfContained
}

// Select switches a subsystem to the given implementation. Selecting the
// library in a build without it fails with ErrUnavailable and leaves the
// selection unchanged.
func (r *Registry) Select(sub Subsystem, impl Impl) error {
	cell, libAvailable, err := r.cell(sub)
	if err != nil {
		return err
	}
	switch impl {
	case ImplAuto:
		cell.Store(autoImpl(libAvailable))
	case ImplLibrary:
		if !libAvailable {
			return fmt.Errorf("backend: select %s/%s: %w", sub, impl, ErrUnavailable)
		}
		cell.Store(ImplLibrary)
	case ImplSelfContained:
		cell.Store(ImplSelfContained)
	default:
		return fmt.Errorf("backend: select %s/%q: %w", sub, impl, ErrUnknownImpl)
	}
	return nil
}

// Current reports the selection for a subsystem, "" for an unknown one.
func (r *Registry) Current(sub Subsystem) Impl {
	cell, _, err := r.cell(sub)
	if err != nil {
		return ""
	}
	return cell.Load().(Impl)
}

func (r *Registry) cell(sub Subsystem) (*atomic.Value, bool, error) {
	switch sub {
	case SubsystemMath:
		return &r.mathSel, r.b.MathLibrary.Available(), nil
	case SubsystemVector:
		return &r.vecSel, r.b.VecLibrary.Available(), nil
	default:
		return nil, false, fmt.Errorf("backend: %q: %w", sub, ErrUnknownSubsystem)
	}
}

// Math resolves the active special-function implementation at call time.
func (r *Registry) Math() special.Backend {
	if r.mathSel.Load().(Impl) == ImplLibrary {
		return r.b.MathLibrary
	}
	return r.b.MathPure
}

// Vec resolves the active vector/rotation implementation at call time.
func (r *Registry) Vec() geom.Backend {
	if r.vecSel.Load().(Impl) == ImplLibrary {
		return r.b.VecLibrary
	}
	return r.b.VecPure
}

// SubsystemStatus describes one subsystem for status displays.
type SubsystemStatus struct {
	Subsystem        Subsystem
	Selected         Impl
	ActiveName       string
	LibraryAvailable bool
}

func (r *Registry) Status() []SubsystemStatus {
	return []SubsystemStatus{
		{
			Subsystem:        SubsystemMath,
			Selected:         r.Current(SubsystemMath),
			ActiveName:       r.Math().Name(),
			LibraryAvailable: r.b.MathLibrary.Available(),
		},
		{
			Subsystem:        SubsystemVector,
			Selected:         r.Current(SubsystemVector),
			ActiveName:       r.Vec().Name(),
			LibraryAvailable: r.b.VecLibrary.Available(),
		},
	}
}
