// Package geometry provides the detector volume predicates consumed by the
// selection cuts. The boxes are cheap, side-effect-free collaborators; the
// physical bounds come from configuration, never from this package's logic.
package geometry

import (
	"fmt"

	"github.com/dcarber/spinesel/internal/model"
)

// Box is an axis-aligned volume in detector coordinates (cm).
type Box struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// FromConfig converts a configuration volume into a Box.
func FromConfig(c model.BoxConfig) Box {
	return Box{
		XMin: c.XMin, XMax: c.XMax,
		YMin: c.YMin, YMax: c.YMax,
		ZMin: c.ZMin, ZMax: c.ZMax,
	}
}

// Contains reports whether the point lies inside the box. Boundary points
// count as inside.
func (b Box) Contains(p model.Vec3) bool {
	return p.X >= b.XMin && p.X <= b.XMax &&
		p.Y >= b.YMin && p.Y <= b.YMax &&
		p.Z >= b.ZMin && p.Z <= b.ZMax
}

// NearBoundary reports whether the point lies within margin of any face of
// the box. Used to tag throughgoing tracks.
func (b Box) NearBoundary(p model.Vec3, margin float64) bool {
	return p.X-b.XMin < margin || b.XMax-p.X < margin ||
		p.Y-b.YMin < margin || b.YMax-p.Y < margin ||
		p.Z-b.ZMin < margin || b.ZMax-p.Z < margin
}

// Encloses reports whether every point of inner lies inside b. Shared
// faces count as enclosed.
func (b Box) Encloses(inner Box) bool {
	return inner.XMin >= b.XMin && inner.XMax <= b.XMax &&
		inner.YMin >= b.YMin && inner.YMax <= b.YMax &&
		inner.ZMin >= b.ZMin && inner.ZMax <= b.ZMax
}

// strictlyEncloses reports whether inner sits strictly inside b with no
// shared faces.
func (b Box) strictlyEncloses(inner Box) bool {
	return inner.XMin > b.XMin && inner.XMax < b.XMax &&
		inner.YMin > b.YMin && inner.YMax < b.YMax &&
		inner.ZMin > b.ZMin && inner.ZMax < b.ZMax
}

// wellFormed reports whether every axis has positive extent.
func (b Box) wellFormed() bool {
	return b.XMin < b.XMax && b.YMin < b.YMax && b.ZMin < b.ZMax
}

// Validate checks that both volumes are well formed and that the fiducial
// volume sits strictly inside the active volume. A fiducial face flush
// with the active boundary leaves no containment margin, so it is
// rejected along with outright overlap.
func Validate(fiducial, active Box) error {
	if !fiducial.wellFormed() {
		return fmt.Errorf("fiducial volume %+v is degenerate", fiducial)
	}
	if !active.wellFormed() {
		return fmt.Errorf("active volume %+v is degenerate", active)
	}
	if !active.strictlyEncloses(fiducial) {
		return fmt.Errorf("fiducial volume %+v must sit strictly inside active volume %+v", fiducial, active)
	}
	return nil
}
