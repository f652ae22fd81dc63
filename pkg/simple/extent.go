package simple

import (
	"github.com/google/uuid"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func (m *Metadata) firstExtent() *metadata.Extent {
	if id := m.ident(); id != nil && len(id.Extents) > 0 {
		return id.Extents[0]
	}
	return nil
}

func (m *Metadata) ensureExtent() *metadata.Extent {
	id := m.ensureIdent()
	if len(id.Extents) == 0 {
		id.Extents = []*metadata.Extent{{}}
	}
	return id.Extents[0]
}

// dropEmptyExtent removes the first extent once it carries nothing.
func (m *Metadata) dropEmptyExtent() {
	id := m.ident()
	if id == nil || len(id.Extents) == 0 {
		return
	}
	e := id.Extents[0]
	if metadata.IsEmpty(e.Description) && len(e.GeographicElements) == 0 &&
		len(e.TemporalElements) == 0 && len(e.VerticalElements) == 0 {
		id.Extents = id.Extents[1:]
		if len(id.Extents) == 0 {
			id.Extents = nil
		}
	}
}

// BoundingBox returns the geographic bounding box of the first extent, or nil.
func (m *Metadata) BoundingBox() *BoundingBox {
	e := m.firstExtent()
	if e == nil {
		return nil
	}
	for _, g := range e.GeographicElements {
		if b, ok := g.(*metadata.BoundingBox); ok {
			return &BoundingBox{West: b.West, East: b.East, South: b.South, North: b.North}
		}
	}
	return nil
}

// SetBoundingBox replaces the bounding box of the first extent, keeping its
// other geographic, temporal and vertical parts. nil removes the box.
func (m *Metadata) SetBoundingBox(bbox *BoundingBox) {
	if bbox == nil {
		e := m.firstExtent()
		if e == nil {
			return
		}
		var kept []metadata.GeographicElement
		for _, g := range e.GeographicElements {
			if _, ok := g.(*metadata.BoundingBox); !ok {
				kept = append(kept, g)
			}
		}
		e.GeographicElements = kept
		m.dropEmptyExtent()
		return
	}

	box := &metadata.BoundingBox{West: bbox.West, East: bbox.East, South: bbox.South, North: bbox.North}
	e := m.ensureExtent()
	for i, g := range e.GeographicElements {
		if _, ok := g.(*metadata.BoundingBox); ok {
			e.GeographicElements[i] = box
			return
		}
	}
	e.GeographicElements = append([]metadata.GeographicElement{box}, e.GeographicElements...)
}

// TemporalExtent returns the validity period of the resource.
func (m *Metadata) TemporalExtent() *TemporalExtent {
	e := m.firstExtent()
	if e == nil || len(e.TemporalElements) == 0 {
		return nil
	}
	t := e.TemporalElements[0]
	out := &TemporalExtent{From: t.Begin, To: t.End}
	if t.EndIndeterminate != "" {
		out.To = t.EndIndeterminate
	}
	return out
}

// SetTemporalExtent replaces the validity period of the first extent,
// keeping its geographic and vertical parts. A To of "now" is written as an
// indeterminate end position. nil removes the period.
func (m *Metadata) SetTemporalExtent(t *TemporalExtent) {
	if t == nil {
		if e := m.firstExtent(); e != nil {
			e.TemporalElements = nil
			m.dropEmptyExtent()
		}
		return
	}

	e := m.ensureExtent()
	period := &metadata.TemporalExtent{Begin: t.From}
	if len(e.TemporalElements) > 0 && e.TemporalElements[0].ID != "" {
		period.ID = e.TemporalElements[0].ID
	} else {
		period.ID = "id_" + uuid.NewString()
	}
	if t.To == metadata.IndeterminateNow {
		period.EndIndeterminate = metadata.IndeterminateNow
	} else {
		period.End = t.To
	}
	e.TemporalElements = []*metadata.TemporalExtent{period}
}

// VerticalExtent returns the vertical extent, or nil.
func (m *Metadata) VerticalExtent() *VerticalExtent {
	e := m.firstExtent()
	if e == nil || len(e.VerticalElements) == 0 {
		return nil
	}
	v := e.VerticalElements[0]
	return &VerticalExtent{Min: v.Minimum, Max: v.Maximum, CRS: v.CRS}
}

// SetVerticalExtent replaces the vertical range of the first extent. nil
// removes it.
func (m *Metadata) SetVerticalExtent(v *VerticalExtent) {
	if v == nil {
		if e := m.firstExtent(); e != nil {
			e.VerticalElements = nil
			m.dropEmptyExtent()
		}
		return
	}
	m.ensureExtent().VerticalElements = []*metadata.VerticalExtent{{Minimum: v.Min, Maximum: v.Max, CRS: v.CRS}}
}

// ExtentDescription returns the textual description of the first extent.
func (m *Metadata) ExtentDescription() string {
	if e := m.firstExtent(); e != nil {
		return m.localized(e.Description)
	}
	return ""
}

// SetExtentDescription sets the textual description of the extent.
func (m *Metadata) SetExtentDescription(v string) {
	e := m.ensureExtent()
	e.Description = m.setLocalized(e.Description, v)
}
