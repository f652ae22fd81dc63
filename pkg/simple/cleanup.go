package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// RemoveUnnecessaryElements clears optional structure that carries no
// content: extension entries without URL, keyword groups without keywords,
// empty thumbnails, empty extents, empty distributors and transfer
// options, and a data quality section with neither reports nor lineage.
// Each step is a no-op when the structure is absent.
func (m *Metadata) RemoveUnnecessaryElements() {
	m.doc.Extensions = filter(m.doc.Extensions, func(e *metadata.OnlineResource) bool {
		return e.URL != ""
	})

	if id := m.ident(); id != nil {
		id.Keywords = filter(id.Keywords, func(g *metadata.KeywordGroup) bool {
			return len(g.Keywords) > 0
		})
		id.GraphicOverviews = filter(id.GraphicOverviews, func(g *metadata.BrowseGraphic) bool {
			return g.FileName != ""
		})
		id.Extents = filter(id.Extents, func(e *metadata.Extent) bool {
			return !metadata.IsEmpty(e.Description) || len(e.GeographicElements) > 0 ||
				len(e.TemporalElements) > 0 || len(e.VerticalElements) > 0
		})
		if c := id.Citation; c != nil {
			c.Identifiers = filter(c.Identifiers, func(i *metadata.Identifier) bool {
				return !metadata.IsEmpty(i.Code)
			})
		}
		if id.Kind == metadata.DataIdentification {
			id.Operations = nil
			id.OperatesOn = nil
		}
	}

	if d := m.doc.Distribution; d != nil {
		d.TransferOptions = filter(d.TransferOptions, hasTransferContent)
		d.Distributors = filter(d.Distributors, func(dr *metadata.Distributor) bool {
			dr.TransferOptions = filter(dr.TransferOptions, hasTransferContent)
			return len(dr.Formats) > 0 || len(dr.TransferOptions) > 0
		})
		if len(d.Formats) == 0 && len(d.Distributors) == 0 && len(d.TransferOptions) == 0 {
			m.doc.Distribution = nil
		}
	}

	if dq := m.doc.DataQuality; dq != nil && len(dq.Reports) == 0 && metadata.IsEmpty(dq.Lineage) {
		m.doc.DataQuality = nil
	}
}

func hasTransferContent(t *metadata.TransferOptions) bool {
	t.OnLine = filter(t.OnLine, func(r *metadata.OnlineResource) bool {
		return r.URL != ""
	})
	return len(t.OnLine) > 0 || !metadata.IsEmpty(t.UnitsOfDistribution)
}

// filter returns the elements of s for which keep is true, or nil if none are.
func filter[T any](s []T, keep func(T) bool) []T {
	var out []T
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
