package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

func (m *Metadata) ensureDistribution() *metadata.Distribution {
	if m.doc.Distribution == nil {
		m.doc.Distribution = &metadata.Distribution{}
	}
	return m.doc.Distribution
}

// DistributionFormats returns the formats the resource is distributed in.
func (m *Metadata) DistributionFormats() []DistributionFormat {
	d := m.doc.Distribution
	if d == nil {
		return nil
	}
	var out []DistributionFormat
	for _, f := range d.Formats {
		out = append(out, DistributionFormat{Name: f.Name, Version: f.Version})
	}
	return out
}

// SetDistributionFormats replaces the distribution formats.
func (m *Metadata) SetDistributionFormats(formats []DistributionFormat) {
	var out []*metadata.Format
	for _, f := range formats {
		if f.Name == "" {
			continue
		}
		out = append(out, &metadata.Format{Name: f.Name, Version: f.Version})
	}
	if out == nil && m.doc.Distribution == nil {
		return
	}
	m.ensureDistribution().Formats = out
}

// DistributionDetails returns the first online resource of the first
// transfer options block.
func (m *Metadata) DistributionDetails() *DistributionDetails {
	d := m.doc.Distribution
	if d == nil || len(d.TransferOptions) == 0 {
		return nil
	}
	opts := d.TransferOptions[0]
	out := &DistributionDetails{
		UnitsOfDistribution:        m.localized(opts.UnitsOfDistribution),
		EnglishUnitsOfDistribution: m.english(opts.UnitsOfDistribution),
	}
	if len(opts.OnLine) > 0 {
		r := opts.OnLine[0]
		out.URL = r.URL
		out.Protocol = r.Protocol
		out.Name = r.Name
	}
	return out
}

// SetDistributionDetails replaces the first transfer options block. nil
// removes it.
func (m *Metadata) SetDistributionDetails(details *DistributionDetails) {
	if details == nil {
		if d := m.doc.Distribution; d != nil && len(d.TransferOptions) > 0 {
			d.TransferOptions = d.TransferOptions[1:]
			if len(d.TransferOptions) == 0 {
				d.TransferOptions = nil
			}
		}
		return
	}

	opts := &metadata.TransferOptions{
		UnitsOfDistribution: m.bilingual(details.UnitsOfDistribution, details.EnglishUnitsOfDistribution),
	}
	if details.URL != "" || details.Protocol != "" || details.Name != "" {
		opts.OnLine = []*metadata.OnlineResource{{
			URL:      details.URL,
			Protocol: details.Protocol,
			Name:     details.Name,
		}}
	}

	d := m.ensureDistribution()
	if len(d.TransferOptions) == 0 {
		d.TransferOptions = []*metadata.TransferOptions{opts}
		return
	}
	d.TransferOptions[0] = opts
}

// Distributions returns the distributor entries, each pairing one format
// with one access point.
func (m *Metadata) Distributions() []Distribution {
	d := m.doc.Distribution
	if d == nil {
		return nil
	}
	var out []Distribution
	for _, dr := range d.Distributors {
		var dist Distribution
		if len(dr.Formats) > 0 {
			dist.FormatName = dr.Formats[0].Name
			dist.FormatVersion = dr.Formats[0].Version
		}
		if len(dr.TransferOptions) > 0 {
			opts := dr.TransferOptions[0]
			dist.UnitsOfDistribution = m.localized(opts.UnitsOfDistribution)
			if len(opts.OnLine) > 0 {
				dist.URL = opts.OnLine[0].URL
				dist.Protocol = opts.OnLine[0].Protocol
				dist.Name = opts.OnLine[0].Name
			}
		}
		out = append(out, dist)
	}
	return out
}

// SetDistributions replaces the online resources of the distribution.
func (m *Metadata) SetDistributions(distributions []Distribution) {
	var out []*metadata.Distributor
	for _, dist := range distributions {
		dr := &metadata.Distributor{}
		if dist.FormatName != "" {
			dr.Formats = []*metadata.Format{{Name: dist.FormatName, Version: dist.FormatVersion}}
		}
		opts := &metadata.TransferOptions{}
		if dist.UnitsOfDistribution != "" {
			opts.UnitsOfDistribution = m.setLocalized(nil, dist.UnitsOfDistribution)
		}
		if dist.URL != "" || dist.Protocol != "" || dist.Name != "" {
			opts.OnLine = []*metadata.OnlineResource{{URL: dist.URL, Protocol: dist.Protocol, Name: dist.Name}}
		}
		if opts.UnitsOfDistribution != nil || opts.OnLine != nil {
			dr.TransferOptions = []*metadata.TransferOptions{opts}
		}
		out = append(out, dr)
	}
	if out == nil && m.doc.Distribution == nil {
		return
	}
	m.ensureDistribution().Distributors = out
}

// ReferenceSystems returns the coordinate reference systems of the resource.
func (m *Metadata) ReferenceSystems() []ReferenceSystem {
	var out []ReferenceSystem
	for _, rs := range m.doc.ReferenceSystems {
		out = append(out, ReferenceSystem{
			CoordinateSystem:     metadata.Primary(rs.Code),
			CoordinateSystemLink: metadata.Href(rs.Code),
			Namespace:            rs.Codespace,
		})
	}
	return out
}

// SetReferenceSystems replaces the reference systems.
func (m *Metadata) SetReferenceSystems(systems []ReferenceSystem) {
	var out []*metadata.ReferenceSystem
	for _, rs := range systems {
		if rs.CoordinateSystem == "" && rs.CoordinateSystemLink == "" {
			continue
		}
		code := metadata.WithHref(metadata.PlainText{Value: rs.CoordinateSystem}, rs.CoordinateSystemLink)
		out = append(out, &metadata.ReferenceSystem{Code: code, Codespace: rs.Namespace})
	}
	m.doc.ReferenceSystems = out
}
