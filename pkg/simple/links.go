package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// extension returns the first extension entry with the given application
// profile label, or nil.
func (m *Metadata) extension(label string) *metadata.OnlineResource {
	for _, e := range m.doc.Extensions {
		if e.ApplicationProfile == label {
			return e
		}
	}
	return nil
}

func (m *Metadata) extensionURL(label string) string {
	if e := m.extension(label); e != nil {
		return e.URL
	}
	return ""
}

// setExtensionURL updates the entry with the given label or appends one.
func (m *Metadata) setExtensionURL(label, url string) {
	if e := m.extension(label); e != nil {
		e.URL = url
		return
	}
	m.doc.Extensions = append(m.doc.Extensions, &metadata.OnlineResource{URL: url, ApplicationProfile: label})
}

func (m *Metadata) removeExtension(label string) {
	for i, e := range m.doc.Extensions {
		if e.ApplicationProfile == label {
			m.doc.Extensions = append(m.doc.Extensions[:i], m.doc.Extensions[i+1:]...)
			return
		}
	}
}

// ProductSpecificationURL returns the product specification link, or "".
func (m *Metadata) ProductSpecificationURL() string {
	return m.extensionURL(LabelProductSpecification)
}

// SetProductSpecificationURL stores the product specification link.
func (m *Metadata) SetProductSpecificationURL(url string) {
	m.setExtensionURL(LabelProductSpecification, url)
}

// ProductSheetURL returns the product sheet link, or "".
func (m *Metadata) ProductSheetURL() string {
	return m.extensionURL(LabelProductSheet)
}

// SetProductSheetURL stores the product sheet link.
func (m *Metadata) SetProductSheetURL(url string) {
	m.setExtensionURL(LabelProductSheet, url)
}

// ProductPageURL returns the product page link, or "".
func (m *Metadata) ProductPageURL() string {
	return m.extensionURL(LabelProductPage)
}

// SetProductPageURL stores the product page link.
func (m *Metadata) SetProductPageURL(url string) {
	m.setExtensionURL(LabelProductPage, url)
}

// LegendDescriptionURL returns the legend description link, or "".
func (m *Metadata) LegendDescriptionURL() string {
	return m.extensionURL(LabelLegendDescription)
}

// SetLegendDescriptionURL stores the legend description link.
func (m *Metadata) SetLegendDescriptionURL(url string) {
	m.setExtensionURL(LabelLegendDescription, url)
}

// CoverageURL returns the coverage service link, or "".
func (m *Metadata) CoverageURL() string {
	return m.extensionURL(LabelCoverage)
}

// SetCoverageURL stores the coverage service link.
func (m *Metadata) SetCoverageURL(url string) {
	m.setExtensionURL(LabelCoverage, url)
}

// CoverageGridURL returns the coverage grid link, or "".
func (m *Metadata) CoverageGridURL() string {
	return m.extensionURL(LabelCoverageGrid)
}

// SetCoverageGridURL stores the coverage grid link.
func (m *Metadata) SetCoverageGridURL(url string) {
	m.setExtensionURL(LabelCoverageGrid, url)
}

// CoverageCellURL returns the coverage cell link, or "".
func (m *Metadata) CoverageCellURL() string {
	return m.extensionURL(LabelCoverageCell)
}

// SetCoverageCellURL stores the coverage cell link.
func (m *Metadata) SetCoverageCellURL(url string) {
	m.setExtensionURL(LabelCoverageCell, url)
}

// HelpURL returns the help page link, or "".
func (m *Metadata) HelpURL() string {
	return m.extensionURL(LabelHelp)
}

// SetHelpURL stores the help page link.
func (m *Metadata) SetHelpURL(url string) {
	m.setExtensionURL(LabelHelp, url)
}

// ProductSpecificationOther returns the additional named product
// specification link, or nil.
func (m *Metadata) ProductSpecificationOther() *ProductSpecificationOther {
	e := m.extension(LabelProductSpecificationOther)
	if e == nil {
		return nil
	}
	return &ProductSpecificationOther{Name: e.Name, URL: e.URL}
}

// SetProductSpecificationOther updates the additional product specification
// link. The entry is removed when p is nil or both name and URL are empty.
func (m *Metadata) SetProductSpecificationOther(p *ProductSpecificationOther) {
	if p == nil || (p.Name == "" && p.URL == "") {
		m.removeExtension(LabelProductSpecificationOther)
		return
	}
	if e := m.extension(LabelProductSpecificationOther); e != nil {
		e.Name = p.Name
		e.URL = p.URL
		return
	}
	m.doc.Extensions = append(m.doc.Extensions, &metadata.OnlineResource{
		URL:                p.URL,
		Name:               p.Name,
		ApplicationProfile: LabelProductSpecificationOther,
	})
}
