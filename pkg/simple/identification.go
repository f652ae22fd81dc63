package simple

import (
	"time"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func (m *Metadata) titleText() metadata.Text {
	if c := m.citation(); c != nil {
		return c.Title
	}
	return nil
}

// Title returns the Norwegian title, falling back to the English one.
func (m *Metadata) Title() string {
	return m.localized(m.titleText())
}

// SetTitle sets the Norwegian title and keeps the English one.
func (m *Metadata) SetTitle(v string) {
	c := m.ensureCitation()
	c.Title = m.setLocalized(c.Title, v)
}

// EnglishTitle returns the English title, or "" when there is no translation.
func (m *Metadata) EnglishTitle() string {
	return m.english(m.titleText())
}

// SetEnglishTitle sets the English title and keeps the Norwegian one.
func (m *Metadata) SetEnglishTitle(v string) {
	c := m.ensureCitation()
	c.Title = m.setEnglish(c.Title, v)
}

// identText returns a text field of the identification block, or nil.
func (m *Metadata) identText(field func(*metadata.Identification) *metadata.Text) metadata.Text {
	if id := m.ident(); id != nil {
		return *field(id)
	}
	return nil
}

func abstract(id *metadata.Identification) *metadata.Text {
	return &id.Abstract
}

func purpose(id *metadata.Identification) *metadata.Text {
	return &id.Purpose
}

func credit(id *metadata.Identification) *metadata.Text {
	return &id.Credit
}

func specificUsage(id *metadata.Identification) *metadata.Text {
	return &id.SpecificUsage
}

func supplemental(id *metadata.Identification) *metadata.Text {
	return &id.SupplementalInformation
}

func (m *Metadata) setIdentText(field func(*metadata.Identification) *metadata.Text, v string) {
	p := field(m.ensureIdent())
	*p = m.setLocalized(*p, v)
}

func (m *Metadata) setIdentEnglishText(field func(*metadata.Identification) *metadata.Text, v string) {
	p := field(m.ensureIdent())
	*p = m.setEnglish(*p, v)
}

// Abstract returns the Norwegian abstract, falling back to the English one.
func (m *Metadata) Abstract() string {
	return m.localized(m.identText(abstract))
}

// SetAbstract sets the Norwegian abstract.
func (m *Metadata) SetAbstract(v string) {
	m.setIdentText(abstract, v)
}

// EnglishAbstract returns the English abstract, or "".
func (m *Metadata) EnglishAbstract() string {
	return m.english(m.identText(abstract))
}

// SetEnglishAbstract sets the English abstract.
func (m *Metadata) SetEnglishAbstract(v string) {
	m.setIdentEnglishText(abstract, v)
}

// Purpose returns the Norwegian purpose statement.
func (m *Metadata) Purpose() string {
	return m.localized(m.identText(purpose))
}

// SetPurpose sets the Norwegian purpose statement.
func (m *Metadata) SetPurpose(v string) {
	m.setIdentText(purpose, v)
}

// EnglishPurpose returns the English purpose statement, or "".
func (m *Metadata) EnglishPurpose() string {
	return m.english(m.identText(purpose))
}

// SetEnglishPurpose sets the English purpose statement.
func (m *Metadata) SetEnglishPurpose(v string) {
	m.setIdentEnglishText(purpose, v)
}

// SpecificUsage returns the Norwegian description of specific usage.
func (m *Metadata) SpecificUsage() string {
	return m.localized(m.identText(specificUsage))
}

// SetSpecificUsage sets the Norwegian description of specific usage.
func (m *Metadata) SetSpecificUsage(v string) {
	m.setIdentText(specificUsage, v)
}

// EnglishSpecificUsage returns the English description of specific usage, or "".
func (m *Metadata) EnglishSpecificUsage() string {
	return m.english(m.identText(specificUsage))
}

// SetEnglishSpecificUsage sets the English description of specific usage.
func (m *Metadata) SetEnglishSpecificUsage(v string) {
	m.setIdentEnglishText(specificUsage, v)
}

// Credits returns the credit line of the resource.
func (m *Metadata) Credits() string {
	return m.localized(m.identText(credit))
}

// SetCredits sets the credit line.
func (m *Metadata) SetCredits(v string) {
	m.setIdentText(credit, v)
}

// SupplementalDescription returns the supplemental information of a dataset.
func (m *Metadata) SupplementalDescription() string {
	if m.dataIdent() == nil {
		return ""
	}
	return m.localized(m.identText(supplemental))
}

// SetSupplementalDescription sets the Norwegian supplemental information.
func (m *Metadata) SetSupplementalDescription(v string) {
	m.setIdentText(supplemental, v)
}

// EnglishSupplementalDescription returns the English supplemental information of a dataset, or "".
func (m *Metadata) EnglishSupplementalDescription() string {
	if m.dataIdent() == nil {
		return ""
	}
	return m.english(m.identText(supplemental))
}

// SetEnglishSupplementalDescription sets the English supplemental information.
func (m *Metadata) SetEnglishSupplementalDescription(v string) {
	m.setIdentEnglishText(supplemental, v)
}

// Status returns the progress code of the resource.
func (m *Metadata) Status() string {
	if id := m.ident(); id != nil {
		return id.Status.Value
	}
	return ""
}

// SetStatus sets the progress code, e.g. "completed" or "onGoing".
func (m *Metadata) SetStatus(v string) {
	m.ensureIdent().Status = metadata.NewCode(metadata.ProgressCode, v)
}

// MaintenanceFrequency returns the maintenance frequency code.
func (m *Metadata) MaintenanceFrequency() string {
	if id := m.ident(); id != nil {
		return id.MaintenanceFrequency.Value
	}
	return ""
}

// SetMaintenanceFrequency sets the maintenance frequency code.
func (m *Metadata) SetMaintenanceFrequency(v string) {
	m.ensureIdent().MaintenanceFrequency = metadata.NewCode(metadata.MaintenanceFrequencyCode, v)
}

// SpatialRepresentation returns the spatial representation type of a dataset.
func (m *Metadata) SpatialRepresentation() string {
	if id := m.dataIdent(); id != nil {
		return id.SpatialRepresentationType.Value
	}
	return ""
}

// SetSpatialRepresentation sets the spatial representation type.
func (m *Metadata) SetSpatialRepresentation(v string) {
	m.ensureIdent().SpatialRepresentationType = metadata.NewCode(metadata.SpatialRepresentationCode, v)
}

// TopicCategories returns the ISO topic categories of a dataset. Topic
// categories are an enumeration and carry no code list URL.
func (m *Metadata) TopicCategories() []string {
	if id := m.dataIdent(); id != nil && len(id.TopicCategories) > 0 {
		return append([]string(nil), id.TopicCategories...)
	}
	return nil
}

// SetTopicCategories replaces the topic categories.
func (m *Metadata) SetTopicCategories(categories []string) {
	var out []string
	for _, c := range categories {
		if c != "" {
			out = append(out, c)
		}
	}
	m.ensureIdent().TopicCategories = out
}

// ResourceLanguage returns the language of the dataset itself.
func (m *Metadata) ResourceLanguage() string {
	if id := m.dataIdent(); id != nil {
		return id.Language.Value
	}
	return ""
}

// SetResourceLanguage sets the language of the resource.
func (m *Metadata) SetResourceLanguage(lang string) {
	m.ensureIdent().Language = metadata.NewCode(metadata.LanguageCode, lang)
}

// ResolutionScale returns the equivalent scale denominator, 0 if unset.
func (m *Metadata) ResolutionScale() int {
	if id := m.dataIdent(); id != nil && id.Resolution != nil {
		return id.Resolution.Scale
	}
	return 0
}

// SetResolutionScale sets the equivalent scale denominator. 0 removes it.
func (m *Metadata) SetResolutionScale(scale int) {
	id := m.ensureIdent()
	if id.Resolution == nil {
		if scale == 0 {
			return
		}
		id.Resolution = &metadata.Resolution{}
	}
	id.Resolution.Scale = scale
	clearEmptyResolution(id)
}

// ResolutionDistance returns the ground sample distance in meters, 0 if unset.
func (m *Metadata) ResolutionDistance() float64 {
	if id := m.dataIdent(); id != nil && id.Resolution != nil {
		return id.Resolution.Distance
	}
	return 0
}

// SetResolutionDistance sets the ground resolution in metres. 0 removes it.
func (m *Metadata) SetResolutionDistance(distance float64) {
	id := m.ensureIdent()
	if id.Resolution == nil {
		if distance == 0 {
			return
		}
		id.Resolution = &metadata.Resolution{}
	}
	id.Resolution.Distance = distance
	id.Resolution.DistanceUnit = "m"
	clearEmptyResolution(id)
}

func clearEmptyResolution(id *metadata.Identification) {
	if r := id.Resolution; r != nil && r.Scale == 0 && r.Distance == 0 {
		id.Resolution = nil
	}
}

// ResourceReference returns the first identifier of the cited resource.
func (m *Metadata) ResourceReference() *ResourceReference {
	c := m.citation()
	if c == nil || len(c.Identifiers) == 0 {
		return nil
	}
	id := c.Identifiers[0]
	return &ResourceReference{Code: metadata.Primary(id.Code), Codespace: id.Codespace}
}

// SetResourceReference replaces the resource identifier. nil removes it.
func (m *Metadata) SetResourceReference(ref *ResourceReference) {
	if ref == nil {
		if c := m.citation(); c != nil {
			c.Identifiers = nil
		}
		return
	}
	m.ensureCitation().Identifiers = []*metadata.Identifier{{
		Code:      metadata.Plain(ref.Code),
		Codespace: ref.Codespace,
	}}
}

// Thumbnails returns the browse graphics of the resource.
func (m *Metadata) Thumbnails() []Thumbnail {
	id := m.ident()
	if id == nil {
		return nil
	}
	var out []Thumbnail
	for _, g := range id.GraphicOverviews {
		out = append(out, Thumbnail{URL: g.FileName, Type: g.FileDescription, MimeType: g.FileType})
	}
	return out
}

// SetThumbnails replaces the browse graphics.
func (m *Metadata) SetThumbnails(thumbnails []Thumbnail) {
	var out []*metadata.BrowseGraphic
	for _, t := range thumbnails {
		out = append(out, &metadata.BrowseGraphic{FileName: t.URL, FileDescription: t.Type, FileType: t.MimeType})
	}
	m.ensureIdent().GraphicOverviews = out
}

// Citation dates

func (m *Metadata) citationDate(dateType string) *time.Time {
	c := m.citation()
	if c == nil {
		return nil
	}
	for _, d := range c.Dates {
		if d.Type.Value == dateType {
			t := d.Date
			return &t
		}
	}
	return nil
}

// setCitationDate replaces the date of the given type. nil removes it.
func (m *Metadata) setCitationDate(dateType string, t *time.Time) {
	if t == nil {
		c := m.citation()
		if c == nil {
			return
		}
		kept := c.Dates[:0]
		for _, d := range c.Dates {
			if d.Type.Value != dateType {
				kept = append(kept, d)
			}
		}
		c.Dates = kept
		if len(c.Dates) == 0 {
			c.Dates = nil
		}
		return
	}

	c := m.ensureCitation()
	for _, d := range c.Dates {
		if d.Type.Value == dateType {
			d.Date = *t
			return
		}
	}
	c.Dates = append(c.Dates, &metadata.CitationDate{
		Date: *t,
		Type: metadata.NewCode(metadata.DateTypeCode, dateType),
	})
}

// DateCreated returns the creation date of the resource, or nil.
func (m *Metadata) DateCreated() *time.Time {
	return m.citationDate(metadata.DateTypeCreation)
}

// SetDateCreated sets the creation date. nil removes it.
func (m *Metadata) SetDateCreated(t *time.Time) {
	m.setCitationDate(metadata.DateTypeCreation, t)
}

// DatePublished returns the publication date of the resource, or nil.
func (m *Metadata) DatePublished() *time.Time {
	return m.citationDate(metadata.DateTypePublication)
}

// SetDatePublished sets the publication date. nil removes it.
func (m *Metadata) SetDatePublished(t *time.Time) {
	m.setCitationDate(metadata.DateTypePublication, t)
}

// DateUpdated returns the revision date of the resource, or nil.
func (m *Metadata) DateUpdated() *time.Time {
	return m.citationDate(metadata.DateTypeRevision)
}

// SetDateUpdated sets the revision date. nil removes it.
func (m *Metadata) SetDateUpdated(t *time.Time) {
	m.setCitationDate(metadata.DateTypeRevision, t)
}
