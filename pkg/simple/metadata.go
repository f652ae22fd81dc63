package simple

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

// ErrNilDocument is returned by New when no document is given
var ErrNilDocument = errors.New("simple: nil metadata document")

// Metadata is a field accessor over one metadata document
type Metadata struct {
	doc *metadata.Document
}

// New wraps an existing document.
func New(doc *metadata.Document) (*Metadata, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return &Metadata{doc: doc}, nil
}

// NewDataset returns a new dataset record with a fresh identifier.
func NewDataset() *Metadata {
	return newTemplate(metadata.HierarchyDataset, metadata.DataIdentification)
}

// NewService returns a new service record with a fresh identifier.
func NewService() *Metadata {
	return newTemplate(metadata.HierarchyService, metadata.ServiceIdentification)
}

// NewDimensionGroup returns a new dimension group record with a fresh identifier.
func NewDimensionGroup() *Metadata {
	return newTemplate(metadata.HierarchyDimensionGroup, metadata.DataIdentification)
}

func newTemplate(level string, kind metadata.IdentificationKind) *Metadata {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	doc := &metadata.Document{
		FileIdentifier:          uuid.NewString(),
		Language:                metadata.NewCode(metadata.LanguageCode, metadata.LanguageNorwegian),
		CharacterSet:            metadata.NewCode(metadata.CharacterSetCode, "utf8"),
		HierarchyLevel:          metadata.NewCode(metadata.ScopeCode, level),
		DateStamp:               &now,
		MetadataStandardName:    metadata.StandardName,
		MetadataStandardVersion: metadata.StandardVersion,
		Identification: &metadata.Identification{
			Kind:     kind,
			Citation: &metadata.Citation{},
		},
	}
	return &Metadata{doc: doc}
}

// Document returns the underlying document.
func (m *Metadata) Document() *metadata.Document {
	return m.doc
}

// UUID returns the file identifier.
func (m *Metadata) UUID() string {
	return m.doc.FileIdentifier
}

// SetUUID sets the file identifier.
func (m *Metadata) SetUUID(id string) {
	m.doc.FileIdentifier = id
}

// ParentIdentifier returns the identifier of the parent record.
func (m *Metadata) ParentIdentifier() string {
	return m.doc.ParentIdentifier
}

// SetParentIdentifier sets the identifier of the parent record.
func (m *Metadata) SetParentIdentifier(id string) {
	m.doc.ParentIdentifier = id
}

// HierarchyLevel returns the scope code of the record.
func (m *Metadata) HierarchyLevel() string {
	return m.doc.HierarchyLevel.Value
}

// SetHierarchyLevel replaces the scope code. The identification block
// follows: service records carry service identification, all others data
// identification.
func (m *Metadata) SetHierarchyLevel(level string) {
	m.doc.HierarchyLevel = metadata.NewCode(metadata.ScopeCode, level)
	if id := m.doc.Identification; id != nil {
		id.Kind = identificationKind(level)
	}
	if dq := m.doc.DataQuality; dq != nil && !dq.Scope.IsZero() {
		dq.Scope = metadata.NewCode(metadata.ScopeCode, level)
	}
}

func identificationKind(level string) metadata.IdentificationKind {
	if level == metadata.HierarchyService {
		return metadata.ServiceIdentification
	}
	return metadata.DataIdentification
}

// IsDataset reports whether the hierarchy level is dataset.
func (m *Metadata) IsDataset() bool {
	return m.HierarchyLevel() == metadata.HierarchyDataset
}

// IsService reports whether the hierarchy level is service.
func (m *Metadata) IsService() bool {
	return m.HierarchyLevel() == metadata.HierarchyService
}

// IsDimensionGroup reports whether the hierarchy level is dimensionGroup.
func (m *Metadata) IsDimensionGroup() bool {
	return m.HierarchyLevel() == metadata.HierarchyDimensionGroup
}

// MetadataLanguage returns the language of the primary text values.
func (m *Metadata) MetadataLanguage() string {
	return m.doc.Language.Value
}

// SetMetadataLanguage changes the declared metadata language. Existing text
// values are not converted.
func (m *Metadata) SetMetadataLanguage(lang string) {
	m.doc.Language = metadata.NewCode(metadata.LanguageCode, lang)
}

// DateMetadataUpdated returns the metadata date stamp, or nil.
func (m *Metadata) DateMetadataUpdated() *time.Time {
	return m.doc.DateStamp
}

// SetDateMetadataUpdated sets the metadata date stamp.
func (m *Metadata) SetDateMetadataUpdated(t *time.Time) {
	m.doc.DateStamp = t
}

// Language helpers

func (m *Metadata) isEnglish() bool {
	return m.doc.Language.Value == metadata.LanguageEnglish
}

// localized reads the Norwegian value of t, falling back to the primary value.
func (m *Metadata) localized(t metadata.Text) string {
	if m.isEnglish() {
		if v, ok := metadata.Alternate(t, metadata.LanguageNorwegian); ok && v != "" {
			return v
		}
	}
	return metadata.Primary(t)
}

// english reads the English value of t. It returns "" when t has no English content.
func (m *Metadata) english(t metadata.Text) string {
	if m.isEnglish() {
		return metadata.Primary(t)
	}
	v, _ := metadata.Alternate(t, metadata.LanguageEnglish)
	return v
}

// setLocalized writes the Norwegian value into t and returns the result.
func (m *Metadata) setLocalized(t metadata.Text, value string) metadata.Text {
	if m.isEnglish() {
		m.ensureLocale(metadata.LanguageNorwegian)
		return metadata.WithAlternate(t, metadata.LanguageNorwegian, value)
	}
	return metadata.WithPrimary(t, value)
}

// setEnglish writes the English value into t and returns the result.
func (m *Metadata) setEnglish(t metadata.Text, value string) metadata.Text {
	if m.isEnglish() {
		return metadata.WithPrimary(t, value)
	}
	m.ensureLocale(metadata.LanguageEnglish)
	return metadata.WithAlternate(t, metadata.LanguageEnglish, value)
}

// bilingual builds a fresh text from a Norwegian and an English value.
// It returns nil when both are empty.
func (m *Metadata) bilingual(native, english string) metadata.Text {
	var t metadata.Text
	if native != "" {
		t = m.setLocalized(t, native)
	}
	if english != "" {
		t = m.setEnglish(t, english)
	}
	return t
}

// ensureLocale declares lang as a PT_Locale of the record.
func (m *Metadata) ensureLocale(lang string) {
	for _, l := range m.doc.Locales {
		if l.Language.Value == lang {
			return
		}
	}
	m.doc.Locales = append(m.doc.Locales, &metadata.Locale{
		ID:           metadata.LocaleID(lang),
		Language:     metadata.NewCode(metadata.LanguageCode, lang),
		CharacterSet: metadata.NewCode(metadata.CharacterSetCode, "utf8"),
	})
}

// Structure helpers

// ident returns the identification block, or nil.
func (m *Metadata) ident() *metadata.Identification {
	return m.doc.Identification
}

func (m *Metadata) ensureIdent() *metadata.Identification {
	if m.doc.Identification == nil {
		m.doc.Identification = &metadata.Identification{Kind: identificationKind(m.HierarchyLevel())}
	}
	return m.doc.Identification
}

// dataIdent returns the identification block if it is a data identification.
func (m *Metadata) dataIdent() *metadata.Identification {
	if id := m.ident(); id != nil && id.Kind == metadata.DataIdentification {
		return id
	}
	return nil
}

// serviceIdent returns the identification block if it is a service identification.
func (m *Metadata) serviceIdent() *metadata.Identification {
	if id := m.ident(); id != nil && id.Kind == metadata.ServiceIdentification {
		return id
	}
	return nil
}

func (m *Metadata) citation() *metadata.Citation {
	if id := m.ident(); id != nil {
		return id.Citation
	}
	return nil
}

func (m *Metadata) ensureCitation() *metadata.Citation {
	id := m.ensureIdent()
	if id.Citation == nil {
		id.Citation = &metadata.Citation{}
	}
	return id.Citation
}
