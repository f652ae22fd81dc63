package simple

import "time"

// Contact is a responsible party
type Contact struct {
	Name                string
	Organization        string
	OrganizationEnglish string
	Email               string
	Role                string
	PositionName        string
}

// Keyword is one descriptive keyword. Keywords sharing Type and Thesaurus
// are written to the same keyword group.
type Keyword struct {
	Keyword        string
	EnglishKeyword string
	// KeywordLink turns the keyword into an anchor
	KeywordLink string
	Type        string
	Thesaurus   string
}

// Constraints is the merged view of all resource constraints of a record.
type Constraints struct {
	// AccessConstraints is the access text, e.g. "no restrictions", or a
	// restriction code when no text is present
	AccessConstraints     string
	AccessConstraintsLink string

	UseConstraints                string
	UseConstraintsLicenseLink     string
	UseConstraintsLicenseLinkText string

	OtherConstraints        string
	EnglishOtherConstraints string

	SecurityConstraints     string
	SecurityConstraintsNote string

	UseLimitations        string
	EnglishUseLimitations string
}

// BoundingBox is a geographic bounding box in decimal degrees
type BoundingBox struct {
	West  float64
	East  float64
	South float64
	North float64
}

// TemporalExtent is a validity period. To may be "now".
type TemporalExtent struct {
	From string
	To   string
}

// VerticalExtent is a vertical range in the units of CRS
type VerticalExtent struct {
	Min float64
	Max float64
	CRS string
}

// QualitySpecification is a data quality report entry. It is a conformance
// result when Measure is empty and a quantitative result otherwise.
type QualitySpecification struct {
	Title              string
	TitleLink          string
	Date               *time.Time
	DateType           string
	Explanation        string
	EnglishExplanation string
	// Result is nil when conformance is unknown
	Result *bool

	// Measure is one of MeasureAvailability, MeasurePerformance, MeasureCapacity
	Measure string
	Value   float64
}

// IsQuantitative reports whether the specification is a quantitative measure.
func (q QualitySpecification) IsQuantitative() bool {
	return q.Measure != ""
}

// DistributionFormat is a distribution format name and version
type DistributionFormat struct {
	Name    string
	Version string
}

// DistributionDetails describes the primary online access point
type DistributionDetails struct {
	URL                        string
	Protocol                   string
	Name                       string
	UnitsOfDistribution        string
	EnglishUnitsOfDistribution string
}

// Distribution is one format offered through one access point
type Distribution struct {
	FormatName          string
	FormatVersion       string
	URL                 string
	Protocol            string
	Name                string
	UnitsOfDistribution string
}

// ReferenceSystem is a coordinate reference system
type ReferenceSystem struct {
	CoordinateSystem     string
	CoordinateSystemLink string
	Namespace            string
}

// Thumbnail is a graphic overview of the resource
type Thumbnail struct {
	URL      string
	Type     string
	MimeType string
}

// ResourceReference is the identifier of the described resource
type ResourceReference struct {
	Code      string
	Codespace string
}

// Operation is an operation offered by a service
type Operation struct {
	Name string
	DCP  string
	URL  string
}

// ProductSpecificationOther is a named link to an additional product specification
type ProductSpecificationOther struct {
	Name string
	URL  string
}
