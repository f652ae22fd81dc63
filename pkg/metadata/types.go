package metadata

import (
	"time"
)

// Document represents one catalog record (gmd:MD_Metadata)
type Document struct {
	FileIdentifier          string
	Language                Code
	CharacterSet            Code
	ParentIdentifier        string
	HierarchyLevel          Code
	HierarchyLevelName      string
	Contacts                []*ResponsibleParty
	DateStamp               *time.Time
	MetadataStandardName    string
	MetadataStandardVersion string
	Locales                 []*Locale
	ReferenceSystems        []*ReferenceSystem
	// Extensions holds auxiliary resource links keyed by their application profile
	Extensions     []*OnlineResource
	Identification *Identification
	Distribution   *Distribution
	DataQuality    *DataQuality
}

// Locale declares an alternate language used by PT_FreeText values
type Locale struct {
	ID           string
	Language     Code
	CharacterSet Code
}

// ResponsibleParty is a contact (gmd:CI_ResponsibleParty)
type ResponsibleParty struct {
	IndividualName   string
	OrganisationName Text
	PositionName     string
	Email            string
	Role             Code
}

// Citation is a reference to a resource (gmd:CI_Citation)
type Citation struct {
	Title       Text
	Dates       []*CitationDate
	Identifiers []*Identifier
}

// CitationDate is a dated event of a cited resource
type CitationDate struct {
	Date time.Time
	Type Code
}

// Identifier is a resource identifier (gmd:RS_Identifier)
type Identifier struct {
	Code      Text
	Codespace string
}

// IdentificationKind distinguishes data from service identification
type IdentificationKind int

const (
	// DataIdentification is gmd:MD_DataIdentification
	DataIdentification IdentificationKind = iota
	// ServiceIdentification is srv:SV_ServiceIdentification
	ServiceIdentification
)

// Identification is the identification block of a record. Fields in the
// dataset and service sections are only serialized for the matching Kind.
type Identification struct {
	Kind                 IdentificationKind
	Citation             *Citation
	Abstract             Text
	Purpose              Text
	Credit               Text
	Status               Code
	PointsOfContact      []*ResponsibleParty
	MaintenanceFrequency Code
	GraphicOverviews     []*BrowseGraphic
	Keywords             []*KeywordGroup
	SpecificUsage        Text
	Constraints          []Constraint
	Extents              []*Extent

	// dataset
	SpatialRepresentationType Code
	Resolution                *Resolution
	Language                  Code
	TopicCategories           []string
	SupplementalInformation   Text

	// service
	ServiceType        string
	ServiceTypeVersion string
	CouplingType       Code
	Operations         []*Operation
	OperatesOn         []*OperatesOn
}

// BrowseGraphic is a thumbnail (gmd:MD_BrowseGraphic)
type BrowseGraphic struct {
	FileName        string
	FileDescription string
	FileType        string
}

// KeywordGroup is one gmd:MD_Keywords block: keywords sharing a type and thesaurus
type KeywordGroup struct {
	Keywords  []Text
	Type      Code
	Thesaurus *Citation
}

// Resolution is the spatial resolution of a dataset
type Resolution struct {
	// Scale is the denominator of the equivalent scale, 0 if unset
	Scale int
	// Distance is the ground sample distance, 0 if unset
	Distance     float64
	DistanceUnit string
}

// Operation is an operation offered by a service
type Operation struct {
	Name         string
	DCP          Code
	ConnectPoint string
}

// OperatesOn references a dataset served by a service
type OperatesOn struct {
	UUIDRef string
	Href    string
}

// Constraint is a resource constraint. It is implemented by
// GenericConstraint, LegalConstraint and SecurityConstraint only.
type Constraint interface {
	// Limitations returns the use limitations shared by all constraint kinds
	Limitations() []Text
	isConstraint()
}

// GenericConstraint is gmd:MD_Constraints
type GenericConstraint struct {
	UseLimitations []Text
}

// LegalConstraint is gmd:MD_LegalConstraints
type LegalConstraint struct {
	UseLimitations    []Text
	AccessConstraints []Code
	UseConstraints    []Code
	OtherConstraints  []Text
}

// SecurityConstraint is gmd:MD_SecurityConstraints
type SecurityConstraint struct {
	UseLimitations []Text
	Classification Code
	UserNote       Text
}

func (c *GenericConstraint) Limitations() []Text  { return c.UseLimitations }
func (c *LegalConstraint) Limitations() []Text    { return c.UseLimitations }
func (c *SecurityConstraint) Limitations() []Text { return c.UseLimitations }

func (*GenericConstraint) isConstraint()  {}
func (*LegalConstraint) isConstraint()    {}
func (*SecurityConstraint) isConstraint() {}

// Extent is gmd:EX_Extent
type Extent struct {
	Description        Text
	GeographicElements []GeographicElement
	TemporalElements   []*TemporalExtent
	VerticalElements   []*VerticalExtent
}

// GeographicElement is implemented by *BoundingBox and *GeographicDescription only.
type GeographicElement interface {
	isGeographicElement()
}

// BoundingBox is gmd:EX_GeographicBoundingBox, in decimal degrees
type BoundingBox struct {
	West  float64
	East  float64
	South float64
	North float64
}

// GeographicDescription identifies an area by code
type GeographicDescription struct {
	Code Text
}

func (*BoundingBox) isGeographicElement()           {}
func (*GeographicDescription) isGeographicElement() {}

// IndeterminateNow marks a time period that is still ongoing
const IndeterminateNow = "now"

// TemporalExtent is a gml:TimePeriod inside gmd:EX_TemporalExtent
type TemporalExtent struct {
	ID    string
	Begin string
	End   string
	// EndIndeterminate is the indeterminatePosition of the end, e.g. "now"
	EndIndeterminate string
}

// VerticalExtent is gmd:EX_VerticalExtent
type VerticalExtent struct {
	Minimum float64
	Maximum float64
	// CRS is the xlink reference of the vertical reference system
	CRS string
}

// Distribution is gmd:MD_Distribution
type Distribution struct {
	Formats         []*Format
	Distributors    []*Distributor
	TransferOptions []*TransferOptions
}

// Format is gmd:MD_Format
type Format struct {
	Name    string
	Version string
}

// Distributor pairs distribution formats with transfer options
type Distributor struct {
	Formats         []*Format
	TransferOptions []*TransferOptions
}

// TransferOptions is gmd:MD_DigitalTransferOptions
type TransferOptions struct {
	UnitsOfDistribution Text
	OnLine              []*OnlineResource
}

// OnlineResource is gmd:CI_OnlineResource
type OnlineResource struct {
	URL                string
	Protocol           string
	ApplicationProfile string
	Name               string
	Description        string
	Function           Code
}

// ReferenceSystem identifies a coordinate reference system
type ReferenceSystem struct {
	Code      Text
	Codespace string
}

// DataQuality is gmd:DQ_DataQuality
type DataQuality struct {
	Scope   Code
	Reports []*Report
	Lineage Text
}

// ReportKind is the element name of a data quality report
type ReportKind string

const (
	DomainConsistency     ReportKind = "DQ_DomainConsistency"
	ConceptualConsistency ReportKind = "DQ_ConceptualConsistency"
)

// Report is one data quality report
type Report struct {
	Kind                  ReportKind
	NameOfMeasure         string
	MeasureIdentification string
	Results               []Result
}

// Result is implemented by *ConformanceResult and *QuantitativeResult only.
type Result interface {
	isResult()
}

// ConformanceResult is gmd:DQ_ConformanceResult
type ConformanceResult struct {
	Specification *Citation
	Explanation   Text
	// Pass is nil when the outcome is unknown
	Pass *bool
}

// QuantitativeResult is gmd:DQ_QuantitativeResult
type QuantitativeResult struct {
	ValueUnit string
	Value     float64
}

func (*ConformanceResult) isResult()  {}
func (*QuantitativeResult) isResult() {}
