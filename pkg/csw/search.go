package csw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SortOrder selects the ordering of search results
type SortOrder int

const (
	// SortNone leaves ordering to the catalogue
	SortNone SortOrder = iota
	// SortTitleAscending orders by Title, ascending
	SortTitleAscending
	// SortModifiedDescending orders by Modified, newest first
	SortModifiedDescending
)

// String returns the sort order name used in configuration
func (s SortOrder) String() string {
	switch s {
	case SortTitleAscending:
		return "title"
	case SortModifiedDescending:
		return "modified"
	default:
		return "none"
	}
}

// ParseSortOrder maps a configuration name to a SortOrder
func ParseSortOrder(name string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return SortNone, nil
	case "title":
		return SortTitleAscending, nil
	case "modified":
		return SortModifiedDescending, nil
	default:
		return SortNone, fmt.Errorf("unknown sort order %q", name)
	}
}

// Default paging values
const (
	DefaultStartPosition = 1
	DefaultMaxRecords    = 10
)

// ErrInvalidPaging is returned when paging parameters are out of range
var ErrInvalidPaging = errors.New("csw: start position and max records must be positive")

// SearchRequest is a csw:GetRecords request
type SearchRequest struct {
	// Filter constrains the result set; nil matches all records
	Filter Predicate
	// StartPosition is the 1-based index of the first returned record
	StartPosition int
	MaxRecords    int
	Sort          SortOrder
	OutputSchema  string
	// ElementSetName is always ElementSetFull
	ElementSetName string
}

// SearchOption configures a SearchRequest
type SearchOption func(*SearchRequest)

// NewSearchRequest creates a GetRecords request for filter
func NewSearchRequest(filter Predicate, opts ...SearchOption) *SearchRequest {
	r := &SearchRequest{
		Filter:         filter,
		StartPosition:  DefaultStartPosition,
		MaxRecords:     DefaultMaxRecords,
		Sort:           SortNone,
		OutputSchema:   OutputSchemaCSW,
		ElementSetName: ElementSetFull,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithStartPosition sets the 1-based index of the first returned record
func WithStartPosition(n int) SearchOption {
	return func(r *SearchRequest) {
		r.StartPosition = n
	}
}

// WithMaxRecords sets the page size
func WithMaxRecords(n int) SearchOption {
	return func(r *SearchRequest) {
		r.MaxRecords = n
	}
}

// WithSort sets the result ordering
func WithSort(s SortOrder) SearchOption {
	return func(r *SearchRequest) {
		r.Sort = s
	}
}

// WithOutputSchema selects brief Dublin Core records (OutputSchemaCSW) or
// full ISO documents (OutputSchemaISO)
func WithOutputSchema(schema string) SearchOption {
	return func(r *SearchRequest) {
		r.OutputSchema = schema
	}
}

// SearchFreeText searches AnyText for every whitespace-separated token of text
func SearchFreeText(text string, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(FreeTextFilter(text), opts...)
}

// SearchOrganisation searches by organisation name
func SearchOrganisation(name string, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(OrganisationFilter(name), opts...)
}

// SearchContactPoint searches by responsible party name
func SearchContactPoint(name string, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(ContactPointFilter(name), opts...)
}

// SearchFreeTextAndOrganisation searches AnyText and organisation name together
func SearchFreeTextAndOrganisation(text, name string, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(FreeTextAndOrganisationFilter(text, name), opts...)
}

// SearchFreeTextAndContactPoint searches AnyText and responsible party name together
func SearchFreeTextAndContactPoint(text, name string, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(FreeTextAndContactPointFilter(text, name), opts...)
}

// SearchFiltered searches with arbitrary predicates. Several predicates are
// combined with And.
func SearchFiltered(predicates []Predicate, opts ...SearchOption) *SearchRequest {
	return NewSearchRequest(AllOf(predicates...), opts...)
}

// Validate checks the paging parameters
func (r *SearchRequest) Validate() error {
	if r.StartPosition < 1 || r.MaxRecords < 1 {
		return ErrInvalidPaging
	}
	return nil
}

// typeNames returns the queried record type for the output schema
func (r *SearchRequest) typeNames() string {
	if r.OutputSchema == OutputSchemaISO {
		return "gmd:MD_Metadata"
	}
	return "csw:Record"
}

// Element builds the csw:GetRecords element
func (r *SearchRequest) Element() (*etree.Element, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	root := newRequestRoot("csw:GetRecords")
	root.CreateAttr("xmlns:gmd", OutputSchemaISO)
	root.CreateAttr("resultType", "results")
	root.CreateAttr("outputFormat", "application/xml")
	root.CreateAttr("outputSchema", r.OutputSchema)
	root.CreateAttr("startPosition", strconv.Itoa(r.StartPosition))
	root.CreateAttr("maxRecords", strconv.Itoa(r.MaxRecords))

	query := root.CreateElement("csw:Query")
	query.CreateAttr("typeNames", r.typeNames())
	elementSet := r.ElementSetName
	if elementSet == "" {
		elementSet = ElementSetFull
	}
	query.CreateElement("csw:ElementSetName").SetText(elementSet)

	if r.Filter != nil {
		constraint := query.CreateElement("csw:Constraint")
		constraint.CreateAttr("version", FilterVersion)
		if err := encodePredicate(constraint.CreateElement("ogc:Filter"), r.Filter); err != nil {
			return nil, err
		}
	}

	if prop, order := sortSpec(r.Sort); prop != "" {
		sp := query.CreateElement("ogc:SortBy").CreateElement("ogc:SortProperty")
		sp.CreateElement("ogc:PropertyName").SetText(prop)
		sp.CreateElement("ogc:SortOrder").SetText(order)
	}
	return root, nil
}

// Marshal serializes the request as an XML document
func (r *SearchRequest) Marshal() ([]byte, error) {
	root, err := r.Element()
	if err != nil {
		return nil, err
	}
	return marshalRoot(root)
}

func sortSpec(s SortOrder) (property, order string) {
	switch s {
	case SortTitleAscending:
		return PropertyTitle, "ASC"
	case SortModifiedDescending:
		return PropertyModified, "DESC"
	default:
		return "", ""
	}
}

// GetRecordByIDRequest is a csw:GetRecordById request
type GetRecordByIDRequest struct {
	IDs            []string
	OutputSchema   string
	ElementSetName string
}

// NewGetRecordByID creates a request for the record with identifier id,
// returned as a full ISO document
func NewGetRecordByID(id string) (*GetRecordByIDRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyIdentifier
	}
	return &GetRecordByIDRequest{
		IDs:            []string{id},
		OutputSchema:   OutputSchemaISO,
		ElementSetName: ElementSetFull,
	}, nil
}

// Element builds the csw:GetRecordById element
func (r *GetRecordByIDRequest) Element() *etree.Element {
	root := newRequestRoot("csw:GetRecordById")
	root.CreateAttr("outputSchema", r.OutputSchema)
	root.CreateAttr("outputFormat", "application/xml")
	for _, id := range r.IDs {
		root.CreateElement("csw:Id").SetText(id)
	}
	root.CreateElement("csw:ElementSetName").SetText(r.ElementSetName)
	return root
}

// Marshal serializes the request as an XML document
func (r *GetRecordByIDRequest) Marshal() ([]byte, error) {
	return marshalRoot(r.Element())
}
