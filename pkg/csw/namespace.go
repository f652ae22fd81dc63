package csw

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// Namespace constants for CSW 2.0.2 and OGC Filter 1.1
const (
	NsCSW = "http://www.opengis.net/cat/csw/2.0.2"
	NsOGC = "http://www.opengis.net/ogc"
	NsOWS = "http://www.opengis.net/ows"
	NsGML = "http://www.opengis.net/gml"
	NsDC  = "http://purl.org/dc/elements/1.1/"
	NsDCT = "http://purl.org/dc/terms/"
)

// Protocol constants
const (
	Service       = "CSW"
	Version       = "2.0.2"
	FilterVersion = "1.1.0"
)

// Output schemas selecting the record representation of a response
const (
	// OutputSchemaCSW returns Dublin Core csw:Record entries
	OutputSchemaCSW = NsCSW
	// OutputSchemaISO returns full gmd:MD_Metadata documents
	OutputSchemaISO = metadata.NsGMD
)

// ElementSetFull is the element set requested by every query
const ElementSetFull = "full"

// Queryable property names
const (
	PropertyAnyText              = "AnyText"
	PropertyTitle                = "Title"
	PropertyIdentifier           = "Identifier"
	PropertyModified             = "Modified"
	PropertyType                 = "Type"
	PropertyOrganisationName     = "OrganisationName"
	PropertyResponsiblePartyName = "ResponsiblePartyName"
	PropertyBoundingBox          = "ows:BoundingBox"
)

// Characters of the PropertyIsLike pattern convention
const (
	WildCard   = "%"
	SingleChar = "_"
	EscapeChar = `\`
)
