package metadata

// CodeList identifies an ISO 19139 code list.
type CodeList string

// Code lists referenced by the document model
const (
	ScopeCode                 CodeList = "MD_ScopeCode"
	LanguageCode              CodeList = "LanguageCode"
	CharacterSetCode          CodeList = "MD_CharacterSetCode"
	MaintenanceFrequencyCode  CodeList = "MD_MaintenanceFrequencyCode"
	ProgressCode              CodeList = "MD_ProgressCode"
	SpatialRepresentationCode CodeList = "MD_SpatialRepresentationTypeCode"
	RestrictionCode           CodeList = "MD_RestrictionCode"
	ClassificationCode        CodeList = "MD_ClassificationCode"
	DateTypeCode              CodeList = "CI_DateTypeCode"
	RoleCode                  CodeList = "CI_RoleCode"
	KeywordTypeCode           CodeList = "MD_KeywordTypeCode"
	OnLineFunctionCode        CodeList = "CI_OnLineFunctionCode"
	CouplingTypeCode          CodeList = "SV_CouplingType"
	DCPListCode               CodeList = "DCPList"
)

const (
	isoCodeListBase  = "http://standards.iso.org/iso/19139/resources/gmxCodelists.xml#"
	languageCodeList = "http://www.loc.gov/standards/iso639-2/"
)

// codeListURLs maps each code list to the URL written in the codeList attribute.
// The values are part of the catalogue contract and must not vary at runtime.
var codeListURLs = map[CodeList]string{
	ScopeCode:                 isoCodeListBase + string(ScopeCode),
	LanguageCode:              languageCodeList,
	CharacterSetCode:          isoCodeListBase + string(CharacterSetCode),
	MaintenanceFrequencyCode:  isoCodeListBase + string(MaintenanceFrequencyCode),
	ProgressCode:              isoCodeListBase + string(ProgressCode),
	SpatialRepresentationCode: isoCodeListBase + string(SpatialRepresentationCode),
	RestrictionCode:           isoCodeListBase + string(RestrictionCode),
	ClassificationCode:        isoCodeListBase + string(ClassificationCode),
	DateTypeCode:              isoCodeListBase + string(DateTypeCode),
	RoleCode:                  isoCodeListBase + string(RoleCode),
	KeywordTypeCode:           isoCodeListBase + string(KeywordTypeCode),
	OnLineFunctionCode:        isoCodeListBase + string(OnLineFunctionCode),
	CouplingTypeCode:          isoCodeListBase + string(CouplingTypeCode),
	DCPListCode:               isoCodeListBase + string(DCPListCode),
}

// CodeListURL returns the fixed URL of a code list, or "" if unknown.
func CodeListURL(list CodeList) string {
	return codeListURLs[list]
}

// Code is a code list value with the URL of its code list.
type Code struct {
	List  string
	Value string
}

// NewCode returns a code from the given list. An empty value yields the zero Code.
func NewCode(list CodeList, value string) Code {
	if value == "" {
		return Code{}
	}
	return Code{List: CodeListURL(list), Value: value}
}

// IsZero reports whether the code carries no value.
func (c Code) IsZero() bool {
	return c.Value == ""
}

// Hierarchy levels recognised by the catalogue
const (
	HierarchyDataset        = "dataset"
	HierarchyService        = "service"
	HierarchyDimensionGroup = "dimensionGroup"
	HierarchySeries         = "series"
	HierarchySoftware       = "software"
)

// Date types (CI_DateTypeCode)
const (
	DateTypeCreation    = "creation"
	DateTypePublication = "publication"
	DateTypeRevision    = "revision"
)

// Restriction codes (MD_RestrictionCode)
const (
	RestrictionOther      = "otherRestrictions"
	RestrictionLicense    = "license"
	RestrictionRestricted = "restricted"
)
