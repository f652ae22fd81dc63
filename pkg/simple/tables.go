package simple

import (
	"strings"
	"time"
)

// Thesaurus names recognised by the keyword mapping
const (
	ThesaurusGEMETInspire        = "GEMET - INSPIRE themes, version 1.0"
	ThesaurusServiceTaxonomy     = "ISO - 19119 geographic services taxonomy"
	ThesaurusServiceRegulation   = "COMMISSION REGULATION (EC) No 1205/2008 of 3 December 2008 implementing Directive 2007/2/EC of the European Parliament and of the Council as regards metadata"
	ThesaurusSpatialScope        = "Spatial scope"
	ThesaurusInspirePriority     = "INSPIRE priority data set"
	ThesaurusNationalTheme       = "GeoNorge-Tema"
	ThesaurusNationalInitiative  = "Samarbeid og lover"
	ThesaurusConcept             = "Begrepsliste fra Nasjonalt metadataregister"
	ThesaurusAdministrativeUnits = "Administrative enheter"
)

type thesaurus struct {
	date time.Time
	link string
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// thesauri maps each recognised thesaurus to its publication date and link.
var thesauri = map[string]thesaurus{
	ThesaurusGEMETInspire:        {date: day(2008, time.June, 1), link: "http://www.eionet.europa.eu/gemet/inspire_themes"},
	ThesaurusServiceTaxonomy:     {date: day(2010, time.January, 19)},
	ThesaurusServiceRegulation:   {date: day(2008, time.December, 3), link: "http://data.europa.eu/eli/reg/2008/1205"},
	ThesaurusSpatialScope:        {date: day(2019, time.May, 22), link: "http://inspire.ec.europa.eu/metadata-codelist/SpatialScope"},
	ThesaurusInspirePriority:     {date: day(2018, time.April, 4), link: "http://inspire.ec.europa.eu/metadata-codelist/PriorityDataset"},
	ThesaurusNationalTheme:       {date: day(2014, time.October, 28)},
	ThesaurusNationalInitiative:  {date: day(2014, time.October, 28)},
	ThesaurusConcept:             {date: day(2016, time.November, 1)},
	ThesaurusAdministrativeUnits: {date: day(2020, time.January, 1), link: "https://register.geonorge.no/sosi-kodelister/inndelinger/inndelingsbase/kommunenummer"},
}

// Application profile labels of the metadata extension entries used for
// auxiliary resource links
const (
	LabelProductSpecification      = "produktspesifikasjon"
	LabelProductSpecificationOther = "annen produktspesifikasjon"
	LabelProductSheet              = "produktark"
	LabelProductPage               = "produktside"
	LabelLegendDescription         = "tegnforklaring"
	LabelCoverage                  = "dekningsoversikt"
	LabelCoverageGrid              = "dekningsoversikt rutenett"
	LabelCoverageCell              = "dekningsoversikt celle"
	LabelHelp                      = "hjelp"
)

// Access constraint texts written for the known public access links
const (
	AccessNoRestrictions          = "no restrictions"
	AccessNorwayDigitalRestricted = "norway digital restricted"
	AccessRestricted              = "restricted"
)

const inspireAccessBase = "http://inspire.ec.europa.eu/metadata-codelist/LimitationsOnPublicAccess/"

// accessLinks maps a public access limitation key to its canonical link and
// the access constraint text written with it. Links are matched by key
// substring so both http and https variants resolve.
var accessLinks = []struct {
	key  string
	link string
	text string
}{
	{key: "noLimitations", link: inspireAccessBase + "noLimitations", text: AccessNoRestrictions},
	{key: "INSPIRE_Directive_Article13_1e", link: inspireAccessBase + "INSPIRE_Directive_Article13_1e", text: AccessNorwayDigitalRestricted},
	{key: "INSPIRE_Directive_Article13_1b", link: inspireAccessBase + "INSPIRE_Directive_Article13_1b", text: AccessRestricted},
}

// accessTextForLink returns the access constraint text for a known link, or "".
func accessTextForLink(link string) string {
	for _, a := range accessLinks {
		if strings.Contains(link, a.key) {
			return a.text
		}
	}
	return ""
}

// accessLinkForText returns the canonical link for a known access constraint text, or "".
func accessLinkForText(text string) string {
	for _, a := range accessLinks {
		if a.text == text {
			return a.link
		}
	}
	return ""
}

// Quantitative quality measures
const (
	MeasureAvailability = "availability"
	MeasurePerformance  = "performance"
	MeasureCapacity     = "capacity"
)

// measureUnits maps each quantitative measure to its implied unit.
var measureUnits = map[string]string{
	MeasureAvailability: "percent",
	MeasurePerformance:  "second",
	MeasureCapacity:     "count",
}

// Contact roles used by the role-keyed contact properties
const (
	RolePointOfContact = "pointOfContact"
	RolePublisher      = "publisher"
	RoleOwner          = "owner"
	RoleCustodian      = "custodian"
)

// Keyword types
const (
	KeywordTypePlace = "place"
	KeywordTypeTheme = "theme"
)
