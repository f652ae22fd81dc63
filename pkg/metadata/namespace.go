package metadata

// Namespace constants for ISO 19139
const (
	NsGMD   = "http://www.isotc211.org/2005/gmd"
	NsGCO   = "http://www.isotc211.org/2005/gco"
	NsGMX   = "http://www.isotc211.org/2005/gmx"
	NsSRV   = "http://www.isotc211.org/2005/srv"
	NsGML   = "http://www.opengis.net/gml/3.2"
	NsXLink = "http://www.w3.org/1999/xlink"
	NsXSI   = "http://www.w3.org/2001/XMLSchema-instance"
)

// Language codes used for metadata and localised strings
const (
	LanguageNorwegian = "nor"
	LanguageEnglish   = "eng"
)

// Metadata standard written by new documents
const (
	StandardName    = "ISO 19139"
	StandardVersion = "1.0"
)

// namespaces lists the prefix declarations written on the root element, in order.
var namespaces = []struct {
	prefix string
	uri    string
}{
	{"gmd", NsGMD},
	{"gco", NsGCO},
	{"gmx", NsGMX},
	{"srv", NsSRV},
	{"gml", NsGML},
	{"xlink", NsXLink},
	{"xsi", NsXSI},
}
