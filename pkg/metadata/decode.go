package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// ErrNotMetadata is returned when the XML root is not gmd:MD_Metadata
var ErrNotMetadata = errors.New("metadata: root element is not MD_Metadata")

// Unmarshal parses an ISO 19139 XML document. The MD_Metadata element may be
// the root or nested anywhere below it, as in a GetRecordById response.
func Unmarshal(data []byte) (*Document, error) {
	xmlDoc := etree.NewDocument()
	if err := xmlDoc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing metadata XML: %w", err)
	}
	root := xmlDoc.Root()
	if root == nil {
		return nil, ErrNotMetadata
	}
	if root.Tag != "MD_Metadata" {
		root = root.FindElement("//MD_Metadata")
		if root == nil {
			return nil, ErrNotMetadata
		}
	}
	return Decode(root)
}

// Decode reads a document from a gmd:MD_Metadata element. Missing elements
// leave the corresponding fields at their zero value; malformed dates and
// numbers are reported as errors.
func Decode(el *etree.Element) (*Document, error) {
	if el == nil || el.Tag != "MD_Metadata" {
		return nil, ErrNotMetadata
	}

	doc := &Document{
		FileIdentifier:          childString(el, "fileIdentifier"),
		Language:                childCode(el, "language"),
		CharacterSet:            childCode(el, "characterSet"),
		ParentIdentifier:        childString(el, "parentIdentifier"),
		HierarchyLevel:          childCode(el, "hierarchyLevel"),
		HierarchyLevelName:      childString(el, "hierarchyLevelName"),
		MetadataStandardName:    childString(el, "metadataStandardName"),
		MetadataStandardVersion: childString(el, "metadataStandardVersion"),
	}

	for _, c := range el.SelectElements("contact") {
		doc.Contacts = append(doc.Contacts, decodeResponsibleParty(c))
	}

	if stamp := el.SelectElement("dateStamp"); stamp != nil {
		t, err := decodeDate(stamp)
		if err != nil {
			return nil, fmt.Errorf("dateStamp: %w", err)
		}
		doc.DateStamp = t
	}

	for _, l := range el.SelectElements("locale") {
		loc := l.SelectElement("PT_Locale")
		if loc == nil {
			continue
		}
		doc.Locales = append(doc.Locales, &Locale{
			ID:           attr(loc, "id"),
			Language:     childCode(loc, "languageCode"),
			CharacterSet: childCode(loc, "characterEncoding"),
		})
	}

	for _, r := range el.SelectElements("referenceSystemInfo") {
		id := r.FindElement("./MD_ReferenceSystem/referenceSystemIdentifier/RS_Identifier")
		if id == nil {
			continue
		}
		doc.ReferenceSystems = append(doc.ReferenceSystems, &ReferenceSystem{
			Code:      decodeText(id.SelectElement("code")),
			Codespace: childString(id, "codeSpace"),
		})
	}

	for _, r := range el.FindElements("./metadataExtensionInfo/MD_MetadataExtensionInformation/extensionOnLineResource") {
		if res := decodeOnlineResource(r); res != nil {
			doc.Extensions = append(doc.Extensions, res)
		}
	}

	if info := el.SelectElement("identificationInfo"); info != nil {
		id, err := decodeIdentification(info)
		if err != nil {
			return nil, fmt.Errorf("identificationInfo: %w", err)
		}
		doc.Identification = id
	}

	if info := el.SelectElement("distributionInfo"); info != nil {
		doc.Distribution = decodeDistribution(info)
	}

	if info := el.SelectElement("dataQualityInfo"); info != nil {
		dq, err := decodeDataQuality(info)
		if err != nil {
			return nil, fmt.Errorf("dataQualityInfo: %w", err)
		}
		doc.DataQuality = dq
	}

	return doc, nil
}

func decodeResponsibleParty(prop *etree.Element) *ResponsibleParty {
	rp := prop.SelectElement("CI_ResponsibleParty")
	if rp == nil {
		return &ResponsibleParty{}
	}
	party := &ResponsibleParty{
		IndividualName:   childString(rp, "individualName"),
		OrganisationName: decodeText(rp.SelectElement("organisationName")),
		PositionName:     childString(rp, "positionName"),
		Role:             childCode(rp, "role"),
	}
	if address := rp.FindElement("./contactInfo/CI_Contact/address/CI_Address"); address != nil {
		party.Email = childString(address, "electronicMailAddress")
	}
	return party
}

func decodeCitation(prop *etree.Element) (*Citation, error) {
	if prop == nil {
		return nil, nil
	}
	cit := prop.SelectElement("CI_Citation")
	if cit == nil {
		return nil, nil
	}
	c := &Citation{Title: decodeText(cit.SelectElement("title"))}
	for _, d := range cit.FindElements("./date/CI_Date") {
		t, err := decodeDate(d.SelectElement("date"))
		if err != nil {
			return nil, fmt.Errorf("citation date: %w", err)
		}
		if t == nil {
			continue
		}
		c.Dates = append(c.Dates, &CitationDate{Date: *t, Type: childCode(d, "dateType")})
	}
	for _, id := range cit.SelectElements("identifier") {
		inner := firstChild(id)
		if inner == nil {
			continue
		}
		c.Identifiers = append(c.Identifiers, &Identifier{
			Code:      decodeText(inner.SelectElement("code")),
			Codespace: childString(inner, "codeSpace"),
		})
	}
	return c, nil
}

func decodeIdentification(info *etree.Element) (*Identification, error) {
	ident := firstChild(info)
	if ident == nil {
		return nil, nil
	}

	id := &Identification{Kind: DataIdentification}
	if ident.Tag == "SV_ServiceIdentification" {
		id.Kind = ServiceIdentification
	}

	citation, err := decodeCitation(ident.SelectElement("citation"))
	if err != nil {
		return nil, err
	}
	id.Citation = citation
	id.Abstract = decodeText(ident.SelectElement("abstract"))
	id.Purpose = decodeText(ident.SelectElement("purpose"))
	id.Credit = decodeText(ident.SelectElement("credit"))
	id.Status = childCode(ident, "status")

	for _, p := range ident.SelectElements("pointOfContact") {
		id.PointsOfContact = append(id.PointsOfContact, decodeResponsibleParty(p))
	}
	if m := ident.FindElement("./resourceMaintenance/MD_MaintenanceInformation"); m != nil {
		id.MaintenanceFrequency = childCode(m, "maintenanceAndUpdateFrequency")
	}
	for _, g := range ident.FindElements("./graphicOverview/MD_BrowseGraphic") {
		id.GraphicOverviews = append(id.GraphicOverviews, &BrowseGraphic{
			FileName:        childString(g, "fileName"),
			FileDescription: childString(g, "fileDescription"),
			FileType:        childString(g, "fileType"),
		})
	}
	for _, k := range ident.FindElements("./descriptiveKeywords/MD_Keywords") {
		kg, err := decodeKeywordGroup(k)
		if err != nil {
			return nil, err
		}
		id.Keywords = append(id.Keywords, kg)
	}
	if u := ident.FindElement("./resourceSpecificUsage/MD_Usage"); u != nil {
		id.SpecificUsage = decodeText(u.SelectElement("specificUsage"))
	}
	for _, c := range ident.SelectElements("resourceConstraints") {
		if constraint := decodeConstraint(firstChild(c)); constraint != nil {
			id.Constraints = append(id.Constraints, constraint)
		}
	}
	for _, e := range ident.FindElements("./extent/EX_Extent") {
		extent, err := decodeExtent(e)
		if err != nil {
			return nil, err
		}
		id.Extents = append(id.Extents, extent)
	}

	if id.Kind == ServiceIdentification {
		decodeServiceSection(ident, id)
		return id, nil
	}

	id.SpatialRepresentationType = childCode(ident, "spatialRepresentationType")
	for _, r := range ident.FindElements("./spatialResolution/MD_Resolution") {
		if id.Resolution == nil {
			id.Resolution = &Resolution{}
		}
		if d := r.FindElement("./equivalentScale/MD_RepresentativeFraction/denominator/Integer"); d != nil {
			scale, err := strconv.Atoi(strings.TrimSpace(d.Text()))
			if err != nil {
				return nil, fmt.Errorf("equivalentScale: %w", err)
			}
			id.Resolution.Scale = scale
		}
		if d := r.FindElement("./distance/Distance"); d != nil {
			distance, err := parseFloat(d.Text())
			if err != nil {
				return nil, fmt.Errorf("distance: %w", err)
			}
			id.Resolution.Distance = distance
			id.Resolution.DistanceUnit = attr(d, "uom")
		}
	}
	id.Language = childCode(ident, "language")
	for _, tc := range ident.FindElements("./topicCategory/MD_TopicCategoryCode") {
		id.TopicCategories = append(id.TopicCategories, strings.TrimSpace(tc.Text()))
	}
	id.SupplementalInformation = decodeText(ident.SelectElement("supplementalInformation"))

	return id, nil
}

func decodeServiceSection(ident *etree.Element, id *Identification) {
	if st := ident.FindElement("./serviceType/LocalName"); st != nil {
		id.ServiceType = strings.TrimSpace(st.Text())
	}
	id.ServiceTypeVersion = childString(ident, "serviceTypeVersion")
	id.CouplingType = childCode(ident, "couplingType")
	for _, op := range ident.FindElements("./containsOperations/SV_OperationMetadata") {
		operation := &Operation{
			Name: childString(op, "operationName"),
			DCP:  childCode(op, "DCP"),
		}
		if cp := op.SelectElement("connectPoint"); cp != nil {
			if res := decodeOnlineResource(cp); res != nil {
				operation.ConnectPoint = res.URL
			}
		}
		id.Operations = append(id.Operations, operation)
	}
	for _, o := range ident.SelectElements("operatesOn") {
		id.OperatesOn = append(id.OperatesOn, &OperatesOn{
			UUIDRef: attr(o, "uuidref"),
			Href:    attr(o, "href"),
		})
	}
}

func decodeKeywordGroup(el *etree.Element) (*KeywordGroup, error) {
	kg := &KeywordGroup{Type: childCode(el, "type")}
	for _, k := range el.SelectElements("keyword") {
		if t := decodeText(k); t != nil {
			kg.Keywords = append(kg.Keywords, t)
		}
	}
	thesaurus, err := decodeCitation(el.SelectElement("thesaurusName"))
	if err != nil {
		return nil, fmt.Errorf("thesaurusName: %w", err)
	}
	kg.Thesaurus = thesaurus
	return kg, nil
}

func decodeConstraint(el *etree.Element) Constraint {
	if el == nil {
		return nil
	}
	limitations := decodeTexts(el.SelectElements("useLimitation"))
	switch el.Tag {
	case "MD_Constraints":
		return &GenericConstraint{UseLimitations: limitations}
	case "MD_LegalConstraints":
		legal := &LegalConstraint{
			UseLimitations:   limitations,
			OtherConstraints: decodeTexts(el.SelectElements("otherConstraints")),
		}
		for _, a := range el.SelectElements("accessConstraints") {
			if c := decodeCode(a); !c.IsZero() {
				legal.AccessConstraints = append(legal.AccessConstraints, c)
			}
		}
		for _, u := range el.SelectElements("useConstraints") {
			if c := decodeCode(u); !c.IsZero() {
				legal.UseConstraints = append(legal.UseConstraints, c)
			}
		}
		return legal
	case "MD_SecurityConstraints":
		return &SecurityConstraint{
			UseLimitations: limitations,
			Classification: childCode(el, "classification"),
			UserNote:       decodeText(el.SelectElement("userNote")),
		}
	default:
		return nil
	}
}

func decodeExtent(el *etree.Element) (*Extent, error) {
	e := &Extent{Description: decodeText(el.SelectElement("description"))}

	for _, g := range el.SelectElements("geographicElement") {
		inner := firstChild(g)
		if inner == nil {
			continue
		}
		switch inner.Tag {
		case "EX_GeographicBoundingBox":
			bbox := &BoundingBox{}
			edges := []struct {
				tag string
				dst *float64
			}{
				{"westBoundLongitude", &bbox.West},
				{"eastBoundLongitude", &bbox.East},
				{"southBoundLatitude", &bbox.South},
				{"northBoundLatitude", &bbox.North},
			}
			for _, edge := range edges {
				d := inner.FindElement("./" + edge.tag + "/Decimal")
				if d == nil {
					continue
				}
				v, err := parseFloat(d.Text())
				if err != nil {
					return nil, fmt.Errorf("%s: %w", edge.tag, err)
				}
				*edge.dst = v
			}
			e.GeographicElements = append(e.GeographicElements, bbox)
		case "EX_GeographicDescription":
			code := inner.FindElement("./geographicIdentifier/*/code")
			e.GeographicElements = append(e.GeographicElements, &GeographicDescription{Code: decodeText(code)})
		}
	}

	for _, p := range el.FindElements("./temporalElement/EX_TemporalExtent/extent/TimePeriod") {
		t := &TemporalExtent{ID: attr(p, "id")}
		if b := p.SelectElement("beginPosition"); b != nil {
			t.Begin = strings.TrimSpace(b.Text())
		}
		if end := p.SelectElement("endPosition"); end != nil {
			t.End = strings.TrimSpace(end.Text())
			t.EndIndeterminate = attr(end, "indeterminatePosition")
		}
		e.TemporalElements = append(e.TemporalElements, t)
	}

	for _, v := range el.FindElements("./verticalElement/EX_VerticalExtent") {
		vertical := &VerticalExtent{}
		if m := v.FindElement("./minimumValue/Real"); m != nil {
			min, err := parseFloat(m.Text())
			if err != nil {
				return nil, fmt.Errorf("minimumValue: %w", err)
			}
			vertical.Minimum = min
		}
		if m := v.FindElement("./maximumValue/Real"); m != nil {
			max, err := parseFloat(m.Text())
			if err != nil {
				return nil, fmt.Errorf("maximumValue: %w", err)
			}
			vertical.Maximum = max
		}
		if crs := v.SelectElement("verticalCRS"); crs != nil {
			vertical.CRS = attr(crs, "href")
		}
		e.VerticalElements = append(e.VerticalElements, vertical)
	}

	return e, nil
}

func decodeDistribution(info *etree.Element) *Distribution {
	dist := info.SelectElement("MD_Distribution")
	if dist == nil {
		return nil
	}
	d := &Distribution{}
	for _, f := range dist.FindElements("./distributionFormat/MD_Format") {
		d.Formats = append(d.Formats, decodeFormat(f))
	}
	for _, dr := range dist.FindElements("./distributor/MD_Distributor") {
		distributor := &Distributor{}
		for _, f := range dr.FindElements("./distributorFormat/MD_Format") {
			distributor.Formats = append(distributor.Formats, decodeFormat(f))
		}
		for _, t := range dr.FindElements("./distributorTransferOptions/MD_DigitalTransferOptions") {
			distributor.TransferOptions = append(distributor.TransferOptions, decodeTransferOptions(t))
		}
		d.Distributors = append(d.Distributors, distributor)
	}
	for _, t := range dist.FindElements("./transferOptions/MD_DigitalTransferOptions") {
		d.TransferOptions = append(d.TransferOptions, decodeTransferOptions(t))
	}
	return d
}

func decodeFormat(el *etree.Element) *Format {
	return &Format{
		Name:    childString(el, "name"),
		Version: childString(el, "version"),
	}
}

func decodeTransferOptions(el *etree.Element) *TransferOptions {
	t := &TransferOptions{UnitsOfDistribution: decodeText(el.SelectElement("unitsOfDistribution"))}
	for _, o := range el.SelectElements("onLine") {
		if res := decodeOnlineResource(o); res != nil {
			t.OnLine = append(t.OnLine, res)
		}
	}
	return t
}

func decodeOnlineResource(prop *etree.Element) *OnlineResource {
	res := prop.SelectElement("CI_OnlineResource")
	if res == nil {
		return nil
	}
	r := &OnlineResource{
		Protocol:           childString(res, "protocol"),
		ApplicationProfile: childString(res, "applicationProfile"),
		Name:               childString(res, "name"),
		Description:        childString(res, "description"),
		Function:           childCode(res, "function"),
	}
	if u := res.FindElement("./linkage/URL"); u != nil {
		r.URL = strings.TrimSpace(u.Text())
	}
	return r
}

func decodeDataQuality(info *etree.Element) (*DataQuality, error) {
	quality := info.SelectElement("DQ_DataQuality")
	if quality == nil {
		return nil, nil
	}
	dq := &DataQuality{}
	if scope := quality.FindElement("./scope/DQ_Scope"); scope != nil {
		dq.Scope = childCode(scope, "level")
	}
	for _, r := range quality.SelectElements("report") {
		inner := firstChild(r)
		if inner == nil {
			continue
		}
		report := &Report{
			Kind:          ReportKind(inner.Tag),
			NameOfMeasure: childString(inner, "nameOfMeasure"),
		}
		if id := inner.FindElement("./measureIdentification/*"); id != nil {
			report.MeasureIdentification = childString(id, "code")
		}
		for _, res := range inner.SelectElements("result") {
			result, err := decodeResult(firstChild(res))
			if err != nil {
				return nil, err
			}
			if result != nil {
				report.Results = append(report.Results, result)
			}
		}
		dq.Reports = append(dq.Reports, report)
	}
	if lineage := quality.FindElement("./lineage/LI_Lineage"); lineage != nil {
		dq.Lineage = decodeText(lineage.SelectElement("statement"))
	}
	return dq, nil
}

func decodeResult(el *etree.Element) (Result, error) {
	if el == nil {
		return nil, nil
	}
	switch el.Tag {
	case "DQ_ConformanceResult":
		spec, err := decodeCitation(el.SelectElement("specification"))
		if err != nil {
			return nil, fmt.Errorf("specification: %w", err)
		}
		r := &ConformanceResult{
			Specification: spec,
			Explanation:   decodeText(el.SelectElement("explanation")),
		}
		if b := el.FindElement("./pass/Boolean"); b != nil {
			pass, err := strconv.ParseBool(strings.TrimSpace(b.Text()))
			if err != nil {
				return nil, fmt.Errorf("pass: %w", err)
			}
			r.Pass = &pass
		}
		return r, nil
	case "DQ_QuantitativeResult":
		r := &QuantitativeResult{}
		if u := el.SelectElement("valueUnit"); u != nil {
			r.ValueUnit = attr(u, "href")
		}
		if v := el.FindElement("./value/Record"); v != nil {
			value, err := parseFloat(v.Text())
			if err != nil {
				return nil, fmt.Errorf("value: %w", err)
			}
			r.Value = value
		}
		return r, nil
	default:
		return nil, nil
	}
}

// decodeText reads a character string property. It returns nil when the
// property is absent or carries no string content.
func decodeText(prop *etree.Element) Text {
	if prop == nil {
		return nil
	}

	var alternates map[string]string
	for _, l := range prop.FindElements("./PT_FreeText/textGroup/LocalisedCharacterString") {
		if alternates == nil {
			alternates = make(map[string]string)
		}
		alternates[localeLanguage(attr(l, "locale"))] = l.Text()
	}

	if a := prop.SelectElement("Anchor"); a != nil {
		return AnchorText{Value: a.Text(), Href: attr(a, "href"), Alternates: alternates}
	}

	cs := prop.SelectElement("CharacterString")
	switch {
	case alternates != nil:
		var primary string
		if cs != nil {
			primary = cs.Text()
		}
		return BilingualText{Value: primary, Alternates: alternates}
	case cs != nil:
		return PlainText{Value: cs.Text()}
	default:
		return nil
	}
}

func decodeTexts(props []*etree.Element) []Text {
	var out []Text
	for _, p := range props {
		if t := decodeText(p); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// decodeCode reads the code list element inside a code property.
func decodeCode(prop *etree.Element) Code {
	code := firstChild(prop)
	if code == nil {
		return Code{}
	}
	value := attr(code, "codeListValue")
	if value == "" {
		value = strings.TrimSpace(code.Text())
	}
	return Code{List: attr(code, "codeList"), Value: value}
}

// decodeDate reads a gco:Date or gco:DateTime property. Absent values and
// nil-reason properties yield nil.
func decodeDate(prop *etree.Element) (*time.Time, error) {
	if prop == nil {
		return nil, nil
	}
	if d := prop.SelectElement("Date"); d != nil {
		t, err := time.Parse(dateLayout, strings.TrimSpace(d.Text()))
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	if d := prop.SelectElement("DateTime"); d != nil {
		t, err := parseDateTime(strings.TrimSpace(d.Text()))
		if err != nil {
			return nil, err
		}
		return &t, nil
	}
	return nil, nil
}

func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(dateTimeLayout, s)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func childString(el *etree.Element, tag string) string {
	return Primary(decodeText(el.SelectElement(tag)))
}

func childCode(el *etree.Element, tag string) Code {
	prop := el.SelectElement(tag)
	if prop == nil {
		return Code{}
	}
	return decodeCode(prop)
}

func firstChild(el *etree.Element) *etree.Element {
	if el == nil {
		return nil
	}
	children := el.ChildElements()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

func attr(el *etree.Element, key string) string {
	return el.SelectAttrValue(key, "")
}
