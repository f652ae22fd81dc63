package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
)

// ErrNilDocument is returned when marshaling a nil document
var ErrNilDocument = errors.New("metadata: nil document")

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// Marshal serializes a document as an ISO 19139 XML document
func Marshal(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	xmlDoc := etree.NewDocument()
	xmlDoc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	xmlDoc.SetRoot(Encode(doc))
	xmlDoc.Indent(2)

	data, err := xmlDoc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing metadata XML: %w", err)
	}
	return data, nil
}

// Encode builds the gmd:MD_Metadata element for a document. Namespace
// declarations are written on the returned element so it can be embedded in
// other XML documents.
func Encode(doc *Document) *etree.Element {
	root := etree.NewElement("gmd:MD_Metadata")
	for _, ns := range namespaces {
		root.CreateAttr("xmlns:"+ns.prefix, ns.uri)
	}

	addString(root, "gmd:fileIdentifier", doc.FileIdentifier)
	addCode(root, "gmd:language", "gmd:LanguageCode", doc.Language)
	addCode(root, "gmd:characterSet", "gmd:MD_CharacterSetCode", doc.CharacterSet)
	addString(root, "gmd:parentIdentifier", doc.ParentIdentifier)
	addCode(root, "gmd:hierarchyLevel", "gmd:MD_ScopeCode", doc.HierarchyLevel)
	addString(root, "gmd:hierarchyLevelName", doc.HierarchyLevelName)
	for _, c := range doc.Contacts {
		encodeResponsibleParty(root.CreateElement("gmd:contact"), c)
	}
	if doc.DateStamp != nil {
		addDate(root, "gmd:dateStamp", *doc.DateStamp)
	}
	addString(root, "gmd:metadataStandardName", doc.MetadataStandardName)
	addString(root, "gmd:metadataStandardVersion", doc.MetadataStandardVersion)
	for _, l := range doc.Locales {
		encodeLocale(root.CreateElement("gmd:locale"), l)
	}
	for _, rs := range doc.ReferenceSystems {
		encodeReferenceSystem(root.CreateElement("gmd:referenceSystemInfo"), rs)
	}
	for _, ext := range doc.Extensions {
		info := root.CreateElement("gmd:metadataExtensionInfo").CreateElement("gmd:MD_MetadataExtensionInformation")
		encodeOnlineResource(info.CreateElement("gmd:extensionOnLineResource"), ext)
	}
	if doc.Identification != nil {
		encodeIdentification(root.CreateElement("gmd:identificationInfo"), doc.Identification)
	}
	if doc.Distribution != nil {
		encodeDistribution(root.CreateElement("gmd:distributionInfo"), doc.Distribution)
	}
	if doc.DataQuality != nil {
		encodeDataQuality(root.CreateElement("gmd:dataQualityInfo"), doc.DataQuality)
	}

	return root
}

func encodeLocale(parent *etree.Element, l *Locale) {
	loc := parent.CreateElement("gmd:PT_Locale")
	if l.ID != "" {
		loc.CreateAttr("id", l.ID)
	}
	addCode(loc, "gmd:languageCode", "gmd:LanguageCode", l.Language)
	addCode(loc, "gmd:characterEncoding", "gmd:MD_CharacterSetCode", l.CharacterSet)
}

func encodeResponsibleParty(parent *etree.Element, p *ResponsibleParty) {
	rp := parent.CreateElement("gmd:CI_ResponsibleParty")
	addString(rp, "gmd:individualName", p.IndividualName)
	addText(rp, "gmd:organisationName", p.OrganisationName)
	addString(rp, "gmd:positionName", p.PositionName)
	if p.Email != "" {
		address := rp.CreateElement("gmd:contactInfo").
			CreateElement("gmd:CI_Contact").
			CreateElement("gmd:address").
			CreateElement("gmd:CI_Address")
		addString(address, "gmd:electronicMailAddress", p.Email)
	}
	addCode(rp, "gmd:role", "gmd:CI_RoleCode", p.Role)
}

func encodeReferenceSystem(parent *etree.Element, rs *ReferenceSystem) {
	id := parent.CreateElement("gmd:MD_ReferenceSystem").
		CreateElement("gmd:referenceSystemIdentifier").
		CreateElement("gmd:RS_Identifier")
	addText(id, "gmd:code", rs.Code)
	addString(id, "gmd:codeSpace", rs.Codespace)
}

func encodeCitation(parent *etree.Element, c *Citation) {
	cit := parent.CreateElement("gmd:CI_Citation")
	addText(cit, "gmd:title", c.Title)
	for _, d := range c.Dates {
		ciDate := cit.CreateElement("gmd:date").CreateElement("gmd:CI_Date")
		addDate(ciDate, "gmd:date", d.Date)
		addCode(ciDate, "gmd:dateType", "gmd:CI_DateTypeCode", d.Type)
	}
	for _, id := range c.Identifiers {
		rs := cit.CreateElement("gmd:identifier").CreateElement("gmd:RS_Identifier")
		addText(rs, "gmd:code", id.Code)
		addString(rs, "gmd:codeSpace", id.Codespace)
	}
}

func encodeIdentification(parent *etree.Element, id *Identification) {
	var ident *etree.Element
	if id.Kind == ServiceIdentification {
		ident = parent.CreateElement("srv:SV_ServiceIdentification")
	} else {
		ident = parent.CreateElement("gmd:MD_DataIdentification")
	}

	if id.Citation != nil {
		encodeCitation(ident.CreateElement("gmd:citation"), id.Citation)
	}
	addText(ident, "gmd:abstract", id.Abstract)
	addText(ident, "gmd:purpose", id.Purpose)
	addText(ident, "gmd:credit", id.Credit)
	addCode(ident, "gmd:status", "gmd:MD_ProgressCode", id.Status)
	for _, p := range id.PointsOfContact {
		encodeResponsibleParty(ident.CreateElement("gmd:pointOfContact"), p)
	}
	if !id.MaintenanceFrequency.IsZero() {
		info := ident.CreateElement("gmd:resourceMaintenance").CreateElement("gmd:MD_MaintenanceInformation")
		addCode(info, "gmd:maintenanceAndUpdateFrequency", "gmd:MD_MaintenanceFrequencyCode", id.MaintenanceFrequency)
	}
	for _, g := range id.GraphicOverviews {
		bg := ident.CreateElement("gmd:graphicOverview").CreateElement("gmd:MD_BrowseGraphic")
		addString(bg, "gmd:fileName", g.FileName)
		addString(bg, "gmd:fileDescription", g.FileDescription)
		addString(bg, "gmd:fileType", g.FileType)
	}
	for _, kg := range id.Keywords {
		encodeKeywordGroup(ident.CreateElement("gmd:descriptiveKeywords"), kg)
	}
	if !IsEmpty(id.SpecificUsage) {
		usage := ident.CreateElement("gmd:resourceSpecificUsage").CreateElement("gmd:MD_Usage")
		addText(usage, "gmd:specificUsage", id.SpecificUsage)
	}
	for _, c := range id.Constraints {
		encodeConstraint(ident.CreateElement("gmd:resourceConstraints"), c)
	}

	if id.Kind == ServiceIdentification {
		encodeServiceSection(ident, id)
		return
	}

	addCode(ident, "gmd:spatialRepresentationType", "gmd:MD_SpatialRepresentationTypeCode", id.SpatialRepresentationType)
	if r := id.Resolution; r != nil {
		if r.Scale > 0 {
			res := ident.CreateElement("gmd:spatialResolution").CreateElement("gmd:MD_Resolution")
			res.CreateElement("gmd:equivalentScale").
				CreateElement("gmd:MD_RepresentativeFraction").
				CreateElement("gmd:denominator").
				CreateElement("gco:Integer").
				SetText(strconv.Itoa(r.Scale))
		}
		if r.Distance > 0 {
			res := ident.CreateElement("gmd:spatialResolution").CreateElement("gmd:MD_Resolution")
			dist := res.CreateElement("gmd:distance").CreateElement("gco:Distance")
			unit := r.DistanceUnit
			if unit == "" {
				unit = "m"
			}
			dist.CreateAttr("uom", unit)
			dist.SetText(formatFloat(r.Distance))
		}
	}
	addCode(ident, "gmd:language", "gmd:LanguageCode", id.Language)
	for _, tc := range id.TopicCategories {
		ident.CreateElement("gmd:topicCategory").CreateElement("gmd:MD_TopicCategoryCode").SetText(tc)
	}
	for _, e := range id.Extents {
		encodeExtent(ident.CreateElement("gmd:extent"), e)
	}
	addText(ident, "gmd:supplementalInformation", id.SupplementalInformation)
}

func encodeServiceSection(ident *etree.Element, id *Identification) {
	if id.ServiceType != "" {
		ident.CreateElement("srv:serviceType").CreateElement("gco:LocalName").SetText(id.ServiceType)
	}
	addString(ident, "srv:serviceTypeVersion", id.ServiceTypeVersion)
	for _, e := range id.Extents {
		encodeExtent(ident.CreateElement("srv:extent"), e)
	}
	addCode(ident, "srv:couplingType", "srv:SV_CouplingType", id.CouplingType)
	for _, op := range id.Operations {
		md := ident.CreateElement("srv:containsOperations").CreateElement("srv:SV_OperationMetadata")
		addString(md, "srv:operationName", op.Name)
		addCode(md, "srv:DCP", "srv:DCPList", op.DCP)
		if op.ConnectPoint != "" {
			encodeOnlineResource(md.CreateElement("srv:connectPoint"), &OnlineResource{URL: op.ConnectPoint})
		}
	}
	for _, o := range id.OperatesOn {
		el := ident.CreateElement("srv:operatesOn")
		if o.UUIDRef != "" {
			el.CreateAttr("uuidref", o.UUIDRef)
		}
		if o.Href != "" {
			el.CreateAttr("xlink:href", o.Href)
		}
	}
}

func encodeKeywordGroup(parent *etree.Element, kg *KeywordGroup) {
	kw := parent.CreateElement("gmd:MD_Keywords")
	for _, k := range kg.Keywords {
		encodeText(kw.CreateElement("gmd:keyword"), k)
	}
	addCode(kw, "gmd:type", "gmd:MD_KeywordTypeCode", kg.Type)
	if kg.Thesaurus != nil {
		encodeCitation(kw.CreateElement("gmd:thesaurusName"), kg.Thesaurus)
	}
}

func encodeConstraint(parent *etree.Element, c Constraint) {
	switch v := c.(type) {
	case *GenericConstraint:
		el := parent.CreateElement("gmd:MD_Constraints")
		addTexts(el, "gmd:useLimitation", v.UseLimitations)
	case *LegalConstraint:
		el := parent.CreateElement("gmd:MD_LegalConstraints")
		addTexts(el, "gmd:useLimitation", v.UseLimitations)
		for _, code := range v.AccessConstraints {
			addCode(el, "gmd:accessConstraints", "gmd:MD_RestrictionCode", code)
		}
		for _, code := range v.UseConstraints {
			addCode(el, "gmd:useConstraints", "gmd:MD_RestrictionCode", code)
		}
		addTexts(el, "gmd:otherConstraints", v.OtherConstraints)
	case *SecurityConstraint:
		el := parent.CreateElement("gmd:MD_SecurityConstraints")
		addTexts(el, "gmd:useLimitation", v.UseLimitations)
		addCode(el, "gmd:classification", "gmd:MD_ClassificationCode", v.Classification)
		addText(el, "gmd:userNote", v.UserNote)
	}
}

func encodeExtent(parent *etree.Element, e *Extent) {
	ext := parent.CreateElement("gmd:EX_Extent")
	addText(ext, "gmd:description", e.Description)
	for _, g := range e.GeographicElements {
		geo := ext.CreateElement("gmd:geographicElement")
		switch v := g.(type) {
		case *BoundingBox:
			bbox := geo.CreateElement("gmd:EX_GeographicBoundingBox")
			addDecimal(bbox, "gmd:westBoundLongitude", v.West)
			addDecimal(bbox, "gmd:eastBoundLongitude", v.East)
			addDecimal(bbox, "gmd:southBoundLatitude", v.South)
			addDecimal(bbox, "gmd:northBoundLatitude", v.North)
		case *GeographicDescription:
			id := geo.CreateElement("gmd:EX_GeographicDescription").
				CreateElement("gmd:geographicIdentifier").
				CreateElement("gmd:MD_Identifier")
			addText(id, "gmd:code", v.Code)
		}
	}
	for i, t := range e.TemporalElements {
		period := ext.CreateElement("gmd:temporalElement").
			CreateElement("gmd:EX_TemporalExtent").
			CreateElement("gmd:extent").
			CreateElement("gml:TimePeriod")
		id := t.ID
		if id == "" {
			id = "TP" + strconv.Itoa(i+1)
		}
		period.CreateAttr("gml:id", id)
		period.CreateElement("gml:beginPosition").SetText(t.Begin)
		end := period.CreateElement("gml:endPosition")
		if t.EndIndeterminate != "" {
			end.CreateAttr("indeterminatePosition", t.EndIndeterminate)
		} else {
			end.SetText(t.End)
		}
	}
	for _, v := range e.VerticalElements {
		vert := ext.CreateElement("gmd:verticalElement").CreateElement("gmd:EX_VerticalExtent")
		vert.CreateElement("gmd:minimumValue").CreateElement("gco:Real").SetText(formatFloat(v.Minimum))
		vert.CreateElement("gmd:maximumValue").CreateElement("gco:Real").SetText(formatFloat(v.Maximum))
		crs := vert.CreateElement("gmd:verticalCRS")
		if v.CRS != "" {
			crs.CreateAttr("xlink:href", v.CRS)
		}
	}
}

func encodeDistribution(parent *etree.Element, d *Distribution) {
	dist := parent.CreateElement("gmd:MD_Distribution")
	for _, f := range d.Formats {
		encodeFormat(dist.CreateElement("gmd:distributionFormat"), f)
	}
	for _, dr := range d.Distributors {
		distributor := dist.CreateElement("gmd:distributor").CreateElement("gmd:MD_Distributor")
		for _, f := range dr.Formats {
			encodeFormat(distributor.CreateElement("gmd:distributorFormat"), f)
		}
		for _, t := range dr.TransferOptions {
			encodeTransferOptions(distributor.CreateElement("gmd:distributorTransferOptions"), t)
		}
	}
	for _, t := range d.TransferOptions {
		encodeTransferOptions(dist.CreateElement("gmd:transferOptions"), t)
	}
}

func encodeFormat(parent *etree.Element, f *Format) {
	format := parent.CreateElement("gmd:MD_Format")
	addString(format, "gmd:name", f.Name)
	addString(format, "gmd:version", f.Version)
}

func encodeTransferOptions(parent *etree.Element, t *TransferOptions) {
	opts := parent.CreateElement("gmd:MD_DigitalTransferOptions")
	addText(opts, "gmd:unitsOfDistribution", t.UnitsOfDistribution)
	for _, r := range t.OnLine {
		encodeOnlineResource(opts.CreateElement("gmd:onLine"), r)
	}
}

func encodeOnlineResource(parent *etree.Element, r *OnlineResource) {
	res := parent.CreateElement("gmd:CI_OnlineResource")
	res.CreateElement("gmd:linkage").CreateElement("gmd:URL").SetText(r.URL)
	addString(res, "gmd:protocol", r.Protocol)
	addString(res, "gmd:applicationProfile", r.ApplicationProfile)
	addString(res, "gmd:name", r.Name)
	addString(res, "gmd:description", r.Description)
	addCode(res, "gmd:function", "gmd:CI_OnLineFunctionCode", r.Function)
}

func encodeDataQuality(parent *etree.Element, dq *DataQuality) {
	quality := parent.CreateElement("gmd:DQ_DataQuality")
	if !dq.Scope.IsZero() {
		scope := quality.CreateElement("gmd:scope").CreateElement("gmd:DQ_Scope")
		addCode(scope, "gmd:level", "gmd:MD_ScopeCode", dq.Scope)
	}
	for _, r := range dq.Reports {
		kind := r.Kind
		if kind == "" {
			kind = DomainConsistency
		}
		report := quality.CreateElement("gmd:report").CreateElement("gmd:" + string(kind))
		addString(report, "gmd:nameOfMeasure", r.NameOfMeasure)
		if r.MeasureIdentification != "" {
			id := report.CreateElement("gmd:measureIdentification").CreateElement("gmd:MD_Identifier")
			addString(id, "gmd:code", r.MeasureIdentification)
		}
		for _, res := range r.Results {
			encodeResult(report.CreateElement("gmd:result"), res)
		}
	}
	if !IsEmpty(dq.Lineage) {
		lineage := quality.CreateElement("gmd:lineage").CreateElement("gmd:LI_Lineage")
		addText(lineage, "gmd:statement", dq.Lineage)
	}
}

func encodeResult(parent *etree.Element, r Result) {
	switch v := r.(type) {
	case *ConformanceResult:
		res := parent.CreateElement("gmd:DQ_ConformanceResult")
		if v.Specification != nil {
			encodeCitation(res.CreateElement("gmd:specification"), v.Specification)
		}
		explanation := res.CreateElement("gmd:explanation")
		if !IsEmpty(v.Explanation) {
			encodeText(explanation, v.Explanation)
		} else {
			explanation.CreateAttr("gco:nilReason", "missing")
		}
		pass := res.CreateElement("gmd:pass")
		if v.Pass != nil {
			pass.CreateElement("gco:Boolean").SetText(strconv.FormatBool(*v.Pass))
		} else {
			pass.CreateAttr("gco:nilReason", "unknown")
		}
	case *QuantitativeResult:
		res := parent.CreateElement("gmd:DQ_QuantitativeResult")
		unit := res.CreateElement("gmd:valueUnit")
		if v.ValueUnit != "" {
			unit.CreateAttr("xlink:href", v.ValueUnit)
		}
		res.CreateElement("gmd:value").CreateElement("gco:Record").SetText(formatFloat(v.Value))
	}
}

// encodeText writes t into a character string property element.
func encodeText(prop *etree.Element, t Text) {
	var alternates map[string]string
	switch v := t.(type) {
	case PlainText:
		prop.CreateElement("gco:CharacterString").SetText(v.Value)
		return
	case BilingualText:
		prop.CreateAttr("xsi:type", "gmd:PT_FreeText_PropertyType")
		prop.CreateElement("gco:CharacterString").SetText(v.Value)
		alternates = v.Alternates
	case AnchorText:
		if v.Alternates != nil {
			prop.CreateAttr("xsi:type", "gmd:PT_FreeText_PropertyType")
		}
		anchor := prop.CreateElement("gmx:Anchor")
		anchor.CreateAttr("xlink:href", v.Href)
		anchor.SetText(v.Value)
		alternates = v.Alternates
	default:
		return
	}

	if len(alternates) == 0 {
		return
	}
	freeText := prop.CreateElement("gmd:PT_FreeText")
	for _, lang := range languages(alternates) {
		localised := freeText.CreateElement("gmd:textGroup").CreateElement("gmd:LocalisedCharacterString")
		localised.CreateAttr("locale", "#"+LocaleID(lang))
		localised.SetText(alternates[lang])
	}
}

func addText(parent *etree.Element, tag string, t Text) {
	if IsEmpty(t) {
		return
	}
	encodeText(parent.CreateElement(tag), t)
}

func addTexts(parent *etree.Element, tag string, texts []Text) {
	for _, t := range texts {
		addText(parent, tag, t)
	}
}

func addString(parent *etree.Element, tag, value string) {
	if value == "" {
		return
	}
	parent.CreateElement(tag).CreateElement("gco:CharacterString").SetText(value)
}

func addCode(parent *etree.Element, tag, codeTag string, c Code) {
	if c.IsZero() {
		return
	}
	code := parent.CreateElement(tag).CreateElement(codeTag)
	code.CreateAttr("codeList", c.List)
	code.CreateAttr("codeListValue", c.Value)
	code.SetText(c.Value)
}

// addDate writes midnight values as a gco:Date of their calendar day and
// everything else as a gco:DateTime in UTC.
func addDate(parent *etree.Element, tag string, t time.Time) {
	prop := parent.CreateElement(tag)
	if isDateOnly(t) {
		prop.CreateElement("gco:Date").SetText(t.Format(dateLayout))
		return
	}
	prop.CreateElement("gco:DateTime").SetText(t.UTC().Format(dateTimeLayout))
}

func addDecimal(parent *etree.Element, tag string, v float64) {
	parent.CreateElement(tag).CreateElement("gco:Decimal").SetText(formatFloat(v))
}

func isDateOnly(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
