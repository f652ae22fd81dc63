package csw

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

// ErrRecordNotFound is returned when a GetRecordById response holds no record
var ErrRecordNotFound = errors.New("csw: record not found")

// TransactionResult summarises a csw:TransactionResponse. Counts are kept as
// the decimal text reported by the catalogue.
type TransactionResult struct {
	TotalInserted string
	TotalUpdated  string
	TotalDeleted  string
	// Identifiers lists the inserted record identifiers in document order
	Identifiers []string
}

// Inserted returns TotalInserted as an integer, or 0 if it is not a number
func (r *TransactionResult) Inserted() int { return atoiOrZero(r.TotalInserted) }

// Updated returns TotalUpdated as an integer, or 0 if it is not a number
func (r *TransactionResult) Updated() int { return atoiOrZero(r.TotalUpdated) }

// Deleted returns TotalDeleted as an integer, or 0 if it is not a number
func (r *TransactionResult) Deleted() int { return atoiOrZero(r.TotalDeleted) }

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func emptyTransactionResult() *TransactionResult {
	return &TransactionResult{TotalInserted: "0", TotalUpdated: "0", TotalDeleted: "0", Identifiers: []string{}}
}

// ParseTransactionResponse reads the totals and inserted identifiers of a
// transaction response. A response with no csw:TransactionResponse element
// gives zero counts and no identifiers. Only malformed XML is an error.
func ParseTransactionResponse(data []byte) (*TransactionResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyTransactionResult(), nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing transaction response: %w", err)
	}
	return ParseTransactionElement(find(doc.Root(), "TransactionResponse")), nil
}

// ParseTransactionElement reads a csw:TransactionResponse element. A nil
// element gives zero counts and no identifiers.
func ParseTransactionElement(el *etree.Element) *TransactionResult {
	res := emptyTransactionResult()
	if el == nil {
		return res
	}

	if summary := el.SelectElement("TransactionSummary"); summary != nil {
		res.TotalInserted = countOrZero(summary, "totalInserted")
		res.TotalUpdated = countOrZero(summary, "totalUpdated")
		res.TotalDeleted = countOrZero(summary, "totalDeleted")
	}
	for _, id := range el.FindElements("./InsertResult/BriefRecord/identifier") {
		res.Identifiers = append(res.Identifiers, strings.TrimSpace(id.Text()))
	}
	return res
}

func countOrZero(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		if v := strings.TrimSpace(el.Text()); v != "" {
			return v
		}
	}
	return "0"
}

// Record is a Dublin Core csw:Record, csw:SummaryRecord or csw:BriefRecord
type Record struct {
	Identifier string
	Title      string
	Type       string
	Abstract   string
	Modified   string
	Subjects   []string
	// References holds the dct:references URLs
	References  []string
	BoundingBox *BBox
}

// SearchResults is the parsed body of a GetRecords response
type SearchResults struct {
	NumberOfRecordsMatched  int
	NumberOfRecordsReturned int
	// NextRecord is the start position of the next page, 0 when exhausted
	NextRecord int
	// Records holds Dublin Core records for OutputSchemaCSW requests
	Records []*Record
	// Documents holds ISO documents for OutputSchemaISO requests
	Documents []*metadata.Document
}

// ParseSearchResponse parses a csw:GetRecordsResponse
func ParseSearchResponse(data []byte) (*SearchResults, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}
	if err := exceptionFromRoot(doc.Root()); err != nil {
		return nil, err
	}

	el := find(doc.Root(), "SearchResults")
	if el == nil {
		return nil, errors.New("csw: response has no SearchResults element")
	}

	res := &SearchResults{}
	var err error
	if res.NumberOfRecordsMatched, err = intAttr(el, "numberOfRecordsMatched"); err != nil {
		return nil, err
	}
	if res.NumberOfRecordsReturned, err = intAttr(el, "numberOfRecordsReturned"); err != nil {
		return nil, err
	}
	if res.NextRecord, err = intAttr(el, "nextRecord"); err != nil {
		return nil, err
	}

	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Record", "SummaryRecord", "BriefRecord":
			res.Records = append(res.Records, decodeRecord(child))
		case "MD_Metadata":
			md, err := metadata.Decode(child)
			if err != nil {
				return nil, fmt.Errorf("decoding search result: %w", err)
			}
			res.Documents = append(res.Documents, md)
		}
	}
	return res, nil
}

// ParseRecordByIDResponse parses a csw:GetRecordByIdResponse holding one
// ISO document
func ParseRecordByIDResponse(data []byte) (*metadata.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}
	if err := exceptionFromRoot(doc.Root()); err != nil {
		return nil, err
	}

	el := find(doc.Root(), "MD_Metadata")
	if el == nil {
		return nil, ErrRecordNotFound
	}
	return metadata.Decode(el)
}

func decodeRecord(el *etree.Element) *Record {
	r := &Record{
		Identifier: childText(el, "identifier"),
		Title:      childText(el, "title"),
		Type:       childText(el, "type"),
		Abstract:   childText(el, "abstract"),
		Modified:   childText(el, "modified"),
	}
	for _, s := range el.SelectElements("subject") {
		if v := strings.TrimSpace(s.Text()); v != "" {
			r.Subjects = append(r.Subjects, v)
		}
	}
	for _, ref := range el.SelectElements("references") {
		if v := strings.TrimSpace(ref.Text()); v != "" {
			r.References = append(r.References, v)
		}
	}
	if bb := el.SelectElement("BoundingBox"); bb != nil {
		r.BoundingBox = decodeBoundingBox(bb)
	}
	return r
}

// decodeBoundingBox reads an ows:BoundingBox. Corners are given as
// "x y"; malformed corners give nil.
func decodeBoundingBox(el *etree.Element) *BBox {
	lower := strings.Fields(childText(el, "LowerCorner"))
	upper := strings.Fields(childText(el, "UpperCorner"))
	if len(lower) != 2 || len(upper) != 2 {
		return nil
	}
	vals := make([]float64, 0, 4)
	for _, s := range append(lower, upper...) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return &BBox{West: vals[0], South: vals[1], East: vals[2], North: vals[3]}
}

// find returns root if its local name is tag, otherwise the first
// descendant with that name.
func find(root *etree.Element, tag string) *etree.Element {
	if root == nil {
		return nil
	}
	if root.Tag == tag {
		return root
	}
	return root.FindElement(".//" + tag)
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

func intAttr(el *etree.Element, name string) (int, error) {
	v := strings.TrimSpace(el.SelectAttrValue(name, ""))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, v, err)
	}
	return n, nil
}
