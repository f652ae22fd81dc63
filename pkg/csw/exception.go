package csw

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// ExceptionReport is an ows:ExceptionReport returned by a catalogue
type ExceptionReport struct {
	Code    string
	Locator string
	Text    string
}

// Error implements the error interface
func (e *ExceptionReport) Error() string {
	var b strings.Builder
	b.WriteString("csw exception")
	if e.Code != "" {
		b.WriteString(" " + e.Code)
	}
	if e.Locator != "" {
		fmt.Fprintf(&b, " (locator %s)", e.Locator)
	}
	if e.Text != "" {
		b.WriteString(": " + e.Text)
	}
	return b.String()
}

// CheckException returns an *ExceptionReport if data is an
// ows:ExceptionReport, and nil for any other payload including malformed XML.
func CheckException(data []byte) error {
	if !bytes.Contains(data, []byte("ExceptionReport")) {
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil
	}
	return exceptionFromRoot(doc.Root())
}

func exceptionFromRoot(root *etree.Element) error {
	if root == nil || root.Tag != "ExceptionReport" {
		return nil
	}
	report := &ExceptionReport{}
	if ex := root.SelectElement("Exception"); ex != nil {
		report.Code = ex.SelectAttrValue("exceptionCode", "")
		report.Locator = ex.SelectAttrValue("locator", "")
		var texts []string
		for _, t := range ex.SelectElements("ExceptionText") {
			if v := strings.TrimSpace(t.Text()); v != "" {
				texts = append(texts, v)
			}
		}
		report.Text = strings.Join(texts, "; ")
	}
	return report
}
