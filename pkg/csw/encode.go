package csw

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
)

var (
	// ErrEmptyGroup is returned when an And or Or has no predicates
	ErrEmptyGroup = errors.New("csw: logical group without predicates")
	// ErrNilPredicate is returned when a filter contains a nil predicate
	ErrNilPredicate = errors.New("csw: nil predicate")
)

// newRequestRoot creates a request element with the service attributes and
// the csw, ogc and gml namespace declarations.
func newRequestRoot(tag string) *etree.Element {
	root := etree.NewElement(tag)
	root.CreateAttr("xmlns:csw", NsCSW)
	root.CreateAttr("xmlns:ogc", NsOGC)
	root.CreateAttr("xmlns:gml", NsGML)
	root.CreateAttr("xmlns:ows", NsOWS)
	root.CreateAttr("service", Service)
	root.CreateAttr("version", Version)
	return root
}

func marshalRoot(root *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing %s request: %w", root.Tag, err)
	}
	return data, nil
}

func encodePredicate(parent *etree.Element, p Predicate) error {
	switch v := p.(type) {
	case *PropertyIsLike:
		if v == nil {
			return ErrNilPredicate
		}
		el := parent.CreateElement("ogc:PropertyIsLike")
		el.CreateAttr("wildCard", WildCard)
		el.CreateAttr("singleChar", SingleChar)
		el.CreateAttr("escapeChar", EscapeChar)
		el.CreateElement("ogc:PropertyName").SetText(v.Property)
		el.CreateElement("ogc:Literal").SetText(v.Pattern)
	case *PropertyIsEqualTo:
		if v == nil {
			return ErrNilPredicate
		}
		el := parent.CreateElement("ogc:PropertyIsEqualTo")
		el.CreateElement("ogc:PropertyName").SetText(v.Property)
		el.CreateElement("ogc:Literal").SetText(v.Literal)
	case *BBox:
		if v == nil {
			return ErrNilPredicate
		}
		el := parent.CreateElement("ogc:BBOX")
		el.CreateElement("ogc:PropertyName").SetText(PropertyBoundingBox)
		env := el.CreateElement("gml:Envelope")
		env.CreateElement("gml:lowerCorner").SetText(coords(v.West, v.South))
		env.CreateElement("gml:upperCorner").SetText(coords(v.East, v.North))
	case *And:
		if v == nil {
			return ErrNilPredicate
		}
		return encodeGroup(parent.CreateElement("ogc:And"), v.Predicates)
	case *Or:
		if v == nil {
			return ErrNilPredicate
		}
		return encodeGroup(parent.CreateElement("ogc:Or"), v.Predicates)
	default:
		return ErrNilPredicate
	}
	return nil
}

func encodeGroup(el *etree.Element, predicates []Predicate) error {
	if len(predicates) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyGroup, el.Tag)
	}
	for _, p := range predicates {
		if err := encodePredicate(el, p); err != nil {
			return err
		}
	}
	return nil
}

func coords(x, y float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + " " + strconv.FormatFloat(y, 'f', -1, 64)
}
