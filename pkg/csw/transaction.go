package csw

import (
	"errors"
	"strings"

	"github.com/beevik/etree"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

var (
	// ErrNilDocument is returned when an insert or update has no document
	ErrNilDocument = errors.New("csw: transaction requires a metadata document")
	// ErrEmptyIdentifier is returned when a delete or lookup has no identifier
	ErrEmptyIdentifier = errors.New("csw: empty record identifier")
)

// TransactionKind identifies the action of a transaction
type TransactionKind int

const (
	TransactionInsert TransactionKind = iota
	TransactionUpdate
	TransactionDelete
)

// String returns the CSW action element name
func (k TransactionKind) String() string {
	switch k {
	case TransactionInsert:
		return "Insert"
	case TransactionUpdate:
		return "Update"
	case TransactionDelete:
		return "Delete"
	default:
		return "Unknown"
	}
}

// Transaction is a csw:Transaction request carrying one action
type Transaction struct {
	Kind TransactionKind
	// Document is set for inserts and updates
	Document *metadata.Document
	// Identifier is set for deletes
	Identifier string
}

// NewInsert creates a transaction inserting doc
func NewInsert(doc *metadata.Document) (*Transaction, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return &Transaction{Kind: TransactionInsert, Document: doc}, nil
}

// NewUpdate creates a transaction replacing the record with doc's file
// identifier
func NewUpdate(doc *metadata.Document) (*Transaction, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	return &Transaction{Kind: TransactionUpdate, Document: doc}, nil
}

// NewDelete creates a transaction deleting the record with identifier id
func NewDelete(id string) (*Transaction, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrEmptyIdentifier
	}
	return &Transaction{Kind: TransactionDelete, Identifier: id}, nil
}

// Element builds the csw:Transaction element
func (t *Transaction) Element() (*etree.Element, error) {
	root := newRequestRoot("csw:Transaction")

	switch t.Kind {
	case TransactionInsert, TransactionUpdate:
		if t.Document == nil {
			return nil, ErrNilDocument
		}
		action := root.CreateElement("csw:" + t.Kind.String())
		action.AddChild(metadata.Encode(t.Document))
	case TransactionDelete:
		if strings.TrimSpace(t.Identifier) == "" {
			return nil, ErrEmptyIdentifier
		}
		action := root.CreateElement("csw:Delete")
		action.CreateAttr("typeName", "csw:Record")
		constraint := action.CreateElement("csw:Constraint")
		constraint.CreateAttr("version", FilterVersion)
		if err := encodePredicate(constraint.CreateElement("ogc:Filter"), IdentifierFilter(t.Identifier)); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("csw: unknown transaction kind")
	}
	return root, nil
}

// Marshal serializes the transaction as an XML document
func (t *Transaction) Marshal() ([]byte, error) {
	root, err := t.Element()
	if err != nil {
		return nil, err
	}
	return marshalRoot(root)
}
