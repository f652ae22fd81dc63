package csw

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func testDocument() *metadata.Document {
	stamp := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &metadata.Document{
		FileIdentifier: "abc-123",
		Language:       metadata.NewCode(metadata.LanguageCode, metadata.LanguageNorwegian),
		HierarchyLevel: metadata.NewCode(metadata.ScopeCode, "dataset"),
		DateStamp:      &stamp,
		Identification: &metadata.Identification{
			Kind:     metadata.DataIdentification,
			Citation: &metadata.Citation{Title: metadata.PlainText{Value: "Vann"}},
		},
	}
}

func TestNewTransaction_Errors(t *testing.T) {
	_, err := NewInsert(nil)
	assert.ErrorIs(t, err, ErrNilDocument)
	_, err = NewUpdate(nil)
	assert.ErrorIs(t, err, ErrNilDocument)
	_, err = NewDelete("")
	assert.ErrorIs(t, err, ErrEmptyIdentifier)
}

func TestTransaction_InsertWrapsOneDocument(t *testing.T) {
	for _, build := range []func(*metadata.Document) (*Transaction, error){NewInsert, NewUpdate} {
		tx, err := build(testDocument())
		require.NoError(t, err)
		data, err := tx.Marshal()
		require.NoError(t, err)

		root := parseRequest(t, data)
		assert.Equal(t, "Transaction", root.Tag)
		assert.Equal(t, "CSW", root.SelectAttrValue("service", ""))
		assert.Equal(t, "2.0.2", root.SelectAttrValue("version", ""))

		action := root.SelectElement(tx.Kind.String())
		require.NotNil(t, action)
		docs := action.SelectElements("MD_Metadata")
		require.Len(t, docs, 1)

		decoded, err := metadata.Decode(docs[0])
		require.NoError(t, err)
		assert.Equal(t, "abc-123", decoded.FileIdentifier)
	}
}

func TestTransaction_Delete(t *testing.T) {
	tx, err := NewDelete("abc-123")
	require.NoError(t, err)
	data, err := tx.Marshal()
	require.NoError(t, err)

	root := parseRequest(t, data)
	del := root.SelectElement("Delete")
	require.NotNil(t, del)
	assert.Equal(t, "csw:Record", del.SelectAttrValue("typeName", ""))

	eq := del.FindElement("./Constraint/Filter/PropertyIsEqualTo")
	require.NotNil(t, eq)
	assert.Equal(t, "Identifier", eq.SelectElement("PropertyName").Text())
	assert.Equal(t, "abc-123", eq.SelectElement("Literal").Text())
}

func TestTransactionKind_String(t *testing.T) {
	assert.Equal(t, "Insert", TransactionInsert.String())
	assert.Equal(t, "Update", TransactionUpdate.String())
	assert.Equal(t, "Delete", TransactionDelete.String())
	assert.Equal(t, "Unknown", TransactionKind(9).String())
}
