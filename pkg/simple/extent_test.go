package simple

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func TestBoundingBox_RoundTrip(t *testing.T) {
	m := NewDataset()
	bbox := &BoundingBox{West: 4.5, East: 31.2, South: 57.9, North: 71.2}
	m.SetBoundingBox(bbox)
	assert.Equal(t, bbox, m.BoundingBox())

	m.SetBoundingBox(&BoundingBox{West: 10, East: 11, South: 59, North: 60})
	assert.Equal(t, &BoundingBox{West: 10, East: 11, South: 59, North: 60}, m.BoundingBox())
	assert.Len(t, m.Document().Identification.Extents[0].GeographicElements, 1)
}

func TestBoundingBox_PreservesOtherExtentParts(t *testing.T) {
	m := NewDataset()
	desc := &metadata.GeographicDescription{Code: metadata.PlainText{Value: "0301"}}
	m.Document().Identification.Extents = []*metadata.Extent{{
		GeographicElements: []metadata.GeographicElement{desc},
		VerticalElements:   []*metadata.VerticalExtent{{Minimum: 0, Maximum: 100}},
	}}
	m.SetTemporalExtent(&TemporalExtent{From: "2020-01-01", To: "2021-01-01"})

	m.SetBoundingBox(&BoundingBox{West: 1, East: 2, South: 3, North: 4})

	e := m.Document().Identification.Extents[0]
	require.Len(t, e.GeographicElements, 2)
	assert.Equal(t, desc, e.GeographicElements[1])
	assert.Equal(t, &TemporalExtent{From: "2020-01-01", To: "2021-01-01"}, m.TemporalExtent())
	assert.Equal(t, &VerticalExtent{Min: 0, Max: 100}, m.VerticalExtent())

	m.SetBoundingBox(nil)
	assert.Nil(t, m.BoundingBox())
	require.Len(t, e.GeographicElements, 1)
	assert.Equal(t, desc, e.GeographicElements[0])
}

func TestTemporalExtent_Now(t *testing.T) {
	m := NewDataset()
	m.SetBoundingBox(&BoundingBox{West: 1, East: 2, South: 3, North: 4})
	m.SetTemporalExtent(&TemporalExtent{From: "2020-01-01", To: metadata.IndeterminateNow})

	period := m.Document().Identification.Extents[0].TemporalElements[0]
	assert.Equal(t, metadata.IndeterminateNow, period.EndIndeterminate)
	assert.Empty(t, period.End)
	assert.NotEmpty(t, period.ID)
	id := period.ID

	assert.Equal(t, &TemporalExtent{From: "2020-01-01", To: "now"}, m.TemporalExtent())
	assert.NotNil(t, m.BoundingBox(), "bounding box is kept")

	m.SetTemporalExtent(&TemporalExtent{From: "2020-01-01", To: "2024-12-31"})
	assert.Equal(t, id, m.Document().Identification.Extents[0].TemporalElements[0].ID, "gml:id is kept")
}

func TestExtent_RemovedWhenEmpty(t *testing.T) {
	m := NewDataset()
	m.SetBoundingBox(&BoundingBox{West: 1, East: 2, South: 3, North: 4})
	m.SetTemporalExtent(&TemporalExtent{From: "2020-01-01"})
	m.SetVerticalExtent(&VerticalExtent{Min: -5, Max: 10, CRS: "http://www.opengis.net/def/crs/EPSG/0/5941"})
	assert.Equal(t, &VerticalExtent{Min: -5, Max: 10, CRS: "http://www.opengis.net/def/crs/EPSG/0/5941"}, m.VerticalExtent())

	m.SetBoundingBox(nil)
	m.SetTemporalExtent(nil)
	assert.Len(t, m.Document().Identification.Extents, 1)

	m.SetVerticalExtent(nil)
	assert.Nil(t, m.Document().Identification.Extents)
}
