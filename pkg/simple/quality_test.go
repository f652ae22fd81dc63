package simple

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func boolPtr(b bool) *bool { return &b }

func TestQualitySpecifications_RoundTrip(t *testing.T) {
	date := time.Date(2010, 12, 8, 0, 0, 0, 0, time.UTC)
	specs := []QualitySpecification{
		{
			Title:              "COMMISSION REGULATION (EU) No 1089/2010",
			TitleLink:          "http://data.europa.eu/eli/reg/2010/1089",
			Date:               &date,
			DateType:           metadata.DateTypePublication,
			Explanation:        "Datasettet er i samsvar",
			EnglishExplanation: "The dataset is conformant",
			Result:             boolPtr(true),
		},
		{Title: "SOSI produktspesifikasjon", Date: &date, DateType: metadata.DateTypeCreation, Result: boolPtr(false)},
		{Title: "Ukjent", Explanation: "Ikke testet"},
		{Measure: MeasureAvailability, Value: 99.5},
		{Measure: MeasurePerformance, Value: 0.5},
	}

	m := NewService()
	m.SetQualitySpecifications(specs)
	assert.Equal(t, specs, m.QualitySpecifications())

	data, err := metadata.Marshal(m.Document())
	require.NoError(t, err)
	doc, err := metadata.Unmarshal(data)
	require.NoError(t, err)
	decoded, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, specs, decoded.QualitySpecifications())
}

func TestQualitySpecifications_ReportPacking(t *testing.T) {
	specs := []QualitySpecification{
		{Title: "A", Result: boolPtr(true)},
		{Title: "B", Result: boolPtr(true)},
		{Title: "C"},
		{Measure: MeasureCapacity, Value: 10},
		{Title: "D", Result: boolPtr(false)},
	}
	m := NewDataset()
	m.SetQualitySpecifications(specs)

	dq := m.Document().DataQuality
	require.NotNil(t, dq)
	assert.Equal(t, metadata.HierarchyDataset, dq.Scope.Value)
	require.Len(t, dq.Reports, 4)

	assert.Equal(t, metadata.DomainConsistency, dq.Reports[0].Kind)
	assert.Len(t, dq.Reports[0].Results, 2, "two conformance results per report")
	assert.Len(t, dq.Reports[1].Results, 1)

	quantitative := dq.Reports[2]
	assert.Equal(t, metadata.ConceptualConsistency, quantitative.Kind)
	assert.Equal(t, MeasureCapacity, quantitative.MeasureIdentification)
	require.Len(t, quantitative.Results, 1)
	assert.Equal(t, &metadata.QuantitativeResult{ValueUnit: "count", Value: 10}, quantitative.Results[0])

	assert.Equal(t, metadata.DomainConsistency, dq.Reports[3].Kind)
	assert.Len(t, dq.Reports[3].Results, 1)
}

func TestQualitySpecifications_InterleavedOrderKept(t *testing.T) {
	specs := []QualitySpecification{
		{Measure: MeasureAvailability, Value: 99.9},
		{Title: "A", Result: boolPtr(true)},
		{Measure: MeasurePerformance, Value: 0.2},
		{Title: "B"},
		{Title: "C", Result: boolPtr(false)},
	}
	m := NewService()
	m.SetQualitySpecifications(specs)
	assert.Equal(t, specs, m.QualitySpecifications())

	data, err := metadata.Marshal(m.Document())
	require.NoError(t, err)
	doc, err := metadata.Unmarshal(data)
	require.NoError(t, err)
	decoded, err := New(doc)
	require.NoError(t, err)
	assert.Equal(t, specs, decoded.QualitySpecifications())
}

func TestQualitySpecifications_KeepsLineage(t *testing.T) {
	m := NewDataset()
	m.SetProcessHistory("Digitalisert fra kart")
	m.SetEnglishProcessHistory("Digitised from maps")
	m.SetQualitySpecifications([]QualitySpecification{{Title: "A"}})
	m.SetQualitySpecifications(nil)

	assert.Nil(t, m.QualitySpecifications())
	assert.Equal(t, "Digitalisert fra kart", m.ProcessHistory())
	assert.Equal(t, "Digitised from maps", m.EnglishProcessHistory())
}
