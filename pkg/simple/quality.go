package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// conformancePerReport is the number of conformance results packed into one
// report when quality specifications are written.
const conformancePerReport = 2

func (m *Metadata) ensureDataQuality() *metadata.DataQuality {
	if m.doc.DataQuality == nil {
		m.doc.DataQuality = &metadata.DataQuality{}
	}
	if m.doc.DataQuality.Scope.IsZero() && m.HierarchyLevel() != "" {
		m.doc.DataQuality.Scope = metadata.NewCode(metadata.ScopeCode, m.HierarchyLevel())
	}
	return m.doc.DataQuality
}

// QualitySpecifications returns all conformance and quantitative results in
// document order.
func (m *Metadata) QualitySpecifications() []QualitySpecification {
	dq := m.doc.DataQuality
	if dq == nil {
		return nil
	}
	var out []QualitySpecification
	for _, r := range dq.Reports {
		for _, res := range r.Results {
			switch v := res.(type) {
			case *metadata.ConformanceResult:
				out = append(out, m.conformanceSpecification(v))
			case *metadata.QuantitativeResult:
				measure := r.MeasureIdentification
				if measure == "" {
					measure = r.NameOfMeasure
				}
				out = append(out, QualitySpecification{Measure: measure, Value: v.Value})
			}
		}
	}
	return out
}

func (m *Metadata) conformanceSpecification(r *metadata.ConformanceResult) QualitySpecification {
	q := QualitySpecification{
		Explanation:        m.localized(r.Explanation),
		EnglishExplanation: m.english(r.Explanation),
	}
	if r.Pass != nil {
		pass := *r.Pass
		q.Result = &pass
	}
	if spec := r.Specification; spec != nil {
		q.Title = metadata.Primary(spec.Title)
		q.TitleLink = metadata.Href(spec.Title)
		if len(spec.Dates) > 0 {
			date := spec.Dates[0].Date
			q.Date = &date
			q.DateType = spec.Dates[0].Type.Value
		}
	}
	return q
}

// SetQualitySpecifications replaces all quality reports in the order given.
// Consecutive conformance results are written two per domain consistency
// report; each quantitative measure gets its own conceptual consistency
// report and ends the current pair. The lineage is kept.
func (m *Metadata) SetQualitySpecifications(specs []QualitySpecification) {
	var reports []*metadata.Report
	var current *metadata.Report

	for _, q := range specs {
		if q.IsQuantitative() {
			current = nil
			reports = append(reports, &metadata.Report{
				Kind:                  metadata.ConceptualConsistency,
				NameOfMeasure:         q.Measure,
				MeasureIdentification: q.Measure,
				Results: []metadata.Result{&metadata.QuantitativeResult{
					ValueUnit: measureUnits[q.Measure],
					Value:     q.Value,
				}},
			})
			continue
		}
		if current == nil || len(current.Results) == conformancePerReport {
			current = &metadata.Report{Kind: metadata.DomainConsistency}
			reports = append(reports, current)
		}
		current.Results = append(current.Results, m.conformanceResult(q))
	}

	if reports == nil && m.doc.DataQuality == nil {
		return
	}
	m.ensureDataQuality().Reports = reports
}

func (m *Metadata) conformanceResult(q QualitySpecification) *metadata.ConformanceResult {
	r := &metadata.ConformanceResult{
		Explanation: m.bilingual(q.Explanation, q.EnglishExplanation),
	}
	if q.Result != nil {
		pass := *q.Result
		r.Pass = &pass
	}
	if q.Title != "" || q.TitleLink != "" {
		spec := &metadata.Citation{Title: metadata.WithHref(metadata.PlainText{Value: q.Title}, q.TitleLink)}
		if q.Date != nil {
			dateType := q.DateType
			if dateType == "" {
				dateType = metadata.DateTypePublication
			}
			spec.Dates = []*metadata.CitationDate{{
				Date: *q.Date,
				Type: metadata.NewCode(metadata.DateTypeCode, dateType),
			}}
		}
		r.Specification = spec
	}
	return r
}

func (m *Metadata) lineage() metadata.Text {
	if dq := m.doc.DataQuality; dq != nil {
		return dq.Lineage
	}
	return nil
}

// ProcessHistory returns the lineage statement.
func (m *Metadata) ProcessHistory() string {
	return m.localized(m.lineage())
}

// SetProcessHistory sets the Norwegian lineage statement.
func (m *Metadata) SetProcessHistory(v string) {
	dq := m.ensureDataQuality()
	dq.Lineage = m.setLocalized(dq.Lineage, v)
}

// EnglishProcessHistory returns the English lineage statement, or "".
func (m *Metadata) EnglishProcessHistory() string {
	return m.english(m.lineage())
}

// SetEnglishProcessHistory sets the English lineage statement.
func (m *Metadata) SetEnglishProcessHistory(v string) {
	dq := m.ensureDataQuality()
	dq.Lineage = m.setEnglish(dq.Lineage, v)
}
