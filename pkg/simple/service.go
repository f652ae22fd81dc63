package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// ServiceType returns the generic service type, e.g. "view" or "download".
// It is empty on dataset records.
func (m *Metadata) ServiceType() string {
	if id := m.serviceIdent(); id != nil {
		return id.ServiceType
	}
	return ""
}

// SetServiceType sets the service type, e.g. "view" or "download".
func (m *Metadata) SetServiceType(v string) {
	m.ensureIdent().ServiceType = v
}

// ServiceTypeVersion returns the service type version of a service.
func (m *Metadata) ServiceTypeVersion() string {
	if id := m.serviceIdent(); id != nil {
		return id.ServiceTypeVersion
	}
	return ""
}

// SetServiceTypeVersion sets the service type version.
func (m *Metadata) SetServiceTypeVersion(v string) {
	m.ensureIdent().ServiceTypeVersion = v
}

// CouplingType returns how tightly the service is bound to its data.
func (m *Metadata) CouplingType() string {
	if id := m.serviceIdent(); id != nil {
		return id.CouplingType.Value
	}
	return ""
}

// SetCouplingType sets the coupling type of a service.
func (m *Metadata) SetCouplingType(v string) {
	m.ensureIdent().CouplingType = metadata.NewCode(metadata.CouplingTypeCode, v)
}

// OperatesOn returns the identifiers of the datasets served by the service.
func (m *Metadata) OperatesOn() []string {
	id := m.serviceIdent()
	if id == nil {
		return nil
	}
	var out []string
	for _, o := range id.OperatesOn {
		if o.UUIDRef != "" {
			out = append(out, o.UUIDRef)
		}
	}
	return out
}

// SetOperatesOn replaces the served dataset references. Existing links of
// identifiers that are kept are preserved.
func (m *Metadata) SetOperatesOn(ids []string) {
	id := m.ensureIdent()
	existing := make(map[string]string, len(id.OperatesOn))
	for _, o := range id.OperatesOn {
		existing[o.UUIDRef] = o.Href
	}
	var out []*metadata.OperatesOn
	for _, ref := range ids {
		if ref == "" {
			continue
		}
		out = append(out, &metadata.OperatesOn{UUIDRef: ref, Href: existing[ref]})
	}
	id.OperatesOn = out
}

// Operations returns the operations offered by a service.
func (m *Metadata) Operations() []Operation {
	id := m.serviceIdent()
	if id == nil {
		return nil
	}
	var out []Operation
	for _, op := range id.Operations {
		out = append(out, Operation{Name: op.Name, DCP: op.DCP.Value, URL: op.ConnectPoint})
	}
	return out
}

// SetOperations replaces the service operations.
func (m *Metadata) SetOperations(ops []Operation) {
	var out []*metadata.Operation
	for _, op := range ops {
		out = append(out, &metadata.Operation{
			Name:         op.Name,
			DCP:          metadata.NewCode(metadata.DCPListCode, op.DCP),
			ConnectPoint: op.URL,
		})
	}
	m.ensureIdent().Operations = out
}
