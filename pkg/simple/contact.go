package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

func (m *Metadata) toContact(p *metadata.ResponsibleParty) *Contact {
	return &Contact{
		Name:                p.IndividualName,
		Organization:        m.localized(p.OrganisationName),
		OrganizationEnglish: m.english(p.OrganisationName),
		Email:               p.Email,
		Role:                p.Role.Value,
		PositionName:        p.PositionName,
	}
}

// applyContact writes c into p, keeping alternates of the organisation name
// that c does not mention.
func (m *Metadata) applyContact(p *metadata.ResponsibleParty, c *Contact, defaultRole string) {
	p.IndividualName = c.Name
	p.Email = c.Email
	p.PositionName = c.PositionName
	if c.Organization != "" || m.localized(p.OrganisationName) != "" {
		p.OrganisationName = m.setLocalized(p.OrganisationName, c.Organization)
	}
	if c.OrganizationEnglish != "" || m.english(p.OrganisationName) != "" {
		p.OrganisationName = m.setEnglish(p.OrganisationName, c.OrganizationEnglish)
	}
	role := c.Role
	if role == "" {
		role = defaultRole
	}
	p.Role = metadata.NewCode(metadata.RoleCode, role)
}

// ContactMetadata returns the contact responsible for the metadata record.
func (m *Metadata) ContactMetadata() *Contact {
	if len(m.doc.Contacts) == 0 {
		return nil
	}
	return m.toContact(m.doc.Contacts[0])
}

// SetContactMetadata replaces the metadata contact. nil removes it.
func (m *Metadata) SetContactMetadata(c *Contact) {
	if c == nil {
		if len(m.doc.Contacts) > 0 {
			m.doc.Contacts = m.doc.Contacts[1:]
		}
		return
	}
	if len(m.doc.Contacts) == 0 {
		m.doc.Contacts = append(m.doc.Contacts, &metadata.ResponsibleParty{})
	}
	m.applyContact(m.doc.Contacts[0], c, RolePointOfContact)
}

// Contact returns the first point of contact of the resource with the given
// role, or nil.
func (m *Metadata) Contact(role string) *Contact {
	id := m.ident()
	if id == nil {
		return nil
	}
	for _, p := range id.PointsOfContact {
		if p.Role.Value == role {
			return m.toContact(p)
		}
	}
	return nil
}

// SetContact updates the first point of contact with the given role, or
// appends a new one. nil removes the first contact with that role.
func (m *Metadata) SetContact(role string, c *Contact) {
	if c == nil {
		id := m.ident()
		if id == nil {
			return
		}
		for i, p := range id.PointsOfContact {
			if p.Role.Value == role {
				id.PointsOfContact = append(id.PointsOfContact[:i], id.PointsOfContact[i+1:]...)
				return
			}
		}
		return
	}

	c = withRole(c, role)
	id := m.ensureIdent()
	for _, p := range id.PointsOfContact {
		if p.Role.Value == role {
			m.applyContact(p, c, role)
			return
		}
	}
	p := &metadata.ResponsibleParty{}
	m.applyContact(p, c, role)
	id.PointsOfContact = append(id.PointsOfContact, p)
}

// ContactPublisher returns the publisher contact, or nil.
func (m *Metadata) ContactPublisher() *Contact {
	return m.Contact(RolePublisher)
}

// SetContactPublisher replaces the publisher contact. nil removes it.
func (m *Metadata) SetContactPublisher(c *Contact) {
	m.SetContact(RolePublisher, c)
}

// ContactOwner returns the owner contact, or nil.
func (m *Metadata) ContactOwner() *Contact {
	return m.Contact(RoleOwner)
}

// SetContactOwner replaces the owner contact. nil removes it.
func (m *Metadata) SetContactOwner(c *Contact) {
	m.SetContact(RoleOwner, c)
}

// ContactCustodian returns the custodian contact, or nil.
func (m *Metadata) ContactCustodian() *Contact {
	return m.Contact(RoleCustodian)
}

// SetContactCustodian replaces the custodian contact. nil removes it.
func (m *Metadata) SetContactCustodian(c *Contact) {
	m.SetContact(RoleCustodian, c)
}

// withRole returns a copy of c carrying role.
func withRole(c *Contact, role string) *Contact {
	if c == nil {
		return nil
	}
	out := *c
	out.Role = role
	return &out
}
