package simple

import "github.com/sirosfoundation/go-csw/pkg/metadata"

// Constraints merges every constraint record of the resource into one flat
// view. It returns nil when the resource has no constraints.
func (m *Metadata) Constraints() *Constraints {
	id := m.ident()
	if id == nil || len(id.Constraints) == 0 {
		return nil
	}

	out := &Constraints{}
	for _, c := range id.Constraints {
		if lim := c.Limitations(); len(lim) > 0 && out.UseLimitations == "" && out.EnglishUseLimitations == "" {
			out.UseLimitations = m.localized(lim[0])
			out.EnglishUseLimitations = m.english(lim[0])
		}

		switch v := c.(type) {
		case *metadata.GenericConstraint:
			// only use limitations
		case *metadata.LegalConstraint:
			m.mergeLegal(out, v)
		case *metadata.SecurityConstraint:
			out.SecurityConstraints = v.Classification.Value
			out.SecurityConstraintsNote = m.localized(v.UserNote)
		}
	}
	return out
}

// mergeLegal reads one legal record. A record may carry access, use and
// other constraints together; its otherConstraints entries are then
// consumed in order: the access anchor first (an entry with a known public
// access link, else the first), then the licence, then free text.
func (m *Metadata) mergeLegal(out *Constraints, c *metadata.LegalConstraint) {
	others := c.OtherConstraints

	if len(c.AccessConstraints) > 0 {
		code := c.AccessConstraints[0].Value
		if code == metadata.RestrictionOther && len(others) > 0 {
			i := accessEntry(others)
			out.AccessConstraints = metadata.Primary(others[i])
			out.AccessConstraintsLink = metadata.Href(others[i])
			others = append(others[:i:i], others[i+1:]...)
		} else {
			out.AccessConstraints = code
		}
	}

	if len(c.UseConstraints) > 0 {
		out.UseConstraints = c.UseConstraints[0].Value
		if len(others) > 0 {
			out.UseConstraintsLicenseLinkText = metadata.Primary(others[0])
			out.UseConstraintsLicenseLink = metadata.Href(others[0])
			others = others[1:]
		}
	}

	if len(others) > 0 && out.OtherConstraints == "" && out.EnglishOtherConstraints == "" {
		out.OtherConstraints = m.localized(others[0])
		out.EnglishOtherConstraints = m.english(others[0])
	}
}

func accessEntry(others []metadata.Text) int {
	for i, t := range others {
		if accessTextForLink(metadata.Href(t)) != "" {
			return i
		}
	}
	return 0
}

// SetConstraints replaces all constraint records with the canonical
// sequence: use limitations, access constraints, use constraints, other
// constraints and security constraints. Empty parts are left out. nil
// removes all constraints.
//
// A known public access link determines the access text written with it;
// a known access text without link gets its canonical link.
func (m *Metadata) SetConstraints(c *Constraints) {
	if c == nil {
		if id := m.ident(); id != nil {
			id.Constraints = nil
		}
		return
	}

	var out []metadata.Constraint

	if lim := m.bilingual(c.UseLimitations, c.EnglishUseLimitations); lim != nil {
		out = append(out, &metadata.GenericConstraint{UseLimitations: []metadata.Text{lim}})
	}

	if access := accessConstraint(c.AccessConstraints, c.AccessConstraintsLink); access != nil {
		out = append(out, access)
	}

	if c.UseConstraints != "" || c.UseConstraintsLicenseLink != "" || c.UseConstraintsLicenseLinkText != "" {
		code := c.UseConstraints
		if code == "" {
			code = metadata.RestrictionLicense
		}
		legal := &metadata.LegalConstraint{
			UseConstraints: []metadata.Code{metadata.NewCode(metadata.RestrictionCode, code)},
		}
		if c.UseConstraintsLicenseLink != "" || c.UseConstraintsLicenseLinkText != "" {
			license := metadata.WithHref(metadata.PlainText{Value: c.UseConstraintsLicenseLinkText}, c.UseConstraintsLicenseLink)
			legal.OtherConstraints = []metadata.Text{license}
		}
		out = append(out, legal)
	}

	if other := m.bilingual(c.OtherConstraints, c.EnglishOtherConstraints); other != nil {
		out = append(out, &metadata.LegalConstraint{OtherConstraints: []metadata.Text{other}})
	}

	if c.SecurityConstraints != "" || c.SecurityConstraintsNote != "" {
		out = append(out, &metadata.SecurityConstraint{
			Classification: metadata.NewCode(metadata.ClassificationCode, c.SecurityConstraints),
			UserNote:       m.bilingual(c.SecurityConstraintsNote, ""),
		})
	}

	m.ensureIdent().Constraints = out
}

func accessConstraint(text, link string) *metadata.LegalConstraint {
	if text == "" && link == "" {
		return nil
	}
	if link != "" {
		if mapped := accessTextForLink(link); mapped != "" {
			text = mapped
		}
	} else {
		link = accessLinkForText(text)
	}

	legal := &metadata.LegalConstraint{
		AccessConstraints: []metadata.Code{metadata.NewCode(metadata.RestrictionCode, metadata.RestrictionOther)},
	}
	if link != "" {
		legal.OtherConstraints = []metadata.Text{metadata.AnchorText{Value: text, Href: link}}
	} else {
		legal.OtherConstraints = []metadata.Text{metadata.PlainText{Value: text}}
	}
	return legal
}
