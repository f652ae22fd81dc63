// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package metadata implements the ISO 19139 metadata document model used by
CSW catalogues.

A Document is the full nested record graph of one catalog entry: the
identification block (citation, abstract, keywords, contacts, constraints,
extents), distribution information, reference systems, data quality reports
and metadata extension entries.

# Text values

Character strings in ISO 19139 come in three shapes. The package models them
as a closed set of types implementing Text:

	PlainText      - <gco:CharacterString>
	BilingualText  - <gco:CharacterString> plus <gmd:PT_FreeText> alternates
	AnchorText     - <gmx:Anchor xlink:href="..."> with optional alternates

Use a type switch over these three when a field needs to distinguish them,
or the helpers Primary, Alternate and Href when it does not.

# Code lists

Code list values carry the code list URL alongside the code. NewCode fills
in the URL from the fixed table in codelist.go:

	level := metadata.NewCode(metadata.ScopeCode, "dataset")

# Serialization

Marshal and Unmarshal convert between a Document and ISO 19139 XML. The
schema allows repetition for several elements the model keeps as single
values (hierarchy level, identification, data quality); decoding keeps the
first occurrence and encoding writes at most one.

	data, err := metadata.Marshal(doc)
	doc, err := metadata.Unmarshal(data)

# References

  - ISO/TS 19139:2007 Geographic information - Metadata - XML schema implementation
  - ISO 19115:2003 Geographic information - Metadata
  - ISO 19119:2005 Geographic information - Services
*/
package metadata
