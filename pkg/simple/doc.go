// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package simple provides a flat, field-oriented view over an ISO 19139
metadata document.

A Metadata wraps one *metadata.Document and exposes named properties (title,
abstract, keywords, contacts, constraints, extents, dates, quality
specifications, distribution details and so on) as plain Go values. Reads
never fail on missing structure: an absent node yields the zero value of the
property. Writes create any intermediate nodes they need.

# Languages

Free-text properties are bilingual. The primary value of a text is always in
the metadata language of the record; the other language is stored as a
PT_FreeText alternate. Each such property has a native accessor and an
English one:

	m.Title()        // Norwegian text, or the primary text as fallback
	m.EnglishTitle() // English text, or "" when no translation exists

When the metadata language is English, the native accessors read and write
the Norwegian alternate and leave the English primary intact. An empty
result from an English getter means the record has no translation.

# Fixed vocabularies

Code list values are written with their code list URL from the metadata
package. Thesaurus names, application profile labels for resource links and
access constraint links are resolved through the immutable tables in
tables.go.

# Usage

	m := simple.NewDataset()
	m.SetTitle("Vannforekomster")
	m.SetEnglishTitle("Water bodies")
	m.SetBoundingBox(&simple.BoundingBox{West: 4.5, East: 31.2, South: 57.9, North: 71.2})

	data, err := metadata.Marshal(m.Document())

A Metadata is not safe for concurrent mutation.
*/
package simple
