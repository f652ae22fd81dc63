// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package csw builds OGC Catalogue Service for the Web (CSW 2.0.2) requests and
parses their responses.

# Search

Search requests carry an OGC filter built from a closed set of predicate
types (PropertyIsLike, PropertyIsEqualTo, BBox, And, Or). Free text is split
on whitespace; each token becomes one PropertyIsLike on AnyText and several
tokens are combined with a single And:

	req := csw.SearchFreeText("vann elv",
		csw.WithMaxRecords(20),
		csw.WithSort(csw.SortTitleAscending),
		csw.WithOutputSchema(csw.OutputSchemaISO),
	)
	body, err := req.Marshal()

Wildcard characters in user input are escaped so they match literally. The
request always asks for the "full" element set.

# Transactions

Insert and update transactions wrap exactly one ISO 19139 document; delete
transactions select one record by identifier:

	tx, err := csw.NewInsert(doc)
	tx, err := csw.NewDelete("4f3c1f3e-7d0b-4b9e-9a54-2d6b0f8a2c11")

ParseTransactionResponse reads the totals and inserted identifiers of a
csw:TransactionResponse. A response without that element yields zero counts
rather than an error.

# Exceptions

Catalogues report failures as ows:ExceptionReport documents. CheckException
turns such a response into an *ExceptionReport error.
*/
package csw
