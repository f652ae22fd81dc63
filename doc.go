// Copyright (c) 2024 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package gocsw is a client library for ISO 19139 geospatial metadata and the
OGC Catalogue Service for the Web (CSW 2.0.2).

# Overview

go-csw reads, edits and publishes metadata records in CSW catalogues such as
GeoNetwork. Records follow the ISO 19139 encoding with the Norwegian national
profile conventions: bilingual (Norwegian/English) text, INSPIRE and national
keyword thesauri, and auxiliary resource links.

# Specifications Implemented

  - OGC Catalogue Services 2.0.2: https://www.ogc.org/standard/cat/
  - OGC Filter Encoding 1.1: https://www.ogc.org/standard/filter/
  - ISO/TS 19139 Geographic information, Metadata, XML schema implementation
  - INSPIRE Metadata Technical Guidelines: https://inspire.ec.europa.eu/id/document/tg/metadata-iso19139

# Package Structure

	github.com/sirosfoundation/go-csw/pkg/metadata  - ISO 19139 document model and XML codec
	github.com/sirosfoundation/go-csw/pkg/simple    - Flat bilingual field accessors over a document
	github.com/sirosfoundation/go-csw/pkg/csw       - CSW request builders and response parsers
	github.com/sirosfoundation/go-csw/pkg/transport - HTTPS transport with TLS 1.2/1.3
	github.com/sirosfoundation/go-csw/pkg/catalog   - Catalogue client (search, fetch, transactions)

The cswctl command in cmd/cswctl exposes the client on the command line.

# Quick Start

To create a dataset record and insert it into a catalogue:

	import (
	    "github.com/sirosfoundation/go-csw/pkg/catalog"
	    "github.com/sirosfoundation/go-csw/pkg/simple"
	)

	m := simple.NewDataset()
	m.SetTitle("Vann")
	m.SetEnglishTitle("Water")
	m.SetKeywords([]simple.Keyword{
	    {Keyword: "Hydrografi", EnglishKeyword: "Hydrography", Thesaurus: simple.ThesaurusGEMETInspire},
	})

	cfg := catalog.DefaultConfig("https://catalogue.example.com/csw")
	cfg.HTTPSConfig.Username = "editor"
	cfg.HTTPSConfig.Password = password

	client, err := catalog.NewClient(cfg)
	if err != nil {
	    log.Fatal(err)
	}
	result, err := client.Insert(ctx, m.Document())

To search:

	results, err := client.SearchFreeText(ctx, "vann elv",
	    csw.WithSort(csw.SortModifiedDescending))
*/
package gocsw
