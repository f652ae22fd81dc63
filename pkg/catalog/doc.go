/*
Package catalog provides a client for CSW 2.0.2 catalogues.

The client posts requests built by package csw, parses the responses and
returns ows:ExceptionReport payloads as *csw.ExceptionReport errors:

	client, err := catalog.NewClient(catalog.DefaultConfig("https://www.geonorge.no/geonetwork/srv/nor/csw-publication"))

	results, err := client.SearchFreeText(ctx, "vann elv", csw.WithMaxRecords(20))

	m := simple.NewDataset()
	m.SetTitle("Vann")
	result, err := client.Insert(ctx, m.Document())

Requests are throttled with a token bucket. Reads (GetRecords,
GetRecordById) are retried with exponential backoff on network errors and
5xx or 429 responses; transactions are sent once.
*/
package catalog
