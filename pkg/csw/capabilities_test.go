package csw

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capabilitiesResponse = `<?xml version="1.0" encoding="UTF-8"?>
<csw:Capabilities xmlns:csw="http://www.opengis.net/cat/csw/2.0.2" xmlns:ows="http://www.opengis.net/ows" version="2.0.2">
  <ows:ServiceIdentification>
    <ows:Title>Geonorge</ows:Title>
    <ows:Abstract>Nasjonal katalog</ows:Abstract>
  </ows:ServiceIdentification>
  <ows:ServiceProvider>
    <ows:ProviderName>Kartverket</ows:ProviderName>
  </ows:ServiceProvider>
  <ows:OperationsMetadata>
    <ows:Operation name="GetCapabilities"/>
    <ows:Operation name="GetRecords"/>
    <ows:Operation name="GetRecordById"/>
    <ows:Operation name="Transaction"/>
  </ows:OperationsMetadata>
</csw:Capabilities>`

func TestParseCapabilities(t *testing.T) {
	caps, err := ParseCapabilities([]byte(capabilitiesResponse))
	require.NoError(t, err)
	assert.Equal(t, &Capabilities{
		Version:    "2.0.2",
		Title:      "Geonorge",
		Abstract:   "Nasjonal katalog",
		Provider:   "Kartverket",
		Operations: []string{"GetCapabilities", "GetRecords", "GetRecordById", "Transaction"},
	}, caps)
	assert.True(t, caps.Supports("Transaction"))
	assert.False(t, caps.Supports("Harvest"))
}

func TestParseCapabilities_Errors(t *testing.T) {
	_, err := ParseCapabilities([]byte(`<html/>`))
	assert.Error(t, err)

	_, err = ParseCapabilities([]byte(exceptionResponse))
	var report *ExceptionReport
	assert.ErrorAs(t, err, &report)
}

func TestCapabilitiesURL(t *testing.T) {
	raw, err := CapabilitiesURL("https://example.org/geonetwork/srv/nor/csw?token=x")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/geonetwork/srv/nor/csw", u.Path)
	q := u.Query()
	assert.Equal(t, "CSW", q.Get("service"))
	assert.Equal(t, "GetCapabilities", q.Get("request"))
	assert.Equal(t, "2.0.2", q.Get("acceptVersions"))
	assert.Equal(t, "x", q.Get("token"))

	_, err = CapabilitiesURL("://bad")
	assert.Error(t, err)
}
