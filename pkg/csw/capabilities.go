package csw

import (
	"fmt"
	"net/url"

	"github.com/beevik/etree"
)

// Capabilities summarises a csw:Capabilities document
type Capabilities struct {
	Version  string
	Title    string
	Abstract string
	Provider string
	// Operations lists the operation names in document order
	Operations []string
}

// Supports reports whether the catalogue announces operation name
func (c *Capabilities) Supports(name string) bool {
	for _, op := range c.Operations {
		if op == name {
			return true
		}
	}
	return false
}

// CapabilitiesURL returns the KVP GetCapabilities URL for endpoint
func CapabilitiesURL(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	q := u.Query()
	q.Set("service", Service)
	q.Set("request", "GetCapabilities")
	q.Set("acceptVersions", Version)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseCapabilities parses a GetCapabilities response
func ParseCapabilities(data []byte) (*Capabilities, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing capabilities: %w", err)
	}
	if err := exceptionFromRoot(doc.Root()); err != nil {
		return nil, err
	}

	root := find(doc.Root(), "Capabilities")
	if root == nil {
		return nil, fmt.Errorf("csw: response has no Capabilities element")
	}

	caps := &Capabilities{Version: root.SelectAttrValue("version", "")}
	if si := root.SelectElement("ServiceIdentification"); si != nil {
		caps.Title = childText(si, "Title")
		caps.Abstract = childText(si, "Abstract")
	}
	if sp := root.SelectElement("ServiceProvider"); sp != nil {
		caps.Provider = childText(sp, "ProviderName")
	}
	for _, op := range root.FindElements("./OperationsMetadata/Operation") {
		if name := op.SelectAttrValue("name", ""); name != "" {
			caps.Operations = append(caps.Operations, name)
		}
	}
	return caps, nil
}
