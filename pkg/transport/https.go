package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// TLS versions accepted by HTTPSConfig
const (
	TLS12 = tls.VersionTLS12
	TLS13 = tls.VersionTLS13
)

// Content types of catalogue requests and responses
const (
	ContentTypeXML = "application/xml; charset=utf-8"
	AcceptXML      = "application/xml, text/xml"
)

// DefaultUserAgent is sent when HTTPSConfig.UserAgent is empty
const DefaultUserAgent = "go-csw/1.0"

// maxErrorBody limits how much of an error response is kept in StatusError
const maxErrorBody = 4096

// RecommendedTLS12CipherSuites lists the AEAD suites offered on TLS 1.2
// connections. TLS 1.3 suites are not configurable.
var RecommendedTLS12CipherSuites = []uint16{
	tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
	tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
	tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
	tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
}

// HTTPSConfig controls how catalogue requests are sent
type HTTPSConfig struct {
	MinTLSVersion uint16
	MaxTLSVersion uint16
	CipherSuites  []uint16
	// RootCAs replaces the system roots when set
	RootCAs *x509.CertPool

	Timeout         time.Duration
	IdleConnTimeout time.Duration
	UserAgent       string

	// Username and Password enable HTTP basic authentication when Username
	// is set. Catalogue transactions normally require it.
	Username string
	Password string
}

// DefaultHTTPSConfig returns TLS 1.2-1.3 with a 30 second request timeout
func DefaultHTTPSConfig() *HTTPSConfig {
	return &HTTPSConfig{
		MinTLSVersion:   TLS12,
		MaxTLSVersion:   TLS13,
		CipherSuites:    RecommendedTLS12CipherSuites,
		Timeout:         30 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		UserAgent:       DefaultUserAgent,
	}
}

func (c *HTTPSConfig) tlsConfig() *tls.Config {
	return &tls.Config{
		MinVersion:   c.MinTLSVersion,
		MaxVersion:   c.MaxTLSVersion,
		CipherSuites: c.CipherSuites,
		RootCAs:      c.RootCAs,
	}
}

func (c *HTTPSConfig) userAgent() string {
	if c.UserAgent == "" {
		return DefaultUserAgent
	}
	return c.UserAgent
}

// LoadRootCAs reads a PEM bundle into a certificate pool
func LoadRootCAs(path string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("transport: read CA bundle: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("transport: no certificates in %s", path)
	}
	return pool, nil
}

// StatusError is returned for non-2xx responses. Body holds at most the
// first 4 KiB of the reply.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: HTTP %d: %s", e.StatusCode, e.Body)
}

// HTTPSClient sends catalogue requests over HTTPS
type HTTPSClient struct {
	client *http.Client
	config *HTTPSConfig
}

// NewHTTPSClient builds a client from config, or from DefaultHTTPSConfig
// when config is nil
func NewHTTPSClient(config *HTTPSConfig) *HTTPSClient {
	if config == nil {
		config = DefaultHTTPSConfig()
	}

	return &HTTPSClient{
		client: &http.Client{
			Timeout: config.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				TLSClientConfig:     config.tlsConfig(),
				IdleConnTimeout:     config.IdleConnTimeout,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
			},
		},
		config: config,
	}
}

// Post sends body to endpoint and returns the response body
func (c *HTTPSClient) Post(ctx context.Context, endpoint string, body []byte, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req)
}

// Get fetches endpoint and returns the response body
func (c *HTTPSClient) Get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	return c.do(req)
}

func (c *HTTPSClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", c.config.userAgent())
	req.Header.Set("Accept", AcceptXML)
	if c.config.Username != "" {
		req.SetBasicAuth(c.config.Username, c.config.Password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transport: %s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("transport: read response: %w", err)
	}
	return data, nil
}
