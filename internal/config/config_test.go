package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirosfoundation/go-csw/pkg/csw"
	"github.com/sirosfoundation/go-csw/pkg/transport"
)

func TestLoad(t *testing.T) {
	t.Setenv("TEST_CSW_PASSWORD", "s3cret")

	path := filepath.Join(t.TempDir(), "cswctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog:
  endpoint: https://example.org/csw
  username: editor
  password: ${TEST_CSW_PASSWORD}
  timeout: 10s
  retry:
    maxRetries: 3
search:
  maxRecords: 25
  sort: modified
  outputSchema: iso
log:
  level: debug
  format: json
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/csw", cfg.Catalog.Endpoint)
	assert.Equal(t, "s3cret", cfg.Catalog.Password)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, 3, cfg.Catalog.Retry.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, cfg.Catalog.Retry.InitialBackoff)
	assert.Equal(t, 25, cfg.Search.MaxRecords)
	assert.Equal(t, "json", cfg.Log.Format)

	schema, err := cfg.OutputSchema()
	require.NoError(t, err)
	assert.Equal(t, csw.OutputSchemaISO, schema)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 30*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, transport.DefaultUserAgent, cfg.Catalog.UserAgent)
	assert.Equal(t, 5.0, cfg.Catalog.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1, cfg.Catalog.RateLimit.Burst)
	assert.Equal(t, csw.DefaultMaxRecords, cfg.Search.MaxRecords)
	assert.Equal(t, "none", cfg.Search.Sort)
	assert.Equal(t, "csw", cfg.Search.OutputSchema)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.validate())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"relative endpoint", "catalog:\n  endpoint: /csw\n", "catalog.endpoint"},
		{"password without user", "catalog:\n  password: x\n", "catalog.username"},
		{"negative retries", "catalog:\n  retry:\n    maxRetries: -1\n", "maxRetries"},
		{"bad sort", "search:\n  sort: date\n", "search.sort"},
		{"bad schema", "search:\n  outputSchema: dc\n", "search.outputSchema"},
		{"bad format", "log:\n  format: xml\n", "log.format"},
		{"bad level", "log:\n  level: loud\n", "log.level"},
		{"not yaml", "catalog: [", "parsing config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSearchOptions(t *testing.T) {
	cfg, err := Parse([]byte("search:\n  maxRecords: 50\n  sort: title\n  outputSchema: iso\n"))
	require.NoError(t, err)

	req := csw.NewSearchRequest(nil, cfg.SearchOptions()...)
	assert.Equal(t, 50, req.MaxRecords)
	assert.Equal(t, csw.SortTitleAscending, req.Sort)
	assert.Equal(t, csw.OutputSchemaISO, req.OutputSchema)
}

func TestClientConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
catalog:
  endpoint: https://example.org/csw
  username: editor
  password: secret
  rateLimit:
    requestsPerSecond: -1
`))
	require.NoError(t, err)

	cc, err := cfg.ClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/csw", cc.Endpoint)
	assert.Equal(t, "editor", cc.HTTPSConfig.Username)
	assert.Equal(t, "secret", cc.HTTPSConfig.Password)
	assert.Equal(t, 30*time.Second, cc.HTTPSConfig.Timeout)
	assert.Zero(t, cc.RequestsPerSecond)
	assert.Equal(t, 2.0, cc.BackoffMultiple)

	cfg.Catalog.CAFile = filepath.Join(t.TempDir(), "missing.pem")
	_, err = cfg.ClientConfig(nil)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "json"
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown", "record", "abc-123")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"record":"abc-123"`)
}
