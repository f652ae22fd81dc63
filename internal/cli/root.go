// Package cli implements the cswctl command line interface
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-csw/internal/config"
	"github.com/sirosfoundation/go-csw/pkg/catalog"
)

// options holds the persistent flag values shared by all commands
type options struct {
	configPath string
	endpoint   string
	verbose    bool
}

// NewRootCmd builds the cswctl command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "cswctl",
		Short: "Search and edit ISO 19139 metadata in CSW catalogues",
		Long: `cswctl talks to OGC CSW 2.0.2 catalogues.

It searches records, fetches them as ISO 19139 documents, creates new
dataset and service records from templates, and inserts, updates or deletes
records with CSW transactions.

Configuration is read from the file given with --config. Values may refer to
environment variables (${CSW_PASSWORD}), which are also loaded from a .env
file in the working directory.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the YAML configuration file")
	root.PersistentFlags().StringVarP(&opts.endpoint, "endpoint", "e", "", "CSW endpoint URL (overrides catalog.endpoint)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newSearchCmd(opts),
		newGetCmd(opts),
		newInsertCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newNewCmd(opts),
		newCapabilitiesCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig reads the configuration file, or the defaults when none is given,
// and applies flag overrides.
func (o *options) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.endpoint != "" {
		cfg.Catalog.Endpoint = o.endpoint
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// newClient builds a catalogue client logging to stderr
func (o *options) newClient(stderr io.Writer) (*catalog.Client, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Catalog.Endpoint == "" {
		return nil, nil, fmt.Errorf("no catalogue endpoint: use --endpoint or catalog.endpoint")
	}

	logger := cfg.NewLogger(stderr)
	clientCfg, err := cfg.ClientConfig(logger)
	if err != nil {
		return nil, nil, err
	}
	client, err := catalog.NewClient(clientCfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("catalogue client ready", slog.String("endpoint", cfg.Catalog.Endpoint))
	return client, cfg, nil
}
