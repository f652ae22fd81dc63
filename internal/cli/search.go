package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-csw/pkg/catalog"
	"github.com/sirosfoundation/go-csw/pkg/csw"
	"github.com/sirosfoundation/go-csw/pkg/simple"
)

type searchFlags struct {
	organisation string
	contact      string
	max          int
	start        int
	sort         string
	schema       string
	all          bool
}

func newSearchCmd(opts *options) *cobra.Command {
	f := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search [text...]",
		Short: "Search catalogue records",
		Long: `Search catalogue records by free text, organisation or contact point.

Every word of the free text must occur in the record. --org and --contact
narrow the search to records with a matching organisation or contact name.`,
		Example: `  cswctl search vann elv
  cswctl search --org Kartverket --max 50 --sort modified
  cswctl search høyde --schema iso
  cswctl search --org Kartverket --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cfg, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			searchOpts := cfg.SearchOptions()
			if cmd.Flags().Changed("max") {
				searchOpts = append(searchOpts, csw.WithMaxRecords(f.max))
			}
			if cmd.Flags().Changed("start") {
				searchOpts = append(searchOpts, csw.WithStartPosition(f.start))
			}
			if f.sort != "" {
				sort, err := csw.ParseSortOrder(f.sort)
				if err != nil {
					return err
				}
				searchOpts = append(searchOpts, csw.WithSort(sort))
			}
			if f.schema != "" {
				cfg.Search.OutputSchema = f.schema
				schema, err := cfg.OutputSchema()
				if err != nil {
					return err
				}
				searchOpts = append(searchOpts, csw.WithOutputSchema(schema))
			}

			req, err := buildSearch(strings.Join(args, " "), f, searchOpts)
			if err != nil {
				return err
			}
			if f.all {
				return harvest(cmd, client, req)
			}
			results, err := client.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVar(&f.organisation, "org", "", "Organisation name")
	cmd.Flags().StringVar(&f.contact, "contact", "", "Contact point name")
	cmd.Flags().IntVar(&f.max, "max", csw.DefaultMaxRecords, "Maximum number of records")
	cmd.Flags().IntVar(&f.start, "start", csw.DefaultStartPosition, "Position of the first record (1-based)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "Sort order: none, title or modified")
	cmd.Flags().StringVar(&f.schema, "schema", "", "Output schema: csw or iso")
	cmd.Flags().BoolVar(&f.all, "all", false, "Follow result pages until every match is listed")
	cmd.MarkFlagsMutuallyExclusive("org", "contact")
	return cmd
}

// buildSearch picks the search shape from the given text and flags
func buildSearch(text string, f *searchFlags, opts []csw.SearchOption) (*csw.SearchRequest, error) {
	text = strings.TrimSpace(text)
	switch {
	case f.organisation != "" && f.contact != "":
		return nil, fmt.Errorf("--org and --contact cannot be combined")
	case f.organisation != "" && text != "":
		return csw.SearchFreeTextAndOrganisation(text, f.organisation, opts...), nil
	case f.contact != "" && text != "":
		return csw.SearchFreeTextAndContactPoint(text, f.contact, opts...), nil
	case f.organisation != "":
		return csw.SearchOrganisation(f.organisation, opts...), nil
	case f.contact != "":
		return csw.SearchContactPoint(f.contact, opts...), nil
	default:
		return csw.SearchFreeText(text, opts...), nil
	}
}

func harvest(cmd *cobra.Command, client *catalog.Client, req *csw.SearchRequest) error {
	w := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tTYPE\tTITLE")
	n, err := client.Harvest(cmd.Context(), req, func(page *csw.SearchResults) error {
		return writeRows(tw, page)
	})
	if err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d records\n", n)
	return nil
}

func printResults(w io.Writer, results *csw.SearchResults) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tTYPE\tTITLE")
	if err := writeRows(tw, results); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	shown := results.NumberOfRecordsReturned
	fmt.Fprintf(w, "\n%d of %d records", shown, results.NumberOfRecordsMatched)
	if results.NextRecord > 0 {
		fmt.Fprintf(w, ", next page starts at %d", results.NextRecord)
	}
	fmt.Fprintln(w)
	return nil
}

func writeRows(tw io.Writer, results *csw.SearchResults) error {
	for _, r := range results.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Identifier, r.Type, r.Title)
	}
	for _, doc := range results.Documents {
		m, err := simple.New(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.UUID(), m.HierarchyLevel(), m.Title())
	}
	return nil
}
