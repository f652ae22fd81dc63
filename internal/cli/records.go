package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sirosfoundation/go-csw/pkg/csw"
	"github.com/sirosfoundation/go-csw/pkg/metadata"
)

func newGetCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <identifier>",
		Short: "Fetch a record as an ISO 19139 document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			doc, err := client.GetRecordByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			data, err := metadata.Marshal(doc)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to a file instead of stdout")
	return cmd
}

func newInsertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file.xml>",
		Short: "Insert an ISO 19139 document into the catalogue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, opts, args[0], csw.NewInsert)
		},
	}
}

func newUpdateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "update <file.xml>",
		Short: "Replace a catalogue record with an ISO 19139 document",
		Long:  "Replace the catalogue record whose identifier matches the document's fileIdentifier.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransaction(cmd, opts, args[0], csw.NewUpdate)
		},
	}
}

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identifier>",
		Short: "Delete a catalogue record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			result, err := client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printTransaction(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newCapabilitiesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Show the catalogue's service description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.newClient(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			caps, err := client.Capabilities(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Title:      %s\n", caps.Title)
			fmt.Fprintf(w, "Provider:   %s\n", caps.Provider)
			fmt.Fprintf(w, "Version:    %s\n", caps.Version)
			fmt.Fprintf(w, "Operations: %v\n", caps.Operations)
			fmt.Fprintf(w, "Editable:   %t\n", caps.Supports("Transaction"))
			return nil
		},
	}
}

func runTransaction(cmd *cobra.Command, opts *options, path string, build func(*metadata.Document) (*csw.Transaction, error)) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}
	doc, err := metadata.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	tx, err := build(doc)
	if err != nil {
		return err
	}

	client, _, err := opts.newClient(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	result, err := client.Transact(cmd.Context(), tx)
	if err != nil {
		return err
	}
	printTransaction(cmd.OutOrStdout(), result)
	return nil
}

func printTransaction(w io.Writer, r *csw.TransactionResult) {
	fmt.Fprintf(w, "inserted: %s, updated: %s, deleted: %s\n", r.TotalInserted, r.TotalUpdated, r.TotalDeleted)
	for _, id := range r.Identifiers {
		fmt.Fprintln(w, id)
	}
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
