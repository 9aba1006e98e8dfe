package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ferdiebergado/boring/internal/item"
)

const defaultConcurrency = 4

func newImportCmd(opts *rootOptions) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Create items from a JSON array",
		Long: `Create one item per element of a JSON array of {"name", "description"}
objects. Use - to read from stdin. Creates run concurrently; the first
failure cancels the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1, got %d", concurrency)
			}

			params, err := readImport(opts.in, args[0])
			if err != nil {
				return err
			}

			c := opts.client()
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(concurrency)

			for _, p := range params {
				g.Go(func() error {
					if _, err := c.CreateItem(ctx, p); err != nil {
						return fmt.Errorf("import %q: %w", p.Name, err)
					}
					return nil
				})
			}

			if err := g.Wait(); err != nil {
				return err
			}

			fmt.Fprintf(opts.out, "Imported %d items.\n", len(params))
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", defaultConcurrency, "number of items created at the same time")

	return cmd
}

func readImport(stdin io.Reader, name string) ([]item.CreateParams, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var params []item.CreateParams
	if err := json.NewDecoder(r).Decode(&params); err != nil {
		return nil, fmt.Errorf("decode import file %s: %w", name, err)
	}
	return params, nil
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write all items as a JSON array to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().ListItems(cmd.Context())
			if err != nil {
				return err
			}
			if items == nil {
				items = []item.Item{}
			}
			return opts.printJSON(items)
		},
	}
}
