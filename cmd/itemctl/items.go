package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ferdiebergado/boring/internal/item"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().ListItems(cmd.Context())
			if err != nil {
				return err
			}

			if len(items) == 0 {
				fmt.Fprintln(opts.out, "No items.")
				return nil
			}

			tw := tabwriter.NewWriter(opts.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tUPDATED")
			for _, it := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", it.ID, it.Name, it.UpdatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := opts.client().GetItem(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return opts.printJSON(it)
		},
	}
}

func newCreateCmd(opts *rootOptions) *cobra.Command {
	var params item.CreateParams

	cmd := &cobra.Command{
		Use:   "create --name <name> [--description <text>]",
		Short: "Create an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			it, err := opts.client().CreateItem(cmd.Context(), params)
			if err != nil {
				return err
			}
			return opts.printJSON(it)
		},
	}

	cmd.Flags().StringVar(&params.Name, "name", "", "name of the item")
	cmd.Flags().StringVar(&params.Description, "description", "", "optional description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUpdateCmd(opts *rootOptions) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <id> [--name <name>] [--description <text>]",
		Short: "Change the name or description of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params item.UpdateParams
			if cmd.Flags().Changed("name") {
				params.Name = &name
			}
			if cmd.Flags().Changed("description") {
				params.Description = &description
			}
			if params.Name == nil && params.Description == nil {
				return fmt.Errorf("nothing to update: pass --name or --description")
			}

			it, err := opts.client().UpdateItem(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return opts.printJSON(it)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")

	return cmd
}

func newDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().DeleteItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(opts.out, "Deleted %s.\n", args[0])
			return nil
		},
	}
}
