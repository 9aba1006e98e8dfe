package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/ferdiebergado/boring/internal/client"
	"github.com/ferdiebergado/boring/internal/pkg/env"
)

const (
	envServer     = "ITEMCTL_SERVER"
	defaultServer = "http://localhost:8080"
)

type rootOptions struct {
	server  string
	timeout time.Duration

	in  io.Reader
	out io.Writer
}

func (o *rootOptions) client() *client.Client {
	return client.New(o.server, &http.Client{Timeout: o.timeout})
}

func (o *rootOptions) printJSON(v any) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := &rootOptions{in: in, out: out}

	cmd := &cobra.Command{
		Use:   "itemctl",
		Short: "Manage items on a running server",
		Long: `itemctl talks to the items API of a running server.

The server address comes from --server, then $ITEMCTL_SERVER, then
http://localhost:8080.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetIn(in)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.server, "server", env.Env(envServer, defaultServer), "base URL of the server")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout of a single request")

	cmd.AddCommand(
		newListCmd(opts),
		newGetCmd(opts),
		newCreateCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newImportCmd(opts),
		newExportCmd(opts),
		newBrowseCmd(opts),
	)

	return cmd
}
