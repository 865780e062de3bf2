package cli

import (
	"context"
	"fmt"

	"github.com/sangkips/laundrypro-api/internal/application/store"
	"github.com/spf13/cobra"
)

// NewPingCommand reports which backend is active and whether both stores answer.
func NewPingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the remote backend and the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, st *store.Store) error {
				status := st.Ping(ctx)
				if opts.Format == "json" {
					return outputJSON(cmd, status)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "backend: %s\n", status.Backend)
				if status.RemoteOK || status.RemoteError != "" {
					fmt.Fprintf(out, "remote:  %s\n", state(status.RemoteOK, status.RemoteError))
				}
				fmt.Fprintf(out, "local:   %s\n", state(status.LocalOK, status.LocalError))
				return nil
			})
		},
	}
}

func state(ok bool, errText string) string {
	if ok {
		return "ok"
	}
	return "unavailable (" + errText + ")"
}
