package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show backend and tracker versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			appAPI := api.NewAppAPI(client)
			out := cmd.OutOrStdout()

			backend, err := appAPI.BackendVersion(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "Backend: unreachable (%v)\n", err)
			} else {
				fmt.Fprintf(out, "Backend: %s\n", backend)
			}

			tracker, err := appAPI.TrackerVersion(cmd.Context())
			if err != nil {
				fmt.Fprintf(out, "Tracker: unreachable (%v)\n", err)
			} else {
				fmt.Fprintf(out, "Tracker: %s\n", tracker)
			}
			return nil
		},
	}
}
