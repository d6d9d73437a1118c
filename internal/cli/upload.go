package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/pkg/enum"
)

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a creative media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := api.NewFileAPI(client).Upload(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return fmt.Errorf("upload: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Uploaded as %s creative\n", enum.Label(domain.AdType, result.AdType))
			fmt.Fprintf(out, "Media URL: %s\n", result.MediaURL)
			return nil
		},
	}
}
