package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
)

func newProfileCmd() *cobra.Command {
	var company string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your advertiser profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			advAPI := api.NewAdvertiserAPI(client)

			if company != "" {
				if err := advAPI.SetCompanyName(cmd.Context(), company); err != nil {
					return fmt.Errorf("set company name: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Company name set to %s\n", company)
				return nil
			}

			p, err := advAPI.Profile(cmd.Context())
			if err != nil {
				return fmt.Errorf("profile: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Advertiser ID: %s\n", p.AdvertiserID)
			fmt.Fprintf(out, "Company:       %s\n", p.CompanyName)
			fmt.Fprintf(out, "Email:         %s\n", p.Email)
			fmt.Fprintf(out, "Phone:         %s\n", p.Phone)
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "set-company", "", "Update the company name instead of showing the profile")
	return cmd
}
