package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/pkg/enum"
)

func newSitesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Manage your websites (publisher)",
	}
	cmd.AddCommand(
		newSitesListCmd(),
		newSitesAddCmd(),
		newSitesGetCmd(),
		newSitesVerifyCmd(),
		newSitesStatsCmd(),
	)
	return cmd
}

func newSitesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your websites",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Publisher"); err != nil {
				return err
			}
			sites, err := api.NewPublisherAPI(client).ListSites(cmd.Context())
			if err != nil {
				return fmt.Errorf("list sites: %w", err)
			}
			if len(sites) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No websites registered.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %-28s  %s\n", "ID", "NAME", "DOMAIN", "STATUS")
			for _, s := range sites {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %-28s  %s\n",
					s.WebsiteID, s.WebsiteName, s.Domain,
					enum.Label(domain.WebsiteVerification, s.IsVerified))
			}
			return nil
		},
	}
}

func newSitesAddCmd() *cobra.Command {
	var meta domain.WebsiteMeta

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a website",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Publisher"); err != nil {
				return err
			}
			site, err := api.NewPublisherAPI(client).CreateSite(cmd.Context(), meta)
			if err != nil {
				return fmt.Errorf("create site: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Registered %s (%s)\n", site.WebsiteName, site.WebsiteID)
			fmt.Fprintf(out, "Verification token: %s\n", site.VerificationToken)
			fmt.Fprintf(out, "Place the token on your site, then run: adspace sites verify %s\n", site.WebsiteID)
			return nil
		},
	}

	cmd.Flags().StringVar(&meta.WebsiteName, "name", "", "Display name")
	cmd.Flags().StringVar(&meta.Domain, "domain", "", "Fully qualified domain")
	return cmd
}

func newSitesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <website-id>",
		Short: "Show one website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Publisher"); err != nil {
				return err
			}
			site, err := api.NewPublisherAPI(client).GetSite(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get site: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:       %s\n", site.WebsiteID)
			fmt.Fprintf(out, "Name:     %s\n", site.WebsiteName)
			fmt.Fprintf(out, "Domain:   %s\n", site.Domain)
			fmt.Fprintf(out, "Status:   %s\n", enum.Label(domain.WebsiteVerification, site.IsVerified))
			if site.IsVerified == domain.SiteUnverified {
				fmt.Fprintf(out, "Token:    %s\n", site.VerificationToken)
			}
			return nil
		},
	}
}

func newSitesVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <website-id>",
		Short: "Verify ownership of a website",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Publisher"); err != nil {
				return err
			}
			verified, err := api.NewPublisherAPI(client).VerifySite(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("verify site: %w", err)
			}
			if verified {
				fmt.Fprintln(cmd.OutOrStdout(), "Verified.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Verification failed.")
			}
			return nil
		},
	}
}

func newSitesStatsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show network delivery and revenue estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Publisher"); err != nil {
				return err
			}
			stats, err := api.NewPublisherAPI(client).Statistics(cmd.Context(), start, end)
			if err != nil {
				return fmt.Errorf("statistics: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Impressions: %d\n", stats.TotalImpressions)
			fmt.Fprintf(out, "Clicks:      %d\n", stats.TotalClicks)
			fmt.Fprintf(out, "Revenue:     %.2f (estimated)\n", stats.EstimatedRevenue)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	return cmd
}
