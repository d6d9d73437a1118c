package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/pkg/enum"
)

func newAdsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ads",
		Short: "Manage your ads (advertiser)",
	}
	cmd.AddCommand(
		newAdsListCmd(),
		newAdsCreateCmd(),
		newAdsGetCmd(),
		newAdsUpdateCmd(),
		newAdsDeleteCmd(),
		newAdsStatusCmd(),
		newAdsStatsCmd(),
		newAdsSummaryCmd(),
	)
	return cmd
}

func adMetaFlags(cmd *cobra.Command, meta *domain.AdMeta) {
	cmd.Flags().StringVar(&meta.Title, "title", "", "Ad title")
	cmd.Flags().IntVar(&meta.AdType, "type", 0, "Ad type: 0=image, 1=video")
	cmd.Flags().StringVar(&meta.MediaURL, "media-url", "", "Creative media URL")
	cmd.Flags().StringVar(&meta.LandingPage, "landing-page", "", "Landing page URL")
	cmd.Flags().StringVar(&meta.CategoryID, "category", "", "Category ID")
	cmd.Flags().IntVar(&meta.AdLayout, "layout", 0, "Layout: 0=banner, 1=sidebar, 2=card")
	cmd.Flags().Float64Var(&meta.WeeklyBudget, "budget", 0, "Weekly budget")
}

func printAdsTable(cmd *cobra.Command, ads []domain.Ad) {
	fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-24s  %-8s  %-10s  %-8s\n", "ID", "TITLE", "TYPE", "REVIEW", "ACTIVE")
	for _, ad := range ads {
		active := "no"
		if ad.IsActive == 1 {
			active = "yes"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-24s  %-8s  %-10s  %-8s\n",
			ad.AdID, ad.Title,
			enum.Label(domain.AdType, ad.AdType),
			enum.Label(domain.ReviewStatus, ad.ReviewStatus),
			active)
	}
}

func newAdsListCmd() *cobra.Command {
	var opts api.ListOwnAdsOptions
	var active string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your ads",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			if active != "" {
				v := active == "true"
				opts.IsActive = &v
			}

			page, err := api.NewAdvertiserAPI(client).ListAds(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list ads: %w", err)
			}
			if len(page.Records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No ads found.")
				return nil
			}
			printAdsTable(cmd, page.Records)
			fmt.Fprintf(cmd.OutOrStdout(), "\nPage %d of %d (%d total)\n", page.Current, page.Pages, page.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Page, "page", 0, "Page number")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "Page size")
	cmd.Flags().StringVar(&active, "active", "", "Filter by serving state (true/false)")
	cmd.Flags().StringVar(&opts.ReviewStatus, "review-status", "", "Filter by review status (pending, approved, rejected)")
	return cmd
}

func newAdsCreateCmd() *cobra.Command {
	var meta domain.AdMeta

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an ad (starts pending review)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			ad, err := api.NewAdvertiserAPI(client).CreateAd(cmd.Context(), meta)
			if err != nil {
				return fmt.Errorf("create ad: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created ad %s (%s)\n", ad.AdID, enum.Label(domain.ReviewStatus, ad.ReviewStatus))
			return nil
		},
	}

	adMetaFlags(cmd, &meta)
	return cmd
}

func newAdsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <ad-id>",
		Short: "Show one ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			ad, err := api.NewAdvertiserAPI(client).GetAd(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("get ad: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:           %s\n", ad.AdID)
			fmt.Fprintf(out, "Title:        %s\n", ad.Title)
			fmt.Fprintf(out, "Type:         %s\n", enum.Label(domain.AdType, ad.AdType))
			fmt.Fprintf(out, "Layout:       %s\n", enum.Label(domain.AdLayout, ad.AdLayout))
			fmt.Fprintf(out, "Media:        %s\n", ad.MediaURL)
			fmt.Fprintf(out, "Landing page: %s\n", ad.LandingPage)
			fmt.Fprintf(out, "Category:     %s\n", ad.CategoryID)
			fmt.Fprintf(out, "Budget:       %.2f/week\n", ad.WeeklyBudget)
			fmt.Fprintf(out, "Review:       %s\n", enum.Label(domain.ReviewStatus, ad.ReviewStatus))
			fmt.Fprintf(out, "Active:       %v\n", ad.IsActive == 1)
			return nil
		},
	}
}

func newAdsUpdateCmd() *cobra.Command {
	var meta domain.AdMeta

	cmd := &cobra.Command{
		Use:   "update <ad-id>",
		Short: "Update an ad (resets review to pending)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			ad, err := api.NewAdvertiserAPI(client).UpdateAd(cmd.Context(), args[0], meta)
			if err != nil {
				return fmt.Errorf("update ad: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated ad %s (%s)\n", ad.AdID, enum.Label(domain.ReviewStatus, ad.ReviewStatus))
			return nil
		},
	}

	adMetaFlags(cmd, &meta)
	return cmd
}

func newAdsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <ad-id>",
		Short: "Delete an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			if _, err := api.NewAdvertiserAPI(client).DeleteAd(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("delete ad: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newAdsStatusCmd() *cobra.Command {
	var activate bool

	cmd := &cobra.Command{
		Use:   "status <ad-id>",
		Short: "Activate or deactivate an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			ad, err := api.NewAdvertiserAPI(client).ToggleAdStatus(cmd.Context(), args[0], activate)
			if err != nil {
				return fmt.Errorf("toggle ad status: %w", err)
			}
			state := "deactivated"
			if ad.IsActive == 1 {
				state = "activated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ad %s %s\n", ad.AdID, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&activate, "active", false, "Desired serving state")
	return cmd
}

func newAdsStatsCmd() *cobra.Command {
	var start, end string

	cmd := &cobra.Command{
		Use:   "stats <ad-id>",
		Short: "Show delivery statistics for an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			stats, err := api.NewAdvertiserAPI(client).AdStats(cmd.Context(), args[0], start, end)
			if err != nil {
				return fmt.Errorf("ad stats: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Impressions: %d\nClicks: %d\nCTR: %.4f\n\n", stats.TotalImpressions, stats.TotalClicks, stats.CTR)
			fmt.Fprintf(out, "%-12s  %12s  %8s\n", "DATE", "IMPRESSIONS", "CLICKS")
			for _, day := range stats.Daily {
				fmt.Fprintf(out, "%-12s  %12d  %8d\n", day.Date, day.Impressions, day.Clicks)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, inclusive)")
	return cmd
}

func newAdsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show delivery totals across all your ads",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			sum, err := api.NewAdvertiserAPI(client).Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("summary: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Impressions: %d\n", sum.TotalImpressions)
			fmt.Fprintf(out, "Clicks:      %d\n", sum.TotalClicks)
			fmt.Fprintf(out, "CTR:         %.4f\n", sum.CTR)
			fmt.Fprintf(out, "Spend:       %.2f\n", sum.TotalSpend)
			return nil
		},
	}
}
