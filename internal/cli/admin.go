package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Moderation and account administration",
	}
	cmd.AddCommand(
		newAdminQueueCmd(),
		newAdminReviewCmd(),
		newAdminCategoryCmd(),
		newAdminUsersCmd(),
		newAdminCreateCmd(),
	)
	return cmd
}

func newAdminQueueCmd() *cobra.Command {
	var status int
	var all bool

	cmd := &cobra.Command{
		Use:   "queue",
		Short: "List ads awaiting moderation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Admin"); err != nil {
				return err
			}
			opts := api.ListAdsOptions{}
			if !all {
				opts.Status = &status
			}
			ads, err := api.NewAdminAPI(client).ListAds(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("list ads: %w", err)
			}
			if len(ads) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Queue is empty.")
				return nil
			}
			printAdsTable(cmd, ads)
			return nil
		},
	}

	cmd.Flags().IntVar(&status, "status", domain.ReviewPending, "Review status filter (0=pending, 1=approved, 2=rejected)")
	cmd.Flags().BoolVar(&all, "all", false, "List every ad regardless of status")
	return cmd
}

func newAdminReviewCmd() *cobra.Command {
	var approve, reject bool
	var reason string

	cmd := &cobra.Command{
		Use:   "review <ad-id>",
		Short: "Approve or reject an ad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Admin"); err != nil {
				return err
			}
			if approve == reject {
				return fmt.Errorf("pass exactly one of --approve or --reject")
			}
			req := api.ReviewAdRequest{Status: domain.ReviewApproved}
			if reject {
				req.Status = domain.ReviewRejected
				req.Reason = reason
			}
			ad, err := api.NewAdminAPI(client).ReviewAd(cmd.Context(), args[0], req)
			if err != nil {
				return fmt.Errorf("review ad: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ad %s reviewed (status %d)\n", ad.AdID, ad.ReviewStatus)
			return nil
		},
	}

	cmd.Flags().BoolVar(&approve, "approve", false, "Approve the ad")
	cmd.Flags().BoolVar(&reject, "reject", false, "Reject the ad")
	cmd.Flags().StringVar(&reason, "reason", "", "Rejection reason (required with --reject)")
	return cmd
}

func newAdminCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-category <name>",
		Short: "Create an ad category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Admin"); err != nil {
				return err
			}
			cat, err := api.NewAdminAPI(client).CreateCategory(cmd.Context(), api.CreateCategoryRequest{CategoryName: args[0]})
			if err != nil {
				return fmt.Errorf("create category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created category %s (%s)\n", cat.CategoryName, cat.CategoryID)
			return nil
		},
	}
}

func newAdminUsersCmd() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Admin"); err != nil {
				return err
			}
			users, err := api.NewAdminAPI(client).ListUsers(cmd.Context(), domain.Role(role))
			if err != nil {
				return fmt.Errorf("list users: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-12s  %-28s  %s\n", "USERNAME", "ROLE", "EMAIL", "CREATED")
			for _, u := range users {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s  %-12s  %-28s  %s\n", u.Username, u.UserRole, u.Email, u.CreateTime)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Filter by role (admin, advertiser, publisher)")
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var req api.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Provision another admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Admin"); err != nil {
				return err
			}
			user, err := api.NewAdminAPI(client).CreateAdmin(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Admin username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "Admin password")
	cmd.Flags().StringVar(&req.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Contact phone")
	return cmd
}
