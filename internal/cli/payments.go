package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
)

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage payment methods (advertiser)",
	}
	cmd.AddCommand(newPaymentsListCmd(), newPaymentsAddCmd())
	return cmd
}

func newPaymentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your payment methods",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			methods, err := api.NewAdvertiserAPI(client).PaymentMethods(cmd.Context())
			if err != nil {
				return fmt.Errorf("payment methods: %w", err)
			}
			if len(methods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No payment methods on file.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %s\n", "ID", "BANK", "CARD")
			for _, m := range methods {
				fmt.Fprintf(cmd.OutOrStdout(), "%-36s  %-20s  %s\n", m.PaymentID, m.BankName, maskCard(m.CardNumber))
			}
			return nil
		},
	}
}

func newPaymentsAddCmd() *cobra.Command {
	var req api.AddPaymentMethodRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a payment method",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Advertiser"); err != nil {
				return err
			}
			m, err := api.NewAdvertiserAPI(client).AddPaymentMethod(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("add payment method: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", m.BankName, maskCard(m.CardNumber))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.BankName, "bank", "", "Issuing bank")
	cmd.Flags().StringVar(&req.CardNumber, "card", "", "Card number")
	return cmd
}

// maskCard keeps only the last four digits visible.
func maskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	return "****" + card[len(card)-4:]
}
