package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
)

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Login"); err != nil {
				return err
			}

			if username == "" {
				username = prompt("Username: ")
			}
			if password == "" {
				password = prompt("Password: ")
			}

			err := sess.Login(cmd.Context(), api.LoginRequest{
				Username:     username,
				UserPassword: password,
			})
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted if omitted)")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var req api.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an advertiser or publisher account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := guard("Register"); err != nil {
				return err
			}

			if req.Username == "" {
				req.Username = prompt("Username: ")
			}
			if req.UserPassword == "" {
				req.UserPassword = prompt("Password: ")
				req.CheckPassword = prompt("Confirm password: ")
			}
			if req.CheckPassword == "" {
				req.CheckPassword = req.UserPassword
			}

			if err := api.NewAuthAPI(client).Register(cmd.Context(), req); err != nil {
				return fmt.Errorf("register: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account %s created. Log in with: adspace login -u %s\n", req.Username, req.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&req.UserPassword, "password", "p", "", "Account password (prompted if omitted)")
	cmd.Flags().StringVar(&req.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&req.UserRole, "role", "", "Account role: advertiser (default) or publisher")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, args []string) error {
			username, ok := sess.Username()
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			role, _ := sess.Role()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", username, role)
			return nil
		},
	}
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
