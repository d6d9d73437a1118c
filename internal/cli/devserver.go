package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver"
)

func newDevserverCmd() *cobra.Command {
	var port string
	var seed bool

	cmd := &cobra.Command{
		Use:   "devserver",
		Short: "Run the bundled in-memory marketplace server",
		Long:  "Runs an in-memory rendition of the marketplace backend for local development. All state is lost on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = cfg.Server.Port
			}

			srv := devserver.New(cmd.Context(), devserver.Options{
				JWTSecret: cfg.Server.JWTSecret,
				TokenTTL:  24 * time.Hour,
				Log:       log,
			})

			if seed {
				if _, err := srv.Auth.Register("admin", "admin123", domain.RoleAdmin, "admin@example.com", "5550000000"); err != nil {
					return fmt.Errorf("seed admin account: %w", err)
				}
				srv.Store.CreateCategory("Technology")
				srv.Store.CreateCategory("Fashion")
				log.Info().Msg("seeded admin/admin123 and two categories")
			}

			log.Info().Str("port", port).Msg("devserver listening")
			return srv.Echo.Start(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Listen port (default from ADSPACE_DEV_PORT)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seed an admin account and example categories")
	return cmd
}
