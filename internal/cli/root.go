// Package cli implements the adspace terminal client.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/config"
	"github.com/adspace/adspace-cli/internal/session"
	"github.com/adspace/adspace-cli/pkg/logger"
)

var (
	flagServer   string
	flagTracker  string
	flagLogLevel string
	flagPretty   bool
	flagStateDir string
	flagBackend  string

	cfg    *config.Config
	log    zerolog.Logger
	client *api.Client
	sess   *session.Store
)

// NewRootCmd creates the root cobra command for the adspace CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "adspace",
		Short: "adspace — ad marketplace client",
		Long:  "adspace manages ads, sites, and accounts on the ad marketplace from the terminal.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if flagServer != "" {
				cfg.APIOrigin = flagServer
			}
			if flagTracker != "" {
				cfg.TrackerOrigin = flagTracker
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if flagStateDir != "" {
				cfg.Session.StateDir = flagStateDir
			}
			if flagBackend != "" {
				cfg.Session.Backend = flagBackend
			}

			logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: flagPretty})
			log = logger.Get()

			storage, err := openStorage(cmd, cfg.Session)
			if err != nil {
				return err
			}

			client = api.NewClient(cfg.APIOrigin, cfg.TrackerOrigin, log)
			sess = session.NewStore(storage, &terminalNavigator{out: cmd.OutOrStdout()}, log)
			sess.Bind(api.NewAuthAPI(client))
			client.BindSession(sess)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", "", "API server URL (or ADSPACE_API_ORIGIN env)")
	root.PersistentFlags().StringVar(&flagTracker, "tracker", "", "Tracker origin URL (or ADSPACE_TRACKER_ORIGIN env)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&flagPretty, "pretty-logs", false, "Human-readable log output")
	root.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "Directory for persisted session state")
	root.PersistentFlags().StringVar(&flagBackend, "session-backend", "", "Session backend (file, sqlite, redis)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newAdsCmd(),
		newAdminCmd(),
		newSitesCmd(),
		newCategoriesCmd(),
		newPaymentsCmd(),
		newProfileCmd(),
		newUploadCmd(),
		newVersionCmd(),
		newDevserverCmd(),
	)

	return root
}

// openStorage builds the configured session storage backend.
func openStorage(cmd *cobra.Command, sc config.SessionConfig) (session.Storage, error) {
	switch sc.Backend {
	case "", "file":
		return session.NewFileStorage(sc.StateDir)
	case "sqlite":
		// Reuse the file backend's directory resolution for the db path.
		fs, err := session.NewFileStorage(sc.StateDir)
		if err != nil {
			return nil, err
		}
		return session.NewSQLiteStorage(filepath.Join(fs.Dir(), "session.db"))
	case "redis":
		rdb, err := session.ConnectRedis(cmd.Context(), session.RedisConfig{
			Addr: sc.Redis.Addr,
			DB:   sc.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return session.NewRedisStorage(rdb), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", sc.Backend)
	}
}
