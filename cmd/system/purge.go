package system

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/service/notification"
	"github.com/rchdlps/gerenciador-projetos-sub002/pkg/database"
)

// NewPurgeCommand deletes notifications older than the retention window.
// The same purge runs daily inside the server; this command exists for
// manual runs and one-off cleanups with a custom window.
func NewPurgeCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge-notifications",
		Short: "Delete notifications older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			if days <= 0 {
				days = cfg.Notifications.RetentionDays
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			n, err := notification.New(client).PurgeOlderThan(ctx, days)
			if err != nil {
				return fmt.Errorf("failed to purge notifications: %w", err)
			}

			fmt.Printf("Purged %d notifications older than %d days.\n", n, days)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "retention window in days (defaults to config)")

	return cmd
}
