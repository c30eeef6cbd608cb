package commands

import (
	"context"
	"fmt"

	"github.com/l3montree-dev/qualitygate/config"
	"github.com/l3montree-dev/qualitygate/database"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qualitygate-cli",
	Short: "Management cli",
	Long:  `The qualitygate cli runs operator tasks against the database of a qualitygate instance.`,
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func connect(ctx context.Context) (config.Config, shared.DB, func(), error) {
	cfg := config.Load()
	if missing := cfg.MissingStoreSettings(); len(missing) > 0 {
		return cfg, nil, nil, fmt.Errorf("database settings are missing: %v", missing)
	}
	db, pool, err := database.Connect(ctx, database.PoolConfigFromConfig(cfg))
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, db, pool.Close, nil
}
