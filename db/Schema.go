package db

import (
	"context"

	"github.com/euscan/euscanwww/entity"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	log "github.com/sirupsen/logrus"
)

// Tables are created in dependency order; the scanner-owned tables are only
// created here for fresh installations.
var schemaModels = []interface{}{
	(*entity.PackageEntity)(nil),
	(*entity.HerdEntity)(nil),
	(*entity.MaintainerEntity)(nil),
	(*entity.PackageHerdEntity)(nil),
	(*entity.PackageMaintainerEntity)(nil),
	(*entity.VersionEntity)(nil),
	(*entity.VersionLogEntity)(nil),
	(*entity.UserEntity)(nil),
	(*entity.FavoritePackageEntity)(nil),
	(*entity.FavoriteCategoryEntity)(nil),
	(*entity.FavoriteHerdEntity)(nil),
	(*entity.FavoriteMaintainerEntity)(nil),
	(*entity.RefreshQueryEntity)(nil),
	(*entity.RefreshQueryUserEntity)(nil),
	(*entity.StatsLogEntity)(nil),
}

var schemaIndexes = []string{
	`CREATE INDEX IF NOT EXISTS version_package_id_idx ON version (package_id)`,
	`CREATE INDEX IF NOT EXISTS version_overlay_idx ON version (overlay)`,
	`CREATE INDEX IF NOT EXISTS version_log_package_id_datetime_idx ON version_log (package_id, datetime DESC)`,
	`CREATE INDEX IF NOT EXISTS version_log_datetime_idx ON version_log (datetime DESC)`,
	`CREATE INDEX IF NOT EXISTS stats_log_scope_idx ON stats_log (scope, scope_key, datetime DESC)`,
}

func CreateSchema(ctx context.Context, cp ConnectionProvider) error {
	return cp.GetConnection().RunInTransaction(ctx, func(tx *pg.Tx) error {
		for _, model := range schemaModels {
			err := tx.Model(model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
			if err != nil {
				return err
			}
		}
		for _, query := range schemaIndexes {
			if _, err := tx.ExecContext(ctx, query); err != nil {
				return err
			}
		}
		log.Info("Database schema is up to date")
		return nil
	})
}
