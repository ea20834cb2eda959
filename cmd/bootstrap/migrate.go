package bootstrap

import (
	"log/slog"

	"srs-scheduler/internal/infra/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations applies pending schema migrations before the server
// starts accepting requests.
func RunMigrations(pool *pgxpool.Pool, logger *slog.Logger) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("マイグレーション用DBハンドルのクローズに失敗しました", "error", err)
		}
	}()

	if err := migrations.Up(sqlDB); err != nil {
		return err
	}
	logger.Info("マイグレーションを適用しました")
	return nil
}
