package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fekuna/omnipos-inventory-service/config"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/ledger"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-inventory-service/pkg/clock"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// env carries what every subcommand needs. Connections are opened lazily so
// commands that fail flag validation never touch the database.
type env struct {
	cfg    *config.Config
	logger logger.ZapLogger
	db     *sqlx.DB
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "inventoryctl",
		Short:        "Operate the inventory ledger",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			e.cfg = config.LoadEnv()
			e.logger = logger.NewZapLogger(&logger.ZapLoggerConfig{
				Encoding:          "console",
				Level:             e.cfg.Logger.Level,
				DisableCaller:     true,
				DisableStacktrace: true,
			})
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.db != nil {
				e.db.Close()
			}
		},
	}

	root.AddCommand(
		newMigrateCmd(e),
		newStockCmd(e),
		newReconcileCmd(e),
		newMovementsCmd(e),
	)
	return root
}

func (e *env) open() (*sqlx.DB, error) {
	if e.db != nil {
		return e.db, nil
	}
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            e.cfg.Postgres.Host,
		Port:            e.cfg.Postgres.Port,
		User:            e.cfg.Postgres.User,
		Password:        e.cfg.Postgres.Password,
		DBName:          e.cfg.Postgres.DBName,
		SSLMode:         e.cfg.Postgres.SSLMode,
		MaxOpenConns:    2,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Duration(e.cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(e.cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		return nil, err
	}
	e.db = db
	return db, nil
}

// inventory builds the stock usecase without cache or event sinks; the
// CLI is an operator tool and its writes are audited through movements.
func (e *env) inventory() (inventory.UseCase, error) {
	db, err := e.open()
	if err != nil {
		return nil, err
	}
	clk := clock.New()
	repo := repository.NewPGRepository(db)
	return usecase.NewInventoryUseCase(repo, ledger.NewLedger(repo, clk), postgres.NewTxManager(db), nil, nil, clk, e.logger), nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
