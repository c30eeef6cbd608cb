package integrationtestutil

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/l3montree-dev/qualitygate/database"
	"github.com/l3montree-dev/qualitygate/shared"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// InitDatabaseContainer starts a throwaway postgres, runs the embedded migrations
// and returns the gorm handle together with a terminate function.
func InitDatabaseContainer() (shared.DB, func()) {
	ctx := context.Background()

	dbName := "qualitygate"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)

	terminate := func() {
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	db, pool, err := database.Connect(ctx, database.PoolConfig{
		User:            dbUser,
		Password:        dbPassword,
		Host:            host,
		Port:            port.Port(),
		DBName:          dbName,
		MaxOpenConns:    10,
		MinConns:        1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Minute,
	})
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		terminate()
		panic(err)
	}

	if err := database.RunMigrationsWithDB(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		pool.Close()
		terminate()
		panic(err)
	}

	return db, func() {
		pool.Close()
		terminate()
	}
}
