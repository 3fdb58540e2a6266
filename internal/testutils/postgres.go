package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/linskybing/forms-go/internal/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration starts postgres:15 (or connects to TEST_DB_DSN),
// applies the embedded migrations and returns a gorm handle.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	ctx := context.Background()

	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		sqlDB := mustConnect(dsn)
		return mustMigrate(ctx, sqlDB), func() { _ = sqlDB.Close() }
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "forms",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/forms?sslmode=disable", host, port.Port())
	sqlDB := mustConnect(dsn)
	db := mustMigrate(ctx, sqlDB)

	cleanup := func() {
		_ = sqlDB.Close()
		_ = pg.Terminate(ctx)
	}
	return db, cleanup
}

// retry until the server accepts connections
func mustConnect(dsn string) *sql.DB {
	var (
		db  *sql.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			if err = db.Ping(); err == nil {
				return db
			}
		}
		time.Sleep(time.Second)
	}
	log.Fatal(err)
	return nil
}

func mustMigrate(ctx context.Context, sqlDB *sql.DB) *gorm.DB {
	if err := migrations.RunSQL(ctx, sqlDB); err != nil {
		log.Fatal(err)
	}
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal(err)
	}
	return db
}

// Truncate empties the given tables between tests.
func Truncate(db *gorm.DB, tables ...string) error {
	for _, t := range tables {
		if err := db.Exec("TRUNCATE TABLE " + t + " RESTART IDENTITY CASCADE").Error; err != nil {
			return err
		}
	}
	return nil
}
