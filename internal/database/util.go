package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	// Raw postgres driver used to prepare fresh container before gorm connects
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TeardownFunc terminates container started for tests
type TeardownFunc func(context.Context, ...testcontainers.TerminateOption) error

const (
	testDBName = "database"
	testDBPwd  = "password"
	testDBUser = "user"
)

// runTestContainer starts postgres container and returns its host and mapped port
func runTestContainer(ctx context.Context) (*postgres.PostgresContainer, string, string, error) {
	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, "", "", err
	}

	dbHost, err := dbContainer.Host(ctx)
	if err != nil {
		return dbContainer, "", "", err
	}

	dbPort, err := dbContainer.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer, "", "", err
	}

	return dbContainer, dbHost, dbPort.Port(), nil
}

// StartTestDB starts postgres container and points environment based
// configuration (GetMainDB) to it.
func StartTestDB() (TeardownFunc, error) {
	ctx := context.Background()

	dbContainer, dbHost, dbPort, err := runTestContainer(ctx)
	if err != nil {
		if dbContainer != nil {
			return dbContainer.Terminate, err
		}
		return nil, err
	}

	instanceMu.Lock()
	database = testDBName
	password = testDBPwd
	username = testDBUser
	host = dbHost
	port = dbPort
	useEnvConnStr = "false"
	dbInstance = nil
	instanceMu.Unlock()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, testDBUser, testDBPwd, testDBName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return dbContainer.Terminate, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Fail to close database")
		}
	}()

	_, err = db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)
	if err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}
