package testutils

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ory/dockertest"
	logger "github.com/sirupsen/logrus"
)

const (
	testDBUser     = "storeflow"
	testDBPassword = "storeflow"
	testDBName     = "storeflow"
)

// RunTestDatabase starts a disposable PostgreSQL container and returns its
// DSN. cleanUp is always safe to call.
func RunTestDatabase() (string, func(), error) {
	cleanUp := func() {}

	pool, err := dockertest.NewPool("")
	if err != nil {
		return "", cleanUp, fmt.Errorf("could not connect to docker %w", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + testDBUser,
			"POSTGRES_PASSWORD=" + testDBPassword,
			"POSTGRES_DB=" + testDBName,
		},
	})
	if err != nil {
		return "", cleanUp, fmt.Errorf("could not start postgres %w", err)
	}
	cleanUp = func() {
		if err := pool.Purge(resource); err != nil {
			logger.Errorf("Could not purge postgres container: %s", err.Error())
		}
	}

	dsn := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, resource.GetPort("5432/tcp"), testDBName)

	err = pool.Retry(func() error {
		conn, err := pgx.Connect(context.Background(), dsn)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(context.Background())
	})
	if err != nil {
		return "", cleanUp, fmt.Errorf("postgres did not come up %w", err)
	}
	return dsn, cleanUp, nil
}
