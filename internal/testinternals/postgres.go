package testinternals

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/traininglog/internal/db"
	"github.com/2beens/traininglog/internal/traininglog/trainees"
)

// TestDBName is the database integration tests run against.
const TestDBName = "traininglog_test"

// NewTestDBPool connects to the postgres at POSTGRES_HOST (localhost by
// default) and applies the schema. The pool is closed on test cleanup.
func NewTestDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		host = "localhost"
	}
	t.Logf("using postres host: %s", host)

	dbPool, err := db.NewDBPool(timeoutCtx, db.NewDBPoolParams{
		DBHost:         host,
		DBPort:         "5432",
		DBName:         TestDBName,
		DBUser:         "postgres",
		TracingEnabled: false,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(timeoutCtx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// NewTestTrainee stores a fresh trainee with a random auth identity.
func NewTestTrainee(t *testing.T, pool *pgxpool.Pool) *trainees.Trainee {
	t.Helper()

	trainee, err := trainees.NewRepo(pool).FindOrCreate(context.Background(), trainees.Profile{
		AuthUserID: gofakeit.UUID(),
		Name:       gofakeit.Name(),
		Image:      gofakeit.URL(),
	})
	require.NoError(t, err)
	return trainee
}
