package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "trivia")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "trivia-api", cfg.Name)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTPAddr)
	assert.Equal(t, 20*time.Second, cfg.GracefulShutdownTimeout)
	assert.Equal(t, 10, cfg.Trivia.QuestionsPerPage)
	assert.Equal(t, uint64(0), cfg.Trivia.RandomSeed)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}, cfg.CORS.AllowedMethods)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("QUESTIONS_PER_PAGE", "25")
	t.Setenv("TRIVIA_RANDOM_SEED", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Trivia.QuestionsPerPage)
	assert.Equal(t, uint64(42), cfg.Trivia.RandomSeed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadMissingDatabase(t *testing.T) {
	t.Setenv("PG_HOST", "localhost")
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRejectsNonPositivePageSize(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("QUESTIONS_PER_PAGE", "0")

	_, err := Load(context.Background())
	assert.ErrorContains(t, err, "QUESTIONS_PER_PAGE")
}

func TestPostgresDSN(t *testing.T) {
	p := Postgres{Host: "db", Port: 5433, User: "u", Password: "p", Database: "trivia", SSLMode: "require"}
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=trivia sslmode=require", p.DSN())
}

func TestLoadPostgres(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadPostgres()
	require.NoError(t, err)
	assert.Equal(t, "trivia", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)
}
