package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDesdeEntorno(t *testing.T) {
	t.Chdir(t.TempDir()) // no dotenv file present
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/agua?sslmode=disable")
	t.Setenv("API_KEY", "sekreto")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/agua?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "sekreto", cfg.APIKey)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "/tmp/aguanueva/pdfs", cfg.PDFStoragePath)
}

func TestLoadSinDatabaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
