package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("environment: test\n"))
	require.NoError(t, err)

	require.Equal(t, 8501, cfg.Server.Port)
	require.Equal(t, "yahoo", cfg.News.Source)
	require.Equal(t, "memory", cfg.Session.Store)
	require.Equal(t, "vf_session", cfg.Session.CookieName)
	require.Equal(t, "none", cfg.Journal.Backend)
	require.Equal(t, 15*time.Second, cfg.Provider.FetchTimeout)
	require.Equal(t, "https://query2.finance.yahoo.com", cfg.Provider.BaseURL)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"missing environment": "server:\n  port: 80\n",
		"unknown news source": "environment: test\nnews:\n  source: reuters\n",
		"finnhub without key": "environment: test\nnews:\n  source: finnhub\n",
		"redis without host":  "environment: test\nsession:\n  store: redis\n",
		"kafka without topic": "environment: test\njournal:\n  backend: kafka\n  kafka:\n    brokers: [\"b:9092\"]\n",
		"unknown journal":     "environment: test\njournal:\n  backend: s3\n",
		"bad ratelimit":       "environment: test\nratelimit:\n  enabled: true\n  capacity: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("environment: test\n"), 0o644))

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JOURNAL_BACKEND", "kafka")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("KAFKA_TOPIC", "lookups")

	cfg, err := LoadWithEnv(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "kafka", cfg.Journal.Backend)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.Journal.Kafka.Brokers)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
