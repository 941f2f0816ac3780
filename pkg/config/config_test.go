package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "crm-graphql", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "https://countries.trevorblades.com/", cfg.Upstream.CountriesURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 10, cfg.GraphQL.MaxParallelism)
}

func TestFromViper_EnvComoString(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("UPSTREAM_TIMEOUT_SECONDS", "3")
	v.Set("STORE_DRIVER", "Postgres")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, StorePostgres, cfg.Store.Driver)
}

func TestFromViper_DriverDesconocido(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "redis")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_TimeoutInvalido(t *testing.T) {
	v := viper.New()
	v.Set("UPSTREAM_TIMEOUT_SECONDS", "0")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "crm", Password: "p@ss:word", DBName: "crm", SSLMode: "disable"}
	assert.Equal(t, "postgres://crm:p%40ss%3Aword@db:5432/crm?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestFromViper_EnteroNoNumerico(t *testing.T) {
	for _, key := range []string{"UPSTREAM_TIMEOUT_SECONDS", "HTTP_PORT", "DB_PORT", "GRAPHQL_MAX_PARALLELISM"} {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			v.Set(key, "abc")

			_, err := fromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestFromViper_EnteroConEspacios(t *testing.T) {
	v := viper.New()
	v.Set("UPSTREAM_TIMEOUT_SECONDS", " 4 ")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, cfg.Upstream.Timeout)
}
