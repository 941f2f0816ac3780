package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/crm-graphql/pkg/logger"
)

func TestLogPanic_RegistraValorYStack(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWriter(&buf, "info").Component("graphql")

	l.LogPanic(context.Background(), "boom")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["panic"])
	assert.Equal(t, "graphql", entry["component"])
	assert.NotEmpty(t, entry["stack"])
}

func TestNivel_FiltraDebug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWriter(&buf, "warn")

	l.Printf("detalle %d", 1)
	l.Info().Msg("info")
	assert.Empty(t, buf.String(), "debug e info no deben escribirse con nivel warn")

	l.Warn().Msg("aviso")
	assert.Contains(t, buf.String(), "aviso")
}
