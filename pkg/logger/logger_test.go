package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/pkg/logger"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	log.Named("ledger").Info().Int64("product_id", 7).Msg("movimiento registrado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "ledger", line["component"])
	assert.Equal(t, float64(7), line["product_id"])
	assert.Equal(t, "movimiento registrado", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("oculto")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop_Discards(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Error().Msg("nada")
	})
}
