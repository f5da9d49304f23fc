package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoplus/talento-api/pkg/logger"
)

// capture redirige la salida del logger a un buffer y emite una línea.
func capture(t *testing.T, cfg logger.Config) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	zl := logger.New(cfg).Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// Con Service configurado, cada línea lleva el campo base "service".
func TestNew_EmiteCampoService(t *testing.T) {
	entry := capture(t, logger.Config{Env: "production", Level: "info", Service: "talento-api"})
	assert.Equal(t, "talento-api", entry["service"])
	assert.Equal(t, "hola", entry["message"])
	assert.Contains(t, entry, "time")
}

// Sin Service, la línea no arrastra un campo vacío.
func TestNew_SinServiceNoEmiteElCampo(t *testing.T) {
	entry := capture(t, logger.Config{Env: "production", Level: "info"})
	assert.NotContains(t, entry, "service")
}

// Nivel desconocido cae a info: debug se descarta, info sale.
func TestNew_NivelPorDefectoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	zl := logger.New(logger.Config{Env: "production", Level: "lo-que-sea"}).Zerolog().Output(&buf)
	zl.Debug().Msg("invisible")
	assert.Empty(t, buf.Bytes())
	zl.Info().Msg("visible")
	assert.NotEmpty(t, buf.Bytes())
}
