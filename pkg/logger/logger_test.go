package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func TestNew_NivelPorDefectoSegunEntorno(t *testing.T) {
	dev := logger.New(logger.Config{Env: "development"})
	assert.Equal(t, zerolog.DebugLevel, dev.Zerolog().GetLevel(),
		"en development sin nivel explícito debe usarse debug")

	prod := logger.New(logger.Config{Env: "production"})
	assert.Equal(t, zerolog.InfoLevel, prod.Zerolog().GetLevel(),
		"fuera de development el nivel por defecto es info")
}

func TestNew_NivelExplicitoGanaAlEntorno(t *testing.T) {
	l := logger.New(logger.Config{Env: "development", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}
