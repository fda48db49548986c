package cmd

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "repattern", configBaseName)
	assert.Equal(t, "repattern.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "exclude", excludeFlagName)
	assert.Equal(t, "parallel", detectParallelFlagName)
	assert.Equal(t, "detect.parallel", detectParallelConfigKey)
	assert.Equal(t, "detect.parallel_detectors", parallelDetectorsConfigKey)
	assert.Equal(t, "detect.families", familiesConfigKey)
	assert.Equal(t, "paths.exclude", excludeConfigKey)
	assert.Equal(t, "metrics.file", metricsFileConfigKey)
	assert.Equal(t, ".repattern-reports", defaultReportsDir)
	assert.Equal(t, 1, defaultDetectParallel)
	assert.Equal(t, "REPATTERN", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper case", "INFO", slog.LevelInfo},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", " error ", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_SetsDefaultLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(t.TempDir()+"/repattern.log", true)

	assert.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
