package logger

import (
	"testing"

	"github.com/GlebRadaev/railtickets/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	t.Cleanup(zap.ReplaceGlobals(zap.NewNop()))

	tests := []struct {
		name           string
		lvl            string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{name: "Valid log level debug", lvl: "debug", expectedLogLvl: zapcore.DebugLevel},
		{name: "Valid log level info", lvl: "info", expectedLogLvl: zapcore.InfoLevel},
		{name: "Valid log level warn", lvl: "warn", expectedLogLvl: zapcore.WarnLevel},
		{name: "Valid log level error", lvl: "error", expectedLogLvl: zapcore.ErrorLevel},
		{name: "Upper case level", lvl: "WARN", expectedLogLvl: zapcore.WarnLevel},
		{name: "Invalid log level", lvl: "invalid", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.lvl, Storage: config.StorageCSV})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			core := zap.L().Core()
			assert.True(t, core.Enabled(tt.expectedLogLvl))
			if tt.expectedLogLvl > zapcore.DebugLevel {
				assert.False(t, core.Enabled(tt.expectedLogLvl-1))
			}
		})
	}
}
