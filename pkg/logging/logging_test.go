package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/scoutline/scoutline/pkg/logging"
)

// The migrate subcommand hands ConsoleLogger straight to goose.
var _ goose.Logger = logging.ConsoleLogger(logrus.InfoLevel)

func TestConsoleLogger_LevelAndOutput(t *testing.T) {
	logger := logging.ConsoleLogger(logrus.WarnLevel)

	require.Equal(t, logrus.WarnLevel, logger.GetLevel())
	require.Equal(t, os.Stderr, logger.Out)
}

func TestFileLogger_CreatesParentDirectories(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "app.log")

	f, logger, err := logging.FileLogger(logrus.DebugLevel, logPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	require.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.Info("refresh started")
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "refresh started")
}
