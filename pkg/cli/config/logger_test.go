package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slacktable/pkg/cli/config"
	"github.com/secmon-lab/slacktable/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	// Configure replaces the process-wide default logger; restore it so
	// other tests keep their output
	orig := logging.Default()
	t.Cleanup(func() { logging.SetDefault(orig) })

	t.Run("defaults configure without error", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "console", "stdout")
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("json format to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		cfg := config.NewLoggerForTest("debug", "json", path)

		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()

		logging.Default().Info("hello", "key", "value")
		closer()

		data, err := os.ReadFile(path)
		gt.NoError(t, err).Required()
		gt.Bool(t, strings.Contains(string(data), `"hello"`)).True()
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		cfg := config.NewLoggerForTest("loud", "console", "stdout")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "stdout")
		_, err := cfg.Configure()
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrInvalidConfig)).True()
	})
}
