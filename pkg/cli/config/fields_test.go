package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/slacktable/pkg/cli/config"
	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
)

func writeTOML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadFieldsConfiguration(t *testing.T) {
	t.Run("empty path keeps the defaults", func(t *testing.T) {
		fields, err := config.LoadFieldsConfiguration("", "Description")
		gt.NoError(t, err).Required()

		gt.Value(t, fields.Text).Equal("Description")
		gt.Value(t, fields.Status).Equal(record.DefaultStatusField)
		gt.Value(t, fields.Severity).Equal(record.DefaultSeverityField)
	})

	t.Run("TOML overrides replace individual names", func(t *testing.T) {
		path := writeTOML(t, `
status = "State"
severity = "Impact"
screenshots = ["Img 1", "Img 2"]
`)

		fields, err := config.LoadFieldsConfiguration(path, "Body")
		gt.NoError(t, err).Required()

		gt.Value(t, fields.Text).Equal("Body")
		gt.Value(t, fields.Status).Equal("State")
		gt.Value(t, fields.Severity).Equal("Impact")
		gt.Value(t, fields.Screenshots[0]).Equal("Img 1")
		gt.Value(t, fields.Screenshots[1]).Equal("Img 2")
		// The third slot keeps its default
		gt.Value(t, fields.Screenshots[2]).Equal(record.DefaultScreenshotFields()[2])
	})

	t.Run("more than three screenshot names is rejected", func(t *testing.T) {
		path := writeTOML(t, `screenshots = ["a", "b", "c", "d"]`)

		_, err := config.LoadFieldsConfiguration(path, "Description")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrTooManyScreenshots)).True()
	})

	t.Run("empty field name is rejected", func(t *testing.T) {
		path := writeTOML(t, `screenshots = ["a", ""]`)

		_, err := config.LoadFieldsConfiguration(path, "Description")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrMissingFieldName)).True()
	})

	t.Run("colliding field names are rejected", func(t *testing.T) {
		path := writeTOML(t, `status = "Description"`)

		_, err := config.LoadFieldsConfiguration(path, "Description")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrDuplicateFieldName)).True()
	})

	t.Run("empty text field is rejected", func(t *testing.T) {
		_, err := config.LoadFieldsConfiguration("", "")
		gt.Value(t, err).NotNil()
		gt.Bool(t, errors.Is(err, config.ErrMissingFieldName)).True()
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := config.LoadFieldsConfiguration(filepath.Join(t.TempDir(), "no-such.toml"), "Description")
		gt.Value(t, err).NotNil()
	})

	t.Run("malformed TOML is an error", func(t *testing.T) {
		path := writeTOML(t, `status = [unterminated`)

		_, err := config.LoadFieldsConfiguration(path, "Description")
		gt.Value(t, err).NotNil()
	})
}
