package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/slacktable/pkg/domain/model/record"
)

// FieldsConfig is the optional TOML override for outbound record field
// names. Unset entries keep the conventional defaults.
type FieldsConfig struct {
	Status      string   `toml:"status"`
	Severity    string   `toml:"severity"`
	Screenshots []string `toml:"screenshots"`
}

// Validate checks if the FieldsConfig is valid
func (f *FieldsConfig) Validate() error {
	if len(f.Screenshots) > record.MaxScreenshots {
		return goerr.Wrap(ErrTooManyScreenshots, "records carry at most three screenshot fields",
			goerr.V("count", len(f.Screenshots)),
		)
	}
	for i, name := range f.Screenshots {
		if name == "" {
			return goerr.Wrap(ErrMissingFieldName, "screenshot field name is empty", goerr.V("index", i))
		}
	}
	return nil
}

// LoadFieldsConfiguration resolves the record field configuration. The
// text field always comes from deployment configuration; path points to an
// optional TOML file overriding the remaining field names and may be empty.
func LoadFieldsConfiguration(path, textField string) (record.Fields, error) {
	fields := record.DefaultFields(textField)

	if path == "" {
		return validateFields(fields)
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return record.Fields{}, goerr.Wrap(err, "failed to read fields config file", goerr.V("path", path))
	}

	var cfg FieldsConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return record.Fields{}, goerr.Wrap(err, "failed to parse TOML fields config", goerr.V("path", path))
	}
	if err := cfg.Validate(); err != nil {
		return record.Fields{}, goerr.Wrap(err, "fields config validation failed", goerr.V("path", path))
	}

	if cfg.Status != "" {
		fields.Status = cfg.Status
	}
	if cfg.Severity != "" {
		fields.Severity = cfg.Severity
	}
	for i, name := range cfg.Screenshots {
		fields.Screenshots[i] = name
	}

	return validateFields(fields)
}

// validateFields rejects empty or colliding field names: a collision would
// silently drop one of the values from the created record
func validateFields(fields record.Fields) (record.Fields, error) {
	names := map[string]bool{}

	check := func(name string) error {
		if name == "" {
			return goerr.Wrap(ErrMissingFieldName, "record field name is empty")
		}
		if names[name] {
			return goerr.Wrap(ErrDuplicateFieldName, "record field names must be unique", goerr.V("name", name))
		}
		names[name] = true
		return nil
	}

	if err := check(fields.Text); err != nil {
		return record.Fields{}, err
	}
	if err := check(fields.Status); err != nil {
		return record.Fields{}, err
	}
	if err := check(fields.Severity); err != nil {
		return record.Fields{}, err
	}
	for _, name := range fields.Screenshots {
		if err := check(name); err != nil {
			return record.Fields{}, err
		}
	}

	return fields, nil
}
