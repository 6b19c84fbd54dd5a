// FILE: dash-website/console/override.go
package console

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the console's current
// configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	c := console.NewConsole()
//	err := c.ApplyOverride(
//	    "collapsed_cap=8",
//	    "show_context=false",
//	)
func (c *Console) ApplyOverride(overrides ...string) error {
	cfg := c.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return c.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("multiple configuration errors:")
	for _, err := range errors {
		sb.WriteString(" [")
		sb.WriteString(err.Error())
		sb.WriteString("]")
	}
	return fmt.Errorf("console: %s", sb.String())
}

// applyConfigField parses a string value and assigns it to the named field.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "width":
		cfg.Width = value
	case "height":
		cfg.Height = value

	case "collapsed_cap", "max_string_len", "max_depth", "max_toggle_depth":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("%s must be an integer: %s", key, value)
		}
		switch strings.ToLower(key) {
		case "collapsed_cap":
			cfg.CollapsedCap = n
		case "max_string_len":
			cfg.MaxStringLen = n
		case "max_depth":
			cfg.MaxDepth = n
		case "max_toggle_depth":
			cfg.MaxToggleDepth = n
		}

	case "show_context", "internal_errors_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("%s must be a boolean: %s", key, value)
		}
		if strings.ToLower(key) == "show_context" {
			cfg.ShowContext = b
		} else {
			cfg.InternalErrorsToStderr = b
		}

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}
