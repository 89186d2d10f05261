package pipeline

import "fmt"

// PluginError reports a plugin that failed during a run.
type PluginError struct {
	Plugin string
	Index  int
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %q (#%d) failed: %v", e.Plugin, e.Index, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a setup mistake, such as running a
// generator without plugins, as opposed to bad input.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}
