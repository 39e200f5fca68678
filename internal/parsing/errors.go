package parsing

import "fmt"

// ConfigError represents an invalid parser configuration, such as a malformed section order
type ConfigError struct {
	Message string
	Header  string
}

func (e *ConfigError) Error() string {
	if e.Header != "" {
		return fmt.Sprintf("parser config error for header %q: %s", e.Header, e.Message)
	}
	return fmt.Sprintf("parser config error: %s", e.Message)
}
