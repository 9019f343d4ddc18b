package xcodebuild

// ConfigurationError is returned when the command can not be assembled from the given configuration
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func newMissingProjectError() error {
	return &ConfigurationError{Reason: "no project/workspace found"}
}
