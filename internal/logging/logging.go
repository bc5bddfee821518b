// Package logging builds the single process-wide zap logger used by the
// service binary and the CLI tools.
package logging

import "go.uber.org/zap"

// NewService builds a production-configured logger: JSON encoding, info
// level, suitable for the long-running HTTP service.
func NewService() (*zap.Logger, error) {
	return zap.NewProduction()
}

// NewCLI builds a development-configured logger: human-readable console
// encoding, suitable for one-shot command-line tools.
func NewCLI() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
