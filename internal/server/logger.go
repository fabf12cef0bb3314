package server

import (
	"strings"

	"go.uber.org/zap"
)

// newLogger builds the server logger. Production mode emits JSON, every
// other mode gets the development console encoder.
func newLogger(mode string) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
