package logger

import (
	"go.uber.org/zap"
)

// New builds a JSON production logger for prod environments and a console development logger otherwise.
func New(env string) (*zap.Logger, error) {
	switch env {
	case "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

func NewNop() *zap.Logger {
	return zap.NewNop()
}
