package persistence

import (
	"fmt"
	"toaster/sources/tracing"
)

// gormtracer routes gorm's slow query and error reports into the console logger.
type gormtracer struct {
	logger *tracing.Logger
}

func (w *gormtracer) Printf(format string, args ...interface{}) {
	w.logger.W("Database report", "report", fmt.Sprintf(format, args...))
}
