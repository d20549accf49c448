package main

import (
	"context"
	"time"
	"toaster/sources/callbacks"
	"toaster/sources/configuration"
	"toaster/sources/external"
	"toaster/sources/features"
	"toaster/sources/localization"
	"toaster/sources/metrics"
	"toaster/sources/network"
	"toaster/sources/persistence"
	"toaster/sources/platform"
	"toaster/sources/repository"
	"toaster/sources/telegram"
	"toaster/sources/throttler"
	"toaster/sources/tracing"

	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

func main() {
	platform.SetAppManifest(version, buildTime, time.Now())

	fx.New(
		tracing.Module,
		configuration.Module,
		external.Module,
		network.Module,
		persistence.Module,
		repository.Module,
		features.Module,
		metrics.Module,
		localization.Module,
		throttler.Module,
		callbacks.Module,
		telegram.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Toaster started successfully", "version", version, "build_time", buildTime)
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Toaster stopped", "version", version, "build_time", buildTime)
					return nil
				},
			})
		}),
	).Run()
}
