package external

import (
	"context"
	"errors"
	"toaster/sources/tracing"

	"go.uber.org/fx"
)

var Module = fx.Module("external",
	fx.Provide(
		NewOutsidersConfig,
		NewOutsiders,
	),

	fx.Invoke(func(outsiders *Outsiders, lc fx.Lifecycle) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				outsiders.log.I("Starting outsiders services")
				go outsiders.startup()
				go outsiders.systemMetrics()
				go outsiders.applicationMetrics()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				outsiders.log.I("Stopping outsiders services")
				return errors.Join(
					outsiders.shutdown(ctx, "startup", outsiders.ss.Shutdown),
					outsiders.shutdown(ctx, "system_metrics", outsiders.sms.Shutdown),
					outsiders.shutdown(ctx, "application_metrics", outsiders.as.Shutdown),
				)
			},
		})
	}),
)

func (x *Outsiders) shutdown(ctx context.Context, kind string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		x.log.E("Failed to shutdown outsider server", tracing.OutsiderKind, kind, tracing.InnerError, err)
		return err
	}
	return nil
}
