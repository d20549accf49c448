package callbacks

import (
	"toaster/sources/features"
	"toaster/sources/localization"
	"toaster/sources/repository"

	"go.uber.org/fx"
)

var Module = fx.Module("callbacks",
	fx.Provide(
		func(x *repository.MarksRepository) MarksStore { return x },
		func(x *repository.PermissionsRepository) PermissionsStore { return x },
		func(x *repository.SettingsRepository) SettingsStore { return x },
		func(x *features.FeatureManager) Toggles { return x },
		func(x *localization.LocalizationManager) Texts { return x },
		NewRoleTable,
		NewActionDeps,
		NewRegistry,
		NewDispatcher,
	),
)
