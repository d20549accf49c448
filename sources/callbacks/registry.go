package callbacks

import "sort"

type Constructor func(deps *ActionDeps) Action

// Registry maps action names to constructors. It is read-only once built.
type Registry struct {
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{constructors: map[string]Constructor{
		ActionNotOwner:        newDenyAction,
		ActionCancel:          newCancelAction,
		ActionSetMark:         newSetMarkAction,
		ActionUpdateConvData:  newUpdateConvDataAction,
		ActionDropMark:        newDropMarkAction,
		ActionSetPermission:   newSetPermissionAction,
		ActionDropPermission:  newDropPermissionAction,
		ActionGameRoll:        newGameRollAction,
		ActionGameCoinflip:    newGameCoinflipAction,
		ActionSystemsSettings: newSettingsAction(SystemsMenu),
		ActionFiltersSettings: newSettingsAction(FiltersMenu),
	}}
}

func (x *Registry) Lookup(name string) (Constructor, bool) {
	constructor, ok := x.constructors[name]
	return constructor, ok
}

func (x *Registry) Names() []string {
	names := make([]string, 0, len(x.constructors))
	for name := range x.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
