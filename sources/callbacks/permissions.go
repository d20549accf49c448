package callbacks

import (
	"toaster/sources/persistence/entities"
	"toaster/sources/tracing"
)

const unknownUserName = "Unknown"

type setPermissionAction struct{ base }

func newSetPermissionAction(deps *ActionDeps) Action {
	return &setPermissionAction{base{name: ActionSetPermission, deps: deps}}
}

func (x *setPermissionAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	return x.assign(log, event, event.Payload.Target, event.Payload.Permission)
}

type dropPermissionAction struct{ base }

func newDropPermissionAction(deps *ActionDeps) Action {
	return &dropPermissionAction{base{name: ActionDropPermission, deps: deps}}
}

func (x *dropPermissionAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	return x.assign(log, event, event.Payload.Target, entities.PermissionBaseline)
}

// assign moves a user to level. The baseline level is the absence of a row.
func (x *base) assign(log *tracing.Logger, event *ButtonEvent, target int64, level int) (bool, error) {
	log = log.With(tracing.TargetId, target, tracing.Permission, level)

	if target == 0 {
		x.snackbar(log, event, x.text(event, "AckTargetMissing"))
		return false, nil
	}

	role, ok := x.deps.Roles.Name(level)
	if !ok {
		log.W("Permission level has no role name")
		x.snackbar(log, event, x.text(event, "AckRoleUnknown"))
		return false, nil
	}

	current, err := x.deps.Permissions.GetPermission(log, target)
	if err != nil {
		return false, err
	}

	if level == entities.PermissionBaseline {
		if current == nil {
			x.snackbar(log, event, x.textTd(event, "AckRoleAlreadyHas", map[string]interface{}{"Role": role}))
			return false, nil
		}

		if err := x.deps.Permissions.DeletePermission(log, target); err != nil {
			return false, err
		}

		x.snackbar(log, event, x.textTd(event, "AckRoleAssigned", map[string]interface{}{"Role": role}))
		return true, nil
	}

	// An existing role is never replaced directly; it has to be dropped first.
	if current != nil {
		stored, ok := x.deps.Roles.Name(current.UserPermission)
		if !ok {
			stored = role
		}
		x.snackbar(log, event, x.textTd(event, "AckRoleAlreadyHas", map[string]interface{}{"Role": stored}))
		return false, nil
	}

	name, err := x.deps.Platform.LookupUserName(log, target, event.PeerID)
	if err != nil {
		return false, err
	}
	if name == "" {
		name = unknownUserName
	}

	if err := x.deps.Permissions.UpsertPermission(log, &entities.UserPermission{
		UserID:         target,
		ConvID:         event.PeerID,
		UserName:       name,
		UserPermission: level,
	}); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.textTd(event, "AckRoleAssigned", map[string]interface{}{"Role": role}))
	return true, nil
}
