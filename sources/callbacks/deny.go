package callbacks

import "toaster/sources/tracing"

type denyAction struct{ base }

func newDenyAction(deps *ActionDeps) Action {
	return &denyAction{base{name: ActionNotOwner, deps: deps}}
}

func (x *denyAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	log.D("Button pressed by a user who does not own the keyboard", tracing.KeyboardOwner, event.Payload.KeyboardOwner)
	x.snackbar(log, event, x.text(event, "AckAccessDenied"))
	return false, nil
}
