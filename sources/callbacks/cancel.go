package callbacks

import "toaster/sources/tracing"

type cancelAction struct{ base }

func newCancelAction(deps *ActionDeps) Action {
	return &cancelAction{base{name: ActionCancel, deps: deps}}
}

func (x *cancelAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	if err := x.deps.Platform.DeleteMessage(log, event.PeerID, event.CMID, true); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.text(event, "AckCommandCancelled"))
	return true, nil
}
