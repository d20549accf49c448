package callbacks

import (
	"strings"
	"toaster/sources/persistence/entities"
	"toaster/sources/tracing"
)

type setMarkAction struct{ base }

func newSetMarkAction(deps *ActionDeps) Action {
	return &setMarkAction{base{name: ActionSetMark, deps: deps}}
}

// Execute marks the conversation once. A marked conversation keeps its first
// label and the acknowledgment shows the stored one.
func (x *setMarkAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	mark, err := x.deps.Marks.GetMark(log, event.PeerID)
	if err != nil {
		return false, err
	}

	if mark != nil {
		x.snackbar(log, event, x.textTd(event, "AckMarkExists", map[string]interface{}{"Mark": mark.ConvMark}))
		return true, nil
	}

	label := strings.TrimSpace(event.Payload.Mark)
	if label == "" {
		x.snackbar(log, event, x.text(event, "AckMarkMissing"))
		return false, nil
	}

	if err := x.deps.Marks.CreateMark(log, &entities.ConversationMark{
		ConvID:   event.PeerID,
		ConvName: event.PeerName,
		ConvMark: label,
	}); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.textTd(event, "AckMarkSet", map[string]interface{}{"Mark": label}))
	return true, nil
}

type updateConvDataAction struct{ base }

func newUpdateConvDataAction(deps *ActionDeps) Action {
	return &updateConvDataAction{base{name: ActionUpdateConvData, deps: deps}}
}

func (x *updateConvDataAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	mark, err := x.deps.Marks.GetMark(log, event.PeerID)
	if err != nil {
		return false, err
	}

	if mark == nil {
		x.snackbar(log, event, x.text(event, "AckNotMarked"))
		return false, nil
	}

	if err := x.deps.Marks.UpdateMarkName(log, event.PeerID, event.PeerName); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.text(event, "AckConvDataUpdated"))
	return true, nil
}

type dropMarkAction struct{ base }

func newDropMarkAction(deps *ActionDeps) Action {
	return &dropMarkAction{base{name: ActionDropMark, deps: deps}}
}

func (x *dropMarkAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	mark, err := x.deps.Marks.GetMark(log, event.PeerID)
	if err != nil {
		return false, err
	}

	if mark == nil {
		x.snackbar(log, event, x.text(event, "AckNotMarked"))
		return false, nil
	}

	if err := x.deps.Marks.DeleteMark(log, event.PeerID); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.textTd(event, "AckMarkDropped", map[string]interface{}{"Mark": mark.ConvMark}))
	return true, nil
}
