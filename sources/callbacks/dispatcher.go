package callbacks

import (
	"time"
	"toaster/sources/tracing"
)

const (
	outcomeActed     = "acted"
	outcomeNoop      = "noop"
	outcomeMalformed = "malformed"
	outcomeUnknown   = "unknown"
	outcomeFailed    = "failed"
)

type Dispatcher struct {
	registry *Registry
	deps     *ActionDeps
	toggles  Toggles
}

func NewDispatcher(registry *Registry, deps *ActionDeps, toggles Toggles) *Dispatcher {
	return &Dispatcher{registry: registry, deps: deps, toggles: toggles}
}

// Dispatch runs the action a button press asks for, or the denial action when
// the presser does not own the keyboard. Store and platform errors are returned
// as is and never retried.
func (x *Dispatcher) Dispatch(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	if event != nil {
		log = log.With(tracing.EventId, event.EventID)
	}

	defer tracing.ProfilePoint(log, "Button dispatch completed", "callbacks.dispatch")()
	started := time.Now()

	if event == nil || event.Payload == nil {
		log.I("Button event carries no payload, nothing to do")
		x.deps.Metrics.RecordDispatch("", outcomeMalformed, time.Since(started))
		return false, nil
	}

	name := event.Payload.CallAction
	if Authorize(event.UserID, event.Payload.KeyboardOwner) == VerdictDeny {
		name = ActionNotOwner
	}

	log = log.With(
		tracing.UserId, event.UserID,
		tracing.PeerId, event.PeerID,
		tracing.CallAction, name,
	)

	constructor, ok := x.lookup(name)
	if !ok {
		log.I("Button event requests an unknown action", tracing.ActionResult, false)
		x.deps.Metrics.RecordDispatch("", outcomeUnknown, time.Since(started))
		return false, nil
	}

	action := constructor(x.deps)
	result, err := action.Execute(log, event)
	if err != nil {
		log.E("Button action failed", tracing.InnerError, err)
		x.deps.Metrics.RecordDispatch(action.Name(), outcomeFailed, time.Since(started))
		return false, err
	}

	if result {
		log.I("Button event dispatched", tracing.ActionResult, action.Name())
		x.deps.Metrics.RecordDispatch(action.Name(), outcomeActed, time.Since(started))
	} else {
		log.I("Button event dispatched", tracing.ActionResult, "no action")
		x.deps.Metrics.RecordDispatch(action.Name(), outcomeNoop, time.Since(started))
	}

	return result, nil
}

// lookup treats a switched off action as unknown. The denial action cannot be switched off.
func (x *Dispatcher) lookup(name string) (Constructor, bool) {
	constructor, ok := x.registry.Lookup(name)
	if !ok {
		return nil, false
	}

	if name != ActionNotOwner && !x.toggles.IsActionEnabled(name) {
		return nil, false
	}

	return constructor, true
}
