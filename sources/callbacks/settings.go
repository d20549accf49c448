package callbacks

import (
	"toaster/sources/buttons"
	"toaster/sources/tracing"
)

type settingsAction struct {
	base
	menu *Menu
}

func newSettingsAction(menu *Menu) Constructor {
	return func(deps *ActionDeps) Action {
		return &settingsAction{base: base{name: menu.Action, deps: deps}, menu: menu}
	}
}

// Execute opens a page of the menu or flips one setting and redraws the page.
// Settings rows are seeded elsewhere; a missing row is shown as off and cannot be toggled.
func (x *settingsAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	log = log.With(tracing.Destination, x.menu.Destination)

	rows, err := x.deps.Settings.GetSettings(log, event.PeerID, x.menu.Destination)
	if err != nil {
		return false, err
	}

	states := make(map[string]int, len(rows))
	for _, row := range rows {
		states[row.SettingName] = row.SettingStatus
	}

	page := x.menu.Clamp(event.Payload.PageOr(1))

	var ack string
	if event.Payload.SubAction == buttons.SubActionChangeSetting {
		name := x.menu.Target(*event.Payload)
		log = log.With(tracing.SettingName, name)

		status, loaded := states[name]
		if !loaded || !x.menu.Contains(name) {
			log.W("Setting toggle target is unavailable")
			x.snackbar(log, event, x.text(event, "AckSettingUnavailable"))
			return false, nil
		}

		status ^= 1
		if err := x.deps.Settings.UpdateSettingStatus(log, event.PeerID, name, x.menu.Destination, status); err != nil {
			return false, err
		}
		states[name] = status
		x.deps.Metrics.RecordSettingToggled(x.menu.Destination, status)

		ack = x.text(event, x.menu.AckOff)
		if status != 0 {
			ack = x.text(event, x.menu.AckOn)
		}
	} else {
		ack = x.textTd(event, x.menu.AckPage, map[string]interface{}{"Page": page, "Pages": x.menu.PageCount()})
	}

	keyboard := x.render(event, states, page)
	if err := x.deps.Platform.EditMessage(log, event.PeerID, event.CMID, x.text(event, x.menu.Banner), keyboard); err != nil {
		return false, err
	}

	x.snackbar(log, event, ack)
	return true, nil
}

func (x *settingsAction) render(event *ButtonEvent, states map[string]int, page int) buttons.Keyboard {
	keyboard := buttons.NewKeyboard(event.UserID)

	for _, entry := range x.menu.Pages[page-1] {
		status := states[entry.Name]
		state := x.text(event, "StateOff")
		if status != 0 {
			state = x.text(event, "StateOn")
		}

		label := x.textTd(event, "ButtonToggle", map[string]interface{}{"Label": x.text(event, entry.Label), "State": state})
		keyboard = keyboard.Row(buttons.NewButton(label, buttons.ColorByStatus(status), x.menu.togglePayload(entry.Name, page)))
	}

	var navigation []buttons.Button
	if page > 1 {
		navigation = append(navigation, buttons.NewButton(x.text(event, "ButtonPrev"), buttons.ColorSecondary, x.menu.pagePayload(page-1)))
	}
	if page < x.menu.PageCount() {
		navigation = append(navigation, buttons.NewButton(x.text(event, "ButtonNext"), buttons.ColorSecondary, x.menu.pagePayload(page+1)))
	}

	return keyboard.
		Row(navigation...).
		Row(buttons.NewButton(x.text(event, "ButtonCloseMenu"), buttons.ColorNegative, buttons.Payload{CallAction: ActionCancel}))
}
