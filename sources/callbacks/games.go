package callbacks

import (
	"strconv"
	"strings"
	"toaster/sources/buttons"
	"toaster/sources/tracing"
)

var emojiDigits = [10]string{"0️⃣", "1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣", "7️⃣", "8️⃣", "9️⃣"}

func emojiNumber(n int) string {
	var sb strings.Builder
	for _, digit := range strconv.Itoa(n) {
		sb.WriteString(emojiDigits[digit-'0'])
	}
	return sb.String()
}

type gameRollAction struct{ base }

func newGameRollAction(deps *ActionDeps) Action {
	return &gameRollAction{base{name: ActionGameRoll, deps: deps}}
}

func (x *gameRollAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	result := emojiNumber(x.deps.Random(101))
	return x.announce(log, event, "MsgRollResult", result, "AckRollDone")
}

type gameCoinflipAction struct{ base }

func newGameCoinflipAction(deps *ActionDeps) Action {
	return &gameCoinflipAction{base{name: ActionGameCoinflip, deps: deps}}
}

func (x *gameCoinflipAction) Execute(log *tracing.Logger, event *ButtonEvent) (bool, error) {
	side := "CoinHeads"
	if x.deps.Random(2) == 1 {
		side = "CoinTails"
	}
	return x.announce(log, event, "MsgCoinResult", x.text(event, side), "AckCoinDone")
}

func (x *base) announce(log *tracing.Logger, event *ButtonEvent, messageID string, result string, ackID string) (bool, error) {
	text := x.textTd(event, messageID, map[string]interface{}{"User": event.UserName, "Result": result})
	if err := x.deps.Platform.EditMessage(log, event.PeerID, event.CMID, text, buttons.Empty()); err != nil {
		return false, err
	}

	x.snackbar(log, event, x.text(event, ackID))
	return true, nil
}
