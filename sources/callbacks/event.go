package callbacks

import "toaster/sources/buttons"

// ButtonEvent is a single inline button press. It is not modified during dispatch.
type ButtonEvent struct {
	EventID       int
	UserID        int64
	UserName      string
	PeerID        int64
	PeerName      string
	CMID          int
	ButtonEventID string
	Language      string
	Payload       *buttons.Payload
}
