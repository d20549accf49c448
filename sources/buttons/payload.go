package buttons

import "strconv"

const SubActionChangeSetting = "change_setting"

// Payload is the data carried by a single inline button.
// KeyboardOwner is zero when the keyboard has no recorded owner.
type Payload struct {
	CallAction    string `json:"call_action"`
	KeyboardOwner int64  `json:"keyboard_owner,omitempty"`
	SubAction     string `json:"sub_action,omitempty"`
	Target        int64  `json:"target,omitempty"`
	Permission    int    `json:"permission,omitempty"`
	Mark          string `json:"mark,omitempty"`
	Page          string `json:"page,omitempty"`
	SystemName    string `json:"system_name,omitempty"`
	FilterName    string `json:"filter_name,omitempty"`
}

// PageOr returns the requested page, or def when the page is missing or not a number.
func (p Payload) PageOr(def int) int {
	if p.Page == "" {
		return def
	}

	page, err := strconv.Atoi(p.Page)
	if err != nil {
		return def
	}

	return page
}

// WithOwner returns a copy of the payload bound to owner, unless it already has one.
func (p Payload) WithOwner(owner int64) Payload {
	if p.KeyboardOwner == 0 {
		p.KeyboardOwner = owner
	}
	return p
}
