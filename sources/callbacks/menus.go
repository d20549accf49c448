package callbacks

import (
	"fmt"
	"toaster/sources/buttons"
	"toaster/sources/persistence/entities"
)

// MenuEntry pairs a setting name with the message ID of its button label.
type MenuEntry struct {
	Name  string
	Label string
}

// Menu is the fixed page layout of one settings destination.
type Menu struct {
	Action      string
	Destination string
	Banner      string
	AckOn       string
	AckOff      string
	AckPage     string
	Pages       [][]MenuEntry
}

var SystemsMenu = MustMenu(Menu{
	Action:      ActionSystemsSettings,
	Destination: entities.DestinationSystem,
	Banner:      "BannerSystems",
	AckOn:       "AckSystemEnabled",
	AckOff:      "AckSystemDisabled",
	AckPage:     "AckSystemsMenu",
	Pages: [][]MenuEntry{
		{
			{Name: "account_age", Label: "SettingAccountAge"},
			{Name: "curse_words", Label: "SettingCurseWords"},
			{Name: "hard_mode", Label: "SettingHardMode"},
			{Name: "open_pm", Label: "SettingOpenPm"},
			{Name: "slow_mode", Label: "SettingSlowMode"},
		},
	},
})

// FiltersMenu keeps "Wall" capitalized, existing rows are stored under that name.
var FiltersMenu = MustMenu(Menu{
	Action:      ActionFiltersSettings,
	Destination: entities.DestinationFilter,
	Banner:      "BannerFilters",
	AckOn:       "AckFilterEnabled",
	AckOff:      "AckFilterDisabled",
	AckPage:     "AckFiltersMenu",
	Pages: [][]MenuEntry{
		{
			{Name: "app_action", Label: "FilterAppAction"},
			{Name: "audio", Label: "FilterAudio"},
			{Name: "audio_message", Label: "FilterAudioMessage"},
			{Name: "doc", Label: "FilterDoc"},
		},
		{
			{Name: "forward", Label: "FilterForward"},
			{Name: "reply", Label: "FilterReply"},
			{Name: "graffiti", Label: "FilterGraffiti"},
			{Name: "sticker", Label: "FilterSticker"},
		},
		{
			{Name: "link", Label: "FilterLink"},
			{Name: "photo", Label: "FilterPhoto"},
			{Name: "poll", Label: "FilterPoll"},
			{Name: "video", Label: "FilterVideo"},
		},
		{
			{Name: "Wall", Label: "FilterWall"},
			{Name: "geo", Label: "FilterGeo"},
		},
	},
})

func NewMenu(menu Menu) (*Menu, error) {
	if menu.Action == "" {
		return nil, fmt.Errorf("menu has no action")
	}

	if menu.Destination != entities.DestinationSystem && menu.Destination != entities.DestinationFilter {
		return nil, fmt.Errorf("menu %s has unknown destination %q", menu.Action, menu.Destination)
	}

	if len(menu.Pages) == 0 {
		return nil, fmt.Errorf("menu %s has no pages", menu.Action)
	}

	seen := make(map[string]int)
	for i, page := range menu.Pages {
		if len(page) == 0 {
			return nil, fmt.Errorf("menu %s page %d is empty", menu.Action, i+1)
		}

		for _, entry := range page {
			if entry.Name == "" {
				return nil, fmt.Errorf("menu %s page %d has an unnamed entry", menu.Action, i+1)
			}
			if prev, ok := seen[entry.Name]; ok {
				return nil, fmt.Errorf("menu %s: setting %q is on pages %d and %d", menu.Action, entry.Name, prev, i+1)
			}
			seen[entry.Name] = i + 1
		}
	}

	return &menu, nil
}

func MustMenu(menu Menu) *Menu {
	m, err := NewMenu(menu)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Menu) PageCount() int {
	return len(m.Pages)
}

// Clamp keeps a requested page inside 1..PageCount.
func (m *Menu) Clamp(page int) int {
	if page < 1 {
		return 1
	}
	if page > len(m.Pages) {
		return len(m.Pages)
	}
	return page
}

func (m *Menu) Contains(name string) bool {
	for _, page := range m.Pages {
		for _, entry := range page {
			if entry.Name == name {
				return true
			}
		}
	}
	return false
}

// Target returns the setting a toggle payload refers to.
func (m *Menu) Target(payload buttons.Payload) string {
	if m.Destination == entities.DestinationSystem {
		return payload.SystemName
	}
	return payload.FilterName
}

func (m *Menu) togglePayload(name string, page int) buttons.Payload {
	payload := buttons.Payload{
		CallAction: m.Action,
		SubAction:  buttons.SubActionChangeSetting,
		Page:       fmt.Sprint(page),
	}

	if m.Destination == entities.DestinationSystem {
		payload.SystemName = name
	} else {
		payload.FilterName = name
	}

	return payload
}

func (m *Menu) pagePayload(page int) buttons.Payload {
	return buttons.Payload{CallAction: m.Action, Page: fmt.Sprint(page)}
}
