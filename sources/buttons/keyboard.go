package buttons

type Color string

const (
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorPositive  Color = "positive"
	ColorNegative  Color = "negative"
)

// ColorByStatus maps a two-valued setting status to its button color.
func ColorByStatus(status int) Color {
	if status != 0 {
		return ColorPositive
	}
	return ColorNegative
}

type Button struct {
	Label   string
	Color   Color
	Payload Payload
}

func NewButton(label string, color Color, payload Payload) Button {
	return Button{Label: label, Color: color, Payload: payload}
}

// Keyboard is an immutable inline keyboard. Every builder method returns a new value.
type Keyboard struct {
	owner int64
	rows  [][]Button
}

func NewKeyboard(owner int64) Keyboard {
	return Keyboard{owner: owner}
}

// Empty is the neutral keyboard that removes all buttons from a message.
func Empty() Keyboard {
	return Keyboard{}
}

func (k Keyboard) Owner() int64 {
	return k.owner
}

// Row appends a row of buttons. Calling it without buttons is a no-op.
func (k Keyboard) Row(buttons ...Button) Keyboard {
	if len(buttons) == 0 {
		return k
	}

	rows := make([][]Button, 0, len(k.rows)+1)
	rows = append(rows, k.rows...)
	rows = append(rows, append([]Button(nil), buttons...))

	return Keyboard{owner: k.owner, rows: rows}
}

func (k Keyboard) Rows() [][]Button {
	rows := make([][]Button, len(k.rows))
	for i, row := range k.rows {
		rows[i] = append([]Button(nil), row...)
	}
	return rows
}

func (k Keyboard) IsEmpty() bool {
	return len(k.rows) == 0
}

// Buttons returns all buttons in row order.
func (k Keyboard) Buttons() []Button {
	var all []Button
	for _, row := range k.rows {
		all = append(all, row...)
	}
	return all
}
