package callbacks

import (
	"testing"
	"toaster/sources/buttons"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiNumber(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{value: 0, expected: "0️⃣"},
		{value: 7, expected: "7️⃣"},
		{value: 42, expected: "4️⃣2️⃣"},
		{value: 100, expected: "1️⃣0️⃣0️⃣"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, emojiNumber(tt.value))
	}
}

func TestGameRoll(t *testing.T) {
	f := newFixture(t)
	var bound int
	f.deps.Random = func(n int) int {
		bound = n
		return 42
	}

	assert.True(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionGameRoll})))
	assert.Equal(t, 101, bound)

	require.Len(t, f.platform.edits, 1)
	assert.Equal(t, "tester выбивает число: 4️⃣2️⃣", f.platform.edits[0].text)
	assert.True(t, f.platform.edits[0].keyboard.IsEmpty())
	assert.Equal(t, "🎲 Рулетка прокручена!", f.platform.lastAck())
}

func TestGameCoinflip(t *testing.T) {
	tests := []struct {
		name     string
		draw     int
		expected string
	}{
		{name: "Heads", draw: 0, expected: "tester подбрасывает монетку: Орёл 🪙"},
		{name: "Tails", draw: 1, expected: "tester подбрасывает монетку: Решка 🪙"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.deps.Random = func(n int) int { return tt.draw }

			assert.True(t, f.dispatch(t, ownedEvent(5, 100, buttons.Payload{CallAction: ActionGameCoinflip})))
			require.Len(t, f.platform.edits, 1)
			assert.Equal(t, tt.expected, f.platform.edits[0].text)
			assert.True(t, f.platform.edits[0].keyboard.IsEmpty())
		})
	}
}
