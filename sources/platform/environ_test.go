package platform

import (
	"testing"
	"time"
)

func TestGetAsDuration(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		fallback string
		expected time.Duration
	}{
		{name: "Unset uses fallback", env: "", fallback: "2s", expected: 2 * time.Second},
		{name: "Set value wins", env: "750ms", fallback: "2s", expected: 750 * time.Millisecond},
		{name: "Broken value uses fallback", env: "soon", fallback: "3s", expected: 3 * time.Second},
		{name: "Broken fallback uses five seconds", env: "", fallback: "never", expected: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TOASTER_TEST_DURATION", tt.env)
			if result := GetAsDuration("TOASTER_TEST_DURATION", tt.fallback); result != tt.expected {
				t.Errorf("GetAsDuration() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestValidateTelegramBotToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "Empty", token: "", wantErr: true},
		{name: "Garbage", token: "not-a-token", wantErr: true},
		{name: "Valid", token: "123456:AAabcdefghijklmnopqrstuvwxyz0123456", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTelegramBotToken(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTelegramBotToken() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
