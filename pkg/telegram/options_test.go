package telegram

import (
	"encoding/json"
	"testing"
)

func TestLinkPreviewOptions_Equal(t *testing.T) {
	disabled := &LinkPreviewOptions{IsDisabled: true}

	tests := []struct {
		name string
		a    *LinkPreviewOptions
		b    *LinkPreviewOptions
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil vs value", nil, disabled, false},
		{"value vs nil", disabled, nil, false},
		{"same pointer", disabled, disabled, true},
		{"equal values", &LinkPreviewOptions{IsDisabled: true}, &LinkPreviewOptions{IsDisabled: true}, true},
		{"different values", &LinkPreviewOptions{IsDisabled: true}, &LinkPreviewOptions{URL: "https://example.org"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinkPreviewOptions_JSONOmitsDefaults(t *testing.T) {
	out, err := json.Marshal(LinkPreviewOptions{IsDisabled: true})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != `{"is_disabled":true}` {
		t.Errorf("Marshal() = %s, want {\"is_disabled\":true}", out)
	}
}
