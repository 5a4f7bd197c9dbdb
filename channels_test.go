package chat

import "testing"

func TestExpandVisibility(t *testing.T) {
	w := ChannelWhitelist{
		"hub":   {"lobby", "survival"},
		"games": {"survival", "minigames"},
		"solo":  {"creative"},
	}

	tests := []struct {
		name   string
		origin string
		want   []string
	}{
		{"single channel", "lobby", []string{"lobby", "survival"}},
		{"union of two channels", "survival", []string{"lobby", "survival", "minigames"}},
		{"isolated channel", "creative", []string{"creative"}},
		{"unknown origin", "skyblock", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.ExpandVisibility(tt.origin)

			if len(got) != len(tt.want) {
				t.Fatalf("ExpandVisibility(%q) = %v, want %v", tt.origin, got, tt.want)
			}

			for _, srv := range tt.want {
				if _, ok := got[srv]; !ok {
					t.Errorf("ExpandVisibility(%q) is missing %q", tt.origin, srv)
				}
			}
		})
	}
}

func TestExpandVisibilityEmptyWhitelist(t *testing.T) {
	if got := (ChannelWhitelist{}).ExpandVisibility("lobby"); len(got) != 0 {
		t.Errorf("expected empty expansion, got %v", got)
	}
}
