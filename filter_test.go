package chat

import "testing"

func TestContainsBanned(t *testing.T) {
	f := NewPhraseFilter([]string{"badword", "ass"})

	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"exact", "badword", true},
		{"exact uppercase", "BADWORD", true},
		{"exact with punctuation", "bad!word...", true},
		{"surrounded by spaces", "you are a badword today", true},
		{"at start with space", "badword is not allowed", true},
		{"at end with space", "you are a badword", true},
		{"embedded in longer word", "assignment", false},
		{"embedded mid-sentence", "the assignment is due", false},
		{"digit split is dropped", "b4dword", false},
		{"clean message", "have a nice day", false},
		{"empty message", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsBanned(tt.msg); got != tt.want {
				t.Errorf("ContainsBanned(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestContainsURL(t *testing.T) {
	f := NewPhraseFilter(nil)

	tests := []struct {
		name string
		msg  string
		want bool
	}{
		{"http", "join http://example.com now", true},
		{"https", "https://example.com/path?x=1", true},
		{"www prefix", "check www.example.com now", true},
		{"bare host and tld", "visit example.com please", true},
		{"no links", "no links here", false},
		{"plain chat", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsURL(tt.msg); got != tt.want {
				t.Errorf("ContainsURL(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	f := NewPhraseFilter([]string{"badword"})

	v := f.Evaluate("badword at www.example.com")
	if !v.IsURL {
		t.Error("expected IsURL")
	}
	if !v.IsBanned {
		t.Error("expected IsBanned")
	}

	v = f.Evaluate("a perfectly fine message")
	if v.IsURL || v.IsBanned {
		t.Errorf("expected clean verdict, got %+v", v)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello, World!", "hello world"},
		{"b4dword", "bdword"},
		{"bad  word", "bad  word"},
		{"123 456", " "},
	}

	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
