package chat

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`(https?://[^\s]+)|(www\.[^\s]+)|([a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)

// Verdict is the outcome of filtering one raw message.
// Both checks are independent; either may block delivery.
type Verdict struct {
	IsURL    bool
	IsBanned bool
}

// PhraseFilter detects banned phrases and URLs in chat messages.
// It is immutable once built and safe for concurrent use.
type PhraseFilter struct {
	phrases []string
}

// NewPhraseFilter builds a filter from the configured phrase list.
// Matching is case-insensitive.
func NewPhraseFilter(phrases []string) *PhraseFilter {
	f := &PhraseFilter{phrases: make([]string, 0, len(phrases))}
	for _, p := range phrases {
		if p = strings.ToLower(p); p != "" {
			f.phrases = append(f.phrases, p)
		}
	}

	return f
}

// Evaluate runs the URL check and the banned phrase check.
func (f *PhraseFilter) Evaluate(raw string) Verdict {
	return Verdict{
		IsURL:    f.ContainsURL(raw),
		IsBanned: f.ContainsBanned(raw),
	}
}

// ContainsURL reports whether the raw message contains a http(s) link,
// a www. prefix or a bare host.tld token.
func (f *PhraseFilter) ContainsURL(raw string) bool {
	return urlPattern.MatchString(raw)
}

// ContainsBanned reports whether the normalized message contains a
// configured phrase as a whole token: the entire message, surrounded
// by spaces, at the start followed by a space or at the end preceded
// by one. Phrases embedded in longer words do not match.
func (f *PhraseFilter) ContainsBanned(raw string) bool {
	msg := normalize(raw)

	for _, phrase := range f.phrases {
		if !strings.Contains(msg, phrase) {
			continue
		}

		switch {
		case msg == phrase:
			return true
		case strings.Contains(msg, " "+phrase+" "):
			return true
		case strings.HasPrefix(msg, phrase+" "):
			return true
		case strings.HasSuffix(msg, " "+phrase):
			return true
		}
	}

	return false
}

// normalize lowercases the message and keeps only ASCII letters and
// spaces. Other characters are dropped entirely, not turned into
// separators.
func normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range strings.ToLower(raw) {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
