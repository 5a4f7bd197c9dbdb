package chat

import "testing"

func TestResolveFormatFirstMatchWins(t *testing.T) {
	rules := []FormatRule{
		{Permission: "vip", Prefix: "[VIP] ", Postfix: ""},
		{Permission: "default", Prefix: "", Postfix: ""},
	}

	caps := fakeCaps{
		"Alice": {"vip", "default"},
		"Bob":   {"default"},
	}

	prefix, postfix := ResolveFormat(caps, User{Name: "Alice"}, rules)
	if prefix != "[VIP] " || postfix != "" {
		t.Errorf("Alice resolved to (%q, %q), want vip rule", prefix, postfix)
	}

	prefix, postfix = ResolveFormat(caps, User{Name: "Bob"}, rules)
	if prefix != "" || postfix != "" {
		t.Errorf("Bob resolved to (%q, %q), want default rule", prefix, postfix)
	}
}

func TestResolveFormatOrderIsLoadBearing(t *testing.T) {
	caps := fakeCaps{"Alice": {"vip", "mod"}}

	rules := []FormatRule{
		{Permission: "mod", Prefix: "[MOD] "},
		{Permission: "vip", Prefix: "[VIP] "},
	}

	prefix, _ := ResolveFormat(caps, User{Name: "Alice"}, rules)
	if prefix != "[MOD] " {
		t.Errorf("prefix = %q, want the earlier rule to win", prefix)
	}

	// Same rules, swapped order.
	rules[0], rules[1] = rules[1], rules[0]

	prefix, _ = ResolveFormat(caps, User{Name: "Alice"}, rules)
	if prefix != "[VIP] " {
		t.Errorf("prefix = %q after reorder, want the new first rule", prefix)
	}
}

func TestResolveFormatNoMatch(t *testing.T) {
	rules := []FormatRule{{Permission: "vip", Prefix: "[VIP] ", Postfix: "*"}}

	prefix, postfix := ResolveFormat(fakeCaps{}, User{Name: "Nobody"}, rules)
	if prefix != "" || postfix != "" {
		t.Errorf("resolved to (%q, %q), want empty", prefix, postfix)
	}
}

func TestComposeLine(t *testing.T) {
	got := ComposeLine("[VIP]", "Alice", "hello", "*")
	want := "[VIP] Alice : hello *"

	if got != want {
		t.Errorf("ComposeLine = %q, want %q", got, want)
	}
}
