package chat

// FormatRule maps a capability to the cosmetic prefix and postfix of a
// chat line. Rules form an ordered sequence; configuration order is
// load-bearing.
type FormatRule struct {
	Permission string `yaml:"permission"`
	Prefix     string `yaml:"prefix"`
	Postfix    string `yaml:"postfix"`
}

// ResolveFormat returns the prefix and postfix of the first rule whose
// permission the user holds. Later rules are ignored even if they also
// match. Users matching no rule get empty strings.
func ResolveFormat(caps CapabilityChecker, u User, rules []FormatRule) (prefix, postfix string) {
	for _, rule := range rules {
		if caps.HasCapability(u, rule.Permission) {
			return rule.Prefix, rule.Postfix
		}
	}

	return "", ""
}

// ComposeLine renders the final chat line. The component order
// (prefix, name, separator, message, postfix) is part of the contract;
// styling is up to the renderer.
func ComposeLine(prefix, name, msg, postfix string) string {
	return prefix + " " + name + " : " + msg + " " + postfix
}
