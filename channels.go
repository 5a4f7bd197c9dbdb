package chat

// ChannelWhitelist maps a channel name to the servers whose chat is
// mutually visible on that channel. A server may be a member of any
// number of channels.
type ChannelWhitelist map[string][]string

// ExpandVisibility returns the union of the member lists of every
// channel containing the origin server. An origin on no channel yields
// an empty set; the caller decides the default scope in that case.
func (w ChannelWhitelist) ExpandVisibility(originServer string) map[string]struct{} {
	visible := make(map[string]struct{})

	for _, members := range w {
		var contains bool
		for _, srv := range members {
			if srv == originServer {
				contains = true
				break
			}
		}

		if !contains {
			continue
		}

		for _, srv := range members {
			visible[srv] = struct{}{}
		}
	}

	return visible
}
