package visibility

import (
	"strconv"
	"strings"
)

// SelectorAllSentinel is the query value requesting every grant of a kind.
const SelectorAllSentinel = "all"

// Selector is one of the four optional search-user parameters. It is either
// absent, the sentinel "all", or an explicit ID list.
type Selector struct {
	set bool
	all bool
	ids []uint
}

// SelectorAll returns the "all" selector.
func SelectorAll() Selector {
	return Selector{set: true, all: true}
}

// SelectorIDs returns a selector for an explicit ID list.
func SelectorIDs(ids []uint) Selector {
	return Selector{set: true, ids: ids}
}

// ParseSelector parses a raw query value: empty string means absent, "all"
// means every grant, otherwise a comma-separated ID list. Malformed IDs are
// skipped rather than failing the request.
func ParseSelector(raw string) Selector {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Selector{}
	}
	if strings.EqualFold(raw, SelectorAllSentinel) {
		return SelectorAll()
	}
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseUint(part, 10, 64); err == nil && id > 0 {
			ids = append(ids, uint(id))
		}
	}
	return Selector{set: true, ids: ids}
}

// IsSet reports whether the selector was present in the request.
func (s Selector) IsSet() bool { return s.set }

// IsAll reports whether the sentinel "all" was requested.
func (s Selector) IsAll() bool { return s.all }

// Filter intersects resolved grant IDs with the requested list. The "all"
// sentinel keeps every resolved ID. Requested IDs without a matching grant
// are dropped; a selector can only narrow, never widen, the grant set.
func (s Selector) Filter(resolved []uint) []uint {
	if !s.set || s.all {
		return resolved
	}
	requested := make(map[uint]struct{}, len(s.ids))
	for _, id := range s.ids {
		requested[id] = struct{}{}
	}
	var out []uint
	for _, id := range resolved {
		if _, ok := requested[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// SearchUserParams are the four optional visibility selectors a request may
// carry.
type SearchUserParams struct {
	Me            Selector
	Subordinates  Selector
	Aliases       Selector
	Collaborators Selector
}

// HasAny reports whether any selector was supplied. With no selectors the
// resolver falls back to the caller's personal/default set.
func (p SearchUserParams) HasAny() bool {
	return p.Me.IsSet() || p.Subordinates.IsSet() || p.Aliases.IsSet() || p.Collaborators.IsSet()
}
