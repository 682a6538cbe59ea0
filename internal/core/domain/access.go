package domain

// HasAccess reports whether a set of granted role tags satisfies the
// required ones. Holding RoleAdmin satisfies anything; otherwise every
// required tag must be present (all-of, not any-of).
func HasAccess(granted []string, required ...string) bool {
	set := make(map[string]struct{}, len(granted))
	for _, r := range granted {
		set[r] = struct{}{}
	}
	if _, ok := set[RoleAdmin]; ok {
		return true
	}
	for _, r := range required {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}
