package service

// originGate is a static exact-match CORS allowlist.
type originGate struct {
	allowed map[string]struct{}
}

// NewOriginGate builds an [OriginGate] over origins. The list is copied;
// normalization happens once in the config layer.
func NewOriginGate(origins []string) OriginGate {
	allowed := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		allowed[origin] = struct{}{}
	}

	return &originGate{allowed: allowed}
}

// Allow reports whether origin may proceed. A missing Origin header (empty
// string) is a same-origin or non-browser caller and is always allowed.
// Anything else must match an allowlist entry byte for byte.
func (g *originGate) Allow(origin string) bool {
	if origin == "" {
		return true
	}

	_, ok := g.allowed[origin]
	return ok
}
