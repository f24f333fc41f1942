package store

// Default pagination values applied when a caller omits them.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// Page is a normalized limit/offset window over an ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// NormalizePage fills in the defaults for an absent limit or offset.
// Range checks belong to the caller; no upper bound is enforced.
func NormalizePage(limit, offset *int) Page {
	p := Page{Limit: DefaultLimit, Offset: DefaultOffset}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p
}
