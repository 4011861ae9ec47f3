package queryparams

// Params carries the filtering, sorting, grouping, pagination, sparse fieldset
// and inclusion information extracted from a request. The adapter layer treats
// it as an opaque value: it is matched by type when mapping repository method
// parameters and passed through verbatim, never interpreted.
type Params struct {
	// Filters maps a field path to the requested filter values.
	Filters map[string][]string `json:"filters,omitempty"`

	// Sorting maps a field path to a sort direction ("asc" or "desc").
	Sorting map[string]string `json:"sorting,omitempty"`

	// Grouping lists the field paths results should be grouped by.
	Grouping []string `json:"grouping,omitempty"`

	// Pagination holds paging values keyed by name (e.g. "offset", "limit").
	Pagination map[string]int `json:"pagination,omitempty"`

	// Fields maps a resource name to the sparse fieldset requested for it.
	Fields map[string][]string `json:"fields,omitempty"`

	// Inclusions lists the related resources requested for side-loading.
	Inclusions []string `json:"inclusions,omitempty"`
}

// New returns an empty Params value with all collections initialized.
func New() Params {
	return Params{
		Filters:    map[string][]string{},
		Sorting:    map[string]string{},
		Pagination: map[string]int{},
		Fields:     map[string][]string{},
	}
}

// IsZero reports whether no parameter group carries any values.
func (p Params) IsZero() bool {
	return len(p.Filters) == 0 &&
		len(p.Sorting) == 0 &&
		len(p.Grouping) == 0 &&
		len(p.Pagination) == 0 &&
		len(p.Fields) == 0 &&
		len(p.Inclusions) == 0
}

// Clone returns a deep copy of p so callers can mutate the copy freely.
func (p Params) Clone() Params {
	out := Params{
		Filters:    cloneSliceMap(p.Filters),
		Sorting:    cloneMap(p.Sorting),
		Pagination: cloneMap(p.Pagination),
		Fields:     cloneSliceMap(p.Fields),
	}
	if p.Grouping != nil {
		out.Grouping = append([]string(nil), p.Grouping...)
	}
	if p.Inclusions != nil {
		out.Inclusions = append([]string(nil), p.Inclusions...)
	}
	return out
}

func cloneMap[V any](in map[string]V) map[string]V {
	if in == nil {
		return nil
	}
	out := make(map[string]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneSliceMap(in map[string][]string) map[string][]string {
	if in == nil {
		return nil
	}
	out := make(map[string][]string, len(in))
	for k, v := range in {
		out[k] = append([]string(nil), v...)
	}
	return out
}
