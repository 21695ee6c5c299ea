package depot

import "github.com/TheBitDrifter/mask"

// Filter is a compiled archetype predicate: an archetype matches if it
// carries every included component and none of the excluded ones. Track
// lists which of the included components should have change tracking
// enabled wherever the filter matches.
type Filter struct {
	include mask.Mask
	exclude mask.Mask
	track   []ComponentId
}

// Matches reports whether an archetype's component set satisfies the filter.
func (f Filter) Matches(set mask.Mask) bool {
	return set.ContainsAll(f.include) && set.ContainsNone(f.exclude)
}

// FilterBuilder incrementally assembles a Filter; component specifiers each
// contribute to it via their filterTerm method as a query is constructed.
type FilterBuilder struct {
	include mask.Mask
	exclude mask.Mask
	track   []ComponentId
}

// NewFilterBuilder returns an empty builder.
func NewFilterBuilder() *FilterBuilder {
	return &FilterBuilder{}
}

// Include adds id to the required component set.
func (b *FilterBuilder) Include(id ComponentId) *FilterBuilder {
	b.include.Mark(uint32(id))
	return b
}

// Exclude adds id to the excluded component set.
func (b *FilterBuilder) Exclude(id ComponentId) *FilterBuilder {
	b.exclude.Mark(uint32(id))
	return b
}

// Track marks id as both required and change-tracked.
func (b *FilterBuilder) Track(id ComponentId) *FilterBuilder {
	b.Include(id)
	for _, t := range b.track {
		if t == id {
			return b
		}
	}
	b.track = append(b.track, id)
	return b
}

// Build finalizes the filter.
func (b *FilterBuilder) Build() Filter {
	return Filter{
		include: b.include,
		exclude: b.exclude,
		track:   append([]ComponentId(nil), b.track...),
	}
}
