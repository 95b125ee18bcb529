package fleet

import "strings"

// TagSet is a set of capability tags parsed from a comma-separated cell.
// Order is preserved for rendering; membership tests are case-insensitive.
type TagSet []string

// ParseTags splits a comma-separated tag cell into a TagSet, trimming
// whitespace and dropping empty entries.
func ParseTags(cell string) TagSet {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	tags := make(TagSet, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// Contains reports whether the set holds the tag, case-insensitively.
// The empty tag is never a member, so a mission with a blank requirement
// matches no pilot.
func (t TagSet) Contains(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, member := range t {
		if strings.EqualFold(member, tag) {
			return true
		}
	}
	return false
}

// String renders the set back to its comma-separated cell form.
func (t TagSet) String() string {
	return strings.Join(t, ", ")
}
