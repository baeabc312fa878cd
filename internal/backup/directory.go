package backup

import "github.com/google/uuid"

// Directory is a single backup-job definition: a named set of source
// folders plus the exclude patterns applied when archiving them.
type Directory struct {
	// ID survives renames, so anything referring to a directory keeps
	// working after the user edits its name.
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Sources  []string  `json:"sources"`
	Excludes []string  `json:"excludes"`
}

// NewDirectory returns an empty directory with a fresh identity.
func NewDirectory() Directory {
	return Directory{ID: uuid.New()}
}

// Clone returns a deep copy that shares no slices with the receiver.
// Editor drafts are always clones; the store entry is never aliased.
func (d Directory) Clone() Directory {
	dup := d
	dup.Sources = append([]string(nil), d.Sources...)
	dup.Excludes = append([]string(nil), d.Excludes...)
	return dup
}

// Equal reports whether two directories have identical content.
func (d Directory) Equal(other Directory) bool {
	if d.ID != other.ID || d.Name != other.Name {
		return false
	}
	if len(d.Sources) != len(other.Sources) || len(d.Excludes) != len(other.Excludes) {
		return false
	}
	for i, s := range d.Sources {
		if other.Sources[i] != s {
			return false
		}
	}
	for i, e := range d.Excludes {
		if other.Excludes[i] != e {
			return false
		}
	}
	return true
}
