package picker

import "github.com/google/uuid"

// Token returns the identifier of the in-flight request, or the zero UUID
// when the picker is idle. Owners use it to find which slot a ResultMsg
// belongs to after rows have shifted.
func (m *Model) Token() uuid.UUID {
	return m.token
}
