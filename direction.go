package streamstore

// ReadDirection selects the order in which the messages of a stream are returned
type ReadDirection int

const (
	// Forwards returns messages from the first to the last revision
	Forwards ReadDirection = iota
	// Backwards returns messages from the last to the first revision
	Backwards
)

func (d ReadDirection) String() string {
	switch d {
	case Forwards:
		return "forwards"
	case Backwards:
		return "backwards"
	default:
		return "unknown"
	}
}
