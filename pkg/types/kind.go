package types

// Kind identifies the value type a container holds. It is derived from the
// first character of the container's name.
type Kind byte

// Value kinds, keyed by their name prefix.
const (
	KindInteger Kind = 'i'
	KindFloat   Kind = 'd'
	KindText    Kind = 's'
)

// KindOf returns the kind selected by name's first character.
// Returns ErrUnknownKind for an empty name or an unrecognized prefix.
func KindOf(name string) (Kind, error) {
	if name == "" {
		return 0, ErrUnknownKind
	}
	switch k := Kind(name[0]); k {
	case KindInteger, KindFloat, KindText:
		return k, nil
	default:
		return 0, ErrUnknownKind
	}
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Discipline is the access policy of a container, fixed at creation.
type Discipline string

// Disciplines accepted by the create command.
const (
	Stack Discipline = "stack"
	Queue Discipline = "queue"
)

// ParseDiscipline maps a create argument to a Discipline.
// Returns ErrUnknownDiscipline for anything other than "stack" or "queue".
func ParseDiscipline(tok string) (Discipline, error) {
	switch Discipline(tok) {
	case Stack:
		return Stack, nil
	case Queue:
		return Queue, nil
	default:
		return "", ErrUnknownDiscipline
	}
}
