package types

import "strings"

// Verb is the first token of a command.
type Verb string

// Recognized verbs.
const (
	VerbCreate Verb = "create"
	VerbPush   Verb = "push"
	VerbPop    Verb = "pop"
)

// Arity returns the number of tokens a command with this verb occupies,
// counting the verb itself. Unknown verbs are read like pop.
func (v Verb) Arity() int {
	switch v {
	case VerbCreate, VerbPush:
		return 3
	default:
		return 2
	}
}

// Known reports whether v is create, push, or pop.
func (v Verb) Known() bool {
	return v == VerbCreate || v == VerbPush || v == VerbPop
}

// Command is one parsed unit of input. It is consumed as soon as it is read.
type Command struct {
	Verb Verb
	Name string
	Arg  string

	// HasArg is true when a third token was read.
	HasArg bool
}

// String renders the command as it was read, tokens joined by single spaces.
func (c Command) String() string {
	parts := []string{string(c.Verb), c.Name}
	if c.HasArg {
		parts = append(parts, c.Arg)
	}
	return strings.Join(parts, " ")
}
