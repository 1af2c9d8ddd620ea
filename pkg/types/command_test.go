package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr error
	}{
		{name: "integer prefix", input: "istack1", want: KindInteger},
		{name: "float prefix", input: "dqueue1", want: KindFloat},
		{name: "text prefix", input: "snoname", want: KindText},
		{name: "single character name", input: "i", want: KindInteger},
		{name: "unknown prefix", input: "xlist", wantErr: ErrUnknownKind},
		{name: "uppercase prefix is unknown", input: "Ilist", wantErr: ErrUnknownKind},
		{name: "empty name", input: "", wantErr: ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindOf(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDiscipline(t *testing.T) {
	d, err := ParseDiscipline("stack")
	require.NoError(t, err)
	assert.Equal(t, Stack, d)

	d, err = ParseDiscipline("queue")
	require.NoError(t, err)
	assert.Equal(t, Queue, d)

	_, err = ParseDiscipline("Stack")
	assert.ErrorIs(t, err, ErrUnknownDiscipline)
}

func TestVerbArity(t *testing.T) {
	assert.Equal(t, 3, VerbCreate.Arity())
	assert.Equal(t, 3, VerbPush.Arity())
	assert.Equal(t, 2, VerbPop.Arity())
	assert.Equal(t, 2, Verb("peek").Arity())
	assert.False(t, Verb("peek").Known())
}

func TestCommandString(t *testing.T) {
	assert.Equal(t, "create istack1 stack", Command{Verb: VerbCreate, Name: "istack1", Arg: "stack", HasArg: true}.String())
	assert.Equal(t, "pop istack1", Command{Verb: VerbPop, Name: "istack1"}.String())
}
