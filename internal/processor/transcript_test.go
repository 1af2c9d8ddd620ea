package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/simplelist/pkg/types"
)

func TestNewTranscript_UnknownFormat(t *testing.T) {
	_, err := NewTranscript(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, types.ErrFormatUnknown)
}

func TestTextTranscript_BuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	tr, err := NewTranscript(&buf, types.FormatText)
	require.NoError(t, err)

	require.NoError(t, tr.Write(Entry{Seq: 1, Command: types.Command{Verb: types.VerbPop, Name: "ix"}, Err: types.ErrNameNotFound}))
	assert.Empty(t, buf.String())

	require.NoError(t, tr.Flush())
	assert.Equal(t, "PROCESSING COMMAND: pop ix\nERROR: This name does not exist!\n", buf.String())
}

func TestJSONTranscript_Run(t *testing.T) {
	var buf bytes.Buffer
	out, err := NewTranscript(&buf, types.FormatJSON)
	require.NoError(t, err)

	_, err = New(types.Config{}, out).Run(context.Background(),
		strings.NewReader("create istack1 stack push istack1 5 pop istack1 pop istack1"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var recs []jsonRecord
	for _, l := range lines {
		var r jsonRecord
		require.NoError(t, json.Unmarshal([]byte(l), &r))
		recs = append(recs, r)
	}

	assert.Equal(t, jsonRecord{Seq: 1, Verb: "create", Name: "istack1", Arg: "stack"}, recs[0])
	assert.Equal(t, jsonRecord{Seq: 3, Verb: "pop", Name: "istack1", Value: "5"}, recs[2])
	assert.Equal(t, jsonRecord{Seq: 4, Verb: "pop", Name: "istack1", Error: "This list is empty!"}, recs[3])
	assert.NotContains(t, lines[2], `"arg"`)
}

func TestEntryOutcome(t *testing.T) {
	assert.Equal(t, "ok", Entry{}.Outcome())
	assert.Equal(t, "popped", Entry{Popped: true, Value: "1"}.Outcome())
	assert.Equal(t, "This list is empty!", Entry{Err: types.ErrListEmpty}.Outcome())
}
