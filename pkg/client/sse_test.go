package client

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventDecoder(t *testing.T) {
	input := ": keep-alive\n\n" +
		"data: 你\n\n" +
		"data:  two spaces\n\n" +
		"event:saved\r\ndata: 42\r\n\r\n" +
		"id: 7\nretry: 3000\ndata: first\ndata: second\n\n" +
		"event:done\ndata: \n\n" +
		"data: unterminated"

	dec := newEventDecoder(strings.NewReader(input))

	ev, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, event{Data: "你"}, ev)

	ev, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, " two spaces", ev.Data)

	ev, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "saved", ev.Name)
	assert.Equal(t, "42", ev.Data)

	ev, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", ev.Data)
	assert.Equal(t, "7", ev.ID)
	assert.Equal(t, 3000, ev.Retry)

	ev, err = dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "done", ev.Name)
	assert.Equal(t, "", ev.Data)
	assert.Equal(t, "7", ev.ID)

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestEventDecoderSkipsEventsWithoutData(t *testing.T) {
	dec := newEventDecoder(strings.NewReader("event:ping\n\ndata: x\n\n"))

	ev, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "", ev.Name)
	assert.Equal(t, "x", ev.Data)
}
