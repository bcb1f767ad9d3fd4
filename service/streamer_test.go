package service_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ydarma/fluent-data/cluster"
	"github.com/ydarma/fluent-data/service"
)

func TestStdioStreamerProducesOneModelPerLine(t *testing.T) {
	in := strings.NewReader("[0,0]\n[0,1]\n")
	var out bytes.Buffer

	s := service.StdioStreamer(in, &out, cluster.DefaultParams())
	require.NoError(t, s.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `[{"center":[0,0],"radius":0,"weight":1}]`, lines[0])
}

func TestStdioStreamerSkipsMalformedPoints(t *testing.T) {
	in := strings.NewReader("[0,0]\nnot json\n[0,1]\n")
	var out bytes.Buffer

	s := service.StdioStreamer(in, &out, cluster.DefaultParams())
	require.NoError(t, s.Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// One emitted model per accepted point; the malformed line is skipped
	// without emitting or corrupting the model.
	assert.Len(t, lines, 2)
}

func TestStdioStreamerEmptyStream(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	s := service.StdioStreamer(in, &out, cluster.DefaultParams())
	require.NoError(t, s.Run())
	assert.Empty(t, out.String())
}
