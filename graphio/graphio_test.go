package graphio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/graphio"
)

const transport = `4
0 1 5 2
0 2 3 1
1 3 2 0   2 3
3 0
`

func TestRead(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(transport))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Vertices)
	require.Len(t, g.Edges, 4)
	assert.Equal(t, core.Edge{From: 1, To: 3, Capacity: 2, Cost: 0}, g.Edges[2])
	assert.Equal(t, core.Edge{From: 2, To: 3, Capacity: 3, Cost: 0}, g.Edges[3], "tuples may span lines")

	nw, err := g.Network()
	require.NoError(t, err)
	assert.True(t, nw.HasEdge(0, 2))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name, in string
		want     error
	}{
		{"empty", "", graphio.ErrMissingVertexCount},
		{"blank", "  \n\t ", graphio.ErrMissingVertexCount},
		{"bad count", "four", graphio.ErrBadToken},
		{"bad edge", "3\n0 1 x 2", graphio.ErrBadToken},
		{"truncated", "3\n0 1 4 2\n1 2", graphio.ErrTruncatedEdge},
	}
	for _, tc := range cases {
		_, err := graphio.Read(strings.NewReader(tc.in))
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestNetwork_EndpointPolicy(t *testing.T) {
	g, err := graphio.Read(strings.NewReader("3\n0 1 1 1\n1 5 1 1\n1 2 1 1\n"))
	require.NoError(t, err)
	g.Name = "bad.txt"

	_, err = g.Network()
	require.ErrorIs(t, err, core.ErrInvalidEdgeEndpoint)
	var ee core.EdgeError
	require.True(t, errors.As(err, &ee))
	assert.Contains(t, err.Error(), "bad.txt")

	nw, err := g.Network(core.WithSkipInvalidEdges())
	require.NoError(t, err)
	assert.Equal(t, 1, nw.Skipped())
	assert.Len(t, nw.Edges(), 2)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transport0.txt")
	require.NoError(t, os.WriteFile(path, []byte(transport), 0o644))

	g, err := graphio.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "transport0.txt", g.Name)

	_, err = graphio.ReadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteRoundTrip(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(transport))
	require.NoError(t, err)
	nw, err := g.Network()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteNetwork(&buf, nw))
	assert.Equal(t, "4\n0 1 5 2\n0 2 3 1\n1 3 2 0\n2 3 3 0\n", buf.String())

	back, err := graphio.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, nw.Edges(), back.Edges)
}
