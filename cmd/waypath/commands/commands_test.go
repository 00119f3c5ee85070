package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/waypath/core"
	"github.com/katalvlaran/waypath/dijkstra"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestParseEdge(t *testing.T) {
	e, err := parseEdge("123:122:1")
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: "123", To: "122", Weight: 1}, e)

	for _, bad := range []string{"", "a:b", "a:b:c:d", ":b:1", "a::1", "a:b:x", "a:b:-1"} {
		_, err := parseEdge(bad)
		assert.ErrorIs(t, err, ErrBadEdgeSpec, "spec %q", bad)
	}
}

func TestBuildGraph_LastEdgeWins(t *testing.T) {
	g, err := buildGraph([]string{"a:b:5", "a:b:2"}, false)
	require.NoError(t, err)
	w, err := g.Weight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
	assert.False(t, g.HasEdge("b", "a"))

	g, err = buildGraph([]string{"a:b:5"}, true)
	require.NoError(t, err)
	assert.True(t, g.HasEdge("b", "a"))
}

func TestRouteCommand(t *testing.T) {
	args := []string{"route", "--from", "123", "--to", "503"}
	for _, e := range stationEdges {
		args = append(args, "-e", e)
	}

	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, "123 -> 122 -> 504 -> 503 : 10\n", out)
}

func TestRouteCommand_UnreachableAndOptions(t *testing.T) {
	out, _, err := execute(t, "route", "-e", "A:B:1", "--vertex", "Z", "--from", "A", "--to", "Z")
	require.NoError(t, err)
	assert.Equal(t, "Z : unreachable\n", out)

	out, _, err = execute(t, "route", "-e", "A:B:1", "-e", "B:C:1", "-e", "A:C:9",
		"--from", "A", "--to", "C", "--inf-threshold", "2")
	require.NoError(t, err)
	assert.Equal(t, "A -> B -> C : 2\n", out)

	out, _, err = execute(t, "route", "-e", "A:B:1", "-e", "B:C:1",
		"--from", "A", "--to", "C", "--max-distance", "1")
	require.NoError(t, err)
	assert.Equal(t, "C : unreachable\n", out)

	out, _, err = execute(t, "route", "-e", "A:B:4", "--undirected", "--from", "B", "--to", "A")
	require.NoError(t, err)
	assert.Equal(t, "B -> A : 4\n", out)
}

func TestRouteCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "route", "-e", "A:B", "--from", "A", "--to", "B")
	assert.ErrorIs(t, err, ErrBadEdgeSpec)

	_, _, err = execute(t, "route", "-e", "A:B:1", "--from", "A", "--to", "Q")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = execute(t, "route", "-e", "A:B:1", "--from", "A")
	assert.Error(t, err, "--to is required")
}

func TestDemoCommand(t *testing.T) {
	out, _, err := execute(t, "demo")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"123 -> 122 -> 504 -> 503 : 10\n"+
		"122 -> 123 -> 304 -> 303 : 8\n"+
		"123 -> 122 -> 504 -> 503 : 10\n"+
		"123 -> 122 -> 504 -> 503 : 10\n"+
		"304 -> 123 -> 122 -> 504 -> 503 : 12\n", out)
}

func TestVerboseLogsSettledVertices(t *testing.T) {
	_, logs, err := execute(t, "-v", "route", "-e", "A:B:1", "--from", "A", "--to", "B")
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=settled vertex=A distance=0")
	assert.Contains(t, logs, "msg=settled vertex=B distance=1")

	_, logs, err = execute(t, "route", "-e", "A:B:1", "--from", "A", "--to", "B")
	require.NoError(t, err)
	assert.NotContains(t, logs, "settled")
}
