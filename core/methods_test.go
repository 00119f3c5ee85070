package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/waypath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"), "graph should have A after AddVertex")

	// Idempotence: adding again does not change count
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())
}

func (s *GraphSuite) TestEmptyIDsRejected() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(s.g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	require.ErrorIs(s.g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
	require.Zero(s.g.VertexCount(), "failed AddEdge must not create vertices")
}

func (s *GraphSuite) TestAddEdgeIsDirected() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 5))

	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "A→B must not imply B→A")
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeOverwritesWeight() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 5))
	require.NoError(s.g.AddEdge("A", "B", 7))

	w, err := s.g.Weight("A", "B")
	require.NoError(err)
	require.Equal(int64(7), w, "last write wins")
	require.Equal(1, s.g.EdgeCount(), "overwrite must not create a parallel edge")
}

func (s *GraphSuite) TestNegativeWeightStoredAsIs() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", -3))
	w, err := s.g.Weight("A", "B")
	require.NoError(err)
	require.Equal(int64(-3), w)
}

func (s *GraphSuite) TestWeightMissingEdge() {
	_, err := s.g.Weight("A", "B")
	s.Require().ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddEdge("B", "A", 2))

	require.NoError(s.g.RemoveEdge("A", "B"))
	require.False(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "reverse edge is independent in a directed graph")
	require.True(s.g.HasVertex("A"), "vertices survive edge removal")

	require.ErrorIs(s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestNeighborsSortedByTarget() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("S", "c", 3))
	require.NoError(s.g.AddEdge("S", "a", 1))
	require.NoError(s.g.AddEdge("S", "b", 2))
	require.NoError(s.g.AddEdge("a", "S", 9))

	nbs, err := s.g.Neighbors("S")
	require.NoError(err)
	require.Equal([]core.Edge{
		{From: "S", To: "a", Weight: 1},
		{From: "S", To: "b", Weight: 2},
		{From: "S", To: "c", Weight: 3},
	}, nbs)

	// Sink vertex has no outgoing edges.
	nbs, err = s.g.Neighbors("c")
	require.NoError(err)
	require.Empty(nbs)
}

func (s *GraphSuite) TestNeighborsErrors() {
	_, err := s.g.Neighbors("")
	s.Require().ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.Neighbors("ghost")
	s.Require().ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestVerticesAndEdgesSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("b", "a", 1))
	require.NoError(s.g.AddEdge("a", "c", 2))
	require.NoError(s.g.AddEdge("a", "b", 3))

	require.Equal([]string{"a", "b", "c"}, s.g.Vertices())
	require.Equal([]core.Edge{
		{From: "a", To: "b", Weight: 3},
		{From: "a", To: "c", Weight: 2},
		{From: "b", To: "a", Weight: 1},
	}, s.g.Edges())
}

func (s *GraphSuite) TestVertexLookup() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("A"))

	v, err := s.g.Vertex("A")
	require.NoError(err)
	require.Equal("A", v.ID)
	require.NotNil(v.Metadata)

	_, err = s.g.Vertex("B")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Vertex("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestUndirectedMirrorsWrites() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithUndirected())
	require.True(g.Undirected())

	require.NoError(g.AddEdge("A", "B", 4))
	require.True(g.HasEdge("B", "A"))
	require.Equal(2, g.EdgeCount())

	// Overwrite from the other side updates both directions.
	require.NoError(g.AddEdge("B", "A", 6))
	w, err := g.Weight("A", "B")
	require.NoError(err)
	require.Equal(int64(6), w)

	// Self-loop is stored once.
	require.NoError(g.AddEdge("C", "C", 0))
	require.Equal(3, g.EdgeCount())

	require.NoError(g.RemoveEdge("A", "B"))
	require.False(g.HasEdge("B", "A"))
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1))
	require.NoError(s.g.AddVertex("Z"))

	c := s.g.Clone()
	require.Equal(s.g.Vertices(), c.Vertices())
	require.Equal(s.g.Edges(), c.Edges())

	require.NoError(c.AddEdge("A", "B", 10))
	require.NoError(c.AddEdge("B", "Z", 1))

	w, err := s.g.Weight("A", "B")
	require.NoError(err)
	require.Equal(int64(1), w, "source graph must not see clone writes")
	require.False(s.g.HasEdge("B", "Z"))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
