package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/ifgnet/bfs"
	"github.com/katalvlaran/ifgnet/core"
)

// cycle builds the undirected cycle A–B–C–D–A with edge IDs "ab", "bc", "cd", "da".
func cycle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range [][3]string{{"A", "B", "ab"}, {"B", "C", "bc"}, {"C", "D", "cd"}, {"D", "A", "da"}} {
		if _, err := g.AddEdge(e[0], e[1], 1, core.WithID(e[2])); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_ = g.AddVertex("A")
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleDepthsAndVia checks layering and the edges that reach each vertex.
func TestBFS_CycleDepthsAndVia(t *testing.T) {
	res, err := bfs.BFS(cycle(t), "A")
	if err != nil {
		t.Fatal(err)
	}
	// A's edges sorted by ID: "ab" then "da".
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["C"]; d != 2 {
		t.Errorf("Depth[C] = %d; want 2", d)
	}
	if p := res.Parent["C"]; p != "B" {
		t.Errorf("Parent[C] = %s; want B", p)
	}
	if e := res.Via["C"]; e == nil || e.ID != "bc" {
		t.Errorf("Via[C] = %v; want bc", e)
	}
	if _, ok := res.Via["A"]; ok {
		t.Error("start vertex must have no Via edge")
	}
	path, err := res.PathTo("C")
	if err != nil || !reflect.DeepEqual(path, []string{"A", "B", "C"}) {
		t.Errorf("PathTo(C) = %v, %v", path, err)
	}
}

// TestBFS_Options covers MaxDepth, FilterEdge and OnVisit abort.
func TestBFS_Options(t *testing.T) {
	g := cycle(t)

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 3 {
		t.Errorf("MaxDepth(1) visited %v; want 3 vertices", res.Order)
	}
	if _, err := res.PathTo("C"); err == nil {
		t.Error("PathTo unreachable vertex must fail")
	}

	res, err = bfs.BFS(g, "A", bfs.WithFilterEdge(func(e *core.Edge) bool { return e.ID != "ab" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "D", "C", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: got %v", err)
	}
}

// TestComponents roots each component at its smallest vertex.
func TestComponents(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, v := range []string{"E", "A", "C", "B", "D"} {
		_ = g.AddVertex(v)
	}
	_, _ = g.AddEdge("B", "D", 0.5, core.WithID("bd"))
	_, _ = g.AddEdge("E", "C", 0.5, core.WithID("ce"))
	_, _ = g.AddEdge("D", "E", 0.5, core.WithID("de"))

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}
	if comps[0].Start != "A" || len(comps[0].Order) != 1 {
		t.Errorf("first component = %+v; want isolated A", comps[0])
	}
	if want := []string{"B", "D", "E", "C"}; comps[1].Start != "B" || !reflect.DeepEqual(comps[1].Order, want) {
		t.Errorf("second component order = %v; want %v", comps[1].Order, want)
	}
	if e := comps[1].Via["C"]; e == nil || e.ID != "ce" || comps[1].Parent["C"] != "E" {
		t.Errorf("C reached via %v from %q; want ce from E", e, comps[1].Parent["C"])
	}
}
