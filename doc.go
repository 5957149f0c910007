// Package digraph provides a mutable directed graph with O(1) amortized
// node and edge insertion, lookup, and removal.
//
// # Overview
//
// The graph is an incidence list: each node owns a map of its outgoing
// edges keyed by head-node ID and a map of its incoming edges keyed by
// tail-node ID. There is no global edge list - every edge is reachable from
// exactly its two endpoints, and both endpoints reference the same edge
// record.
//
// What makes the structure interesting is how it removes nodes. RemoveNode
// is O(1): it deletes the node entry and settles the edge count from the
// node's cached degree, without walking the neighbors to scrub their now
// dangling edge-map entries. Those ghost entries are repaired lazily - the
// next Edge lookup that touches a stale slot deletes it and reports
// absence. The cleanup cost of a removal is therefore spread across later
// reads instead of paid eagerly, and is never paid at all for neighbors
// that are never queried again.
//
// # Basic Usage
//
// Create a graph with [New], fixing the identifier type and the per-node
// payload type for the graph's lifetime:
//
//	g := digraph.New[string, int]()
//	g.AddNode("a")
//	g.AddNode("b")
//	g.AddEdge("a", "b")                 // weight 1
//	g.AddWeightedEdge("b", "a", 2.5)
//
//	if e, ok := g.Edge("a", "b"); ok {
//	    fmt.Println(e.Weight)
//	}
//
// Edges are directed: adding a -> b does not create b -> a. Model an
// undirected connection by adding both directions.
//
// Operations never panic and never return errors. Absence - a missing
// node, a missing edge, a duplicate insertion - is reported through the
// comma-ok result:
//
//	if _, ok := g.AddNode("a"); !ok {
//	    // "a" already exists; its edges were left untouched
//	}
//
// # Node Payloads
//
// Graph algorithms usually need per-node state: visited flags, tentative
// distances, predecessor links. The Value field is the slot for that state;
// the graph itself never touches it:
//
//	g := digraph.New[string, *int]()
//	n, _ := g.AddNode("start")
//	dist := 0
//	n.Value = &dist
//
// Instantiate V as struct{} when no payload is needed, or as
// map[string]any for open-ended annotation.
//
// # Node Removal and Lazy Repair
//
// After RemoveNode(a), entries for a's edges still sit in the edge maps of
// a's former neighbors. Any lookup that touches such an entry - Edge,
// RemoveEdge, InEdges, OutEdges, AllEdges, ForEachEdge, or the duplicate
// check inside AddEdge - deletes it and reports absence. Repair is
// idempotent and never changes EdgeCount; that bookkeeping was settled when
// the node was removed. The same mechanism covers the subtler case where a
// node is removed and a new node is later added under the same ID: a
// half-matched edge pair is detected and purged instead of being mistaken
// for a live edge.
//
// # Concurrency
//
// Graph is not safe for concurrent use. Lookups repair ghost state, so even
// read-like operations mutate the structure; guard all access with one
// exclusive lock if the graph is shared between goroutines.
package digraph
