package digraph

// Node represents a vertex in the graph. Each node stores its own incident
// edges: outgoing edges keyed by head-node ID and incoming edges keyed by
// tail-node ID (an incidence-list representation). The cached degree counts
// the edges currently charged to this node so that [Graph.RemoveNode] can
// settle the graph-wide edge count in O(1).
//
// Node records are owned by the graph. Callers receive pointers so they can
// read the ID and attach algorithm state to Value, but must not manage the
// record's lifetime themselves.
type Node[K comparable, V any] struct {
	id K

	// Value is the caller-attachable payload slot. The graph never reads
	// or writes it; traversal and path algorithms built on top of the
	// graph use it to carry per-node state (visited flags, distances,
	// predecessor links).
	Value V

	out    map[K]*Edge[K] // head ID -> edge directed away from this node
	in     map[K]*Edge[K] // tail ID -> edge directed into this node
	degree int            // edges currently charged to this node
}

// ID returns the node's identifier. IDs are caller-supplied, unique within
// a graph, and stable for the node's lifetime.
func (n *Node[K, V]) ID() K { return n.id }

// Edge represents a directed, weighted connection between two nodes.
// The same *Edge is referenced from the tail node's outgoing map and the
// head node's incoming map; pointer identity is what makes the two entries
// "the same logical edge".
type Edge[K comparable] struct {
	From   K // tail node ID
	To     K // head node ID
	Weight float64
}

// Graph is a mutable directed graph with O(1) amortized insertion, lookup,
// and removal of nodes and edges. Edges are stored per node rather than in a
// global edge list, and [Graph.RemoveNode] does not scrub the removed node's
// neighbors: stale entries left in their edge maps are repaired lazily by
// the next lookup that touches them (see [Graph.Edge]).
//
// The identifier type K is fixed per graph instance, so two representations
// of "the same" ID (say an int and a string) cannot collide or silently
// diverge within one graph. V is the per-node payload type; use struct{} if
// no payload is needed.
//
// The zero value is not usable - use New to create a Graph. Graph is not
// safe for concurrent use without external synchronization.
type Graph[K comparable, V any] struct {
	nodes map[K]*Node[K, V]
	edges int
}

// New creates an empty graph.
func New[K comparable, V any]() *Graph[K, V] {
	return &Graph[K, V]{nodes: make(map[K]*Node[K, V])}
}

// NodeCount returns the number of live nodes in the graph.
func (g *Graph[K, V]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of live edges in the graph.
func (g *Graph[K, V]) EdgeCount() int { return g.edges }

// AddNode adds a node with the given ID and returns it with true.
// If a node with that ID already exists, nothing is changed and the result
// is nil and false; the existing node's edges are never overwritten.
//
// The returned node's Value field starts as the zero value of V and can be
// set directly by the caller.
func (g *Graph[K, V]) AddNode(id K) (*Node[K, V], bool) {
	if _, exists := g.nodes[id]; exists {
		return nil, false
	}
	n := &Node[K, V]{
		id:  id,
		out: make(map[K]*Edge[K]),
		in:  make(map[K]*Edge[K]),
	}
	g.nodes[id] = n
	return n, true
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the live record, so Value mutations
// are visible through later lookups. No ghost repair happens here.
func (g *Graph[K, V]) Node(id K) (*Node[K, V], bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// RemoveNode removes the node with the given ID and returns it with true,
// or nil and false if not found.
//
// Removal is O(1): the node entry is deleted and the edge count is reduced
// by the node's cached degree. Neighboring nodes still hold entries for the
// removed edges in their own maps; those ghost entries are purged lazily by
// the next [Graph.Edge] lookup (or any operation built on it) that touches
// them. A ghost that is never looked up before its owner is also removed is
// never repaired, so its edge stays charged to the owner's cached degree.
func (g *Graph[K, V]) RemoveNode(id K) (*Node[K, V], bool) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	g.edges -= n.degree
	delete(g.nodes, id)
	return n, true
}

// AddEdge adds a directed edge from -> to with weight 1 and returns it with
// true. See [Graph.AddWeightedEdge] for the rejection cases.
func (g *Graph[K, V]) AddEdge(from, to K) (*Edge[K], bool) {
	return g.AddWeightedEdge(from, to, 1)
}

// AddWeightedEdge adds a directed edge from -> to with the given weight and
// returns it with true. The result is nil and false, with nothing changed,
// if an edge from -> to already exists or either endpoint is not a live
// node. Adding from -> to never creates or implies to -> from; callers that
// want both directions add both edges.
//
// The duplicate check goes through [Graph.Edge], so any ghost entries left
// in the endpoints' maps by an earlier node removal are purged before the
// new edge is stored. A self-loop (from == to) occupies a slot in both of
// the node's maps but is charged to its degree, and to the edge count,
// only once.
func (g *Graph[K, V]) AddWeightedEdge(from, to K, weight float64) (*Edge[K], bool) {
	if _, exists := g.Edge(from, to); exists {
		return nil, false
	}
	fromNode, ok := g.nodes[from]
	if !ok {
		return nil, false
	}
	toNode, ok := g.nodes[to]
	if !ok {
		return nil, false
	}
	e := &Edge[K]{From: from, To: to, Weight: weight}
	fromNode.out[to] = e
	toNode.in[from] = e
	fromNode.degree++
	if fromNode != toNode {
		toNode.degree++
	}
	g.edges++
	return e, true
}

// Edge returns the edge from -> to and true, or nil and false if no such
// edge exists.
//
// Edge is also the graph's consistency-repair point. Node removal leaves
// ghost entries in the neighbors' edge maps; when a lookup touches such an
// entry - the paired entry is missing, points at a node that no longer
// exists, or disagrees after a node was removed and a new node was added
// under the same ID - the stale entry is deleted and the owning node's
// cached degree is reduced, then absence is reported. The graph-wide edge
// count is not touched: it was already settled when the node was removed.
// Repair is idempotent; repeated lookups on a stale slot keep reporting
// absence with no further effect.
func (g *Graph[K, V]) Edge(from, to K) (*Edge[K], bool) {
	fromNode, fromOK := g.nodes[from]
	toNode, toOK := g.nodes[to]
	switch {
	case !fromOK && !toOK:
		return nil, false
	case !fromOK:
		if _, stale := toNode.in[from]; stale {
			delete(toNode.in, from)
			toNode.degree--
		}
		return nil, false
	case !toOK:
		if _, stale := fromNode.out[to]; stale {
			delete(fromNode.out, to)
			fromNode.degree--
		}
		return nil, false
	}
	outEdge, outOK := fromNode.out[to]
	inEdge, inOK := toNode.in[from]
	if outOK && inOK && outEdge == inEdge {
		return outEdge, true
	}
	// The two sides disagree: one endpoint was removed and recreated under
	// the same ID. Whatever is left is stale.
	if outOK {
		delete(fromNode.out, to)
		fromNode.degree--
	}
	if inOK {
		delete(toNode.in, from)
		toNode.degree--
	}
	return nil, false
}

// RemoveEdge removes the edge from -> to and returns it with true, or nil
// and false if no such edge exists. The lookup goes through [Graph.Edge],
// so stale entries on the slot are repaired either way.
func (g *Graph[K, V]) RemoveEdge(from, to K) (*Edge[K], bool) {
	e, ok := g.Edge(from, to)
	if !ok {
		return nil, false
	}
	fromNode := g.nodes[from]
	toNode := g.nodes[to]
	delete(fromNode.out, to)
	delete(toNode.in, from)
	fromNode.degree--
	if fromNode != toNode {
		toNode.degree--
	}
	g.edges--
	return e, true
}

// OutEdges returns the edges directed away from the node, in unspecified
// order. Returns nil if the node does not exist. Every candidate entry is
// revalidated through [Graph.Edge], so ghost entries are filtered from the
// result and purged from the node's map as a side effect.
func (g *Graph[K, V]) OutEdges(id K) []*Edge[K] {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	var edges []*Edge[K]
	for to := range n.out {
		if e, ok := g.Edge(id, to); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// InEdges returns the edges directed into the node, in unspecified order.
// Returns nil if the node does not exist. Ghost entries are filtered and
// purged, as in [Graph.OutEdges].
func (g *Graph[K, V]) InEdges(id K) []*Edge[K] {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	var edges []*Edge[K]
	for from := range n.in {
		if e, ok := g.Edge(from, id); ok {
			edges = append(edges, e)
		}
	}
	return edges
}

// AllEdges returns every edge touching the node: incoming, outgoing, and a
// self-loop exactly once even though it sits in both maps. The order is
// unspecified. Returns nil if the node does not exist.
func (g *Graph[K, V]) AllEdges(id K) []*Edge[K] {
	edges := g.InEdges(id)
	if loop, ok := g.Edge(id, id); ok {
		// Drop the in-map occurrence by swap-with-last; the out-map
		// occurrence appended below keeps the loop in the result once.
		for i, e := range edges {
			if e == loop {
				edges[i] = edges[len(edges)-1]
				edges = edges[:len(edges)-1]
				break
			}
		}
	}
	return append(edges, g.OutEdges(id)...)
}

// ForEachNode calls fn once for every live node, in unspecified order.
// fn must not add or remove nodes.
func (g *Graph[K, V]) ForEachNode(fn func(*Node[K, V])) {
	for _, n := range g.nodes {
		fn(n)
	}
}

// ForEachEdge calls fn once for every live edge, in unspecified order.
// Each entry is revalidated through [Graph.Edge] before fn runs, so the
// enumeration never yields a stale edge even immediately after node
// removals, and touched ghost slots are repaired along the way.
// fn must not mutate the graph.
func (g *Graph[K, V]) ForEachEdge(fn func(*Edge[K])) {
	for id, n := range g.nodes {
		for to := range n.out {
			if e, ok := g.Edge(id, to); ok {
				fn(e)
			}
		}
	}
}
