// SPDX-License-Identifier: MIT

package core

// ArcView is a read-only projection of a Network onto a cost graph: an arc
// u→v exists when the projection's predicate holds.
// It satisfies bellmanford.Graph without core importing that package.
type ArcView struct {
	nw       *Network
	residual bool
}

// ResidualArcs views the residual graph: u→v exists iff residual[u][v] > 0.
// Reverse arcs of pushed flow appear here with their negated cost. The view
// reads the live matrices, so it reflects every Push made after it was taken.
func (nw *Network) ResidualArcs() ArcView {
	return ArcView{nw: nw, residual: true}
}

// Arcs views the declared edge list: u→v exists iff (u, v) was added through
// AddEdge, whatever its capacity, and carries the cost it was declared with.
func (nw *Network) Arcs() ArcView {
	return ArcView{nw: nw}
}

// VertexCount returns the number of vertices of the underlying network.
func (a ArcView) VertexCount() int { return a.nw.n }

// Arc returns the cost of u→v and whether that arc exists in the view.
// Out-of-range vertices report no arc.
func (a ArcView) Arc(u, v int) (int64, bool) {
	nw := a.nw
	if !nw.valid(u) || !nw.valid(v) {
		return 0, false
	}
	if a.residual {
		if nw.resRows[u][v] <= 0 {
			return 0, false
		}
		return nw.costRows[u][v], true
	}
	if !nw.present[u*nw.n+v] {
		return 0, false
	}

	return nw.declRows[u][v], true
}
