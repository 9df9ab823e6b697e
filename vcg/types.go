// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: EdgeKey, PaymentResult and its read helpers, sentinel errors.

package vcg

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for payment computation.
var (
	// ErrNoPath indicates that no source→target path exists in the unmodified graph.
	// Per-edge unreachability during the payment loop is never reported this way;
	// it becomes an infinite payment instead.
	ErrNoPath = errors.New("vcg: no path between source and target")

	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("vcg: graph is nil")
)

// EdgeKey identifies a path edge in a payment map.
//
// For directed graphs it is the arc (From, To). For undirected graphs the
// orientation is the path's traversal order unless the calculator was built
// with WithCanonicalKeys, in which case From ≤ To.
type EdgeKey struct {
	From string
	To   string
}

// String renders the key as "(from, to)".
func (k EdgeKey) String() string {
	return "(" + k.From + ", " + k.To + ")"
}

// Reverse returns the key with its endpoints swapped.
func (k EdgeKey) Reverse() EdgeKey {
	return EdgeKey{From: k.To, To: k.From}
}

// PaymentResult is the outcome of one VCG computation.
//
// Payments holds exactly one entry per edge of Path; an edge that is not on
// the path owes nothing and is absent. A payment of +Inf means removing that
// edge disconnects source from target.
type PaymentResult struct {
	Path      []string
	TotalCost float64
	Payments  map[EdgeKey]float64

	// Directed records the orientation of the graph the result was computed on;
	// Payment uses it to accept either orientation for undirected edges.
	Directed bool
}

// Edges returns the keys of Payments in path order.
func (r *PaymentResult) Edges() []EdgeKey {
	if r == nil || len(r.Path) < 2 {
		return nil
	}
	out := make([]EdgeKey, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		k := EdgeKey{From: r.Path[i-1], To: r.Path[i]}
		if _, ok := r.Payments[k]; !ok && !r.Directed {
			k = k.Reverse()
		}
		out = append(out, k)
	}

	return out
}

// Payment returns the payment owed to the edge u→v, or 0 if the edge is not on
// the winning path. For undirected results either orientation matches.
func (r *PaymentResult) Payment(u, v string) float64 {
	if r == nil {
		return 0
	}
	k := EdgeKey{From: u, To: v}
	if p, ok := r.Payments[k]; ok {
		return p
	}
	if !r.Directed {
		if p, ok := r.Payments[k.Reverse()]; ok {
			return p
		}
	}

	return 0
}

// TotalPayment sums all payments. It is +Inf if any payment is.
func (r *PaymentResult) TotalPayment() float64 {
	if r == nil {
		return 0
	}
	var sum float64
	for _, p := range r.Payments {
		sum += p
	}

	return sum
}

// Overpayment is TotalPayment minus TotalCost: what the mechanism pays on top
// of the true cost of the winning path.
func (r *PaymentResult) Overpayment() float64 {
	return r.TotalPayment() - r.TotalCost
}

// Bottleneck reports the path edges whose payment is +Inf.
func (r *PaymentResult) Bottleneck() []EdgeKey {
	var out []EdgeKey
	for _, k := range r.Edges() {
		if math.IsInf(r.Payments[k], 1) {
			out = append(out, k)
		}
	}

	return out
}

// String renders a human-readable report.
func (r *PaymentResult) String() string {
	if r == nil {
		return "<nil>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Shortest path:  %v\n", r.Path)
	fmt.Fprintf(&b, "Total cost:     %g\n", r.TotalCost)
	b.WriteString("Payments:\n")
	for _, k := range r.Edges() {
		fmt.Fprintf(&b, "  %s pay: %g\n", k, r.Payments[k])
	}
	b.WriteString("For the rest of the edges, pay 0\n")
	fmt.Fprintf(&b, "Total payments: %g\n", r.TotalPayment())

	return b.String()
}
