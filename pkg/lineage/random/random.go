// Package random generates random bifurcating lineage topologies.
//
// Topologies grow from a single root branch "0". Each branch point picks a
// current leaf uniformly at random and splits it into two new branches, so a
// tree with n branch points has 2n+1 branches and 2n edges. Branch IDs are
// consecutive decimal integers in creation order.
//
// Generation is deterministic for a given *rand.Rand, which makes seeded
// topologies reproducible across runs:
//
//	rng := rand.New(rand.NewPCG(42, 0))
//	t, err := random.New(3, 40, rng)
package random

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/scottgigante/prosstt/pkg/lineage"
)

// Root is the ID of the root branch of every generated topology.
const Root lineage.Branch = "0"

// Topology returns the edge list of a random bifurcating tree with the given
// number of branch points. A nil rng uses the global math/rand/v2 source.
func Topology(branchPoints int, rng *rand.Rand) ([]lineage.Edge, error) {
	if branchPoints < 0 {
		return nil, fmt.Errorf("branch points must be non-negative, got %d", branchPoints)
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	seeds := []lineage.Branch{Root}
	edges := make([]lineage.Edge, 0, 2*branchPoints)
	next := 1
	for range branchPoints {
		i := intN(len(seeds))
		parent := seeds[i]
		a := lineage.Branch(strconv.Itoa(next))
		b := lineage.Branch(strconv.Itoa(next + 1))
		next += 2

		edges = append(edges, lineage.Edge{Parent: parent, Child: a}, lineage.Edge{Parent: parent, Child: b})
		seeds = slices.Delete(seeds, i, i+1)
		seeds = append(seeds, a, b)
	}
	return edges, nil
}

// Branches lists the root and every child of edges, in creation order.
func Branches(edges []lineage.Edge) []lineage.Branch {
	branches := make([]lineage.Branch, 0, len(edges)+1)
	branches = append(branches, Root)
	for _, e := range edges {
		branches = append(branches, e.Child)
	}
	return branches
}

// Durations assigns every branch of edges the value returned by length,
// called once per branch in [Branches] order.
func Durations(edges []lineage.Edge, length func() int) map[lineage.Branch]int {
	durations := make(map[lineage.Branch]int, len(edges)+1)
	for _, b := range Branches(edges) {
		durations[b] = length()
	}
	return durations
}

// Uniform assigns every branch of edges the same duration.
func Uniform(edges []lineage.Edge, duration int) map[lineage.Branch]int {
	return Durations(edges, func() int { return duration })
}

// New generates a random topology and builds a tree whose branches all have
// the given duration.
func New(branchPoints, duration int, rng *rand.Rand) (*lineage.Tree, error) {
	edges, err := Topology(branchPoints, rng)
	if err != nil {
		return nil, err
	}
	return lineage.New(edges, Uniform(edges, duration), Root)
}
