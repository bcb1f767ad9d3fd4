package neighbor

// Found pairs a candidate with its squared distance to the query point.
type Found[C any] struct {
	Candidate C
	SqDist    float64
}

// Neighborhood holds the result of a nearest-two query: zero, one, or two
// candidates ordered by ascending distance.
//
//   - Both fields nil: no candidates were given (None).
//   - Only First set: exactly one candidate (One).
//   - Both set: First.SqDist <= Second.SqDist, and Second.SqDist is the
//     smallest distance among all remaining candidates (Two).
type Neighborhood[C any] struct {
	First  *Found[C]
	Second *Found[C]
}

// IsNone reports whether the candidate set was empty.
func (n Neighborhood[C]) IsNone() bool { return n.First == nil }

// IsOne reports whether exactly one candidate was found.
func (n Neighborhood[C]) IsOne() bool { return n.First != nil && n.Second == nil }

// IsTwo reports whether two or more candidates were found.
func (n Neighborhood[C]) IsTwo() bool { return n.Second != nil }

// GetNeighborhood returns the two nearest candidates to q, ordered by
// ascending distance, using a single streaming pass: the best two seen so
// far are maintained and updated against each new candidate by the
// three-element min-two reduction (smallest). Ties are broken by
// iteration order — the first-seen candidate at a given distance wins.
//
// Complexity: O(n) distance evaluations, O(1) auxiliary space.
func GetNeighborhood[P, C any](q P, candidates []C, dist func(P, C) float64) Neighborhood[C] {
	var first, second *Found[C]

	for i := range candidates {
		c := candidates[i]
		found := Found[C]{Candidate: c, SqDist: dist(q, c)}

		switch {
		case first == nil:
			first = &found
		case second == nil:
			f, s := smallestTwo(*first, found)
			first, second = &f, &s
		default:
			f, s := smallest(*first, *second, found)
			first, second = &f, &s
		}
	}

	return Neighborhood[C]{First: first, Second: second}
}

// smallestTwo orders two candidates ascending by distance, first-seen wins
// ties.
func smallestTwo[C any](a, b Found[C]) (Found[C], Found[C]) {
	if b.SqDist < a.SqDist {
		return b, a
	}

	return a, b
}

// smallest returns the two smallest of three candidates (d1, d2, d3),
// ordered ascending. Works regardless of the relative order of the three
// inputs — a three-comparison sorting network, exhaustive over all 6
// input orderings. Ties are broken by position: an earlier argument never
// loses its place to a later one at an equal distance.
func smallest[C any](d1, d2, d3 Found[C]) (Found[C], Found[C]) {
	if d1.SqDist > d2.SqDist {
		d1, d2 = d2, d1
	}
	if d2.SqDist > d3.SqDist {
		d2, d3 = d3, d2
	}
	if d1.SqDist > d2.SqDist {
		d1, d2 = d2, d1
	}

	return d1, d2
}
