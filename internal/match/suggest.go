package match

import "sort"

// DefaultMinScore is the similarity below which a candidate is not suggested.
const DefaultMinScore = 0.5

// Candidate is a ranked name.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name, best first. Ties keep the input order.
func Rank(name string, candidates []string) []Candidate {
	ranked := make([]Candidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = Candidate{Name: c, Score: Similarity(name, c)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Suggest returns up to limit candidates scoring at least DefaultMinScore.
func Suggest(name string, candidates []string, limit int) []string {
	var out []string

	for _, c := range Rank(name, candidates) {
		if len(out) == limit || c.Score < DefaultMinScore {
			break
		}

		out = append(out, c.Name)
	}

	return out
}
