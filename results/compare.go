package results

import "sort"

// Comparison scores a result set against a reference color count per graph.
type Comparison struct {
	// Same counts graphs matching the reference color count exactly.
	Same int

	// Better counts graphs colored with fewer colors than the reference.
	Better int

	// Worse counts graphs colored with more colors, or not solved at all.
	Worse int

	// BetterGraphs and WorseGraphs list the graph names behind the
	// counters, sorted.
	BetterGraphs []string
	WorseGraphs  []string

	// Missing lists reference graphs with no record in the result set.
	Missing []string
}

// Compare scores records against reference. Reference graphs without a
// record land in Missing; records without a color count (not solved)
// count as Worse. Graphs outside the reference are ignored.
func Compare(reference map[string]int, records []Record) Comparison {
	byName := make(map[string]Record, len(records))
	for _, rec := range records {
		byName[rec.GraphName] = rec
	}

	names := make([]string, 0, len(reference))
	for name := range reference {
		names = append(names, name)
	}
	sort.Strings(names)

	var cmp Comparison
	for _, name := range names {
		rec, ok := byName[name]
		if !ok {
			cmp.Missing = append(cmp.Missing, name)
			continue
		}

		switch {
		case rec.NumColors == nil:
			cmp.Worse++
			cmp.WorseGraphs = append(cmp.WorseGraphs, name)
		case *rec.NumColors == reference[name]:
			cmp.Same++
		case *rec.NumColors < reference[name]:
			cmp.Better++
			cmp.BetterGraphs = append(cmp.BetterGraphs, name)
		default:
			cmp.Worse++
			cmp.WorseGraphs = append(cmp.WorseGraphs, name)
		}
	}

	return cmp
}
