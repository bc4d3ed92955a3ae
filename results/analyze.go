package results

// Analysis contrasts two result sets over their common instances.
type Analysis struct {
	// AName and BName label the two sides in reports.
	AName, BName string

	// TotalCommon counts instances present in both sets.
	TotalCommon int

	// BothSolved, OnlyA and OnlyB partition the common instances by who
	// solved them.
	BothSolved int
	OnlyA      int
	OnlyB      int

	// ABetter and BBetter count both-solved instances won on fewer
	// colors, ties broken by the shorter duration. An exact tie on both
	// scores neither side.
	ABetter int
	BBetter int

	// MeanDurationA and MeanDurationB average the solve durations in
	// seconds over each side's solved common instances.
	MeanDurationA float64
	MeanDurationB float64

	// MeanColorRatioPct averages a's color count as a percentage of b's
	// over both-solved instances with nonzero counts.
	MeanColorRatioPct float64
}

// Analyze pairs the records of a and b by graph name and aggregates the
// comparison. Legacy OPTIMAL/FEASIBLE statuses count as solved, so result
// sets written by exact solvers compare cleanly against heuristic ones.
func Analyze(a, b []Record, aName, bName string) Analysis {
	bByName := make(map[string]Record, len(b))
	for _, rec := range b {
		bByName[rec.GraphName] = rec
	}

	out := Analysis{AName: aName, BName: bName}

	var (
		durationsA, durationsB float64
		solvedA, solvedB       int
		ratioSum               float64
		ratioCount             int
	)
	for _, recA := range a {
		recB, ok := bByName[recA.GraphName]
		if !ok {
			continue
		}
		out.TotalCommon++

		aSolved, bSolved := recA.IsSolved(), recB.IsSolved()
		if aSolved {
			durationsA += recA.Duration
			solvedA++
		}
		if bSolved {
			durationsB += recB.Duration
			solvedB++
		}

		switch {
		case aSolved && bSolved:
			out.BothSolved++
			scorePair(&out, recA, recB)
			if recA.NumColors != nil && recB.NumColors != nil &&
				*recA.NumColors > 0 && *recB.NumColors > 0 {
				ratioSum += float64(*recA.NumColors) / float64(*recB.NumColors) * 100
				ratioCount++
			}
		case aSolved:
			out.OnlyA++
		case bSolved:
			out.OnlyB++
		}
	}

	if solvedA > 0 {
		out.MeanDurationA = durationsA / float64(solvedA)
	}
	if solvedB > 0 {
		out.MeanDurationB = durationsB / float64(solvedB)
	}
	if ratioCount > 0 {
		out.MeanColorRatioPct = ratioSum / float64(ratioCount)
	}

	return out
}

// scorePair awards a both-solved instance: fewer colors wins, equal
// colors fall back to the shorter duration.
func scorePair(out *Analysis, recA, recB Record) {
	colorsA, colorsB := colorCount(recA), colorCount(recB)
	switch {
	case colorsA < colorsB:
		out.ABetter++
	case colorsB < colorsA:
		out.BBetter++
	case recA.Duration < recB.Duration:
		out.ABetter++
	case recB.Duration < recA.Duration:
		out.BBetter++
	}
}

// colorCount reads the color count of a solved record, 0 when absent.
func colorCount(rec Record) int {
	if rec.NumColors == nil {
		return 0
	}

	return *rec.NumColors
}
