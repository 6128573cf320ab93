package game

import (
	"fmt"
	"sort"
	"strings"
)

// RunGrade is the computed marksmanship grade for one range run.
type RunGrade struct {
	Grade string  // A+, A, B+, B, C+, C, D, F
	Score float64 // 0-100

	// Section scores (0-100; -1 = not enough data to grade).
	AccuracyScore   float64
	LethalityScore  float64
	DisciplineScore float64

	GoodTraits []string
	BadTraits  []string
}

// Section weights in the overall score. Ungraded sections drop out and the
// rest are renormalised.
const (
	weightAccuracy   = 0.5
	weightLethality  = 0.3
	weightDiscipline = 0.2
)

// GradeRun scores a finished run. firstDown is the time the first target went
// down (-1 if none); duration is the run length.
func GradeRun(r ScenarioResult, firstDown, duration float64) RunGrade {
	st := r.Stats
	g := RunGrade{AccuracyScore: -1, LethalityScore: -1, DisciplineScore: -1}

	if st.Pellets > 0 {
		g.AccuracyScore = gradeClamp(r.HitRate * 100)
	}
	if st.Shots > 0 && duration > 0 {
		if firstDown >= 0 {
			g.LethalityScore = gradeClamp(100 * (1 - firstDown/duration))
		} else {
			g.LethalityScore = 0
		}
	}
	if presses := st.Shots + st.Rejected + st.EmptyClicks; presses > 0 {
		g.DisciplineScore = gradeClamp(100 * gradeFrac(st.Shots, presses))
	}

	var sum, weight float64
	for _, s := range []struct{ score, w float64 }{
		{g.AccuracyScore, weightAccuracy},
		{g.LethalityScore, weightLethality},
		{g.DisciplineScore, weightDiscipline},
	} {
		if s.score < 0 {
			continue
		}
		sum += s.score * s.w
		weight += s.w
	}
	if weight > 0 {
		g.Score = sum / weight
	}
	g.Grade = LetterGrade(g.Score)
	g.GoodTraits, g.BadTraits = gradeTraits(r, firstDown)
	return g
}

func gradeTraits(r ScenarioResult, firstDown float64) (good, bad []string) {
	st := r.Stats
	if st.Pellets > 0 && r.HitRate >= 0.6 {
		good = append(good, "tight_grouping")
	}
	if firstDown >= 0 && firstDown < 1 {
		good = append(good, "quick_kill")
	}
	if st.Shots > 0 && st.Rejected == 0 && st.EmptyClicks == 0 {
		good = append(good, "clean_trigger")
	}

	if st.Pellets > 0 && r.HitRate < 0.25 {
		bad = append(bad, "spraying")
	}
	if st.Rejected > st.Shots {
		bad = append(bad, "trigger_mashing")
	}
	if st.EmptyClicks > 0 {
		bad = append(bad, "ran_dry")
	}
	if st.Shots > 0 && r.DummiesDown == 0 {
		bad = append(bad, "no_kill")
	}
	return good, bad
}

// FormatGrade renders one grade as report lines.
func FormatGrade(g RunGrade) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grade: %-2s score=%.0f", g.Grade, g.Score)
	var scores []string
	if g.AccuracyScore >= 0 {
		scores = append(scores, fmt.Sprintf("Accuracy=%.0f", g.AccuracyScore))
	}
	if g.LethalityScore >= 0 {
		scores = append(scores, fmt.Sprintf("Lethality=%.0f", g.LethalityScore))
	}
	if g.DisciplineScore >= 0 {
		scores = append(scores, fmt.Sprintf("Discipline=%.0f", g.DisciplineScore))
	}
	if len(scores) > 0 {
		fmt.Fprintf(&sb, "  %s", strings.Join(scores, "  "))
	}
	sb.WriteByte('\n')
	if len(g.GoodTraits) > 0 {
		fmt.Fprintf(&sb, "  Good: %s\n", strings.Join(g.GoodTraits, ", "))
	}
	if len(g.BadTraits) > 0 {
		fmt.Fprintf(&sb, "  Bad:  %s\n", strings.Join(g.BadTraits, ", "))
	}
	return sb.String()
}

// FormatGradesSummary returns a compact summary over many runs.
func FormatGradesSummary(grades []RunGrade) string {
	if len(grades) == 0 {
		return ""
	}
	var sum float64
	good, bad := map[string]int{}, map[string]int{}
	for _, g := range grades {
		sum += g.Score
		for _, t := range g.GoodTraits {
			good[t]++
		}
		for _, t := range g.BadTraits {
			bad[t]++
		}
	}
	avg := sum / float64(len(grades))

	var sb strings.Builder
	fmt.Fprintf(&sb, "avg_score=%.1f (%s)\n", avg, LetterGrade(avg))
	if len(good) > 0 {
		fmt.Fprintf(&sb, "  Top good: %s\n", topTraits(good, 4))
	}
	if len(bad) > 0 {
		fmt.Fprintf(&sb, "  Top bad:  %s\n", topTraits(bad, 4))
	}
	return sb.String()
}

func gradeFrac(num, denom int) float64 {
	if denom <= 0 {
		return 0
	}
	return float64(num) / float64(denom)
}

func gradeClamp(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}

// topTraits lists the n most frequent traits, ties by name.
func topTraits(counts map[string]int, n int) string {
	type kv struct {
		trait string
		count int
	}
	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count != items[j].count {
			return items[i].count > items[j].count
		}
		return items[i].trait < items[j].trait
	})
	if len(items) > n {
		items = items[:n]
	}
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = fmt.Sprintf("%s(%d)", it.trait, it.count)
	}
	return strings.Join(parts, ", ")
}
