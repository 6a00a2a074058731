package rams

import (
	"strings"
	"unicode"
)

// normalizeTitle lowercases, trims and strips everything but letters,
// digits and spaces so punctuation never defeats a match.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLower(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SimilarTitles reports whether two hazard titles describe the same
// hazard: identical after normalization, one contains the other, or they
// share enough significant keywords (words longer than three characters;
// one shared word suffices for short titles, two otherwise).
func SimilarTitles(a, b string) bool {
	na, nb := normalizeTitle(a), normalizeTitle(b)
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	wordsA := strings.Fields(na)
	wordsB := strings.Fields(nb)
	common := 0
	for _, w := range wordsA {
		if len(w) > 3 && containsWord(wordsB, w) {
			common++
		}
	}
	threshold := 2
	if min(len(wordsA), len(wordsB)) <= 2 {
		threshold = 1
	}
	return common >= threshold
}

func containsWord(words []string, w string) bool {
	for _, c := range words {
		if c == w {
			return true
		}
	}
	return false
}

// MergeSuggested folds AI-suggested hazards into an existing list. A
// suggestion whose title matches an existing hazard updates it in place:
// new control measures are appended (deduplicated case-insensitively),
// the harm description is appended when it adds information, an empty
// who-might-be-harmed is filled in, and the before-control risk scores
// keep whichever value is more conservative. Unmatched suggestions are
// appended as new hazards.
func MergeSuggested(existing, suggested []Hazard) []Hazard {
	merged := cloneHazards(existing)
	var fresh []Hazard

	for _, s := range suggested {
		idx := -1
		for i := range merged {
			if SimilarTitles(merged[i].Title, s.Title) {
				idx = i
				break
			}
		}
		if idx == -1 {
			fresh = append(fresh, cloneHazard(s))
			continue
		}

		h := &merged[idx]

		seen := make(map[string]struct{}, len(h.ControlMeasures))
		for _, m := range h.ControlMeasures {
			seen[strings.ToLower(strings.TrimSpace(m.Description))] = struct{}{}
		}
		for _, m := range s.ControlMeasures {
			key := strings.ToLower(strings.TrimSpace(m.Description))
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			h.ControlMeasures = append(h.ControlMeasures, ControlMeasure{ID: newID(), Description: m.Description})
		}

		if s.HowMightBeHarmed != "" && !strings.Contains(strings.ToLower(h.HowMightBeHarmed), strings.ToLower(s.HowMightBeHarmed)) {
			if h.HowMightBeHarmed == "" {
				h.HowMightBeHarmed = s.HowMightBeHarmed
			} else {
				h.HowMightBeHarmed = h.HowMightBeHarmed + "\n" + s.HowMightBeHarmed
			}
		}

		if h.WhoMightBeHarmed == "" {
			h.WhoMightBeHarmed = s.WhoMightBeHarmed
		}

		h.BeforeLikelihood = max(h.BeforeLikelihood, s.BeforeLikelihood)
		h.BeforeSeverity = max(h.BeforeSeverity, s.BeforeSeverity)
		h.BeforeTotal = max(h.BeforeTotal, s.BeforeTotal)
	}

	return append(merged, fresh...)
}
