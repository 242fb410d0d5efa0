package domain

import (
	"sort"
	"strings"

	m "promptgen.dev/pkg/promptgen/internal/model"
)

// DefaultPriorityMarkers are the storage path markers preferred when several
// files could satisfy a reference.
var DefaultPriorityMarkers = []string{"loom", "mappings"}

// Ranker scores candidate files. Higher scores win; equal scores keep
// discovery order.
type Ranker interface {
	Score(h m.FileHandle) int
}

// MarkerRanker scores 1 when the storage path contains every marker
// (case-insensitive) and 0 otherwise.
type MarkerRanker struct {
	Markers []string
}

// NewMarkerRanker returns a MarkerRanker over markers, or over
// DefaultPriorityMarkers when none are given.
func NewMarkerRanker(markers ...string) MarkerRanker {
	if len(markers) == 0 {
		markers = DefaultPriorityMarkers
	}

	lowered := make([]string, 0, len(markers))
	for _, marker := range markers {
		lowered = append(lowered, strings.ToLower(marker))
	}

	return MarkerRanker{Markers: lowered}
}

// Score implements Ranker.
func (r MarkerRanker) Score(h m.FileHandle) int {
	if len(r.Markers) == 0 {
		return 0
	}

	location := strings.ToLower(h.StoragePath)
	for _, marker := range r.Markers {
		if !strings.Contains(location, strings.ToLower(marker)) {
			return 0
		}
	}

	return 1
}

// rankCandidates drops duplicate identities and orders the rest by score,
// highest first. Ties keep their input order.
func rankCandidates(ranker Ranker, candidates []m.FileHandle) []m.FileHandle {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]m.FileHandle, 0, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c.Identity]; ok {
			continue
		}

		seen[c.Identity] = struct{}{}
		unique = append(unique, c)
	}

	scores := make(map[string]int, len(unique))
	for _, c := range unique {
		scores[c.Identity] = ranker.Score(c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return scores[unique[i].Identity] > scores[unique[j].Identity]
	})

	return unique
}

func bestCandidate(ranker Ranker, candidates []m.FileHandle) (m.FileHandle, bool) {
	ranked := rankCandidates(ranker, candidates)
	if len(ranked) == 0 {
		return m.FileHandle{}, false
	}

	return ranked[0], true
}
