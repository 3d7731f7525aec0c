package services

import (
	"sort"
	"strings"

	"github.com/mizusawa-dev/studyshare/internal/models"
)

// SortOrder selects how a filtered materials list is ordered.
type SortOrder string

const (
	// SortNewest orders by creation time, most recent first. Default.
	SortNewest SortOrder = "newest"
	// SortRating orders by the mean of the four ratings, highest first.
	SortRating SortOrder = "rating"
	// SortImprovement orders by after-score minus before-score, largest first.
	SortImprovement SortOrder = "improvement"
	// SortLikes orders by like count, highest first.
	SortLikes SortOrder = "likes"
)

// FilterAll is the wildcard value for the subject and level filters.
// An empty string is treated the same way.
const FilterAll = "all"

// Filter is one query over the materials collection.
type Filter struct {
	// Query matches case-insensitively as a substring of title or author.
	Query string
	// Subject must match exactly, unless it is the wildcard.
	Subject string
	// Level matches as a substring of the target level, unless wildcard.
	Level string
	Sort  SortOrder
}

func wildcard(v string) bool {
	return v == "" || v == FilterAll
}

func (f Filter) matches(m models.Material) bool {
	if q := strings.ToLower(f.Query); q != "" {
		title := strings.ToLower(m.Title)
		author := strings.ToLower(m.Author)
		if !strings.Contains(title, q) && !strings.Contains(author, q) {
			return false
		}
	}
	if !wildcard(f.Subject) && m.Subject != f.Subject {
		return false
	}
	if !wildcard(f.Level) && !strings.Contains(m.TargetLevel, f.Level) {
		return false
	}
	return true
}

// Apply returns a new slice holding the materials that pass the filter, in
// the requested order. The input is never mutated. The sort is stable, so
// materials with equal keys keep their original relative order.
func (f Filter) Apply(list []models.Material) []models.Material {
	out := make([]models.Material, 0, len(list))
	for _, m := range list {
		if f.matches(m) {
			out = append(out, m)
		}
	}

	switch f.Sort {
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Ratings.Average() > out[j].Ratings.Average()
		})
	case SortImprovement:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PerformanceData.Improvement() > out[j].PerformanceData.Improvement()
		})
	case SortLikes:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Likes > out[j].Likes
		})
	default: // SortNewest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}
