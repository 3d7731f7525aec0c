package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/services"
)

// List prompts for the filter fields and prints the matching materials.
// Empty answers act as wildcards.
func (a *App) List(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search (title or author, empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	subject, err := GetSimpleText(a.reader, "Subject (exact, empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	level, err := GetSimpleText(a.reader, "Level (empty for all)", os.Stdout)
	if err != nil {
		return err
	}
	sortBy, err := GetSimpleText(a.reader, "Sort (newest/rating/improvement/likes, empty for newest)", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.materials.List(ctx, services.Filter{
		Query:   query,
		Subject: subject,
		Level:   level,
		Sort:    services.SortOrder(sortBy),
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(list) == 0 {
		printlnFn("No materials found")
		return nil
	}
	for _, m := range list {
		printlnFn(formatMaterialLine(m))
	}
	return nil
}

func formatMaterialLine(m models.Material) string {
	return fmt.Sprintf("[%s] %s / %s (%s) ★%.2f +%d点 ♥%d",
		m.ID, m.Title, m.Author, m.Subject,
		m.Ratings.Average(), m.PerformanceData.Improvement(), m.Likes)
}

// Show prompts for a material ID and prints the full review.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Material ID", os.Stdout)
	if err != nil {
		return err
	}

	list, err := a.materials.List(ctx, services.Filter{})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	for _, m := range list {
		if m.ID != id {
			continue
		}
		printMaterial(m)
		return nil
	}

	printlnFn("Material not found:", id)
	return common.ErrNotFound
}

func printMaterial(m models.Material) {
	printlnFn(fmt.Sprintf("%s / %s (%s)", m.Title, m.Author, m.Publisher))
	printlnFn(fmt.Sprintf("Subject: %s  Level: %s  Type: %s  Price: %d円", m.Subject, m.TargetLevel, m.MaterialType, m.Price))
	printlnFn(fmt.Sprintf("Posted by %s on %s", m.User.Name, m.CreatedAt.Format("2006-01-02")))
	printlnFn(fmt.Sprintf("Ratings: understanding %d, quality %d, value %d, recommendation %d (avg %.2f)",
		m.Ratings.Understanding, m.Ratings.Quality, m.Ratings.Value, m.Ratings.Recommendation, m.Ratings.Average()))
	printlnFn(fmt.Sprintf("Scores: %d → %d (+%d)", m.PerformanceData.BeforeScore, m.PerformanceData.AfterScore, m.PerformanceData.Improvement()))
	printlnFn(fmt.Sprintf("Study: %dh, %d pages, %d%% completed", m.TotalStudyHours, m.PagesStudied, m.CompletionRate))
	if m.Review != "" {
		printlnFn("Review:", m.Review)
	}
	if len(m.Pros) > 0 {
		printlnFn("Pros:", strings.Join(m.Pros, " / "))
	}
	if len(m.Cons) > 0 {
		printlnFn("Cons:", strings.Join(m.Cons, " / "))
	}
	if m.Tips != "" {
		printlnFn("Tips:", m.Tips)
	}
	printlnFn(fmt.Sprintf("♥%d  %d comments", m.Likes, len(m.Comments)))
	for _, c := range m.Comments {
		printlnFn(fmt.Sprintf("  %s: %s", c.User.Name, c.Content))
	}
}

// Post interactively collects a review draft, persists it, and awards the
// posting reward.
func (a *App) Post(ctx context.Context) error {
	u := a.auth.Current()
	if u == nil {
		printlnFn("Not logged in")
		return common.ErrNoActiveSession
	}

	var draft models.Material
	var err error

	if draft.Title, err = GetSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if draft.Author, err = GetSimpleText(a.reader, "Author", os.Stdout); err != nil {
		return err
	}
	if draft.Publisher, err = GetSimpleText(a.reader, "Publisher", os.Stdout); err != nil {
		return err
	}
	if draft.Price, err = GetInt(a.reader, "Price (円)", 0, os.Stdout); err != nil {
		return err
	}
	if draft.Subject, err = GetSimpleText(a.reader, "Subject", os.Stdout); err != nil {
		return err
	}
	if draft.TargetLevel, err = GetSimpleText(a.reader, "Target level", os.Stdout); err != nil {
		return err
	}
	if draft.MaterialType, err = GetSimpleText(a.reader, "Material type (参考書/問題集/単語帳...)", os.Stdout); err != nil {
		return err
	}

	if draft.Ratings.Understanding, err = GetInt(a.reader, "Rating: understanding (1-5)", 3, os.Stdout); err != nil {
		return err
	}
	if draft.Ratings.Quality, err = GetInt(a.reader, "Rating: quality (1-5)", 3, os.Stdout); err != nil {
		return err
	}
	if draft.Ratings.Value, err = GetInt(a.reader, "Rating: value (1-5)", 3, os.Stdout); err != nil {
		return err
	}
	if draft.Ratings.Recommendation, err = GetInt(a.reader, "Rating: recommendation (1-5)", 3, os.Stdout); err != nil {
		return err
	}

	if draft.TotalStudyHours, err = GetInt(a.reader, "Total study hours", 0, os.Stdout); err != nil {
		return err
	}
	if draft.PagesStudied, err = GetInt(a.reader, "Pages studied", 0, os.Stdout); err != nil {
		return err
	}
	if draft.CompletionRate, err = GetInt(a.reader, "Completion rate (0-100)", 0, os.Stdout); err != nil {
		return err
	}
	if draft.PerformanceData.BeforeScore, err = GetInt(a.reader, "Score before", 0, os.Stdout); err != nil {
		return err
	}
	if draft.PerformanceData.AfterScore, err = GetInt(a.reader, "Score after", 0, os.Stdout); err != nil {
		return err
	}

	if draft.Review, err = GetMultiline(a.reader, "Review", os.Stdout); err != nil {
		return err
	}
	if draft.Pros, err = GetList(a.reader, "Pros (comma separated)", os.Stdout); err != nil {
		return err
	}
	if draft.Cons, err = GetList(a.reader, "Cons (comma separated)", os.Stdout); err != nil {
		return err
	}
	if draft.Tips, err = GetSimpleText(a.reader, "Tips", os.Stdout); err != nil {
		return err
	}
	if draft.Tags, err = GetList(a.reader, "Tags (comma separated)", os.Stdout); err != nil {
		return err
	}

	m, err := a.materials.Post(ctx, *u, draft)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	updated, err := a.auth.AwardPoints(ctx, a.config.PostRewardPoints, "post material")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Posted %s (+%dpt, now %dpt)", m.ID, a.config.PostRewardPoints, updated.Points))
	return nil
}
