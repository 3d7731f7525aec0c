package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/mizusawa-dev/studyshare/internal/services"
)

var boardTitles = []struct {
	kind  services.BoardKind
	title string
}{
	{services.BoardOverall, "総合ランキング"},
	{services.BoardStudyTime, "学習時間ランキング"},
	{services.BoardPosts, "投稿数ランキング"},
	{services.BoardImprovement, "成績向上ランキング"},
}

// Rank prints one of the four ranking boards, or all of them when the
// user leaves the choice empty.
func (a *App) Rank(ctx context.Context) error {
	choice, err := GetSimpleText(a.reader, "Board (overall/study-time/posts/improvement, empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	for _, b := range boardTitles {
		if choice != "" && choice != string(b.kind) {
			continue
		}

		rows, err := a.ranking.Board(ctx, b.kind)
		if err != nil {
			printlnFn(err.Error())
			return err
		}

		printlnFn("==", b.title, "==")
		for _, row := range rows {
			marker := " "
			if u := a.auth.Current(); u != nil && row.User != nil && row.User.ID == u.ID {
				marker = "*"
			}
			printlnFn(fmt.Sprintf("%s%2d. %s (%s) %s", marker, row.Position, row.EntrantName(), row.EntrantRank().Name, row.Display))
		}
	}
	return nil
}
