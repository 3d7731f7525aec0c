package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/mizusawa-dev/studyshare/internal/common"
	"github.com/mizusawa-dev/studyshare/internal/logging"
	"github.com/mizusawa-dev/studyshare/internal/models"
	"github.com/mizusawa-dev/studyshare/internal/repositories/materials"
	"github.com/mizusawa-dev/studyshare/internal/repositories/sessions"
)

// BoardKind selects one of the four ranking boards.
type BoardKind string

const (
	BoardOverall     BoardKind = "overall"
	BoardStudyTime   BoardKind = "study-time"
	BoardPosts       BoardKind = "posts"
	BoardImprovement BoardKind = "improvement"
)

// RankingService builds the ranking boards from registered users, posted
// materials, and recorded study sessions, mixed with the fixed community
// placeholder rows.
type RankingService struct {
	auth      *AuthService
	materials materials.Repository
	sessions  sessions.Repository
	log       logging.Logger
}

func NewRankingService(auth *AuthService, m materials.Repository, s sessions.Repository, log logging.Logger) *RankingService {
	return &RankingService{auth: auth, materials: m, sessions: s, log: log}
}

func rankByLevel(level models.RankLevel) models.Rank {
	for _, r := range models.Ranks {
		if r.Level == level {
			return r
		}
	}
	return models.Ranks[0]
}

// Display-only community rows shown alongside registered members.
var boardPlaceholders = map[BoardKind][]models.BoardRow{
	BoardOverall: {
		placeholderRow("山田太郎", "高校3年", models.RankExpert, 3250, "%dpt"),
		placeholderRow("佐藤花子", "高校3年", models.RankMaster, 2890, "%dpt"),
		placeholderRow("田中次郎", "高校2年", models.RankMaster, 2650, "%dpt"),
		placeholderRow("高橋美咲", "高校3年", models.RankDedicated, 1200, "%dpt"),
		placeholderRow("鈴木大輔", "高校2年", models.RankDedicated, 950, "%dpt"),
	},
	BoardStudyTime: {
		placeholderRow("田中次郎", "高校2年", models.RankMaster, 456, "%d時間"),
		placeholderRow("山田太郎", "高校3年", models.RankExpert, 423, "%d時間"),
		placeholderRow("佐藤花子", "高校3年", models.RankMaster, 389, "%d時間"),
	},
	BoardPosts: {
		placeholderRow("佐藤花子", "高校3年", models.RankMaster, 28, "%d件"),
		placeholderRow("山田太郎", "高校3年", models.RankExpert, 25, "%d件"),
		placeholderRow("高橋美咲", "高校3年", models.RankDedicated, 19, "%d件"),
	},
	BoardImprovement: {
		placeholderRow("高橋美咲", "高校3年", models.RankDedicated, 35, "+%d点"),
		placeholderRow("田中次郎", "高校2年", models.RankMaster, 32, "+%d点"),
		placeholderRow("鈴木大輔", "高校2年", models.RankDedicated, 28, "+%d点"),
	},
}

func placeholderRow(name, grade string, level models.RankLevel, score int, format string) models.BoardRow {
	return models.BoardRow{
		Kind: models.EntrantPlaceholder,
		Placeholder: &models.Placeholder{
			Name:  name,
			Grade: grade,
			Rank:  rankByLevel(level),
		},
		Score:   score,
		Display: fmt.Sprintf(format, score),
	}
}

// Board returns the rows of the requested board, highest score first, with
// positions assigned 1..n. Ties keep their existing relative order.
func (r *RankingService) Board(ctx context.Context, kind BoardKind) ([]models.BoardRow, error) {
	members, err := r.memberRows(ctx, kind)
	if err != nil {
		return nil, err
	}

	rows := append([]models.BoardRow{}, boardPlaceholders[kind]...)
	rows = append(rows, members...)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows, nil
}

func (r *RankingService) memberRows(ctx context.Context, kind BoardKind) ([]models.BoardRow, error) {
	users, err := r.auth.RegisteredUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.BoardRow, 0, len(users))
	for i := range users {
		u := users[i]

		var score int
		var format string
		switch kind {
		case BoardOverall:
			score, format = u.Points, "%dpt"
		case BoardStudyTime:
			stats, err := r.studyMinutes(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			score, format = stats/60, "%d時間"
		case BoardPosts:
			n, err := r.postCount(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			score, format = n, "%d件"
		case BoardImprovement:
			best, err := r.bestImprovement(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			score, format = best, "+%d点"
		default:
			return nil, fmt.Errorf("%w: unknown board %q", common.ErrInvalidInput, kind)
		}

		rows = append(rows, models.BoardRow{
			Kind:    models.EntrantMember,
			User:    &u,
			Score:   score,
			Display: fmt.Sprintf(format, score),
		})
	}
	return rows, nil
}

func (r *RankingService) studyMinutes(ctx context.Context, userID string) (int, error) {
	list, err := r.sessions.ByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, s := range list {
		total += s.Duration
	}
	return total, nil
}

func (r *RankingService) postCount(ctx context.Context, userID string) (int, error) {
	list, err := r.materials.Load(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range list {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *RankingService) bestImprovement(ctx context.Context, userID string) (int, error) {
	list, err := r.materials.Load(ctx)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, m := range list {
		if m.UserID != userID {
			continue
		}
		if imp := m.PerformanceData.Improvement(); imp > best {
			best = imp
		}
	}
	return best, nil
}
