package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mizusawa-dev/studyshare/internal/models"
)

func newRankingFixture(t *testing.T) (*RankingService, *AuthService, *fakeMaterialRepo, *fakeSessionRepo) {
	t.Helper()
	auth, _ := newAuth(t)
	mats := &fakeMaterialRepo{}
	sess := &fakeSessionRepo{}
	return NewRankingService(auth, mats, sess, discardLogger()), auth, mats, sess
}

func registerWithPoints(t *testing.T, auth *AuthService, email, name string, points int) models.User {
	t.Helper()
	ctx := context.Background()
	u, err := auth.Register(ctx, RegisterParams{Email: email, Name: name, Grade: "高校3年"}, []byte("pw"))
	require.NoError(t, err)
	if points > 0 {
		u, err = auth.AwardPoints(ctx, points, "test")
		require.NoError(t, err)
	}
	require.NoError(t, auth.Logout(ctx))
	return u
}

func TestBoard_OverallMergesMembersWithPlaceholders(t *testing.T) {
	svc, auth, _, _ := newRankingFixture(t)

	registerWithPoints(t, auth, "a@example.com", "新井一郎", 3000)
	registerWithPoints(t, auth, "b@example.com", "木村二郎", 100)

	rows, err := svc.Board(context.Background(), BoardOverall)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	// Scores descend and positions run 1..n.
	for i, row := range rows {
		require.Equal(t, i+1, row.Position)
		if i > 0 {
			require.LessOrEqual(t, row.Score, rows[i-1].Score)
		}
	}

	// 3000 points slots between the 3250 and 2890 placeholders.
	require.Equal(t, models.EntrantMember, rows[1].Kind)
	require.Equal(t, "新井一郎", rows[1].EntrantName())
	require.Equal(t, "3000pt", rows[1].Display)

	// Placeholder rows carry no user record.
	require.Equal(t, models.EntrantPlaceholder, rows[0].Kind)
	require.Nil(t, rows[0].User)
	require.Equal(t, "山田太郎", rows[0].EntrantName())
}

func TestBoard_TiesKeepPlaceholderBeforeMember(t *testing.T) {
	svc, auth, _, _ := newRankingFixture(t)

	// Same score as the 1200-point placeholder. Placeholders are appended
	// first, so the placeholder stays ahead after the stable sort.
	registerWithPoints(t, auth, "tie@example.com", "同点花子", 1200)

	rows, err := svc.Board(context.Background(), BoardOverall)
	require.NoError(t, err)

	var tied []models.BoardRow
	for _, row := range rows {
		if row.Score == 1200 {
			tied = append(tied, row)
		}
	}
	require.Len(t, tied, 2)
	require.Equal(t, models.EntrantPlaceholder, tied[0].Kind)
	require.Equal(t, models.EntrantMember, tied[1].Kind)
}

func TestBoard_StudyTimeCountsWholeHours(t *testing.T) {
	svc, auth, _, sess := newRankingFixture(t)

	u := registerWithPoints(t, auth, "a@example.com", "新井一郎", 0)
	sess.items = []models.StudySession{
		{ID: "s1", UserID: u.ID, Subject: "数学", Duration: 150},
		{ID: "s2", UserID: u.ID, Subject: "英語", Duration: 45},
	}

	rows, err := svc.Board(context.Background(), BoardStudyTime)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	member := findMember(t, rows, "新井一郎")
	require.Equal(t, 3, member.Score)
	require.Equal(t, "3時間", member.Display)
}

func TestBoard_PostsCountsOwnMaterials(t *testing.T) {
	svc, auth, mats, _ := newRankingFixture(t)

	u := registerWithPoints(t, auth, "a@example.com", "新井一郎", 0)
	mats.items = []models.Material{
		{ID: "m1", UserID: u.ID},
		{ID: "m2", UserID: u.ID},
		{ID: "m3", UserID: "someone-else"},
	}

	rows, err := svc.Board(context.Background(), BoardPosts)
	require.NoError(t, err)

	member := findMember(t, rows, "新井一郎")
	require.Equal(t, 2, member.Score)
	require.Equal(t, "2件", member.Display)
}

func TestBoard_ImprovementTakesBestPost(t *testing.T) {
	svc, auth, mats, _ := newRankingFixture(t)

	u := registerWithPoints(t, auth, "a@example.com", "新井一郎", 0)
	mats.items = []models.Material{
		{ID: "m1", UserID: u.ID, PerformanceData: models.PerformanceData{BeforeScore: 40, AfterScore: 70}},
		{ID: "m2", UserID: u.ID, PerformanceData: models.PerformanceData{BeforeScore: 50, AfterScore: 60}},
	}

	rows, err := svc.Board(context.Background(), BoardImprovement)
	require.NoError(t, err)

	member := findMember(t, rows, "新井一郎")
	require.Equal(t, 30, member.Score)
	require.Equal(t, "+30点", member.Display)
}

func findMember(t *testing.T, rows []models.BoardRow, name string) models.BoardRow {
	t.Helper()
	for _, row := range rows {
		if row.Kind == models.EntrantMember && row.EntrantName() == name {
			return row
		}
	}
	t.Fatalf("no member row named %s", name)
	return models.BoardRow{}
}
