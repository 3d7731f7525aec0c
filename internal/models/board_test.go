package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardRow_MemberVariant(t *testing.T) {
	u := &User{Name: "田中太郎", Rank: RankForPoints(750)}
	row := BoardRow{Kind: EntrantMember, User: u, Score: 750, Display: "750pt"}

	require.Equal(t, "田中太郎", row.EntrantName())
	require.Equal(t, RankDedicated, row.EntrantRank().Level)
}

func TestBoardRow_PlaceholderVariant(t *testing.T) {
	row := BoardRow{
		Kind:        EntrantPlaceholder,
		Placeholder: &Placeholder{Name: "山田太郎", Grade: "高校3年", Rank: RankForPoints(3250)},
	}

	require.Equal(t, "山田太郎", row.EntrantName())
	require.Equal(t, RankExpert, row.EntrantRank().Level)
}
