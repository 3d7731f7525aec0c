package models

// RankLevel identifies one of the five reputation tiers.
type RankLevel string

const (
	RankBeginner  RankLevel = "beginner"
	RankLearner   RankLevel = "learner"
	RankDedicated RankLevel = "dedicated"
	RankMaster    RankLevel = "master"
	RankExpert    RankLevel = "expert"
)

// Rank is a reputation tier keyed by a minimum point threshold.
type Rank struct {
	Level     RankLevel `json:"level"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	MinPoints int       `json:"minPoints"`
}

// Ranks lists all tiers in ascending threshold order.
var Ranks = []Rank{
	{Level: RankBeginner, Name: "初学者", Color: "#6B7280", MinPoints: 0},
	{Level: RankLearner, Name: "学習者", Color: "#3B82F6", MinPoints: 101},
	{Level: RankDedicated, Name: "努力家", Color: "#8B5CF6", MinPoints: 501},
	{Level: RankMaster, Name: "受験マスター", Color: "#F59E0B", MinPoints: 1501},
	{Level: RankExpert, Name: "合格エキスパート", Color: "#EF4444", MinPoints: 3000},
}

// RankForPoints returns the tier with the largest threshold not exceeding
// points. Points exactly on a threshold belong to the higher tier.
// Negative input is treated as zero.
func RankForPoints(points int) Rank {
	if points < 0 {
		points = 0
	}
	current := Ranks[0]
	for _, r := range Ranks[1:] {
		if points < r.MinPoints {
			break
		}
		current = r
	}
	return current
}

// RankProgress reports how far points reach into the current tier:
// the percentage toward the next tier, the next tier itself (nil at the top),
// and the points still needed. At the top tier progress is always 100%.
func RankProgress(points int) (percent float64, next *Rank, needed int) {
	current := RankForPoints(points)

	for i, r := range Ranks {
		if r.Level != current.Level {
			continue
		}
		if i == len(Ranks)-1 {
			return 100, nil, 0
		}
		n := Ranks[i+1]
		span := n.MinPoints - r.MinPoints
		percent = float64(points-r.MinPoints) / float64(span) * 100
		return percent, &n, n.MinPoints - points
	}
	return 0, nil, 0
}
