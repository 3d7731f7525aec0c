package materials

import (
	"time"

	"github.com/mizusawa-dev/studyshare/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var seedUsers = []models.User{
	{
		ID:            "1",
		Email:         "tanaka@example.com",
		Name:          "田中太郎",
		Grade:         "高校3年",
		TargetSchools: []string{"東京大学", "早稲田大学"},
		Subjects:      []string{"数学", "英語"},
		Rank:          models.RankForPoints(750),
		Points:        750,
		CreatedAt:     date(2024, time.January, 15),
	},
	{
		ID:            "2",
		Email:         "sato@example.com",
		Name:          "佐藤花子",
		Grade:         "高校2年",
		TargetSchools: []string{"京都大学"},
		Subjects:      []string{"英語", "国語"},
		Rank:          models.RankForPoints(320),
		Points:        320,
		CreatedAt:     date(2024, time.February, 1),
	},
}

// SeedMaterials returns a fresh copy of the built-in demo collection shown
// before anyone has posted.
func SeedMaterials() []models.Material {
	return []models.Material{
		{
			ID:           "1",
			UserID:       "1",
			User:         seedUsers[0],
			Title:        "チャート式基礎からの数学I+A",
			Author:       "黄チャート編集部",
			Publisher:    "数研出版",
			Price:        2090,
			ISBN:         "978-4410105123",
			Subject:      "数学",
			SubCategory:  "数学I・A",
			TargetLevel:  "基礎～標準",
			MaterialType: "参考書",
			Images:       []string{"https://images.pexels.com/photos/256455/pexels-photo-256455.jpeg"},
			UsagePeriod: models.UsagePeriod{
				StartDate: date(2024, time.January, 1),
				EndDate:   date(2024, time.May, 31),
			},
			TotalStudyHours: 120,
			PagesStudied:    800,
			CompletionRate:  85,
			PerformanceData: models.PerformanceData{
				BeforeScore: 45, AfterScore: 72,
				BeforeDeviation: 48.5, AfterDeviation: 58.2,
			},
			Ratings:        models.Ratings{Understanding: 5, Quality: 4, Value: 5, Recommendation: 5},
			Review:         "基礎から応用まで段階的に学習できる良書。解説が丁寧で独学でも理解しやすい。特に二次関数の分野は図解が豊富で視覚的に理解できた。定期テストの成績が大幅に向上し、模試でも安定して高得点を取れるようになった。",
			Pros:           []string{"解説が丁寧", "例題が豊富", "基礎から応用まで体系的"},
			Cons:           []string{"ページ数が多い", "持ち運びに不便"},
			Tips:           "毎日30分ずつコツコツ進める。分からない問題は解説を読み返し、類似問題を繰り返し解く。",
			RecommendedFor: "数学が苦手で基礎から固めたい人、独学で受験勉強を進めたい人",
			Tags:           []string{"基礎固め", "コツコツ型", "独学向け", "定期テスト対策"},
			Likes:          24,
			Comments:       []models.Comment{},
			Verified:       true,
			CreatedAt:      date(2024, time.June, 15),
		},
		{
			ID:           "2",
			UserID:       "2",
			User:         seedUsers[1],
			Title:        "システム英単語",
			Author:       "刀祢雅彦",
			Publisher:    "駿台文庫",
			Price:        1100,
			Subject:      "英語",
			SubCategory:  "英単語",
			TargetLevel:  "標準～難関",
			MaterialType: "単語帳",
			Images:       []string{"https://images.pexels.com/photos/159581/dictionary-reference-book-learning-meaning-159581.jpeg"},
			UsagePeriod: models.UsagePeriod{
				StartDate: date(2024, time.February, 1),
				EndDate:   date(2024, time.August, 31),
			},
			TotalStudyHours: 95,
			PagesStudied:    400,
			CompletionRate:  90,
			PerformanceData: models.PerformanceData{
				BeforeScore: 55, AfterScore: 78,
				BeforeDeviation: 52.1, AfterDeviation: 61.8,
			},
			Ratings:        models.Ratings{Understanding: 4, Quality: 5, Value: 4, Recommendation: 5},
			Review:         "入試頻出単語が効率よく覚えられる。ミニマルフレーズが記憶に残りやすく、長文読解力も自然と向上した。CDの音声も聞きやすく、通学時間を有効活用できた。",
			Pros:           []string{"頻出度順の構成", "ミニマルフレーズが効果的", "CD音声が聞きやすい"},
			Cons:           []string{"単語数が多く最初は圧倒される", "派生語の掲載が少ない"},
			Tips:           "1日100単語を目安に高速回転。音声を活用してリスニング対策も兼ねる。",
			RecommendedFor: "効率的に単語力を向上させたい人、音声学習を活用したい人",
			Tags:           []string{"単語帳", "高速回転", "CD付き", "通学時間"},
			Likes:          18,
			Comments:       []models.Comment{},
			Verified:       false,
			CreatedAt:      date(2024, time.September, 1),
		},
		{
			ID:           "3",
			UserID:       "1",
			User:         seedUsers[0],
			Title:        "現代文読解力の開発講座",
			Author:       "霜栄",
			Publisher:    "駿台文庫",
			Price:        1045,
			Subject:      "国語",
			SubCategory:  "現代文",
			TargetLevel:  "標準～応用",
			MaterialType: "問題集",
			Images:       []string{"https://images.pexels.com/photos/1370298/pexels-photo-1370298.jpeg"},
			UsagePeriod: models.UsagePeriod{
				StartDate: date(2024, time.March, 1),
				EndDate:   date(2024, time.July, 31),
			},
			TotalStudyHours: 80,
			PagesStudied:    200,
			CompletionRate:  75,
			PerformanceData: models.PerformanceData{
				BeforeScore: 38, AfterScore: 65,
				BeforeDeviation: 45.2, AfterDeviation: 56.8,
			},
			Ratings:        models.Ratings{Understanding: 3, Quality: 5, Value: 4, Recommendation: 4},
			Review:         "現代文の論理的読解方法を体系的に学べる。最初は難しく感じたが、解法を身につけると安定して得点できるようになった。特に評論文の読み方が劇的に改善された。",
			Pros:           []string{"論理的解法", "質の高い問題", "詳細な解説"},
			Cons:           []string{"最初は理解が困難", "問題数が少ない"},
			Tips:           "解法パターンを完全に覚えるまで繰り返し学習。時間をかけて丁寧に取り組む。",
			RecommendedFor: "現代文で安定した得点が欲しい人、論理的思考力を鍛えたい人",
			Tags:           []string{"論理的読解", "評論文", "解法パターン", "質重視"},
			Likes:          31,
			Comments:       []models.Comment{},
			Verified:       true,
			CreatedAt:      date(2024, time.August, 15),
		},
	}
}
