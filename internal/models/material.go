package models

import "time"

// UsagePeriod records when the poster used the material.
type UsagePeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// PerformanceData captures the before/after exam scores and the before/after
// deviation values (percentile-style academic scores, 偏差値).
type PerformanceData struct {
	BeforeScore     int     `json:"beforeScore"`
	AfterScore      int     `json:"afterScore"`
	BeforeDeviation float64 `json:"beforeDeviation"`
	AfterDeviation  float64 `json:"afterDeviation"`
}

// Improvement is the raw score delta, used by the 学習効果順 sort and the
// improvement ranking board.
func (p PerformanceData) Improvement() int {
	return p.AfterScore - p.BeforeScore
}

// Ratings holds the four 1–5 review scores.
type Ratings struct {
	Understanding  int `json:"understanding"`
	Quality        int `json:"quality"`
	Value          int `json:"value"`
	Recommendation int `json:"recommendation"`
}

// Average is the mean of the four scores.
func (r Ratings) Average() float64 {
	return float64(r.Understanding+r.Quality+r.Value+r.Recommendation) / 4
}

// Valid reports whether every score is within [1,5].
func (r Ratings) Valid() bool {
	for _, v := range []int{r.Understanding, r.Quality, r.Value, r.Recommendation} {
		if v < 1 || v > 5 {
			return false
		}
	}
	return true
}

// Comment is a reply attached to a material.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// Material is a posted study-material review.
type Material struct {
	ID           string `json:"id"`
	UserID       string `json:"userId"`
	User         User   `json:"user"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Publisher    string `json:"publisher"`
	Price        int    `json:"price"`
	ISBN         string `json:"isbn,omitempty"`
	Subject      string `json:"subject"`
	SubCategory  string `json:"subCategory"`
	TargetLevel  string `json:"targetLevel"`
	MaterialType string `json:"materialType"`

	Images []string `json:"images"`

	UsagePeriod     UsagePeriod `json:"usagePeriod"`
	TotalStudyHours int         `json:"totalStudyHours"`
	PagesStudied    int         `json:"pagesStudied"`
	CompletionRate  int         `json:"completionRate"`

	PerformanceData PerformanceData `json:"performanceData"`
	Ratings         Ratings         `json:"ratings"`

	Review         string   `json:"review"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Tips           string   `json:"tips"`
	RecommendedFor string   `json:"recommendedFor"`
	Tags           []string `json:"tags"`

	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}
