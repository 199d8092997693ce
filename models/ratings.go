// models/ratings.go

package models

type TopWalkEntry struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Difficulty   string  `json:"difficulty"`
	DistanceKm   float64 `json:"distance_km"`
	ImageURL     string  `json:"image_url"`
	RatingAvg    float64 `json:"rating_avg"`
	RatingCount  int     `json:"rating_count"`
	CommentCount int     `json:"comment_count"`
}
