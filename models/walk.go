// models/walk.go
package models

import "time"

type Walk struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	Difficulty    string      `json:"difficulty"` // kolay, orta, zor
	DistanceKm    float64     `json:"distance_km"`
	DurationMin   int         `json:"duration_min"`
	StartPoint    string      `json:"start_point"`
	CenterLat     float64     `json:"center_lat"`
	CenterLng     float64     `json:"center_lng"`
	Zoom          int         `json:"zoom"`
	ImageURL      string      `json:"image_url"`
	Season        string      `json:"season"` // ilkbahar, yaz, sonbahar, kis, tum_yil
	RatingAvg     float64     `json:"rating_avg"`
	RatingCount   int         `json:"rating_count"`
	CommentCount  int         `json:"comment_count"`
	FavoriteLabel string      `json:"-"` // Favori eklerken kullanılan etiket
	Points        []WalkPoint `json:"points,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	IsActive      bool        `json:"is_active"`
}

// Rota üzerindeki işaretli nokta (çeşme, manzara, dinlenme alanı vb.)
type WalkPoint struct {
	ID          int     `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	PointOrder  int     `json:"point_order"`
	Kind        string  `json:"kind"` // baslangic, cesme, manzara, dinlenme, bitis
}

// Harita bileşenine verilen veri sözleşmesi: merkez, zoom, işaretçiler, rota çizgisi
type MapData struct {
	CenterLat float64     `json:"center_lat"`
	CenterLng float64     `json:"center_lng"`
	Zoom      int         `json:"zoom"`
	Markers   []MapMarker `json:"markers"`
	Polyline  [][]float64 `json:"polyline,omitempty"` // [lat, lng] çiftleri
}

type MapMarker struct {
	ID          int     `json:"id"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
