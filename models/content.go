// models/content.go
package models

import "time"

type Garden struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	AreaM2       int       `json:"area_m2"`
	PlotCount    int       `json:"plot_count"` // Toplam parsel sayısı
	PlotsFree    int       `json:"plots_free"`
	ImageURL     string    `json:"image_url"`
	ContactEmail string    `json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

type Event struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"` // yuruyus, atolye, pazar, festival, egitim
	Location     string    `json:"location"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Capacity     int       `json:"capacity"`
	Registered   int       `json:"registered"`
	ImageURL     string    `json:"image_url"`
	OrganizerID  *int      `json:"organizer_id"`
	Organizer    string    `json:"organizer"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
	IsRegistered bool      `json:"is_registered"` // Oturum açan kullanıcı için
}

type Association struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Theme        string    `json:"theme"` // bahcecilik, kus_gozlem, bisiklet, koruma
	Address      string    `json:"address"`
	ContactEmail string    `json:"contact_email"`
	Website      string    `json:"website"`
	MemberCount  int       `json:"member_count"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
}

type Market struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	DayOfWeek   string    `json:"day_of_week"` // pazartesi..pazar
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	StallCount  int       `json:"stall_count"`
	IsOrganic   bool      `json:"is_organic"`
	CreatedAt   time.Time `json:"created_at"`
	IsActive    bool      `json:"is_active"`
}
