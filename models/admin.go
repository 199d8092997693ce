package models

import (
	"time"
)

type AdminDashboardData struct {
	Title            string
	Stats            AdminStats
	RecentUsers      []User
	RecentComments   []Comment
	UpcomingEvents   []Event
	ActivityChart    ChartData
	CurrentDate      string
	ActivePercentage float64
	Admin            Admin
	Active           string
}

type Admin struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
}

type AdminStats struct {
	TotalUsers        int     `json:"total_users"`
	NewUsersToday     int     `json:"new_users_today"`
	ActiveUsers       int     `json:"active_users"`
	TotalWalks        int     `json:"total_walks"`
	TotalGardens      int     `json:"total_gardens"`
	TotalEvents       int     `json:"total_events"`
	UpcomingEvents    int     `json:"upcoming_events"`
	TotalAssociations int     `json:"total_associations"`
	TotalMarkets      int     `json:"total_markets"`
	TotalComments     int     `json:"total_comments"`
	CommentsToday     int     `json:"comments_today"`
	AverageRating     float64 `json:"average_rating"`
}

type AdminLog struct {
	ID         int       `json:"id"`
	AdminID    int       `json:"admin_id"`
	ActionType string    `json:"action_type"`
	TargetKind string    `json:"target_kind"`
	TargetID   *int      `json:"target_id"`
	Details    string    `json:"details"`
	IPAddress  string    `json:"ip_address"`
	CreatedAt  time.Time `json:"created_at"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}
