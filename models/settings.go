package models

type SystemSettings struct {
	SiteName         string `json:"site_name"`
	SiteDescription  string `json:"site_description"`
	SiteKeywords     string `json:"site_keywords"`
	MaintenanceMode  bool   `json:"maintenance_mode"`
	RegistrationOpen bool   `json:"registration_open"`
	SessionTimeout   int    `json:"session_timeout"` // dakika
	MaxUploadSize    int64  `json:"max_upload_size"` // MB
	ContactEmail     string `json:"contact_email"`
	MunicipalityName string `json:"municipality_name"`
}

type UserSettings struct {
	EmailNotifications   bool   `json:"email_notifications"`
	BrowserNotifications bool   `json:"browser_notifications"`
	ProfilePublic        bool   `json:"profile_public"`
	ShowActivity         bool   `json:"show_activity"`
	ShowOnlineStatus     bool   `json:"show_online_status"`
	Theme                string `json:"theme"`
	Language             string `json:"language"`
}
