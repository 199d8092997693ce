// models/quiz.go
package models

type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"-"` // İstemciye gönderilmez
	Explanation   string   `json:"explanation,omitempty"`
	Category      string   `json:"category"` // flora, fauna, genel, geri_donusum
	IsActive      bool     `json:"is_active"`
}

type QuizResult struct {
	Total      int  `json:"total"`
	Correct    int  `json:"correct"`
	Score      int  `json:"score"` // Yüzde
	QuizMaster bool `json:"quiz_master"`
}
