package models

// Question marshals with "category" as the wire name for CategoryID; the
// client contract predates the Go rewrite and is kept as-is.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
	CategoryID uint   `gorm:"not null;index" json:"category"`
}
