package model

import "time"

// UserPreferenceModel is the GORM-specific struct for the 'user_preferences' table.
// ID is the user id.
type UserPreferenceModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement:false"`
	WPrice         float64 `gorm:"column:w_price;not null;default:0.5"`
	WDistance      float64 `gorm:"column:w_distance;not null;default:0.5"`
	SelectionCount int     `gorm:"not null;default:0"`
	UpdatedAt      time.Time
}

func (UserPreferenceModel) TableName() string {
	return "user_preferences"
}

// UserSelectionLogModel is the GORM-specific struct for the 'user_selection_log' table.
type UserSelectionLogModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	UserID         int64     `gorm:"not null;index:ix_selection_log_user_created,priority:1"`
	StoreID        string    `gorm:"type:varchar(32);not null"`
	GoodID         string    `gorm:"type:varchar(32);not null"`
	PreferenceType string    `gorm:"type:varchar(16);not null"`
	Price          int       `gorm:"not null"`
	CreatedAt      time.Time `gorm:"index:ix_selection_log_user_created,priority:2"`
}

func (UserSelectionLogModel) TableName() string {
	return "user_selection_log"
}
