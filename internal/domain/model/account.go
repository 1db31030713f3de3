package model

import "time"

// アカウント。1スロットだけ永続化される（複数アカウントのディレクトリは持たない）。
// Emailが識別子。IsAdminがtrueのときだけカタログ編集を許可する。
type Account struct {
	ID           int64     `gorm:"primaryKey" json:"-"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
