package model

import "time"

// 管理者が編集するナビゲーションのメニュー項目。
type MenuItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Label     string    `gorm:"type:varchar(255);not null" json:"label"`
	Path      string    `gorm:"type:varchar(255);not null" json:"path"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
