package models

import "time"

// Produto entity
type Produto struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Nome      string  `gorm:"not null;index" json:"nome"`
	Codigo    string  `gorm:"size:40;not null;index" json:"codigo"`
	Descricao string  `json:"descricao"`
	Preco     float64 `gorm:"not null" json:"preco"`
	Estoque   int     `gorm:"not null;default:0" json:"estoque"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Produto) TableName() string { return "produtos" }
