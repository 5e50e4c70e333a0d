package models

import "time"

// Fornecedor entity. Produtos is free text (a comma separated list typed by the
// user), not a relational link to Produto.
type Fornecedor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null;index" json:"nome"`
	CNPJ      string    `gorm:"not null" json:"cnpj"`
	Contato   string    `json:"contato"`
	Produtos  string    `json:"produtos"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
