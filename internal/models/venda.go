package models

import "time"

// Venda links one cliente to one produto.
// ValorTotal is computed by the caller (preco * quantidade at creation time) and
// stored as-is; the server never re-derives it.
type Venda struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ClienteID      uint      `gorm:"not null;index" json:"clienteId"`
	Cliente        Cliente   `gorm:"foreignKey:ClienteID" json:"cliente"`
	ProdutoID      uint      `gorm:"not null;index" json:"produtoId"`
	Produto        Produto   `gorm:"foreignKey:ProdutoID" json:"produto"`
	Quantidade     int       `gorm:"not null" json:"quantidade"`
	ValorTotal     float64   `gorm:"not null" json:"valorTotal"`
	FormaPagamento string    `json:"formaPagamento"`
	Status         string    `gorm:"not null;default:'A pagar'" json:"status"`
	Data           time.Time `gorm:"index" json:"data"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (Venda) TableName() string { return "vendas" }
