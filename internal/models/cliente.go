package models

import "time"

// Status values shared by Cliente and Venda. The two flags are maintained
// independently; there is no reconciliation between a client's flag and the
// status of its sales.
const (
	StatusPago   = "Pago"
	StatusAPagar = "A pagar"
)

// Cliente entity
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"not null;index" json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	// Flag de pagamento exibida no painel ("Pago" / "A pagar").
	Status    string    `gorm:"not null;default:'Pago'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName pins the Portuguese plural (gorm would derive "clientes" anyway,
// but the sibling models need it, so all four are explicit).
func (Cliente) TableName() string { return "clientes" }
