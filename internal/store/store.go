package store

import "github.com/gcamargo/vendas-app/internal/models"

// Store groups one snapshot cache per entity collection. A single instance is
// built at bootstrap and shared by the handlers so a write through one handler
// invalidates the snapshot every reader sees.
type Store struct {
	Clientes     Collection[models.Cliente]
	Produtos     Collection[models.Produto]
	Fornecedores Collection[models.Fornecedor]
	Vendas       Collection[models.Venda]
}

func New() *Store { return &Store{} }
