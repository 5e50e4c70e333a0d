package db

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gcamargo/vendas-app/internal/models"
)

// Seed populates an empty database with the default admin user and a small set
// of demo rows. Each block is skipped when its table already has data, so
// running it twice is harmless.
func Seed(conn *gorm.DB) error {
	var userCount int64
	if err := conn.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword()), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := conn.Create(&models.User{Username: "admin", Password: string(hash)}).Error; err != nil {
			return err
		}
	}

	var clientCount int64
	conn.Model(&models.Cliente{}).Count(&clientCount)
	if clientCount == 0 {
		clientes := []models.Cliente{
			{Nome: "João da Silva", Email: "joao.silva@email.com", Telefone: "11987654321", Status: models.StatusPago},
			{Nome: "Maria Oliveira", Email: "maria.o@email.com", Telefone: "21912345678", Status: models.StatusAPagar},
			{Nome: "Carlos Pereira", Email: "carlos.p@email.com", Telefone: "31955554444", Status: models.StatusPago},
		}
		if err := conn.Create(&clientes).Error; err != nil {
			return err
		}
	}

	var productCount int64
	conn.Model(&models.Produto{}).Count(&productCount)
	if productCount == 0 {
		produtos := []models.Produto{
			{Nome: "Notebook Pro", Codigo: "NTK-001", Descricao: "Notebook de alta performance", Preco: 7500.00, Estoque: 15},
			{Nome: "Mouse Sem Fio", Codigo: "MSE-002", Descricao: "Mouse ergonômico", Preco: 150.00, Estoque: 100},
			{Nome: "Teclado Mecânico", Codigo: "TCD-003", Descricao: "Teclado para gamers", Preco: 450.00, Estoque: 50},
		}
		if err := conn.Create(&produtos).Error; err != nil {
			return err
		}
	}

	var supplierCount int64
	conn.Model(&models.Fornecedor{}).Count(&supplierCount)
	if supplierCount == 0 {
		fornecedores := []models.Fornecedor{
			{Nome: "Tech Distribuidora", CNPJ: "11.222.333/0001-44", Contato: "contato@techdist.com", Produtos: "Notebooks, Mouses"},
			{Nome: "Periféricos Brasil", CNPJ: "55.666.777/0001-88", Contato: "vendas@perifericosbr.com", Produtos: "Teclados, Monitores"},
		}
		if err := conn.Create(&fornecedores).Error; err != nil {
			return err
		}
	}

	var salesCount int64
	conn.Model(&models.Venda{}).Count(&salesCount)
	if salesCount == 0 {
		var clientes []models.Cliente
		var produtos []models.Produto
		conn.Order("nome asc").Find(&clientes)
		conn.Order("nome asc").Find(&produtos)
		if len(clientes) < 3 || len(produtos) < 3 {
			return errors.New("seed: not enough clientes/produtos for demo vendas")
		}
		vendas := []models.Venda{
			{ClienteID: clientes[0].ID, ProdutoID: produtos[0].ID, Quantidade: 1, ValorTotal: 7500.00, FormaPagamento: "Cartão de Crédito", Status: models.StatusPago, Data: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)},
			{ClienteID: clientes[1].ID, ProdutoID: produtos[1].ID, Quantidade: 2, ValorTotal: 300.00, FormaPagamento: "Boleto", Status: models.StatusAPagar, Data: time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)},
			{ClienteID: clientes[2].ID, ProdutoID: produtos[2].ID, Quantidade: 1, ValorTotal: 450.00, FormaPagamento: "PIX", Status: models.StatusPago, Data: time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC)},
		}
		if err := conn.Create(&vendas).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAdminPassword() string {
	// Overridable so deployments never ship the dev default.
	if v := envOr("SEED_ADMIN_PASSWORD", ""); v != "" {
		return v
	}
	return "admin123"
}
