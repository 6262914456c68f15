package models

import "time"

// Categorias válidas para itens do orçamento.
var BudgetCategories = []string{
	"Venue", "Catering", "Photography", "Videography", "Attire",
	"Flowers", "Music", "Decor", "Transportation", "Stationery",
	"Gifts", "Other",
}

// BudgetItem representa um item do orçamento do casamento.
// VendorID referencia opcionalmente um documento da coleção de fornecedores.
type BudgetItem struct {
	ID            string     `json:"id" firestore:"-"`
	Category      string     `json:"category" firestore:"category"`
	Description   string     `json:"description" firestore:"description"`
	EstimatedCost float64    `json:"estimatedCost" firestore:"estimated_cost"`
	ActualCost    float64    `json:"actualCost" firestore:"actual_cost"`
	Paid          bool       `json:"paid" firestore:"paid"`
	PaymentDate   *time.Time `json:"paymentDate,omitempty" firestore:"payment_date,omitempty"`
	VendorID      string     `json:"vendor,omitempty" firestore:"vendor_id"`
	Notes         string     `json:"notes" firestore:"notes"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" firestore:"updated_at"`
}

// CreateBudgetItemInput é o corpo aceito na criação de um item de orçamento.
type CreateBudgetItemInput struct {
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	EstimatedCost float64    `json:"estimatedCost"`
	ActualCost    float64    `json:"actualCost"`
	Paid          bool       `json:"paid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	VendorID      string     `json:"vendor"`
	Notes         string     `json:"notes"`
}

// UpdateBudgetItemInput é o corpo parcial de atualização de um item.
type UpdateBudgetItemInput struct {
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	EstimatedCost *float64   `json:"estimatedCost"`
	ActualCost    *float64   `json:"actualCost"`
	Paid          *bool      `json:"paid"`
	PaymentDate   *time.Time `json:"paymentDate"`
	VendorID      *string    `json:"vendor"`
	Notes         *string    `json:"notes"`
}

// ValidBudgetCategory verifica se a categoria pertence ao enum.
func ValidBudgetCategory(category string) bool {
	for _, c := range BudgetCategories {
		if c == category {
			return true
		}
	}
	return false
}
