package models

import "time"

// Categorias válidas para fornecedores.
var VendorCategories = []string{
	"Venue", "Catering", "Photography", "Videography", "Florist",
	"Music", "Decor", "Transportation", "Stationery", "Bakery",
	"Attire", "Beauty", "Other",
}

// Vendor representa um fornecedor contratado para o casamento.
type Vendor struct {
	ID               string    `json:"id" firestore:"-"`
	Name             string    `json:"name" firestore:"name"`
	Category         string    `json:"category" firestore:"category"`
	ContactName      string    `json:"contactName" firestore:"contact_name"`
	Email            string    `json:"email" firestore:"email"`
	Phone            string    `json:"phone" firestore:"phone"`
	Website          string    `json:"website" firestore:"website"`
	Address          string    `json:"address" firestore:"address"`
	Notes            string    `json:"notes" firestore:"notes"`
	ContractSigned   bool      `json:"contractSigned" firestore:"contract_signed"`
	DepositPaid      bool      `json:"depositPaid" firestore:"deposit_paid"`
	FinalPaymentPaid bool      `json:"finalPaymentPaid" firestore:"final_payment_paid"`
	CreatedAt        time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" firestore:"updated_at"`
}

// CreateVendorInput é o corpo aceito na criação de um fornecedor.
type CreateVendorInput struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	ContactName      string `json:"contactName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Website          string `json:"website"`
	Address          string `json:"address"`
	Notes            string `json:"notes"`
	ContractSigned   bool   `json:"contractSigned"`
	DepositPaid      bool   `json:"depositPaid"`
	FinalPaymentPaid bool   `json:"finalPaymentPaid"`
}

// UpdateVendorInput é o corpo parcial de atualização de um fornecedor.
type UpdateVendorInput struct {
	Name             *string `json:"name"`
	Category         *string `json:"category"`
	ContactName      *string `json:"contactName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	Website          *string `json:"website"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	ContractSigned   *bool   `json:"contractSigned"`
	DepositPaid      *bool   `json:"depositPaid"`
	FinalPaymentPaid *bool   `json:"finalPaymentPaid"`
}

// ValidVendorCategory verifica se a categoria pertence ao enum.
func ValidVendorCategory(category string) bool {
	for _, c := range VendorCategories {
		if c == category {
			return true
		}
	}
	return false
}
