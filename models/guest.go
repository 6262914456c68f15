package models

import "time"

// Status de RSVP válidos para convidados.
var RSVPStatuses = []string{"pending", "confirmed", "declined"}

// Guest representa um convidado do casamento armazenado no Firestore.
type Guest struct {
	ID                  string    `json:"id" firestore:"-"`
	Name                string    `json:"name" firestore:"name"`
	Email               string    `json:"email" firestore:"email"`
	Phone               string    `json:"phone" firestore:"phone"`
	Address             string    `json:"address" firestore:"address"`
	AdditionalGuests    int       `json:"additionalGuests" firestore:"additional_guests"`
	RSVPStatus          string    `json:"rsvpStatus" firestore:"rsvp_status"`
	DietaryRestrictions string    `json:"dietaryRestrictions" firestore:"dietary_restrictions"`
	Group               string    `json:"group" firestore:"group"`
	Notes               string    `json:"notes" firestore:"notes"`
	CreatedAt           time.Time `json:"createdAt" firestore:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" firestore:"updated_at"`
}

// CreateGuestInput é o corpo aceito na criação de um convidado.
type CreateGuestInput struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	AdditionalGuests    int    `json:"additionalGuests"`
	RSVPStatus          string `json:"rsvpStatus"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
	Group               string `json:"group"`
	Notes               string `json:"notes"`
}

// UpdateGuestInput é o corpo parcial de atualização de um convidado.
type UpdateGuestInput struct {
	Name                *string `json:"name"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Address             *string `json:"address"`
	AdditionalGuests    *int    `json:"additionalGuests"`
	RSVPStatus          *string `json:"rsvpStatus"`
	DietaryRestrictions *string `json:"dietaryRestrictions"`
	Group               *string `json:"group"`
	Notes               *string `json:"notes"`
}

// ValidRSVPStatus verifica se o status pertence ao enum.
func ValidRSVPStatus(status string) bool {
	for _, s := range RSVPStatuses {
		if s == status {
			return true
		}
	}
	return false
}
