package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gorilla/mux"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"
)

const guestsCollection = "guests"

// ListGuestsHandler lista todos os convidados.
func ListGuestsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de convidados")

	iter := firestoreClient.Collection(guestsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(r.Context())
	defer iter.Stop()

	guests := []models.Guest{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utilities.LogError(err, "Erro ao iterar convidados no Firestore")
			respondError(w, http.StatusInternalServerError, "Failed to fetch guests")
			return
		}

		var guest models.Guest
		if err := doc.DataTo(&guest); err != nil {
			utilities.LogError(err, "Erro ao decodificar convidado")
			respondError(w, http.StatusInternalServerError, "Failed to fetch guests")
			return
		}
		guest.ID = doc.Ref.ID
		guests = append(guests, guest)
	}

	utilities.LogInfo("Convidados listados com sucesso - total: %d", len(guests))
	respondJSON(w, http.StatusOK, guests)
}

// CreateGuestHandler cadastra um novo convidado.
func CreateGuestHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de convidado")

	var input models.CreateGuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do convidado")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if input.RSVPStatus == "" {
		input.RSVPStatus = "pending"
	}
	if !models.ValidRSVPStatus(input.RSVPStatus) {
		utilities.LogError(fmt.Errorf("status de RSVP inválido: %s", input.RSVPStatus), "Validação falhou")
		respondError(w, http.StatusBadRequest, "Invalid RSVP status")
		return
	}
	if input.AdditionalGuests < 0 || input.AdditionalGuests > 10 {
		respondError(w, http.StatusBadRequest, "Additional guests must be between 0 and 10")
		return
	}
	if input.Group == "" {
		input.Group = "Guest"
	}

	now := time.Now()
	guest := models.Guest{
		Name:                input.Name,
		Email:               input.Email,
		Phone:               input.Phone,
		Address:             input.Address,
		AdditionalGuests:    input.AdditionalGuests,
		RSVPStatus:          input.RSVPStatus,
		DietaryRestrictions: input.DietaryRestrictions,
		Group:               input.Group,
		Notes:               input.Notes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	ref := firestoreClient.Collection(guestsCollection).NewDoc()
	if _, err := ref.Set(r.Context(), guest); err != nil {
		utilities.LogError(err, "Erro ao criar convidado no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to create guest")
		return
	}
	guest.ID = ref.ID

	utilities.LogInfo("Convidado criado com sucesso: %s (ID: %s)", guest.Name, ref.ID)
	respondJSON(w, http.StatusCreated, guest)
}

// GetGuestHandler retorna um convidado pelo id.
func GetGuestHandler(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guest_id"]

	doc, err := firestoreClient.Collection(guestsCollection).Doc(guestID).Get(r.Context())
	if status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Guest not found")
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao buscar convidado no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to fetch guest")
		return
	}

	var guest models.Guest
	if err := doc.DataTo(&guest); err != nil {
		utilities.LogError(err, "Erro ao decodificar convidado")
		respondError(w, http.StatusInternalServerError, "Failed to fetch guest")
		return
	}
	guest.ID = doc.Ref.ID

	respondJSON(w, http.StatusOK, guest)
}

// UpdateGuestHandler atualiza parcialmente um convidado.
func UpdateGuestHandler(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guest_id"]
	utilities.LogDebug("Iniciando atualização do convidado %s", guestID)

	var input models.UpdateGuestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Montar atualização dinâmica apenas com os campos presentes
	updates := []firestore.Update{}
	if input.Name != nil {
		if *input.Name == "" {
			respondError(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		updates = append(updates, firestore.Update{Path: "name", Value: *input.Name})
	}
	if input.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *input.Email})
	}
	if input.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *input.Phone})
	}
	if input.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *input.Address})
	}
	if input.AdditionalGuests != nil {
		if *input.AdditionalGuests < 0 || *input.AdditionalGuests > 10 {
			respondError(w, http.StatusBadRequest, "Additional guests must be between 0 and 10")
			return
		}
		updates = append(updates, firestore.Update{Path: "additional_guests", Value: *input.AdditionalGuests})
	}
	if input.RSVPStatus != nil {
		if !models.ValidRSVPStatus(*input.RSVPStatus) {
			utilities.LogError(fmt.Errorf("status de RSVP inválido: %s", *input.RSVPStatus), "Validação falhou")
			respondError(w, http.StatusBadRequest, "Invalid RSVP status")
			return
		}
		updates = append(updates, firestore.Update{Path: "rsvp_status", Value: *input.RSVPStatus})
	}
	if input.DietaryRestrictions != nil {
		updates = append(updates, firestore.Update{Path: "dietary_restrictions", Value: *input.DietaryRestrictions})
	}
	if input.Group != nil {
		updates = append(updates, firestore.Update{Path: "group", Value: *input.Group})
	}
	if input.Notes != nil {
		updates = append(updates, firestore.Update{Path: "notes", Value: *input.Notes})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: time.Now()})

	ref := firestoreClient.Collection(guestsCollection).Doc(guestID)
	if _, err := ref.Update(r.Context(), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			respondError(w, http.StatusNotFound, "Guest not found")
			return
		}
		utilities.LogError(err, "Erro ao atualizar convidado no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to update guest")
		return
	}

	doc, err := ref.Get(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao reler convidado após atualização")
		respondError(w, http.StatusInternalServerError, "Failed to update guest")
		return
	}
	var guest models.Guest
	if err := doc.DataTo(&guest); err != nil {
		utilities.LogError(err, "Erro ao decodificar convidado")
		respondError(w, http.StatusInternalServerError, "Failed to update guest")
		return
	}
	guest.ID = doc.Ref.ID

	utilities.LogInfo("Convidado atualizado com sucesso: %s", guestID)
	respondJSON(w, http.StatusOK, guest)
}

// DeleteGuestHandler remove um convidado.
func DeleteGuestHandler(w http.ResponseWriter, r *http.Request) {
	guestID := mux.Vars(r)["guest_id"]
	utilities.LogDebug("Iniciando exclusão do convidado %s", guestID)

	ref := firestoreClient.Collection(guestsCollection).Doc(guestID)
	if _, err := ref.Get(r.Context()); status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Guest not found")
		return
	}

	if _, err := ref.Delete(r.Context()); err != nil {
		utilities.LogError(err, "Erro ao excluir convidado do Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to delete guest")
		return
	}

	utilities.LogInfo("Convidado excluído com sucesso: %s", guestID)
	respondJSON(w, http.StatusOK, struct{}{})
}
