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

const budgetCollection = "budget_items"

// ListBudgetItemsHandler lista todos os itens do orçamento.
func ListBudgetItemsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de itens do orçamento")

	iter := firestoreClient.Collection(budgetCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(r.Context())
	defer iter.Stop()

	items := []models.BudgetItem{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utilities.LogError(err, "Erro ao iterar itens do orçamento no Firestore")
			respondError(w, http.StatusInternalServerError, "Failed to fetch budget items")
			return
		}

		var item models.BudgetItem
		if err := doc.DataTo(&item); err != nil {
			utilities.LogError(err, "Erro ao decodificar item do orçamento")
			respondError(w, http.StatusInternalServerError, "Failed to fetch budget items")
			return
		}
		item.ID = doc.Ref.ID
		items = append(items, item)
	}

	utilities.LogInfo("Itens do orçamento listados com sucesso - total: %d", len(items))
	respondJSON(w, http.StatusOK, items)
}

// CreateBudgetItemHandler cadastra um novo item de orçamento.
func CreateBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de item do orçamento")

	var input models.CreateBudgetItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do item de orçamento")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Description == "" {
		respondError(w, http.StatusBadRequest, "Description is required")
		return
	}
	if !models.ValidBudgetCategory(input.Category) {
		utilities.LogError(fmt.Errorf("categoria inválida: %s", input.Category), "Validação falhou")
		respondError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if input.EstimatedCost < 0 || input.ActualCost < 0 {
		respondError(w, http.StatusBadRequest, "Costs cannot be negative")
		return
	}

	now := time.Now()
	item := models.BudgetItem{
		Category:      input.Category,
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		ActualCost:    input.ActualCost,
		Paid:          input.Paid,
		PaymentDate:   input.PaymentDate,
		VendorID:      input.VendorID,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ref := firestoreClient.Collection(budgetCollection).NewDoc()
	if _, err := ref.Set(r.Context(), item); err != nil {
		utilities.LogError(err, "Erro ao criar item do orçamento no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to create budget item")
		return
	}
	item.ID = ref.ID

	utilities.LogInfo("Item do orçamento criado com sucesso: %s (ID: %s)", item.Description, ref.ID)
	respondJSON(w, http.StatusCreated, item)
}

// GetBudgetItemHandler retorna um item do orçamento pelo id.
func GetBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	doc, err := firestoreClient.Collection(budgetCollection).Doc(itemID).Get(r.Context())
	if status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Budget item not found")
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao buscar item do orçamento no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to fetch budget item")
		return
	}

	var item models.BudgetItem
	if err := doc.DataTo(&item); err != nil {
		utilities.LogError(err, "Erro ao decodificar item do orçamento")
		respondError(w, http.StatusInternalServerError, "Failed to fetch budget item")
		return
	}
	item.ID = doc.Ref.ID

	respondJSON(w, http.StatusOK, item)
}

// UpdateBudgetItemHandler atualiza parcialmente um item do orçamento.
func UpdateBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]
	utilities.LogDebug("Iniciando atualização do item de orçamento %s", itemID)

	var input models.UpdateBudgetItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := []firestore.Update{}
	if input.Category != nil {
		if !models.ValidBudgetCategory(*input.Category) {
			utilities.LogError(fmt.Errorf("categoria inválida: %s", *input.Category), "Validação falhou")
			respondError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		updates = append(updates, firestore.Update{Path: "category", Value: *input.Category})
	}
	if input.Description != nil {
		if *input.Description == "" {
			respondError(w, http.StatusBadRequest, "Description cannot be empty")
			return
		}
		updates = append(updates, firestore.Update{Path: "description", Value: *input.Description})
	}
	if input.EstimatedCost != nil {
		if *input.EstimatedCost < 0 {
			respondError(w, http.StatusBadRequest, "Costs cannot be negative")
			return
		}
		updates = append(updates, firestore.Update{Path: "estimated_cost", Value: *input.EstimatedCost})
	}
	if input.ActualCost != nil {
		if *input.ActualCost < 0 {
			respondError(w, http.StatusBadRequest, "Costs cannot be negative")
			return
		}
		updates = append(updates, firestore.Update{Path: "actual_cost", Value: *input.ActualCost})
	}
	if input.Paid != nil {
		updates = append(updates, firestore.Update{Path: "paid", Value: *input.Paid})
	}
	if input.PaymentDate != nil {
		updates = append(updates, firestore.Update{Path: "payment_date", Value: *input.PaymentDate})
	}
	if input.VendorID != nil {
		updates = append(updates, firestore.Update{Path: "vendor_id", Value: *input.VendorID})
	}
	if input.Notes != nil {
		updates = append(updates, firestore.Update{Path: "notes", Value: *input.Notes})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: time.Now()})

	ref := firestoreClient.Collection(budgetCollection).Doc(itemID)
	if _, err := ref.Update(r.Context(), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			respondError(w, http.StatusNotFound, "Budget item not found")
			return
		}
		utilities.LogError(err, "Erro ao atualizar item do orçamento no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to update budget item")
		return
	}

	doc, err := ref.Get(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao reler item do orçamento após atualização")
		respondError(w, http.StatusInternalServerError, "Failed to update budget item")
		return
	}
	var item models.BudgetItem
	if err := doc.DataTo(&item); err != nil {
		utilities.LogError(err, "Erro ao decodificar item do orçamento")
		respondError(w, http.StatusInternalServerError, "Failed to update budget item")
		return
	}
	item.ID = doc.Ref.ID

	utilities.LogInfo("Item do orçamento atualizado com sucesso: %s", itemID)
	respondJSON(w, http.StatusOK, item)
}

// DeleteBudgetItemHandler remove um item do orçamento.
func DeleteBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]
	utilities.LogDebug("Iniciando exclusão do item de orçamento %s", itemID)

	ref := firestoreClient.Collection(budgetCollection).Doc(itemID)
	if _, err := ref.Get(r.Context()); status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Budget item not found")
		return
	}

	if _, err := ref.Delete(r.Context()); err != nil {
		utilities.LogError(err, "Erro ao excluir item do orçamento do Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to delete budget item")
		return
	}

	utilities.LogInfo("Item do orçamento excluído com sucesso: %s", itemID)
	respondJSON(w, http.StatusOK, struct{}{})
}
