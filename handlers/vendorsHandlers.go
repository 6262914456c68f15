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

const vendorsCollection = "vendors"

// ListVendorsHandler lista todos os fornecedores.
func ListVendorsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de fornecedores")

	iter := firestoreClient.Collection(vendorsCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(r.Context())
	defer iter.Stop()

	vendors := []models.Vendor{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utilities.LogError(err, "Erro ao iterar fornecedores no Firestore")
			respondError(w, http.StatusInternalServerError, "Failed to fetch vendors")
			return
		}

		var vendor models.Vendor
		if err := doc.DataTo(&vendor); err != nil {
			utilities.LogError(err, "Erro ao decodificar fornecedor")
			respondError(w, http.StatusInternalServerError, "Failed to fetch vendors")
			return
		}
		vendor.ID = doc.Ref.ID
		vendors = append(vendors, vendor)
	}

	utilities.LogInfo("Fornecedores listados com sucesso - total: %d", len(vendors))
	respondJSON(w, http.StatusOK, vendors)
}

// CreateVendorHandler cadastra um novo fornecedor.
func CreateVendorHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de fornecedor")

	var input models.CreateVendorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do fornecedor")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Name == "" {
		respondError(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !models.ValidVendorCategory(input.Category) {
		utilities.LogError(fmt.Errorf("categoria inválida: %s", input.Category), "Validação falhou")
		respondError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	now := time.Now()
	vendor := models.Vendor{
		Name:             input.Name,
		Category:         input.Category,
		ContactName:      input.ContactName,
		Email:            input.Email,
		Phone:            input.Phone,
		Website:          input.Website,
		Address:          input.Address,
		Notes:            input.Notes,
		ContractSigned:   input.ContractSigned,
		DepositPaid:      input.DepositPaid,
		FinalPaymentPaid: input.FinalPaymentPaid,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	ref := firestoreClient.Collection(vendorsCollection).NewDoc()
	if _, err := ref.Set(r.Context(), vendor); err != nil {
		utilities.LogError(err, "Erro ao criar fornecedor no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to create vendor")
		return
	}
	vendor.ID = ref.ID

	utilities.LogInfo("Fornecedor criado com sucesso: %s (ID: %s)", vendor.Name, ref.ID)
	respondJSON(w, http.StatusCreated, vendor)
}

// GetVendorHandler retorna um fornecedor pelo id.
func GetVendorHandler(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendor_id"]

	doc, err := firestoreClient.Collection(vendorsCollection).Doc(vendorID).Get(r.Context())
	if status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Vendor not found")
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao buscar fornecedor no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to fetch vendor")
		return
	}

	var vendor models.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		utilities.LogError(err, "Erro ao decodificar fornecedor")
		respondError(w, http.StatusInternalServerError, "Failed to fetch vendor")
		return
	}
	vendor.ID = doc.Ref.ID

	respondJSON(w, http.StatusOK, vendor)
}

// UpdateVendorHandler atualiza parcialmente um fornecedor.
func UpdateVendorHandler(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendor_id"]
	utilities.LogDebug("Iniciando atualização do fornecedor %s", vendorID)

	var input models.UpdateVendorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updates := []firestore.Update{}
	if input.Name != nil {
		if *input.Name == "" {
			respondError(w, http.StatusBadRequest, "Name cannot be empty")
			return
		}
		updates = append(updates, firestore.Update{Path: "name", Value: *input.Name})
	}
	if input.Category != nil {
		if !models.ValidVendorCategory(*input.Category) {
			utilities.LogError(fmt.Errorf("categoria inválida: %s", *input.Category), "Validação falhou")
			respondError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		updates = append(updates, firestore.Update{Path: "category", Value: *input.Category})
	}
	if input.ContactName != nil {
		updates = append(updates, firestore.Update{Path: "contact_name", Value: *input.ContactName})
	}
	if input.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *input.Email})
	}
	if input.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *input.Phone})
	}
	if input.Website != nil {
		updates = append(updates, firestore.Update{Path: "website", Value: *input.Website})
	}
	if input.Address != nil {
		updates = append(updates, firestore.Update{Path: "address", Value: *input.Address})
	}
	if input.Notes != nil {
		updates = append(updates, firestore.Update{Path: "notes", Value: *input.Notes})
	}
	if input.ContractSigned != nil {
		updates = append(updates, firestore.Update{Path: "contract_signed", Value: *input.ContractSigned})
	}
	if input.DepositPaid != nil {
		updates = append(updates, firestore.Update{Path: "deposit_paid", Value: *input.DepositPaid})
	}
	if input.FinalPaymentPaid != nil {
		updates = append(updates, firestore.Update{Path: "final_payment_paid", Value: *input.FinalPaymentPaid})
	}
	updates = append(updates, firestore.Update{Path: "updated_at", Value: time.Now()})

	ref := firestoreClient.Collection(vendorsCollection).Doc(vendorID)
	if _, err := ref.Update(r.Context(), updates); err != nil {
		if status.Code(err) == codes.NotFound {
			respondError(w, http.StatusNotFound, "Vendor not found")
			return
		}
		utilities.LogError(err, "Erro ao atualizar fornecedor no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to update vendor")
		return
	}

	doc, err := ref.Get(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao reler fornecedor após atualização")
		respondError(w, http.StatusInternalServerError, "Failed to update vendor")
		return
	}
	var vendor models.Vendor
	if err := doc.DataTo(&vendor); err != nil {
		utilities.LogError(err, "Erro ao decodificar fornecedor")
		respondError(w, http.StatusInternalServerError, "Failed to update vendor")
		return
	}
	vendor.ID = doc.Ref.ID

	utilities.LogInfo("Fornecedor atualizado com sucesso: %s", vendorID)
	respondJSON(w, http.StatusOK, vendor)
}

// DeleteVendorHandler remove um fornecedor.
func DeleteVendorHandler(w http.ResponseWriter, r *http.Request) {
	vendorID := mux.Vars(r)["vendor_id"]
	utilities.LogDebug("Iniciando exclusão do fornecedor %s", vendorID)

	ref := firestoreClient.Collection(vendorsCollection).Doc(vendorID)
	if _, err := ref.Get(r.Context()); status.Code(err) == codes.NotFound {
		respondError(w, http.StatusNotFound, "Vendor not found")
		return
	}

	if _, err := ref.Delete(r.Context()); err != nil {
		utilities.LogError(err, "Erro ao excluir fornecedor do Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to delete vendor")
		return
	}

	utilities.LogInfo("Fornecedor excluído com sucesso: %s", vendorID)
	respondJSON(w, http.StatusOK, struct{}{})
}
