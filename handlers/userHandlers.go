package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"wedding-planner-backend/database"
	"wedding-planner-backend/firebase"
	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"
)

type SocialLoginInput struct {
	IDToken string `json:"idToken"`
}

// SocialLoginResponse define a estrutura da resposta de sucesso
type SocialLoginResponse struct {
	Message     string `json:"message"`
	FirebaseUID string `json:"firebaseUid"`
}

// FinalizeFirebaseLoginHandler processa um ID Token do Firebase para
// verificar o usuário e sincronizá-lo com a tabela espelho local.
func FinalizeFirebaseLoginHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogInfo("Recebida requisição para finalizar login com ID Token do Firebase.")

	var input SocialLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar corpo da requisição para finalizar login Firebase")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		respondError(w, http.StatusBadRequest, "ID token is required")
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(r.Context(), input.IDToken)
	if err != nil {
		utilities.LogError(err, "Falha ao verificar ID Token do Firebase")
		// Não expor detalhes do erro ao cliente
		respondError(w, http.StatusUnauthorized, "Invalid token")
		return
	}
	utilities.LogInfo("ID Token verificado com sucesso para Firebase UID: %s", verifiedToken.UID)

	email, _ := verifiedToken.Claims["email"].(string)
	name, _ := verifiedToken.Claims["name"].(string)
	user := models.Usuario{
		FirebaseUID: verifiedToken.UID,
		Email:       email,
		DisplayName: name,
	}

	if err := database.UpsertUser(r.Context(), db, user); err != nil {
		utilities.LogError(err, "Erro ao sincronizar usuário com banco de dados local")
		respondError(w, http.StatusInternalServerError, "Failed to sync user")
		return
	}
	utilities.LogInfo("Usuário (Firebase UID: %s) sincronizado com sucesso no banco de dados local.", verifiedToken.UID)

	respondJSON(w, http.StatusOK, SocialLoginResponse{
		Message:     "Login finalizado e usuário sincronizado com sucesso.",
		FirebaseUID: verifiedToken.UID,
	})
}

// UserHandler retorna informações do usuário atual
func UserHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := database.GetUser(r.Context(), db, identity.ID)
	if err != nil {
		utilities.LogError(err, "Erro ao buscar usuário")
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user)
}
