package handlers

import (
	"encoding/json"
	"net/http"

	"wedding-planner-backend/utilities"
)

// APIResponse é o envelope padrão de todas as respostas da API.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondJSON escreve uma resposta de sucesso com o envelope padrão.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data}); err != nil {
		utilities.LogError(err, "Erro ao serializar resposta JSON")
	}
}

// respondError escreve uma resposta de erro com o envelope padrão.
// A mensagem é genérica; detalhes ficam apenas no log.
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIResponse{Success: false, Error: message}); err != nil {
		utilities.LogError(err, "Erro ao serializar resposta de erro")
	}
}
