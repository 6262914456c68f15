package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"wedding-planner-backend/checklist"
	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"
)

// ListChecklistHandler lista todas as tarefas do checklist.
func ListChecklistHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de tarefas do checklist")

	tasks, err := taskStore.ListTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao listar tarefas do checklist")
		respondError(w, http.StatusInternalServerError, "Failed to fetch checklist items")
		return
	}

	utilities.LogInfo("Tarefas listadas com sucesso - total: %d", len(tasks))
	respondJSON(w, http.StatusOK, tasks)
}

// CreateChecklistHandler cria uma nova tarefa do checklist. O chamador
// autenticado vira a referência permanente de criador. Toda tarefa nasce
// sem responsável e sem carimbo de conclusão; atribuição só acontece via
// atualização pelo criador.
func CreateChecklistHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de tarefa do checklist")

	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input models.CreateChecklistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title == "" {
		respondError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if !models.ValidChecklistCategory(input.Category) {
		utilities.LogError(fmt.Errorf("categoria inválida: %s", input.Category), "Validação falhou")
		respondError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if input.Priority == "" {
		input.Priority = "medium"
	}
	if !models.ValidTaskPriority(input.Priority) {
		utilities.LogError(fmt.Errorf("prioridade inválida: %s", input.Priority), "Validação falhou")
		respondError(w, http.StatusBadRequest, "Invalid priority")
		return
	}

	now := time.Now()
	task := models.ChecklistTask{
		UserID:      identity.ID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Category:    input.Category,
		Priority:    input.Priority,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := taskStore.CreateTask(r.Context(), &task)
	if err != nil {
		utilities.LogError(err, "Erro ao criar tarefa no Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to create checklist item")
		return
	}
	task.ID = id

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %s)", task.Title, id)
	respondJSON(w, http.StatusCreated, task)
}

// GetChecklistHandler retorna uma tarefa pelo id.
func GetChecklistHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]

	task, err := taskStore.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, checklist.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Checklist item not found")
			return
		}
		utilities.LogError(err, "Erro ao buscar tarefa do checklist")
		respondError(w, http.StatusInternalServerError, "Failed to fetch checklist item")
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// UpdateChecklistHandler atualiza uma tarefa via o coordenador do fluxo:
// autorização criador/responsável, restrição de campos, detecção de
// transições e avisos por e-mail.
func UpdateChecklistHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]
	utilities.LogDebug("Iniciando atualização da tarefa %s", taskID)

	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var input models.UpdateChecklistInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON de atualização")
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := coordinator.Update(r.Context(), taskID, identity, input)
	if err != nil {
		switch {
		case errors.Is(err, checklist.ErrUnauthenticated):
			respondError(w, http.StatusUnauthorized, "Authentication required")
		case errors.Is(err, checklist.ErrTaskNotFound):
			respondError(w, http.StatusNotFound, "Checklist item not found")
		case errors.Is(err, checklist.ErrForbidden):
			respondError(w, http.StatusForbidden, "You do not have permission to update this task")
		case errors.Is(err, checklist.ErrInvalidInput):
			respondError(w, http.StatusBadRequest, "Invalid update")
		default:
			utilities.LogError(err, fmt.Sprintf("Erro inesperado ao atualizar tarefa %s", taskID))
			respondError(w, http.StatusInternalServerError, "Failed to update checklist item")
		}
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %s", taskID)
	respondJSON(w, http.StatusOK, task)
}

// DeleteChecklistHandler remove uma tarefa. A exclusão passa pela mesma
// avaliação de permissões da atualização: só criador ou responsável atual.
func DeleteChecklistHandler(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["task_id"]
	utilities.LogDebug("Iniciando exclusão da tarefa %s", taskID)

	identity, ok := identityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	task, err := taskStore.GetTask(r.Context(), taskID)
	if err != nil {
		if errors.Is(err, checklist.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, "Checklist item not found")
			return
		}
		utilities.LogError(err, "Erro ao buscar tarefa para exclusão")
		respondError(w, http.StatusInternalServerError, "Failed to delete checklist item")
		return
	}

	perm := checklist.EvaluatePermission(task, identity)
	if !perm.HasPermission {
		utilities.LogDebug("Exclusão negada: chamador %s sem relação com a tarefa %s", identity.ID, taskID)
		respondError(w, http.StatusForbidden, "You do not have permission to delete this task")
		return
	}

	if err := taskStore.DeleteTask(r.Context(), taskID); err != nil {
		utilities.LogError(err, "Erro ao excluir tarefa do Firestore")
		respondError(w, http.StatusInternalServerError, "Failed to delete checklist item")
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %s", taskID)
	respondJSON(w, http.StatusOK, struct{}{})
}
