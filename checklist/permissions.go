package checklist

import "wedding-planner-backend/models"

// Permission é o resultado da avaliação de permissões de um chamador
// sobre uma tarefa, calculado a partir do estado persistido.
type Permission struct {
	IsCreator     bool
	IsAssignee    bool
	HasPermission bool
}

// EvaluatePermission decide a relação do chamador com a tarefa. Função pura:
// o chamador é criador quando seu id é a referência de dono da tarefa, e é
// responsável quando seu e-mail coincide exatamente (sensível a maiúsculas)
// com o e-mail do responsável atual.
func EvaluatePermission(task *models.ChecklistTask, caller Identity) Permission {
	perm := Permission{
		IsCreator:  caller.ID != "" && caller.ID == task.UserID,
		IsAssignee: task.AssignedToEmail != "" && caller.Email == task.AssignedToEmail,
	}
	perm.HasPermission = perm.IsCreator || perm.IsAssignee
	return perm
}

// NarrowAssigneeUpdate restringe a atualização de um chamador que é apenas
// responsável (não criador): somente `completed` e `notes` passam; qualquer
// outro campo presente no corpo é descartado silenciosamente, nunca tratado
// como erro.
func NarrowAssigneeUpdate(input models.UpdateChecklistInput) models.UpdateChecklistInput {
	return models.UpdateChecklistInput{
		Completed: input.Completed,
		Notes:     input.Notes,
	}
}
