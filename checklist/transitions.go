package checklist

import "wedding-planner-backend/models"

// Transitions classifica uma atualização proposta em relação ao estado
// anterior da tarefa. As duas classificações são independentes e podem
// ocorrer na mesma atualização (ex.: criador reatribui e marca concluída
// no mesmo PUT).
type Transitions struct {
	NewAssignment  bool
	NewlyCompleted bool
}

// DetectTransitions compara o estado persistido com a atualização proposta.
//
// Conclusão nova: `completed` proposto é true e o persistido era false.
//
// Nova atribuição: apenas quando o chamador é o criador, o corpo traz nome E
// e-mail do responsável não vazios, e pelo menos um deles difere do valor
// persistido. Repetir a mesma atribuição não conta como transição.
func DetectTransitions(prior *models.ChecklistTask, input models.UpdateChecklistInput, callerIsCreator bool) Transitions {
	var t Transitions

	if input.Completed != nil && *input.Completed && !prior.Completed {
		t.NewlyCompleted = true
	}

	if callerIsCreator &&
		input.AssignedTo != nil && *input.AssignedTo != "" &&
		input.AssignedToEmail != nil && *input.AssignedToEmail != "" &&
		(*input.AssignedTo != prior.AssignedTo || *input.AssignedToEmail != prior.AssignedToEmail) {
		t.NewAssignment = true
	}

	return t
}
