package checklist

import (
	"context"
	"fmt"
	"time"

	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"
)

// Coordinator orquestra a atualização de uma tarefa do checklist:
// carregar, autorizar, restringir, classificar, persistir e notificar.
// As dependências são injetadas para permitir dublês em teste.
type Coordinator struct {
	store     TaskStore
	notifier  Notifier
	directory UserDirectory
	now       func() time.Time
}

func NewCoordinator(store TaskStore, notifier Notifier, directory UserDirectory) *Coordinator {
	return &Coordinator{
		store:     store,
		notifier:  notifier,
		directory: directory,
		now:       time.Now,
	}
}

// Update executa o fluxo completo de atualização de uma tarefa.
//
// A sequência persistir-depois-notificar NÃO é transacional: falha no envio
// do aviso ou na escrita posterior do flag email_sent nunca falha a
// requisição — o estado principal já persistido é retornado e a degradação
// é apenas registrada em log. Duas atualizações concorrentes da mesma
// tarefa podem ambas observar o mesmo estado anterior e ambas disparar
// avisos; essa corrida é aceita neste design.
func (c *Coordinator) Update(ctx context.Context, taskID string, caller Identity, input models.UpdateChecklistInput) (*models.ChecklistTask, error) {
	if caller.ID == "" && caller.Email == "" {
		return nil, ErrUnauthenticated
	}

	prior, err := c.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	perm := EvaluatePermission(prior, caller)
	if !perm.HasPermission {
		utilities.LogDebug("Atualização negada: chamador %s não é criador nem responsável da tarefa %s", caller.ID, taskID)
		return nil, ErrForbidden
	}

	// Responsável que não é criador só pode alterar completed e notes.
	if perm.IsAssignee && !perm.IsCreator {
		input = NarrowAssigneeUpdate(input)
	}

	if err := validateUpdate(input); err != nil {
		return nil, err
	}

	trans := DetectTransitions(prior, input, perm.IsCreator)
	now := c.now()
	fields := buildUpdateFields(prior, input, trans, caller, now)

	updated, err := c.store.UpdateTask(ctx, taskID, fields)
	if err != nil {
		return nil, err
	}

	c.notify(ctx, prior, updated, trans, perm, caller, now)

	return updated, nil
}

// validateUpdate re-valida as restrições de campo antes da escrita.
func validateUpdate(input models.UpdateChecklistInput) error {
	if input.Title != nil && *input.Title == "" {
		return fmt.Errorf("%w: título não pode ser vazio", ErrInvalidInput)
	}
	if input.Priority != nil && !models.ValidTaskPriority(*input.Priority) {
		return fmt.Errorf("%w: prioridade inválida %q", ErrInvalidInput, *input.Priority)
	}
	if input.Category != nil && !models.ValidChecklistCategory(*input.Category) {
		return fmt.Errorf("%w: categoria inválida %q", ErrInvalidInput, *input.Category)
	}
	return nil
}

// buildUpdateFields monta a atualização parcial a persistir: os campos
// presentes no corpo mais os carimbos derivados das transições detectadas.
func buildUpdateFields(prior *models.ChecklistTask, input models.UpdateChecklistInput, trans Transitions, caller Identity, now time.Time) map[string]interface{} {
	fields := map[string]interface{}{}

	if input.Title != nil {
		fields["title"] = *input.Title
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.DueDate != nil {
		fields["due_date"] = *input.DueDate
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.Priority != nil {
		fields["priority"] = *input.Priority
	}
	if input.AssignedTo != nil {
		fields["assigned_to"] = *input.AssignedTo
	}
	if input.AssignedToEmail != nil {
		fields["assigned_to_email"] = *input.AssignedToEmail
	}
	if input.EmailSent != nil {
		fields["email_sent"] = *input.EmailSent
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if input.Completed != nil {
		fields["completed"] = *input.Completed
		// O carimbo de conclusão é sempre computado aqui, nunca vem do corpo.
		// Concluir uma tarefa já concluída não altera completed_at.
		if trans.NewlyCompleted {
			fields["completed_at"] = now
		} else if !*input.Completed && prior.Completed {
			fields["completed_at"] = nil
		}
	}

	if trans.NewAssignment {
		assigner := caller.Name
		if assigner == "" {
			assigner = caller.Email
		}
		fields["assigned_by"] = assigner
		fields["assigned_at"] = now
		// Reatribuição zera o flag de aviso mesmo que o corpo tente
		// defini-lo, para que o novo responsável possa ser avisado.
		fields["email_sent"] = false
		fields["email_sent_at"] = nil
	}

	fields["updated_at"] = now
	return fields
}

// notify dispara os avisos derivados das transições. Melhor esforço:
// nenhuma falha aqui chega ao chamador.
func (c *Coordinator) notify(ctx context.Context, prior, updated *models.ChecklistTask, trans Transitions, perm Permission, caller Identity, now time.Time) {
	if trans.NewAssignment && c.notifier.Configured() && updated.AssignedToEmail != "" {
		sent := c.notifier.SendAssignmentNotice(updated.AssignedToEmail, models.AssignmentNotice{
			TaskTitle:       updated.Title,
			TaskDescription: updated.Description,
			DueDate:         updated.DueDate,
			Priority:        updated.Priority,
			Category:        updated.Category,
			AssignerName:    updated.AssignedBy,
		})
		if sent {
			// Escrita posterior do flag, também melhor esforço: a tarefa já
			// foi persistida e a resposta não depende deste patch.
			_, err := c.store.UpdateTask(ctx, updated.ID, map[string]interface{}{
				"email_sent":    true,
				"email_sent_at": c.now(),
				"updated_at":    c.now(),
			})
			if err != nil {
				utilities.LogError(err, fmt.Sprintf("Aviso de atribuição enviado mas falha ao gravar flag email_sent na tarefa %s", updated.ID))
			} else {
				utilities.LogInfo("Aviso de atribuição enviado para %s (tarefa %s)", updated.AssignedToEmail, updated.ID)
			}
		} else {
			utilities.LogInfo("Falha ao enviar aviso de atribuição para %s (tarefa %s); atualização mantida", updated.AssignedToEmail, updated.ID)
		}
	}

	if trans.NewlyCompleted && prior.AssignedBy != "" && perm.IsAssignee && !perm.IsCreator && c.notifier.Configured() {
		assignerEmail, err := c.directory.LookupEmail(ctx, prior.UserID)
		if err != nil || assignerEmail == "" {
			utilities.LogError(err, fmt.Sprintf("Não foi possível resolver o e-mail do atribuidor da tarefa %s; aviso de conclusão descartado", updated.ID))
			return
		}
		completedBy := caller.Name
		if completedBy == "" {
			completedBy = caller.Email
		}
		completionDate := now
		if updated.CompletedAt != nil {
			completionDate = *updated.CompletedAt
		}
		sent := c.notifier.SendCompletionNotice(assignerEmail, models.CompletionNotice{
			TaskTitle:      updated.Title,
			CompletedBy:    completedBy,
			CompletionDate: completionDate,
		})
		if !sent {
			utilities.LogInfo("Falha ao enviar aviso de conclusão para %s (tarefa %s); atualização mantida", assignerEmail, updated.ID)
		}
	}
}
