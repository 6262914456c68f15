// Package checklist implementa o fluxo de atualização de tarefas do
// checklist: permissões de criador/responsável, detecção de transições
// (nova atribuição, conclusão) e o disparo de avisos por e-mail como
// efeito colateral dessas transições.
package checklist

import (
	"context"
	"errors"

	"wedding-planner-backend/models"
)

// Identity é a identidade verificada do chamador de uma requisição.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// TaskStore abstrai o armazenamento de tarefas do checklist. A implementação
// real é o Firestore; os testes usam um dublê em memória.
type TaskStore interface {
	// GetTask busca uma tarefa pelo id. Retorna ErrTaskNotFound se não existir.
	GetTask(ctx context.Context, id string) (*models.ChecklistTask, error)
	// UpdateTask aplica uma atualização parcial (chaves = nomes de campos no
	// documento; valor nil remove o campo) e retorna o registro resultante.
	// Retorna ErrTaskNotFound se o documento não existir mais na escrita.
	UpdateTask(ctx context.Context, id string, fields map[string]interface{}) (*models.ChecklistTask, error)
}

// Notifier é a capacidade externa de envio de e-mails. Os métodos de envio
// retornam true apenas quando o envio foi confirmado pelo transporte.
type Notifier interface {
	Configured() bool
	SendAssignmentNotice(toEmail string, data models.AssignmentNotice) bool
	SendCompletionNotice(toEmail string, data models.CompletionNotice) bool
}

// UserDirectory resolve o e-mail de um usuário a partir do seu id.
// Usado para endereçar o aviso de conclusão ao criador/atribuidor da tarefa.
type UserDirectory interface {
	LookupEmail(ctx context.Context, userID string) (string, error)
}

var (
	ErrUnauthenticated = errors.New("identidade do chamador ausente")
	ErrTaskNotFound    = errors.New("tarefa não encontrada")
	ErrForbidden       = errors.New("chamador sem relação com a tarefa")
	ErrInvalidInput    = errors.New("atualização inválida")
)
