package firebase

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wedding-planner-backend/checklist"
	"wedding-planner-backend/models"
)

// Nome da coleção de tarefas do checklist no Firestore.
const ChecklistCollection = "checklist_tasks"

// ChecklistStore é a implementação Firestore do armazenamento de tarefas
// usado pelo fluxo de atualização do checklist.
type ChecklistStore struct {
	client *firestore.Client
}

func NewChecklistStore(client *firestore.Client) *ChecklistStore {
	return &ChecklistStore{client: client}
}

// GetTask busca uma tarefa pelo id do documento.
func (s *ChecklistStore) GetTask(ctx context.Context, id string) (*models.ChecklistTask, error) {
	doc, err := s.client.Collection(ChecklistCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, checklist.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tarefa %s no Firestore: %w", id, err)
	}

	var task models.ChecklistTask
	if err := doc.DataTo(&task); err != nil {
		return nil, fmt.Errorf("erro ao decodificar tarefa %s: %w", id, err)
	}
	task.ID = doc.Ref.ID
	return &task, nil
}

// UpdateTask aplica uma atualização parcial e retorna o documento resultante.
// Valores nil removem o campo do documento.
func (s *ChecklistStore) UpdateTask(ctx context.Context, id string, fields map[string]interface{}) (*models.ChecklistTask, error) {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		if value == nil {
			value = firestore.Delete
		}
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	ref := s.client.Collection(ChecklistCollection).Doc(id)
	if _, err := ref.Update(ctx, updates); err != nil {
		// A tarefa pode ter sido deletada entre a leitura e a escrita.
		if status.Code(err) == codes.NotFound {
			return nil, checklist.ErrTaskNotFound
		}
		return nil, fmt.Errorf("erro ao atualizar tarefa %s no Firestore: %w", id, err)
	}

	return s.GetTask(ctx, id)
}

// CreateTask grava uma nova tarefa e retorna o id gerado.
func (s *ChecklistStore) CreateTask(ctx context.Context, task *models.ChecklistTask) (string, error) {
	ref := s.client.Collection(ChecklistCollection).NewDoc()
	if _, err := ref.Set(ctx, task); err != nil {
		return "", fmt.Errorf("erro ao criar tarefa no Firestore: %w", err)
	}
	return ref.ID, nil
}

// DeleteTask remove uma tarefa pelo id do documento.
func (s *ChecklistStore) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.client.Collection(ChecklistCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("erro ao deletar tarefa %s do Firestore: %w", id, err)
	}
	return nil
}

// ListTasks retorna todas as tarefas, das mais recentes para as mais antigas.
func (s *ChecklistStore) ListTasks(ctx context.Context) ([]models.ChecklistTask, error) {
	iter := s.client.Collection(ChecklistCollection).
		OrderBy("created_at", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	tasks := []models.ChecklistTask{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao iterar tarefas no Firestore: %w", err)
		}

		var task models.ChecklistTask
		if err := doc.DataTo(&task); err != nil {
			return nil, fmt.Errorf("erro ao decodificar tarefa %s: %w", doc.Ref.ID, err)
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, task)
	}
	return tasks, nil
}
