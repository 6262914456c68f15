package models

import "time"

// Categorias válidas para tarefas do checklist do casamento.
var ChecklistCategories = []string{
	"Venue", "Catering", "Beauty", "Attire", "Ceremony",
	"Reception", "Gifts", "Honeymoon", "Legal", "Other",
}

// Prioridades válidas para tarefas.
var TaskPriorities = []string{"low", "medium", "high"}

// ChecklistTask representa uma tarefa do checklist armazenada no Firestore.
// O criador (UserID) é a referência permanente de dono; AssignedTo/AssignedToEmail
// identificam o responsável atual, se houver.
type ChecklistTask struct {
	ID              string     `json:"id" firestore:"-"`
	UserID          string     `json:"userId" firestore:"user_id"`
	Title           string     `json:"title" firestore:"title"`
	Description     string     `json:"description" firestore:"description"`
	DueDate         *time.Time `json:"dueDate,omitempty" firestore:"due_date,omitempty"`
	Completed       bool       `json:"completed" firestore:"completed"`
	CompletedAt     *time.Time `json:"completedAt,omitempty" firestore:"completed_at,omitempty"`
	Category        string     `json:"category" firestore:"category"`
	Priority        string     `json:"priority" firestore:"priority"`
	AssignedTo      string     `json:"assignedTo" firestore:"assigned_to"`
	AssignedToEmail string     `json:"assignedToEmail,omitempty" firestore:"assigned_to_email"`
	AssignedBy      string     `json:"assignedBy,omitempty" firestore:"assigned_by"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty" firestore:"assigned_at,omitempty"`
	EmailSent       bool       `json:"emailSent" firestore:"email_sent"`
	EmailSentAt     *time.Time `json:"emailSentAt,omitempty" firestore:"email_sent_at,omitempty"`
	Notes           string     `json:"notes" firestore:"notes"`
	CreatedAt       time.Time  `json:"createdAt" firestore:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" firestore:"updated_at"`
}

// CreateChecklistInput é o corpo aceito na criação de uma tarefa.
// Campos de atribuição e carimbos derivados não são aceitos aqui: toda
// tarefa nasce sem responsável e a atribuição acontece via atualização.
type CreateChecklistInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Notes       string     `json:"notes"`
}

// UpdateChecklistInput é o corpo parcial de um PUT. Ponteiros indicam
// quais campos atualizar; campos ausentes permanecem inalterados.
type UpdateChecklistInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"dueDate"`
	Completed       *bool      `json:"completed"`
	Category        *string    `json:"category"`
	Priority        *string    `json:"priority"`
	AssignedTo      *string    `json:"assignedTo"`
	AssignedToEmail *string    `json:"assignedToEmail"`
	EmailSent       *bool      `json:"emailSent"`
	Notes           *string    `json:"notes"`
}

// AssignmentNotice é o payload do aviso de nova atribuição de tarefa.
type AssignmentNotice struct {
	TaskTitle       string
	TaskDescription string
	DueDate         *time.Time
	Priority        string
	Category        string
	AssignerName    string
}

// CompletionNotice é o payload do aviso de conclusão de tarefa.
type CompletionNotice struct {
	TaskTitle      string
	CompletedBy    string
	CompletionDate time.Time
}

// ValidChecklistCategory verifica se a categoria pertence ao enum.
func ValidChecklistCategory(category string) bool {
	for _, c := range ChecklistCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidTaskPriority verifica se a prioridade pertence ao enum.
func ValidTaskPriority(priority string) bool {
	for _, p := range TaskPriorities {
		if p == priority {
			return true
		}
	}
	return false
}
