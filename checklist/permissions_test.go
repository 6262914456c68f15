package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wedding-planner-backend/models"
)

func TestEvaluatePermission(t *testing.T) {
	task := &models.ChecklistTask{
		UserID:          "creator-uid",
		AssignedToEmail: "bob@x.com",
	}

	tests := []struct {
		name   string
		caller Identity
		want   Permission
	}{
		{
			name:   "criador",
			caller: Identity{ID: "creator-uid", Email: "carol@example.com"},
			want:   Permission{IsCreator: true, HasPermission: true},
		},
		{
			name:   "responsável",
			caller: Identity{ID: "bob-uid", Email: "bob@x.com"},
			want:   Permission{IsAssignee: true, HasPermission: true},
		},
		{
			name:   "criador que também é o responsável",
			caller: Identity{ID: "creator-uid", Email: "bob@x.com"},
			want:   Permission{IsCreator: true, IsAssignee: true, HasPermission: true},
		},
		{
			name:   "terceiro sem relação",
			caller: Identity{ID: "mallory-uid", Email: "mallory@example.com"},
			want:   Permission{},
		},
		{
			name:   "e-mail difere apenas em maiúsculas",
			caller: Identity{ID: "bob-uid", Email: "Bob@x.com"},
			want:   Permission{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluatePermission(task, tt.caller))
		})
	}
}

func TestEvaluatePermissionEmptyAssigneeEmailNeverMatches(t *testing.T) {
	task := &models.ChecklistTask{UserID: "creator-uid"}

	// Chamador com e-mail vazio não pode casar com atribuição vazia.
	perm := EvaluatePermission(task, Identity{ID: "someone", Email: ""})
	assert.False(t, perm.IsAssignee)
	assert.False(t, perm.HasPermission)
}

func TestNarrowAssigneeUpdateKeepsOnlyCompletedAndNotes(t *testing.T) {
	completed := true
	title := "hacked"
	notes := "quase pronto"
	email := "other@x.com"
	priority := "low"

	narrowed := NarrowAssigneeUpdate(models.UpdateChecklistInput{
		Title:           &title,
		Completed:       &completed,
		Notes:           &notes,
		AssignedToEmail: &email,
		Priority:        &priority,
	})

	assert.Equal(t, models.UpdateChecklistInput{Completed: &completed, Notes: &notes}, narrowed)
}

func TestNarrowAssigneeUpdateEmptyBody(t *testing.T) {
	narrowed := NarrowAssigneeUpdate(models.UpdateChecklistInput{})
	assert.Equal(t, models.UpdateChecklistInput{}, narrowed)
}
