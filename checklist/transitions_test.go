package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wedding-planner-backend/models"
)

func TestDetectTransitionsCompletion(t *testing.T) {
	completedTrue := true
	completedFalse := false

	tests := []struct {
		name  string
		prior bool
		input *bool
		want  bool
	}{
		{"falso para verdadeiro é conclusão nova", false, &completedTrue, true},
		{"já concluída não é transição", true, &completedTrue, false},
		{"desfazer conclusão não é transição", true, &completedFalse, false},
		{"campo ausente não é transição", false, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prior := &models.ChecklistTask{Completed: tt.prior}
			got := DetectTransitions(prior, models.UpdateChecklistInput{Completed: tt.input}, true)
			assert.Equal(t, tt.want, got.NewlyCompleted)
		})
	}
}

func TestDetectTransitionsAssignment(t *testing.T) {
	prior := &models.ChecklistTask{
		AssignedTo:      "Bob",
		AssignedToEmail: "bob@x.com",
	}

	tests := []struct {
		name      string
		input     models.UpdateChecklistInput
		isCreator bool
		want      bool
	}{
		{
			name: "novo responsável pelo criador",
			input: models.UpdateChecklistInput{
				AssignedTo:      strPtr("Dave"),
				AssignedToEmail: strPtr("dave@x.com"),
			},
			isCreator: true,
			want:      true,
		},
		{
			name: "mesmo nome com e-mail novo ainda é atribuição",
			input: models.UpdateChecklistInput{
				AssignedTo:      strPtr("Bob"),
				AssignedToEmail: strPtr("bob@outro.com"),
			},
			isCreator: true,
			want:      true,
		},
		{
			name: "mesmos valores não são transição",
			input: models.UpdateChecklistInput{
				AssignedTo:      strPtr("Bob"),
				AssignedToEmail: strPtr("bob@x.com"),
			},
			isCreator: true,
			want:      false,
		},
		{
			name: "não-criador nunca atribui",
			input: models.UpdateChecklistInput{
				AssignedTo:      strPtr("Dave"),
				AssignedToEmail: strPtr("dave@x.com"),
			},
			isCreator: false,
			want:      false,
		},
		{
			name: "nome sem e-mail não atribui",
			input: models.UpdateChecklistInput{
				AssignedTo: strPtr("Dave"),
			},
			isCreator: true,
			want:      false,
		},
		{
			name: "e-mail vazio não atribui",
			input: models.UpdateChecklistInput{
				AssignedTo:      strPtr("Dave"),
				AssignedToEmail: strPtr(""),
			},
			isCreator: true,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectTransitions(prior, tt.input, tt.isCreator)
			assert.Equal(t, tt.want, got.NewAssignment)
		})
	}
}

func TestDetectTransitionsCanCoOccur(t *testing.T) {
	prior := &models.ChecklistTask{}
	completed := true

	got := DetectTransitions(prior, models.UpdateChecklistInput{
		Completed:       &completed,
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	}, true)

	assert.True(t, got.NewAssignment)
	assert.True(t, got.NewlyCompleted)
}
