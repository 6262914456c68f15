package checklist

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding-planner-backend/models"
)

// fakeStore é um dublê em memória do TaskStore. Aplica atualizações parciais
// da mesma forma que a implementação Firestore: chave por chave, nil remove.
type fakeStore struct {
	tasks       map[string]*models.ChecklistTask
	updateCalls []map[string]interface{}
	failUpdates int // falha as próximas N chamadas de UpdateTask
}

func newFakeStore(tasks ...*models.ChecklistTask) *fakeStore {
	s := &fakeStore{tasks: map[string]*models.ChecklistTask{}}
	for _, t := range tasks {
		s.tasks[t.ID] = t
	}
	return s
}

func cloneTask(t *models.ChecklistTask) *models.ChecklistTask {
	c := *t
	return &c
}

func (s *fakeStore) GetTask(_ context.Context, id string) (*models.ChecklistTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (s *fakeStore) UpdateTask(_ context.Context, id string, fields map[string]interface{}) (*models.ChecklistTask, error) {
	s.updateCalls = append(s.updateCalls, fields)
	if s.failUpdates > 0 {
		s.failUpdates--
		return nil, errors.New("falha simulada de escrita")
	}
	task, ok := s.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}

	for path, value := range fields {
		switch path {
		case "title":
			task.Title = value.(string)
		case "description":
			task.Description = value.(string)
		case "due_date":
			d := value.(time.Time)
			task.DueDate = &d
		case "completed":
			task.Completed = value.(bool)
		case "completed_at":
			if value == nil {
				task.CompletedAt = nil
			} else {
				c := value.(time.Time)
				task.CompletedAt = &c
			}
		case "category":
			task.Category = value.(string)
		case "priority":
			task.Priority = value.(string)
		case "assigned_to":
			task.AssignedTo = value.(string)
		case "assigned_to_email":
			task.AssignedToEmail = value.(string)
		case "assigned_by":
			task.AssignedBy = value.(string)
		case "assigned_at":
			a := value.(time.Time)
			task.AssignedAt = &a
		case "email_sent":
			task.EmailSent = value.(bool)
		case "email_sent_at":
			if value == nil {
				task.EmailSentAt = nil
			} else {
				e := value.(time.Time)
				task.EmailSentAt = &e
			}
		case "notes":
			task.Notes = value.(string)
		case "updated_at":
			task.UpdatedAt = value.(time.Time)
		}
	}
	return cloneTask(task), nil
}

type sentNotice struct {
	to   string
	kind string
}

// fakeNotifier registra cada tentativa de envio.
type fakeNotifier struct {
	configured bool
	sendResult bool
	sent       []sentNotice
}

func (n *fakeNotifier) Configured() bool { return n.configured }

func (n *fakeNotifier) SendAssignmentNotice(toEmail string, _ models.AssignmentNotice) bool {
	n.sent = append(n.sent, sentNotice{to: toEmail, kind: "assignment"})
	return n.sendResult
}

func (n *fakeNotifier) SendCompletionNotice(toEmail string, _ models.CompletionNotice) bool {
	n.sent = append(n.sent, sentNotice{to: toEmail, kind: "completion"})
	return n.sendResult
}

type fakeDirectory struct {
	emails map[string]string
}

func (d *fakeDirectory) LookupEmail(_ context.Context, userID string) (string, error) {
	email, ok := d.emails[userID]
	if !ok {
		return "", errors.New("usuário desconhecido")
	}
	return email, nil
}

var fixedNow = time.Date(2025, 6, 14, 10, 30, 0, 0, time.UTC)

func newTestCoordinator(store *fakeStore, notifier *fakeNotifier, directory *fakeDirectory) *Coordinator {
	if directory == nil {
		directory = &fakeDirectory{emails: map[string]string{}}
	}
	c := NewCoordinator(store, notifier, directory)
	c.now = func() time.Time { return fixedNow }
	return c
}

func baseTask() *models.ChecklistTask {
	created := fixedNow.Add(-48 * time.Hour)
	return &models.ChecklistTask{
		ID:        "task-1",
		UserID:    "creator-uid",
		Title:     "Book the venue",
		Category:  "Venue",
		Priority:  "high",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

var (
	creator  = Identity{ID: "creator-uid", Email: "carol@example.com", Name: "Carol"}
	assignee = Identity{ID: "bob-uid", Email: "bob@x.com", Name: "Bob"}
	stranger = Identity{ID: "mallory-uid", Email: "mallory@example.com", Name: "Mallory"}
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdateRejectsEmptyIdentity(t *testing.T) {
	store := newFakeStore(baseTask())
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	_, err := c.Update(context.Background(), "task-1", Identity{}, models.UpdateChecklistInput{})
	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, store.updateCalls)
}

func TestUpdateUnknownTaskReturnsNotFound(t *testing.T) {
	store := newFakeStore()
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	_, err := c.Update(context.Background(), "missing", creator, models.UpdateChecklistInput{})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestUpdateByStrangerIsForbiddenAndLeavesTaskUntouched(t *testing.T) {
	task := baseTask()
	store := newFakeStore(task)
	c := newTestCoordinator(store, &fakeNotifier{configured: true, sendResult: true}, nil)

	_, err := c.Update(context.Background(), "task-1", stranger, models.UpdateChecklistInput{
		Title:     strPtr("hijacked"),
		Completed: boolPtr(true),
	})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, store.updateCalls, "nenhuma escrita deve acontecer antes da autorização")
	assert.Equal(t, "Book the venue", store.tasks["task-1"].Title)
	assert.False(t, store.tasks["task-1"].Completed)
}

func TestAssigneeUpdateIsNarrowedToCompletedAndNotes(t *testing.T) {
	task := baseTask()
	task.AssignedTo = "Bob"
	task.AssignedToEmail = "bob@x.com"
	task.AssignedBy = "Carol"
	store := newFakeStore(task)
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	updated, err := c.Update(context.Background(), "task-1", assignee, models.UpdateChecklistInput{
		Completed:       boolPtr(true),
		Title:           strPtr("hacked"),
		Priority:        strPtr("low"),
		AssignedToEmail: strPtr("mallory@example.com"),
		Notes:           strPtr("done early"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Book the venue", updated.Title, "título de responsável deve ser descartado")
	assert.Equal(t, "high", updated.Priority)
	assert.Equal(t, "bob@x.com", updated.AssignedToEmail)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, fixedNow, *updated.CompletedAt)
	assert.Equal(t, "done early", updated.Notes)
}

func TestCompletionTimestampSetExactlyOnce(t *testing.T) {
	earlier := fixedNow.Add(-24 * time.Hour)
	task := baseTask()
	task.Completed = true
	task.CompletedAt = &earlier
	store := newFakeStore(task)
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, earlier, *updated.CompletedAt, "reconcluir não altera completed_at")
}

func TestUncompletingClearsCompletionTimestamp(t *testing.T) {
	earlier := fixedNow.Add(-24 * time.Hour)
	task := baseTask()
	task.Completed = true
	task.CompletedAt = &earlier
	store := newFakeStore(task)
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Completed: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.Completed)
	assert.Nil(t, updated.CompletedAt)
}

func TestAssignmentStampsAndNotifies(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Carol", updated.AssignedBy)
	require.NotNil(t, updated.AssignedAt)
	assert.Equal(t, fixedNow, *updated.AssignedAt)
	assert.False(t, updated.EmailSent, "a resposta reflete o estado persistido antes do patch do flag")

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, sentNotice{to: "bob@x.com", kind: "assignment"}, notifier.sent[0])

	// O patch posterior do flag deve ter sido gravado no armazenamento.
	final := store.tasks["task-1"]
	assert.True(t, final.EmailSent)
	require.NotNil(t, final.EmailSentAt)
	assert.Equal(t, fixedNow, *final.EmailSentAt)
}

func TestReassignmentForcesEmailSentFalse(t *testing.T) {
	assignedAt := fixedNow.Add(-72 * time.Hour)
	task := baseTask()
	task.AssignedTo = "Bob"
	task.AssignedToEmail = "bob@x.com"
	task.AssignedBy = "Carol"
	task.AssignedAt = &assignedAt
	task.EmailSent = true
	store := newFakeStore(task)
	notifier := &fakeNotifier{configured: false}
	c := newTestCoordinator(store, notifier, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Dave"),
		AssignedToEmail: strPtr("dave@x.com"),
		EmailSent:       boolPtr(true), // o corpo tenta manter o flag
	})
	require.NoError(t, err)

	assert.False(t, updated.EmailSent, "reatribuição zera email_sent mesmo com corpo contrário")
	assert.Nil(t, updated.EmailSentAt)
	assert.Equal(t, "Dave", updated.AssignedTo)
	require.NotNil(t, updated.AssignedAt)
	assert.Equal(t, fixedNow, *updated.AssignedAt)
	assert.Empty(t, notifier.sent, "notifier não configurado: nenhuma tentativa de envio")
}

func TestAssignerNameFallsBackToEmail(t *testing.T) {
	store := newFakeStore(baseTask())
	c := newTestCoordinator(store, &fakeNotifier{}, nil)
	namelessCreator := Identity{ID: "creator-uid", Email: "carol@example.com"}

	updated, err := c.Update(context.Background(), "task-1", namelessCreator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", updated.AssignedBy)
}

func TestCompletionByAssigneeNotifiesAssigner(t *testing.T) {
	task := baseTask()
	task.AssignedTo = "Bob"
	task.AssignedToEmail = "bob@x.com"
	task.AssignedBy = "Alice"
	store := newFakeStore(task)
	notifier := &fakeNotifier{configured: true, sendResult: true}
	directory := &fakeDirectory{emails: map[string]string{"creator-uid": "alice@x.com"}}
	c := newTestCoordinator(store, notifier, directory)

	updated, err := c.Update(context.Background(), "task-1", assignee, models.UpdateChecklistInput{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, sentNotice{to: "alice@x.com", kind: "completion"}, notifier.sent[0])
}

func TestCompletionByCreatorDoesNotNotify(t *testing.T) {
	task := baseTask()
	task.AssignedBy = "Alice"
	store := newFakeStore(task)
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)

	_, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.sent)
}

func TestCompletionWithUnconfiguredNotifierStillSucceeds(t *testing.T) {
	task := baseTask()
	task.AssignedTo = "Bob"
	task.AssignedToEmail = "bob@x.com"
	task.AssignedBy = "Alice"
	store := newFakeStore(task)
	notifier := &fakeNotifier{configured: false}
	c := newTestCoordinator(store, notifier, nil)

	updated, err := c.Update(context.Background(), "task-1", assignee, models.UpdateChecklistInput{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Empty(t, notifier.sent)
}

func TestDirectoryFailureDegradesSilently(t *testing.T) {
	task := baseTask()
	task.AssignedTo = "Bob"
	task.AssignedToEmail = "bob@x.com"
	task.AssignedBy = "Alice"
	store := newFakeStore(task)
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, &fakeDirectory{emails: map[string]string{}})

	updated, err := c.Update(context.Background(), "task-1", assignee, models.UpdateChecklistInput{
		Completed: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Empty(t, notifier.sent, "sem e-mail do atribuidor, aviso é descartado")
}

func TestRepeatedPutTriggersNoSecondNotification(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)

	input := models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
		Completed:       boolPtr(true),
	}

	_, err := c.Update(context.Background(), "task-1", creator, input)
	require.NoError(t, err)
	require.Len(t, notifier.sent, 1)

	// Mesmo corpo de novo: sem transição, sem novos avisos.
	_, err = c.Update(context.Background(), "task-1", creator, input)
	require.NoError(t, err)
	assert.Len(t, notifier.sent, 1)
}

func TestFailedAssignmentSendSkipsFlagPatch(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: false}
	c := newTestCoordinator(store, notifier, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	})
	require.NoError(t, err, "falha de envio nunca falha a requisição")
	assert.False(t, updated.EmailSent)
	assert.False(t, store.tasks["task-1"].EmailSent)
	assert.Len(t, store.updateCalls, 1, "sem envio confirmado não há patch do flag")
}

func TestMainWriteFailureSurfaces(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)

	store.failUpdates = 1
	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	})
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.Empty(t, notifier.sent, "sem escrita principal não há notificação")
}

func TestFlagPatchFailureDoesNotFailRequest(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)
	c.store = &flagPatchFailingStore{fakeStore: store}

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
	})
	require.NoError(t, err, "falha do patch do flag é apenas registrada em log")
	require.Len(t, notifier.sent, 1)
	assert.False(t, updated.EmailSent)
	assert.False(t, store.tasks["task-1"].EmailSent, "flag permanece false após patch falho")
}

// flagPatchFailingStore deixa a escrita principal passar e falha qualquer
// escrita cujo único propósito seja gravar o flag email_sent.
type flagPatchFailingStore struct {
	*fakeStore
}

func (s *flagPatchFailingStore) UpdateTask(ctx context.Context, id string, fields map[string]interface{}) (*models.ChecklistTask, error) {
	if _, isFlagPatch := fields["email_sent_at"]; isFlagPatch && len(fields) == 3 {
		return nil, errors.New("falha simulada no patch do flag")
	}
	return s.fakeStore.UpdateTask(ctx, id, fields)
}

func TestReassignWhileCompletingFiresOnlyAssignmentNotice(t *testing.T) {
	store := newFakeStore(baseTask())
	notifier := &fakeNotifier{configured: true, sendResult: true}
	c := newTestCoordinator(store, notifier, nil)

	updated, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		AssignedTo:      strPtr("Bob"),
		AssignedToEmail: strPtr("bob@x.com"),
		Completed:       boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, updated.Completed)
	require.NotNil(t, updated.CompletedAt)
	assert.Equal(t, "Carol", updated.AssignedBy)

	// Conclusão pelo próprio criador não gera aviso de conclusão;
	// a nova atribuição gera o aviso de atribuição.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "assignment", notifier.sent[0].kind)
}

func TestInvalidPriorityRejected(t *testing.T) {
	store := newFakeStore(baseTask())
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	_, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Priority: strPtr("urgent"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, store.updateCalls)
}

func TestInvalidCategoryRejected(t *testing.T) {
	store := newFakeStore(baseTask())
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	_, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Category: strPtr("Fireworks"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestEmptyTitleRejected(t *testing.T) {
	store := newFakeStore(baseTask())
	c := newTestCoordinator(store, &fakeNotifier{}, nil)

	_, err := c.Update(context.Background(), "task-1", creator, models.UpdateChecklistInput{
		Title: strPtr(""),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}
