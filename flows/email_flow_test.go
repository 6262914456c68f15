package flows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wedding-planner-backend/models"
)

func TestUnconfiguredServiceNeverSends(t *testing.T) {
	svc := &EmailService{}

	assert.False(t, svc.Configured())
	assert.False(t, svc.SendAssignmentNotice("bob@x.com", models.AssignmentNotice{TaskTitle: "Book the venue"}))
	assert.False(t, svc.SendCompletionNotice("alice@x.com", models.CompletionNotice{TaskTitle: "Book the venue"}))
}

func TestAssignmentBodies(t *testing.T) {
	due := time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC)
	data := models.AssignmentNotice{
		TaskTitle:       "Book the venue",
		TaskDescription: "Visit and reserve the garden hall",
		DueDate:         &due,
		Priority:        "high",
		Category:        "Venue",
		AssignerName:    "Carol",
	}

	html := assignmentHTML(data)
	assert.Contains(t, html, "Book the venue")
	assert.Contains(t, html, "Visit and reserve the garden hall")
	assert.Contains(t, html, "Saturday, September 20, 2025")
	assert.Contains(t, html, "Carol")
	assert.Contains(t, html, priorityColors["high"])
	assert.Contains(t, html, "Venue")

	text := assignmentText(data)
	assert.Contains(t, text, "New Wedding Task Assigned: Book the venue")
	assert.Contains(t, text, "Priority: high")
	assert.Contains(t, text, "Assigned by: Carol")
	assert.Contains(t, text, "Due Date: Saturday, September 20, 2025")
}

func TestAssignmentBodiesOmitOptionalSections(t *testing.T) {
	data := models.AssignmentNotice{
		TaskTitle: "Order flowers",
		Priority:  "medium",
		Category:  "Other",
	}

	html := assignmentHTML(data)
	assert.NotContains(t, html, "Description:")
	assert.NotContains(t, html, "Due Date:")
	assert.NotContains(t, html, "Assigned by:")

	text := assignmentText(data)
	assert.Contains(t, text, "Description: No description provided")
	assert.NotContains(t, text, "Due Date:")
}

func TestUnknownPriorityFallsBackToMediumColor(t *testing.T) {
	html := assignmentHTML(models.AssignmentNotice{TaskTitle: "x", Priority: "whatever", Category: "Other"})
	assert.Contains(t, html, priorityColors["medium"])
}

func TestCompletionBodies(t *testing.T) {
	completedAt := time.Date(2025, 6, 14, 15, 4, 0, 0, time.UTC)
	data := models.CompletionNotice{
		TaskTitle:      "Book the venue",
		CompletedBy:    "Bob",
		CompletionDate: completedAt,
	}

	html := completionHTML(data)
	assert.Contains(t, html, "Task Completed!")
	assert.Contains(t, html, "Book the venue")
	assert.Contains(t, html, "Bob")
	assert.Contains(t, html, "Saturday, June 14, 2025 3:04 PM")

	text := completionText(data)
	assert.Contains(t, text, "Task Completed: Book the venue")
	assert.Contains(t, text, "Completed by: Bob")
}
