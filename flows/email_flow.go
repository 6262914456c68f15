package flows

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"wedding-planner-backend/models"
	"wedding-planner-backend/utilities"

	"gopkg.in/gomail.v2"
)

// EmailService envia avisos de atribuição e conclusão de tarefas por SMTP.
// Fica não-configurado (e silenciosamente inerte) quando EMAIL_USER ou
// EMAIL_PASS não estão definidos no ambiente.
type EmailService struct {
	dialer     *gomail.Dialer
	from       string
	fromName   string
	configured bool
}

// NewEmailServiceFromEnv monta o serviço a partir das variáveis de ambiente
// EMAIL_HOST, EMAIL_PORT, EMAIL_USER, EMAIL_PASS e EMAIL_FROM_NAME.
func NewEmailServiceFromEnv() *EmailService {
	host := os.Getenv("EMAIL_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port, err := strconv.Atoi(os.Getenv("EMAIL_PORT"))
	if err != nil || port <= 0 {
		port = 587
	}
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Wedding Planner"
	}

	svc := &EmailService{from: user, fromName: fromName}
	if user == "" || pass == "" {
		utilities.LogInfo("Serviço de e-mail não configurado: EMAIL_USER ou EMAIL_PASS ausentes. Avisos serão descartados.")
		return svc
	}

	svc.dialer = gomail.NewDialer(host, port, user, pass)
	svc.configured = true
	utilities.LogInfo("Serviço de e-mail configurado para %s:%d", host, port)
	return svc
}

// Configured informa se há transporte SMTP disponível.
func (s *EmailService) Configured() bool {
	return s.configured
}

// SendAssignmentNotice envia o aviso de nova atribuição de tarefa.
// Retorna true apenas quando o transporte confirmou o envio.
func (s *EmailService) SendAssignmentNotice(toEmail string, data models.AssignmentNotice) bool {
	subject := fmt.Sprintf("New Wedding Task Assigned: %s", data.TaskTitle)
	return s.send(toEmail, subject, assignmentText(data), assignmentHTML(data))
}

// SendCompletionNotice envia o aviso de conclusão ao atribuidor da tarefa.
func (s *EmailService) SendCompletionNotice(toEmail string, data models.CompletionNotice) bool {
	subject := fmt.Sprintf("Task Completed: %s", data.TaskTitle)
	return s.send(toEmail, subject, completionText(data), completionHTML(data))
}

func (s *EmailService) send(toEmail, subject, text, html string) bool {
	if !s.configured {
		utilities.LogDebug("Serviço de e-mail não configurado; envio para %s ignorado", toEmail)
		return false
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", html)

	if err := s.dialer.DialAndSend(m); err != nil {
		utilities.LogError(err, fmt.Sprintf("Falha ao enviar e-mail para %s", toEmail))
		return false
	}
	utilities.LogInfo("E-mail enviado com sucesso para %s: %s", toEmail, subject)
	return true
}

var priorityColors = map[string]string{
	"low":    "#10B981",
	"medium": "#F59E0B",
	"high":   "#EF4444",
}

func assignmentHTML(data models.AssignmentNotice) string {
	var b strings.Builder
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif; line-height: 1.6; color: #333;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #0d9488, #14b8a6); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">`)
	b.WriteString(`<h1 style="margin: 0; font-size: 28px;">🎉 New Wedding Task Assigned</h1>`)
	b.WriteString(`<p style="margin: 10px 0 0 0; opacity: 0.9;">You've been assigned a new task for the upcoming wedding!</p>`)
	b.WriteString(`</div><div style="background: #f8fafc; padding: 30px; border-radius: 0 0 8px 8px;">`)
	b.WriteString(`<div style="background: white; padding: 25px; border-radius: 8px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #0d9488; margin-top: 0;">%s</h2>`, data.TaskTitle)

	color, ok := priorityColors[data.Priority]
	if !ok {
		color = priorityColors["medium"]
	}
	fmt.Fprintf(&b, `<div style="margin: 20px 0;"><span style="background: %s; color: white; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: bold; text-transform: uppercase;">%s Priority</span> `, color, data.Priority)
	fmt.Fprintf(&b, `<span style="background: #e2e8f0; color: #475569; padding: 4px 12px; border-radius: 20px; font-size: 12px; font-weight: bold;">%s</span></div>`, data.Category)

	if data.TaskDescription != "" {
		fmt.Fprintf(&b, `<div style="margin: 20px 0;"><h3 style="color: #475569; font-size: 16px;">📝 Description:</h3><p style="background: #f1f5f9; padding: 15px; border-radius: 6px; margin: 0; border-left: 4px solid #0d9488;">%s</p></div>`, data.TaskDescription)
	}
	if data.DueDate != nil {
		fmt.Fprintf(&b, `<div style="margin: 20px 0;"><h3 style="color: #475569; font-size: 16px;">📅 Due Date:</h3><p style="background: #fef3c7; padding: 15px; border-radius: 6px; margin: 0; border-left: 4px solid #f59e0b; font-weight: bold;">%s</p></div>`, data.DueDate.Format("Monday, January 2, 2006"))
	}
	if data.AssignerName != "" {
		fmt.Fprintf(&b, `<div style="margin: 20px 0;"><h3 style="color: #475569; font-size: 16px;">👤 Assigned by:</h3><p style="margin: 0; font-weight: bold; color: #0d9488;">%s</p></div>`, data.AssignerName)
	}

	b.WriteString(`</div><div style="text-align: center; margin-top: 20px; color: #6b7280; font-size: 14px;">`)
	b.WriteString(`<p>This email was sent by your Wedding Planner application.</p><p>Please do not reply to this email.</p>`)
	b.WriteString(`</div></div></div>`)
	return b.String()
}

func assignmentText(data models.AssignmentNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New Wedding Task Assigned: %s\n\n", data.TaskTitle)
	description := data.TaskDescription
	if description == "" {
		description = "No description provided"
	}
	fmt.Fprintf(&b, "Description: %s\n", description)
	fmt.Fprintf(&b, "Priority: %s\n", data.Priority)
	fmt.Fprintf(&b, "Category: %s\n", data.Category)
	if data.DueDate != nil {
		fmt.Fprintf(&b, "Due Date: %s\n", data.DueDate.Format("Monday, January 2, 2006"))
	}
	if data.AssignerName != "" {
		fmt.Fprintf(&b, "Assigned by: %s\n", data.AssignerName)
	}
	b.WriteString("\nThis email was sent by your Wedding Planner application.\n")
	return b.String()
}

func completionHTML(data models.CompletionNotice) string {
	var b strings.Builder
	b.WriteString(`<div style="max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif; line-height: 1.6; color: #333;">`)
	b.WriteString(`<div style="background: linear-gradient(135deg, #10b981, #34d399); color: white; padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">`)
	b.WriteString(`<h1 style="margin: 0; font-size: 28px;">✅ Task Completed!</h1>`)
	b.WriteString(`<p style="margin: 10px 0 0 0; opacity: 0.9;">Great news! A wedding task has been completed.</p>`)
	b.WriteString(`</div><div style="background: #f8fafc; padding: 30px; border-radius: 0 0 8px 8px;">`)
	b.WriteString(`<div style="background: white; padding: 25px; border-radius: 8px;">`)
	fmt.Fprintf(&b, `<h2 style="color: #10b981; margin-top: 0;">%s</h2>`, data.TaskTitle)
	fmt.Fprintf(&b, `<p style="margin: 20px 0; font-size: 16px;"><strong>Completed by:</strong> %s<br><strong>Completion Date:</strong> %s</p>`,
		data.CompletedBy, data.CompletionDate.Format("Monday, January 2, 2006 3:04 PM"))
	b.WriteString(`</div></div></div>`)
	return b.String()
}

func completionText(data models.CompletionNotice) string {
	return fmt.Sprintf("Task Completed: %s\n\nCompleted by: %s\nCompletion Date: %s\n",
		data.TaskTitle, data.CompletedBy, data.CompletionDate.Format("Monday, January 2, 2006 3:04 PM"))
}
