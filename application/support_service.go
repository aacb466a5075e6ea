package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"hostpro/domain/catalog"
	"hostpro/domain/toast"
	"hostpro/logging"
)

// MaxAttachmentSize bounds uploaded ticket attachments.
const MaxAttachmentSize = 5 << 20

// ErrAttachmentRejected is returned for attachments of an unsupported type or size.
var ErrAttachmentRejected = errors.New("attachment rejected")

var allowedAttachmentTypes = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"application/pdf",
	"text/plain",
}

// Ticket form choices.
var (
	TicketDepartments = []string{"Technical", "Billing", "Sales", "General"}
	TicketPriorities  = []string{"Low", "Medium", "High"}
)

// Defaults applied when the form leaves a choice blank.
const (
	DefaultTicketDepartment = "Technical"
	DefaultTicketPriority   = "Medium"
)

// TicketForm is a new support request.
type TicketForm struct {
	Subject    string      `form:"subject" validate:"required,max=200"`
	Department string      `form:"department" validate:"required,oneof=Technical Billing Sales General"`
	Priority   string      `form:"priority" validate:"required,oneof=Low Medium High"`
	Message    string      `form:"message" validate:"required,max=5000"`
	Attachment *Attachment `form:"-"`
}

// Attachment is a file uploaded with a ticket.
type Attachment struct {
	Name string
	Data []byte
}

// SupportService creates support tickets in a client's workspace.
type SupportService struct {
	now    func() time.Time
	logger *logging.Logger
}

// NewSupportService creates a new support service
func NewSupportService() *SupportService {
	return &SupportService{
		now:    time.Now,
		logger: logging.Default().WithComponent("support_service"),
	}
}

// CreateTicket validates form, prepends a new open ticket to the client's
// list and announces it with a toast.
func (s *SupportService) CreateTicket(ac *AppContext, form TicketForm) (catalog.Ticket, error) {
	form.Subject = strings.TrimSpace(form.Subject)
	form.Message = strings.TrimSpace(form.Message)
	if form.Department == "" {
		form.Department = DefaultTicketDepartment
	}
	if form.Priority == "" {
		form.Priority = DefaultTicketPriority
	}
	if err := Validate(form); err != nil {
		return catalog.Ticket{}, err
	}

	var attachment string
	if form.Attachment != nil && len(form.Attachment.Data) > 0 {
		kind, err := checkAttachment(form.Attachment)
		if err != nil {
			return catalog.Ticket{}, err
		}
		attachment = fmt.Sprintf("%s (%s)", form.Attachment.Name, kind)
	}

	stamp := s.now().Format("2006-01-02 15:04")
	ticket := ac.Workspace().addTicket(catalog.Ticket{
		Subject:    form.Subject,
		Department: form.Department,
		Priority:   form.Priority,
		Status:     "Open",
		Message:    form.Message,
		Attachment: attachment,
		CreatedAt:  stamp,
		LastUpdate: stamp,
	})

	ac.Toasts.Show(toast.Options{
		Title:       "Ticket created",
		Description: "Your support ticket has been created.",
		Kind:        toast.KindSuccess,
	})
	s.logger.Client("Support ticket created", ac.ClientID)
	return ticket, nil
}

func checkAttachment(a *Attachment) (string, error) {
	if len(a.Data) > MaxAttachmentSize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrAttachmentRejected, a.Name, MaxAttachmentSize)
	}
	mt := mimetype.Detect(a.Data)
	for _, allowed := range allowedAttachmentTypes {
		if mt.Is(allowed) {
			return mt.String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s has unsupported type %s", ErrAttachmentRejected, a.Name, mt.String())
}

func ticketID(seq int) string {
	return fmt.Sprintf("TCK-%d", seq)
}
