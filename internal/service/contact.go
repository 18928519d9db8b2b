package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"folio/internal/logger"
	"folio/internal/model"
	"folio/internal/notify"
	"folio/internal/repository"
)

const (
	contactReceived = "Thank you for your message! I'll get back to you soon."
	contactQueued   = "Your message has been received. I'll get back to you soon!"
	deliveryPending = "Email delivery pending"

	notifyTimeout = 10 * time.Second
)

// ValidationError lists the contact form fields that failed validation.
// It matches ErrInvalidContact with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range contactFieldOrder {
		if msg, ok := e.Fields[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidContact
}

var contactFieldOrder = []string{"name", "email", "company", "subject", "message"}

// ContactListResult is the service-level DTO for paginated submissions.
type ContactListResult struct {
	Items []model.ContactSubmission `json:"data"`
	Total int                       `json:"total"`
}

// ContactService accepts contact form submissions.
type ContactService interface {
	// Submit validates and stores the form, then emails a notification.
	// A failed notification still succeeds, with Note set.
	Submit(ctx context.Context, form model.ContactForm) (*model.ContactResult, error)

	// List returns stored submissions newest first.
	List(ctx context.Context, limit, offset int) (*ContactListResult, error)
}

type contactService struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
	validate *validator.Validate
	log      logger.Logger
}

// NewContactService constructs a new ContactService. A nil notifier skips email.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier, log logger.Logger) ContactService {
	if log == nil {
		log = logger.Nop()
	}
	return &contactService{
		repo:     repo,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log.With(logger.String("component", "contact")),
	}
}

func (s *contactService) Submit(ctx context.Context, form model.ContactForm) (*model.ContactResult, error) {
	form = normalizeContact(form)
	if err := s.Validate(form); err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, &model.ContactSubmission{
		Name:    form.Name,
		Email:   form.Email,
		Company: form.Company,
		Subject: form.Subject,
		Message: form.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("store contact submission: %w", err)
	}

	res := &model.ContactResult{Success: true, Message: contactReceived, ID: stored.ID}
	if s.notifier == nil {
		res.Message = contactQueued
		res.Note = deliveryPending
		return res, nil
	}

	nctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(nctx, stored); err != nil {
		s.log.Warn("contact_notification_failed",
			logger.Int64("submission_id", stored.ID),
			logger.Error(err),
		)
		res.Message = contactQueued
		res.Note = deliveryPending
	}
	return res, nil
}

// Validate checks a normalized form against its validate tags.
func (s *contactService) Validate(form model.ContactForm) error {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	out := &ValidationError{Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[strings.ToLower(fe.Field())] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

func normalizeContact(f model.ContactForm) model.ContactForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Company = strings.TrimSpace(f.Company)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

func (s *contactService) List(ctx context.Context, limit, offset int) (*ContactListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &ContactListResult{Items: res.Items, Total: res.Total}, nil
}
