package site

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"folio/internal/apiclient"
	"folio/internal/http/middleware"
	"folio/internal/logger"
	"folio/internal/model"
)

const sendFailedMessage = "Failed to send message. Please try again or email me directly."

type connectPage struct {
	layoutData
	Config  *model.SiteConfig
	Form    model.ContactForm
	Errors  map[string]string
	Success string
	Note    string
	Failure string
}

var formValidator = validator.New(validator.WithRequiredStructEnabled())

var fieldLabels = map[string]string{
	"name":    "Name",
	"email":   "Email",
	"company": "Company",
	"subject": "Subject",
	"message": "Message",
}

// validateContact checks the form the same way the API does and returns
// one message per invalid field, keyed by form field name.
func validateContact(f model.ContactForm) map[string]string {
	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := strings.ToLower(fe.StructField())
		label := fieldLabels[key]
		switch fe.Tag() {
		case "required":
			out[key] = label + " is required"
		case "email":
			out[key] = "Please enter a valid email address"
		case "max":
			out[key] = fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		default:
			out[key] = label + " is invalid"
		}
	}
	return out
}

func trimForm(f model.ContactForm) model.ContactForm {
	return model.ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Company: strings.TrimSpace(f.Company),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

func (s *Site) connect(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	cfg, err := s.api.GetSiteConfig(ctx)
	if err != nil {
		return s.unavailable(c, "Connect", err)
	}
	return s.render(c, fiber.StatusOK, "connect", connectPage{
		layoutData: s.layout(c, "Connect", cfg),
		Config:     cfg,
	})
}

func (s *Site) submitContact(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	var form model.ContactForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	form = trimForm(form)

	p := connectPage{Form: form}
	status := fiber.StatusOK

	if errs := validateContact(form); errs != nil {
		p.Errors = errs
		status = fiber.StatusUnprocessableEntity
	} else {
		res, err := s.api.SubmitContact(apiclient.WithClientIP(ctx, c.IP()), form)
		var ce *apiclient.ContactError
		switch {
		case err == nil:
			p.Success = res.Message
			p.Note = res.Note
			p.Form = model.ContactForm{}
		case errors.As(err, &ce):
			p.Failure = ce.Message
			if p.Failure == "" {
				p.Failure = sendFailedMessage
			}
			p.Errors = ce.Fields
			status = fiber.StatusUnprocessableEntity
		default:
			s.log.Warn("contact_submit_failed",
				logger.String("request_id", middleware.GetRequestID(c)),
				logger.Error(err),
			)
			p.Failure = sendFailedMessage
			status = fiber.StatusBadGateway
		}
	}

	p.Config = s.optionalConfig(ctx, c)
	p.layoutData = s.layout(c, "Connect", p.Config)
	return s.render(c, status, "connect", p)
}

// optionalConfig loads the site config for contact links; the form result
// is still rendered when it cannot be loaded.
func (s *Site) optionalConfig(ctx context.Context, c *fiber.Ctx) *model.SiteConfig {
	cfg, err := s.api.GetSiteConfig(ctx)
	if err != nil {
		s.log.Warn("page_fetch_failed",
			logger.String("request_id", middleware.GetRequestID(c)),
			logger.String("page", "Connect"),
			logger.Error(err),
		)
		return nil
	}
	return cfg
}
