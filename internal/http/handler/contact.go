package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"folio/internal/model"
	"folio/internal/service"
)

// SubmitContact accepts a contact form as JSON or urlencoded form data.
//
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param form body model.ContactForm true "contact form"
// @Success 200 {object} model.ContactResult
// @Failure 400 {object} errorPayload
// @Failure 429 {object} errorPayload
// @Router /api/v1/contact/ [post]
func SubmitContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form model.ContactForm
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed contact form")
		}

		res, err := svc.Submit(c.UserContext(), form)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return writeValidationError(c, verr)
			}
			if errors.Is(err, service.ErrInvalidContact) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CONTACT", "invalid contact submission")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "failed to process contact form")
		}
		return c.JSON(res)
	}
}

// ListContactSubmissions pages through stored submissions. Admin only.
//
// @Summary List contact submissions
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param limit query int false "page size" default(10)
// @Param offset query int false "offset" default(0)
// @Success 200 {object} service.ContactListResult
// @Failure 401 {object} errorPayload
// @Router /api/v1/admin/contact/ [get]
func ListContactSubmissions(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := svc.List(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}
