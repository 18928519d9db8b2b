package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"folio/internal/service"
)

const mediaCacheControl = "public, max-age=86400"

// GetMedia streams a stored media object.
//
// @Summary Download media
// @Tags media
// @Param key path string true "object key, e.g. projects/x.png"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /api/v1/media/{key} [get]
func GetMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("*"))
		if err != nil {
			return writeServiceError(c, err, "media")
		}

		ct := info.ContentType
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderCacheControl, mediaCacheControl)
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		size := int(info.Size)
		if info.Size <= 0 {
			size = -1
		}
		// fasthttp closes rc once the body has been written.
		return c.SendStream(rc, size)
	}
}

// UploadMedia stores a multipart file under the folder form field (projects, blog, profile or resume).
//
// @Summary Upload media
// @Tags media
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param folder formData string true "target folder"
// @Param file formData file true "file to upload"
// @Success 201 {object} service.MediaObject
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /api/v1/media [post]
func UploadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get(fiber.HeaderContentType)
		if ct == "" {
			ct = fiber.MIMEOctetStream
		}

		obj, err := svc.Upload(c.UserContext(), c.FormValue("folder", "projects"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err, "media")
		}
		return c.Status(fiber.StatusCreated).JSON(obj)
	}
}

// DeleteMedia removes a stored object.
//
// @Summary Delete media
// @Tags media
// @Security BearerAuth
// @Param key path string true "object key"
// @Success 204
// @Failure 404 {object} errorPayload
// @Router /api/v1/media/{key} [delete]
func DeleteMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("*")); err != nil {
			return writeServiceError(c, err, "media")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ResumeRedirect sends the client to a short-lived resume download link.
//
// @Summary Download resume
// @Tags media
// @Success 302
// @Failure 404 {object} errorPayload
// @Router /api/v1/resume/ [get]
func ResumeRedirect(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.ResumeURL(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "resume")
		}
		return c.Redirect(u, fiber.StatusFound)
	}
}
