package controllers

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/newsroom/newsdesk/internal/pkg/newsservice"
)

// NewsController translates HTTP requests into news service calls and
// service results into the JSON envelope.
type NewsController struct {
	svc *newsservice.Service
}

// NewNewsController creates a news controller instance
func NewNewsController(svc *newsservice.Service) *NewsController {
	return &NewsController{svc: svc}
}

// HandleList returns all news articles, most recent date first
func (ct *NewsController) HandleList(c *fiber.Ctx) error {
	news, err := ct.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to retrieve news", err)
	}
	return respondSuccess(c, fiber.StatusOK, news, "News retrieved successfully")
}

// HandleGet returns a single news article by id
func (ct *NewsController) HandleGet(c *fiber.Ctx) error {
	id, ok := newsID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	}

	news, err := ct.svc.Get(c.UserContext(), id)
	if err != nil {
		return ct.respondServiceError(c, err, "Failed to retrieve news")
	}
	return respondSuccess(c, fiber.StatusOK, news, "News retrieved successfully")
}

// HandleCreate creates a news article from a multipart form, with an
// optional image upload in the "image" field.
func (ct *NewsController) HandleCreate(c *fiber.Ctx) error {
	image, err := formImage(c)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to read uploaded image", err)
	}

	news, err := ct.svc.Create(c.UserContext(), newsInputFromForm(c), image)
	if err != nil {
		return ct.respondServiceError(c, err, "Failed to create news")
	}
	return respondSuccess(c, fiber.StatusCreated, news, "News created successfully")
}

// HandleUpdate replaces the fields of an existing article, optionally
// replacing its image.
func (ct *NewsController) HandleUpdate(c *fiber.Ctx) error {
	id, ok := newsID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	}

	image, err := formImage(c)
	if err != nil {
		return respondError(c, fiber.StatusInternalServerError, "Failed to read uploaded image", err)
	}

	news, err := ct.svc.Update(c.UserContext(), id, newsInputFromForm(c), image)
	if err != nil {
		return ct.respondServiceError(c, err, "Failed to update news")
	}
	return respondSuccess(c, fiber.StatusOK, news, "News updated successfully")
}

// HandleDelete removes an article and its stored image
func (ct *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, ok := newsID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	}

	if err := ct.svc.Delete(c.UserContext(), id); err != nil {
		return ct.respondServiceError(c, err, "Failed to delete news")
	}
	return respondSuccess(c, fiber.StatusOK, nil, "News deleted successfully")
}

// HandlePublish sets the article status to published
func (ct *NewsController) HandlePublish(c *fiber.Ctx) error {
	id, ok := newsID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	}

	news, err := ct.svc.Publish(c.UserContext(), id)
	if err != nil {
		return ct.respondServiceError(c, err, "Failed to publish news")
	}
	return respondSuccess(c, fiber.StatusOK, news, "News published successfully")
}

// HandleUnpublish sets the article status to unpublished
func (ct *NewsController) HandleUnpublish(c *fiber.Ctx) error {
	id, ok := newsID(c)
	if !ok {
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	}

	news, err := ct.svc.Unpublish(c.UserContext(), id)
	if err != nil {
		return ct.respondServiceError(c, err, "Failed to unpublish news")
	}
	return respondSuccess(c, fiber.StatusOK, news, "News unpublished successfully")
}

// respondServiceError maps the service error taxonomy onto envelope
// responses: NotFound -> 404, validation -> 422, everything else -> 500.
func (ct *NewsController) respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	var verr *newsservice.ValidationError
	switch {
	case errors.Is(err, newsservice.ErrNotFound):
		return respondError(c, fiber.StatusNotFound, "News not found", nil)
	case errors.As(err, &verr):
		return respondValidationFailed(c, verr.Errors)
	default:
		return respondError(c, fiber.StatusInternalServerError, fallback, err)
	}
}

func newsInputFromForm(c *fiber.Ctx) newsservice.NewsInput {
	return newsservice.NewsInput{
		Date:     c.FormValue("date"),
		Title:    c.FormValue("title"),
		Category: c.FormValue("category"),
		URL:      c.FormValue("url"),
		Status:   c.FormValue("status"),
	}
}

// formImage extracts the optional "image" multipart field. A missing field
// is not an error; a field that cannot be read is.
func formImage(c *fiber.Ctx) (*newsservice.ImageUpload, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &newsservice.ImageUpload{Filename: fileHeader.Filename, Data: data}, nil
}

func newsID(c *fiber.Ctx) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
