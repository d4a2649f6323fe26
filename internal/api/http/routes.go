package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/kisanexpress/advisory-service/internal/advisory"
	"github.com/kisanexpress/advisory-service/internal/alerts"
	"github.com/kisanexpress/advisory-service/internal/region"
	"github.com/kisanexpress/advisory-service/internal/weather"
)

var validate = validator.New()

// WeatherService is the slice of the weather resolution service the
// handlers need.
type WeatherService interface {
	GetWeather(ctx context.Context, district, area string) (weather.Snapshot, error)
}

// AdvisoryService is the slice of the crop advisory service the handlers
// need.
type AdvisoryService interface {
	SuggestCrops(ctx context.Context, district string, weatherJSON json.RawMessage) advisory.SuggestionResponse
	Answer(ctx context.Context, question, language string) (string, error)
}

// AlertReader reads active alerts from the alert store.
type AlertReader interface {
	Active(district string, now time.Time) []alerts.Alert
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc WeatherService, advisorySvc AdvisoryService, alertStore AlertReader) {
	app.Get("/weather", func(c *fiber.Ctx) error {
		district := c.Query("district")
		if district == "" {
			return fiber.NewError(fiber.StatusBadRequest, "district required")
		}
		area := c.Query("area")

		snap, err := weatherSvc.GetWeather(c.Context(), district, area)
		if err != nil {
			if errors.Is(err, region.ErrNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "unknown district")
			}
			if errors.Is(err, weather.ErrUpstream) {
				return fiber.NewError(fiber.StatusBadGateway, "weather providers unavailable")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(snap)
	})

	app.Post("/crop-suggest", func(c *fiber.Ctx) error {
		var req cropSuggestRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "district, coords and weather required")
		}

		// Suggestions always answer 200: every model failure mode degrades
		// to a usable payload tagged with its provenance.
		return c.JSON(advisorySvc.SuggestCrops(c.Context(), req.District, req.Weather))
	})

	app.Post("/query", func(c *fiber.Ctx) error {
		var req queryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "all fields including language are required")
		}
		question := strings.TrimSpace(req.Question)
		if question == "" {
			return fiber.NewError(fiber.StatusBadRequest, "question cannot be empty")
		}

		answer, err := advisorySvc.Answer(c.Context(), question, req.Language)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "model unavailable")
		}

		return c.JSON(fiber.Map{
			"success": true,
			"answer":  answer,
		})
	})

	app.Get("/alerts", func(c *fiber.Ctx) error {
		district := c.Query("district")
		items := alertStore.Active(district, time.Now().UTC())
		if items == nil {
			items = []alerts.Alert{}
		}

		return c.JSON(fiber.Map{
			"district": district,
			"alerts":   items,
		})
	})
}

// cropSuggestRequest is the crop-suggest body. Weather is kept opaque: it
// is the snapshot the client previously got from /weather, echoed back.
type cropSuggestRequest struct {
	District string              `json:"district" validate:"required"`
	Coords   *region.Coordinates `json:"coords" validate:"required"`
	Weather  json.RawMessage     `json:"weather" validate:"required"`
}

// queryRequest is the free-form Q&A body.
type queryRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Question string `json:"question" validate:"required"`
	Language string `json:"language" validate:"required"`
}
