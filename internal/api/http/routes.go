package httpapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/overcast/internal/chart"
	"github.com/i474232898/overcast/internal/weather"
)

var validate = validator.New()

// WeatherService is what the handlers need from weather.Service.
type WeatherService interface {
	GetWeather(ctx context.Context, loc weather.Location) (*weather.Report, error)
	GetInsights(ctx context.Context, loc weather.Location) (*weather.Insights, error)
}

const requestTimeout = 10 * time.Second

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service WeatherService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "overcast",
		})
	})

	api := app.Group("/api")

	api.Get("/", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		report, err := service.GetWeather(ctx, loc)
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(report)
	})

	api.Get("/window", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		insights, err := service.GetInsights(ctx, loc)
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(insights)
	})

	api.Get("/chart", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(c.UserContext(), requestTimeout)
		defer cancel()

		insights, err := service.GetInsights(ctx, loc)
		if err != nil {
			return serviceError(err)
		}

		title := "Next 24 hours"
		if insights.Location.Name != "" {
			title = fmt.Sprintf("%s: next 24 hours", insights.Location.Name)
		}

		var buf bytes.Buffer
		if err := chart.Render(&buf, title, insights.Series); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to render chart")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	})
}

// ErrorHandler renders every error as {"error": true, "message": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func serviceError(err error) error {
	switch {
	case errors.Is(err, weather.ErrNoAPIKey):
		return fiber.NewError(fiber.StatusInternalServerError, "WEATHERAPI_KEY not set in environment")
	case errors.Is(err, weather.ErrUpstream):
		return fiber.NewError(fiber.StatusBadGateway, weather.ErrUpstream.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.NewError(fiber.StatusGatewayTimeout, "weather request timed out")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, weather.ErrUpstream.Error())
	}
}

// locationQuery holds the coordinate query parameters.
type locationQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func (l locationQuery) toLocation() weather.Location {
	return weather.Location{Lat: l.Lat, Lon: l.Lon}
}

func parseLocationQuery(c *fiber.Ctx) (weather.Location, error) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr == "" || lonStr == "" {
		return weather.Location{}, fiber.NewError(fiber.StatusBadRequest, "missing lat and lon query params")
	}

	var q locationQuery
	var err1, err2 error
	q.Lat, err1 = strconv.ParseFloat(latStr, 64)
	q.Lon, err2 = strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil {
		return weather.Location{}, fiber.NewError(fiber.StatusBadRequest, "lat and lon must be numbers")
	}

	if err := validate.Struct(q); err != nil {
		return weather.Location{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return q.toLocation(), nil
}
