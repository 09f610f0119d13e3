package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-forecast/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		view, err := service.Latest()
		if err != nil {
			return userError(service, err)
		}
		return c.JSON(viewResponse(service, view))
	})

	v1.Post("/weather/refresh", func(c *fiber.Ctx) error {
		var (
			view weather.View
			err  error
		)
		if c.Query("lat") == "" && c.Query("lon") == "" {
			view, err = service.RefreshHere(c.UserContext())
		} else {
			q, perr := parseCoordinatesQuery(c)
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, perr.Error())
			}
			view, err = service.Refresh(c.UserContext(), q.toCoordinates())
		}
		if err != nil {
			return userError(service, err)
		}
		return c.JSON(viewResponse(service, view))
	})

	v1.Get("/weather/search", func(c *fiber.Ctx) error {
		req := searchQuery{Q: c.Query("q")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		view, loc, err := service.Search(c.UserContext(), req.Q)
		if err != nil {
			return userError(service, err)
		}
		resp := viewResponse(service, view)
		resp["location"] = loc
		return c.JSON(resp)
	})

	v1.Get("/weather/days/:date", func(c *fiber.Ctx) error {
		req := dayParams{Date: c.Params("date")}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		view, err := service.Latest()
		if err != nil {
			return userError(service, err)
		}
		day, ok := view.Day(req.Date)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no forecast for requested day")
		}
		return c.JSON(day)
	})

	v1.Get("/locations/recent", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"locations": service.Recent()})
	})

	v1.Post("/locations/recent/:id/select", func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Params("id"), 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid location id")
		}
		view, err := service.SelectRecent(c.UserContext(), id)
		if err != nil {
			return userError(service, err)
		}
		return c.JSON(viewResponse(service, view))
	})

	v1.Put("/units", func(c *fiber.Ctx) error {
		var req unitsBody
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		units, err := weather.ParseUnitSystem(req.Units)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		view, err := service.SetUnits(c.UserContext(), units)
		if errors.Is(err, weather.ErrNoView) {
			return c.JSON(fiber.Map{"units": units})
		}
		if err != nil {
			return userError(service, err)
		}
		return c.JSON(viewResponse(service, view))
	})

	v1.Get("/theme", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"theme": service.Theme()})
	})
}

func viewResponse(service *weather.Service, view weather.View) fiber.Map {
	return fiber.Map{
		"view":   view,
		"recent": service.Recent(),
	}
}

// UserError is the single user-facing error of a failed request.
type UserError struct {
	Status  int
	Message string
	Cause   error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// userError maps a domain error to its status and localized message.
func userError(service *weather.Service, err error) error {
	var malformed *weather.MalformedSampleError

	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, weather.ErrPermissionDenied):
		status = fiber.StatusForbidden
	case errors.Is(err, weather.ErrLocationNotFound), errors.Is(err, weather.ErrNoView):
		status = fiber.StatusNotFound
	case errors.As(err, &malformed), errors.Is(err, weather.ErrEmptyBucket), errors.Is(err, weather.ErrTransport):
		status = fiber.StatusBadGateway
	case errors.Is(err, weather.ErrSuperseded):
		status = fiber.StatusConflict
	}
	return &UserError{
		Status:  status,
		Message: weather.UserMessage(err, service.Lang()),
		Cause:   err,
	}
}

// ErrorHandler renders every error as a single message with a retry hint.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var ue *UserError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ue):
		code = ue.Status
	case errors.As(err, &fe):
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
		"retry":   code != fiber.StatusBadRequest,
	})
}

// coordinatesQuery holds query parameters for a position.
type coordinatesQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

func (q coordinatesQuery) toCoordinates() weather.Coordinates {
	return weather.Coordinates{Lat: q.Lat, Lon: q.Lon}
}

func parseCoordinatesQuery(c *fiber.Ctx) (coordinatesQuery, error) {
	var q coordinatesQuery

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return q, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return q, errors.New("lon must be a number")
	}
	q.Lat, q.Lon = lat, lon

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

type searchQuery struct {
	Q string `validate:"required,max=100"`
}

type dayParams struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

type unitsBody struct {
	Units string `json:"units" validate:"required,oneof=metric imperial"`
}
