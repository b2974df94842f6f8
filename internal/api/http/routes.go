package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/crop-prediction-api/internal/prediction"
)

var validate = newValidator()

// newValidator builds a validator that reports json tag names, so a failed
// field is identified to the caller the way it appeared in the payload.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *prediction.Service) {
	api := app.Group("/api")

	api.Post("/predict-crop", func(c *fiber.Ctx) error {
		req, err := parsePredictBody(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		combined, err := service.Predict(c.Context(), req.toInput())
		if err != nil {
			if errors.Is(err, prediction.ErrInvalidDate) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			// The upstream cause is logged elsewhere; callers only get a
			// generic failure indicator.
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
		}

		return c.JSON(combined)
	})
}

// predictRequest uses pointer fields so a missing field and a mistyped field
// are distinguishable from a present zero value.
type predictRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
	StartDate *string  `json:"startDate" validate:"required,min=1"`
	EndDate   *string  `json:"endDate" validate:"required,min=1"`
}

func (r predictRequest) toInput() prediction.Input {
	return prediction.Input{
		Latitude:  *r.Latitude,
		Longitude: *r.Longitude,
		StartDate: *r.StartDate,
		EndDate:   *r.EndDate,
	}
}

func parsePredictBody(c *fiber.Ctx) (predictRequest, error) {
	var req predictRequest

	if err := c.BodyParser(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return req, fmt.Errorf("invalid type for field %q", typeErr.Field)
		}
		return req, errors.New("invalid JSON body")
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return req, fmt.Errorf("missing or invalid field %q", verrs[0].Field())
		}
		return req, err
	}

	return req, nil
}
