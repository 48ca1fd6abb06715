package response

import "github.com/gofiber/fiber/v3"

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	MessageMissingFields       = "Missing required fields"
	MessageInvalidBody         = "Invalid request body"
	MessageInvalidMeasurement  = "Invalid measurement value"
	MessageMissingDimension    = "Measurement not available for this garment: "
	MessageAnalysisFailed      = "Analysis failed"
	MessageRouteNotFound       = "Route not found"
	MessageSizeChartNotFound   = "Size chart not found"
	MessageBadRequest          = "Bad request"
	MessageInternalServerError = "Something went wrong!"
)

func Success(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Error: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageRouteNotFound
	default:
		return MessageInternalServerError
	}
}
