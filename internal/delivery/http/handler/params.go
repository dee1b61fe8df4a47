package handler

import (
	"net/url"
	"strconv"

	"careercraft/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

func parseUserID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "invalid user id", err)
	}
	return id, nil
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// pathValue returns the URL-decoded value of a path parameter, falling back
// to the raw value when it is not valid percent-encoding.
func pathValue(c fiber.Ctx, key string) string {
	raw := c.Params(key)
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request body", err)
	}
	return nil
}
