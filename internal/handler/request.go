package handler

import (
	"strings"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a form or JSON body into out. An empty body leaves out
// untouched so that required fields are reported as missing. Bodies without
// a form content type are decoded as JSON.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}

	var err error
	ctype := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(ctype, fiber.MIMEApplicationForm), strings.HasPrefix(ctype, fiber.MIMEMultipartForm):
		err = c.BodyParser(out)
	default:
		err = c.App().Config().JSONDecoder(body, out)
	}
	if err != nil {
		return domain.NewInvalidBodyError(err)
	}
	return nil
}
