package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trivia-api/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.NewMissingFieldsError("question"), http.StatusBadRequest, "Missing params."},
		{"not found", domain.NewNotFoundError("Question not found."), http.StatusNotFound, "Question not found."},
		{"question not found", domain.NewQuestionNotFoundError(9), http.StatusNotFound, "Question #9 not found"},
		{"invalid body", domain.NewInvalidBodyError(errors.New("bad json")), http.StatusUnprocessableEntity, "Unprocessable entity"},
		{"invalid identifier", domain.NewInvalidIdentifierError("id", "abc"), http.StatusInternalServerError, `Invalid id: "abc" is not an integer`},
		{"store error hides cause", domain.NewStoreError("failed to insert question", errors.New("pq: boom")), http.StatusInternalServerError, "Internal Server error"},
		{"fiber error", fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "Internal Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeEnvelope(t, resp)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, float64(tt.wantStatus), body["error"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestErrorHandler_MissingFieldsDetails(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Post("/", func(c *fiber.Ctx) error { return domain.NewMissingFieldsError("question", "answer") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/", nil), -1)
	require.NoError(t, err)
	body := decodeEnvelope(t, resp)
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"question", "answer"}, details["missing_fields"])
}

func TestValidateID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/questions/:id", NewValidationMiddleware().ValidateID("id"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": ValidatedID(c)})
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/questions/42", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(42), decodeEnvelope(t, resp)["id"])

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/questions/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRequestLogger_RendersErrorBeforeLogging(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestLogger())
	app.Get("/quizzes", func(c *fiber.Ctx) error { return domain.NewNotFoundError("Question not found.") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/quizzes", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Question not found.", decodeEnvelope(t, resp)["message"])
}
