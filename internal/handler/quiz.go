package handler

import (
	"trivia-api/internal/domain"
	"trivia-api/internal/dto"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.TriviaService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{service: service, validator: validator}
}

// NextQuestion godoc
// @Summary Next quiz question
// @Description Returns a random question of the quiz category (id 0 for any) that is not in previous_questions
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizRequest true "Quiz state"
// @Success 200 {object} dto.QuizQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) NextQuestion(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}
	if req.QuizCategory.IsEmpty() {
		return domain.NewMissingFieldsError("quiz_category")
	}

	question, err := h.service.NextQuizQuestion(c.UserContext(), int64(req.QuizCategory.ID), req.PreviousQuestions)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizQuestionResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
