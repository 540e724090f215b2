package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"
	"trivia-api/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	service   service.TriviaService
	validator *validation.Validator
}

// NewQuestionHandler creates a new QuestionHandler instance
func NewQuestionHandler(service service.TriviaService, validator *validation.Validator) *QuestionHandler {
	return &QuestionHandler{service: service, validator: validator}
}

// ListQuestions godoc
// @Summary List questions
// @Description Returns one page of questions ordered by id, the total question count and every category
// @Tags questions
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param page query int false "1-based page number" default(1)
// @Success 200 {object} dto.QuestionPageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	listing, err := h.service.ListQuestions(c.UserContext(), c.QueryInt("limit"), c.QueryInt("page", 1))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionPageResponse{
		Success:        true,
		Categories:     dto.NewCategoryMap(listing.Categories),
		Questions:      dto.NewQuestionResponses(listing.Page.Questions),
		TotalQuestions: listing.Page.Total,
		SelectedPage:   listing.SelectedPage,
	})
}

// CreateQuestion godoc
// @Summary Create a question
// @Description Creates a question from a JSON or form body. Difficulty defaults to 1.
// @Tags questions
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question"
// @Success 201 {object} dto.CreateQuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	id, err := h.service.CreateQuestion(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateQuestionResponse{
		Success:    true,
		QuestionID: id,
	})
}

// DeleteQuestion godoc
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.DeleteQuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	deleted, err := h.service.DeleteQuestion(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.DeleteQuestionResponse{
		Success:   true,
		DeletedID: deleted,
	})
}

// SearchQuestions godoc
// @Summary Search questions
// @Description Case-insensitive substring search over the question text
// @Tags questions
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body dto.SearchRequest true "Search term"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions/find [post]
func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Struct(&req); err != nil {
		return err
	}

	questions, err := h.service.SearchQuestions(c.UserContext(), req.SearchTerm)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionsResponse{
		Success:   true,
		Questions: dto.NewQuestionResponses(questions),
	})
}
