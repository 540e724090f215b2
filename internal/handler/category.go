package handler

import (
	"trivia-api/internal/dto"
	"trivia-api/internal/middleware"
	"trivia-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	service service.TriviaService
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(service service.TriviaService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// ListCategories godoc
// @Summary List categories
// @Description Returns every category as a map of id to type, ordered by type
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoriesResponse{
		Success:    true,
		Categories: dto.NewCategoryMap(categories),
	})
}

// ListQuestionsByCategory godoc
// @Summary List questions of a category
// @Description Returns every question in the category. A non-integer id is answered with 500.
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id}/questions [get]
func (h *CategoryHandler) ListQuestionsByCategory(c *fiber.Ctx) error {
	questions, err := h.service.QuestionsByCategory(c.UserContext(), middleware.ValidatedID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuestionsResponse{
		Success:   true,
		Questions: dto.NewQuestionResponses(questions),
	})
}
