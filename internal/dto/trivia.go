package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"trivia-api/internal/domain"
)

// FlexInt is an integer that also accepts a numeric string, as sent by
// HTML forms and some clients. An empty string or null decodes to 0.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	return f.UnmarshalText(data)
}

func (f *FlexInt) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(string(bytes.TrimSpace(text)), 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not an integer", text)
	}
	*f = FlexInt(n)
	return nil
}

// QuestionResponse represents a question in the API response
// @Description Trivia question
type QuestionResponse struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse maps category id to category type.
// @Description All categories
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionsResponse is returned by the category filter and by search.
type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []QuestionResponse `json:"questions"`
}

// QuestionPageResponse is one page of questions plus every category.
// @Description Paginated questions
type QuestionPageResponse struct {
	Success        bool               `json:"success"`
	Categories     map[int64]string   `json:"categories"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
	SelectedPage   int                `json:"selected_page"`
}

type CreateQuestionResponse struct {
	Success    bool  `json:"success"`
	QuestionID int64 `json:"question_id"`
}

type DeleteQuestionResponse struct {
	Success   bool  `json:"success"`
	DeletedID int64 `json:"deleted_id"`
}

type QuizQuestionResponse struct {
	Success  bool             `json:"success"`
	Question QuestionResponse `json:"question"`
}

// ErrorResponse is the envelope for every failed request. Error carries the
// HTTP status code.
// @Description Error envelope
type ErrorResponse struct {
	Success bool                   `json:"success"`
	Error   int                    `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// CreateQuestionRequest is accepted as JSON or as a form.
// @Description Request body for creating a question
type CreateQuestionRequest struct {
	Question   string  `json:"question" form:"question" validate:"required"`
	Answer     string  `json:"answer" form:"answer" validate:"required"`
	Category   FlexInt `json:"category" form:"category" validate:"required"`
	Difficulty FlexInt `json:"difficulty" form:"difficulty" validate:"gte=0"`
}

// ToDomain builds the question to insert; a zero difficulty becomes the default.
func (r *CreateQuestionRequest) ToDomain() *domain.Question {
	return domain.NewQuestion(r.Question, r.Answer, int64(r.Category), int(r.Difficulty))
}

// SearchRequest is the body of POST /questions/find.
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" form:"searchTerm" validate:"required"`
}

// QuizCategory selects the quiz category; ID 0 means every category.
type QuizCategory struct {
	ID   FlexInt `json:"id"`
	Type string  `json:"type"`

	empty bool
}

func (q *QuizCategory) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	type plain QuizCategory
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*q = QuizCategory(p)
	q.empty = len(fields) == 0
	return nil
}

// IsEmpty reports whether the category was sent as an object without keys.
func (q *QuizCategory) IsEmpty() bool {
	return q.empty
}

// QuizRequest is the body of POST /quizzes.
// @Description Request body for the next quiz question
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quiz_category" validate:"required"`
	PreviousQuestions []int64       `json:"previous_questions"`
}

func NewQuestionResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

func NewQuestionResponses(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		out[i] = NewQuestionResponse(q)
	}
	return out
}

func NewCategoryMap(categories []*domain.Category) map[int64]string {
	out := make(map[int64]string, len(categories))
	for _, c := range categories {
		out[c.ID] = c.Type
	}
	return out
}
