package domain

// DefaultDifficulty is assigned to questions created without one.
const DefaultDifficulty = 1

// AnyCategory selects quiz questions from every category.
const AnyCategory int64 = 0

// Category represents a trivia category. Categories are seed data and are
// never modified through the API.
type Category struct {
	ID   int64
	Type string
}

// Question represents a trivia question. Category references a Category by
// id but is not checked against existing categories.
type Question struct {
	ID         int64
	Question   string
	Answer     string
	Category   int64
	Difficulty int
}

// NewQuestion creates a new Question, applying the default difficulty when
// none is given.
func NewQuestion(question, answer string, category int64, difficulty int) *Question {
	if difficulty == 0 {
		difficulty = DefaultDifficulty
	}
	return &Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
}

// Validate checks the fields required for a question to be persisted.
func (q *Question) Validate() error {
	var missing []string
	if q.Question == "" {
		missing = append(missing, "question")
	}
	if q.Answer == "" {
		missing = append(missing, "answer")
	}
	if q.Category == 0 {
		missing = append(missing, "category")
	}
	if len(missing) > 0 {
		return NewMissingFieldsError(missing...)
	}
	return nil
}

// QuestionPage is one page of questions plus the total number of questions
// regardless of paging.
type QuestionPage struct {
	Questions []*Question
	Total     int64
}
