package domain

import (
	"context"
	"math"
)

// DefaultPageLimit is used when a listing is requested without a positive limit.
const DefaultPageLimit = 10

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// ListAll returns every category ordered by type.
	ListAll(ctx context.Context) ([]*Category, error)
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	// ListPage returns up to limit questions ordered by id, starting after
	// limit*(page-1) questions, with the total question count.
	ListPage(ctx context.Context, limit, page int) (*QuestionPage, error)

	// ListByCategory returns all questions in the given category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*Question, error)

	// Search returns questions whose text contains term, ignoring case.
	Search(ctx context.Context, term string) ([]*Question, error)

	// Insert validates and persists a question and returns its new id.
	Insert(ctx context.Context, question *Question) (int64, error)

	// Delete removes the question with the given id and returns it. It fails
	// with a QUESTION_NOT_FOUND error when no such question exists.
	Delete(ctx context.Context, id int64) (int64, error)

	// PickQuizQuestion returns one question whose id is not in excludedIDs,
	// restricted to categoryID unless it is AnyCategory. It returns nil, nil
	// when no question is eligible.
	PickQuizQuestion(ctx context.Context, categoryID int64, excludedIDs []int64) (*Question, error)
}

// NormalizePage applies the listing defaults: a non-positive limit becomes
// DefaultPageLimit and a page below 1 becomes 1.
func NormalizePage(limit, page int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if page < 1 {
		page = 1
	}
	return limit, page
}

// PageOffset returns the number of records skipped before the given page.
// Expects normalized arguments. The result saturates at math.MaxInt.
func PageOffset(limit, page int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return limit * (page - 1)
}

// TransactionManager runs fn inside a storage transaction. Repositories
// called with the ctx passed to fn join that transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
