package service

import (
	"context"
	"errors"

	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// QuestionListing is one page of questions together with every category.
type QuestionListing struct {
	Page         *domain.QuestionPage
	Categories   []*domain.Category
	SelectedPage int
}

// TriviaService defines the trivia operations exposed over HTTP.
type TriviaService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListQuestions(ctx context.Context, limit, page int) (*QuestionListing, error)
	QuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error)
	CreateQuestion(ctx context.Context, question *domain.Question) (int64, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
	NextQuizQuestion(ctx context.Context, categoryID int64, previousIDs []int64) (*domain.Question, error)
}

type triviaService struct {
	categories    domain.CategoryRepository
	questions     domain.QuestionRepository
	categoryCache CategoryCacheService
}

// NewTriviaService creates a TriviaService. categoryCache may be nil.
func NewTriviaService(
	categories domain.CategoryRepository,
	questions domain.QuestionRepository,
	categoryCache CategoryCacheService,
) TriviaService {
	if categoryCache == nil {
		categoryCache = noopCategoryCacheService{}
	}
	return &triviaService{
		categories:    categories,
		questions:     questions,
		categoryCache: categoryCache,
	}
}

// ListCategories serves from the cache when possible. Cache failures fall
// through to the repository.
func (s *triviaService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	cached, err := s.categoryCache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCategoriesNotCached) {
		logger.Get().Warn("Failed to read categories from cache, falling back to store", zap.Error(err))
	}

	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.categoryCache.Put(ctx, categories); err != nil {
		logger.Get().Warn("Failed to cache categories", zap.Error(err))
	}
	return categories, nil
}

// ListQuestions reads the page and the category listing concurrently.
func (s *triviaService) ListQuestions(ctx context.Context, limit, page int) (*QuestionListing, error) {
	limit, page = domain.NormalizePage(limit, page)

	var listing QuestionListing
	listing.SelectedPage = page

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.questions.ListPage(gctx, limit, page)
		if err != nil {
			return err
		}
		listing.Page = p
		return nil
	})
	g.Go(func() error {
		categories, err := s.ListCategories(gctx)
		if err != nil {
			return err
		}
		listing.Categories = categories
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (s *triviaService) QuestionsByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	return s.questions.ListByCategory(ctx, categoryID)
}

func (s *triviaService) SearchQuestions(ctx context.Context, term string) ([]*domain.Question, error) {
	if term == "" {
		return nil, domain.NewMissingFieldsError("searchTerm")
	}
	return s.questions.Search(ctx, term)
}

func (s *triviaService) CreateQuestion(ctx context.Context, question *domain.Question) (int64, error) {
	id, err := s.questions.Insert(ctx, question)
	if err != nil {
		return 0, err
	}
	logger.Get().Info("Question created", zap.Int64("question_id", id), zap.Int64("category", question.Category))
	return id, nil
}

func (s *triviaService) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	deleted, err := s.questions.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	logger.Get().Info("Question deleted", zap.Int64("question_id", deleted))
	return deleted, nil
}

// NextQuizQuestion returns a NOT_FOUND error when every eligible question has
// already been asked.
func (s *triviaService) NextQuizQuestion(ctx context.Context, categoryID int64, previousIDs []int64) (*domain.Question, error) {
	question, err := s.questions.PickQuizQuestion(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, domain.NewNotFoundError("Question not found.").
			WithContext("quiz_category", categoryID).
			WithContext("previous_questions", len(previousIDs))
	}
	return question, nil
}
