package repository

import (
	"context"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"sync"

	"trivia-api/internal/domain"
)

var (
	_ domain.CategoryRepository = (*MemoryCategoryStore)(nil)
	_ domain.QuestionRepository = (*MemoryQuestionStore)(nil)
)

// DefaultCategories is the seed data used by the memory driver and by
// database/schema.sql.
func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
}

// MemoryCategoryStore is an in-process domain.CategoryRepository.
type MemoryCategoryStore struct {
	categories []domain.Category
}

func NewMemoryCategoryStore(categories ...domain.Category) *MemoryCategoryStore {
	sorted := slices.Clone(categories)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Type < sorted[j].Type })
	return &MemoryCategoryStore{categories: sorted}
}

func (s *MemoryCategoryStore) ListAll(ctx context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, len(s.categories))
	for i := range s.categories {
		c := s.categories[i]
		out[i] = &c
	}
	return out, nil
}

// MemoryQuestionStore is an in-process domain.QuestionRepository. Questions
// are kept in id order; ids are never reused.
type MemoryQuestionStore struct {
	mu        sync.RWMutex
	questions []domain.Question
	nextID    int64
}

func NewMemoryQuestionStore(seed ...domain.Question) *MemoryQuestionStore {
	s := &MemoryQuestionStore{nextID: 1}
	for _, q := range seed {
		if q.ID == 0 {
			q.ID = s.nextID
		}
		if q.Difficulty == 0 {
			q.Difficulty = domain.DefaultDifficulty
		}
		s.questions = append(s.questions, q)
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	sort.Slice(s.questions, func(i, j int) bool { return s.questions[i].ID < s.questions[j].ID })
	return s
}

// Len returns the number of stored questions.
func (s *MemoryQuestionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

func (s *MemoryQuestionStore) ListPage(ctx context.Context, limit, page int) (*domain.QuestionPage, error) {
	limit, page = domain.NormalizePage(limit, page)
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := min(domain.PageOffset(limit, page), len(s.questions))
	end := start + min(limit, len(s.questions)-start)
	return &domain.QuestionPage{
		Questions: copyQuestions(s.questions[start:end]),
		Total:     int64(len(s.questions)),
	}, nil
}

func (s *MemoryQuestionStore) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	return s.filter(func(q *domain.Question) bool { return q.Category == categoryID }), nil
}

func (s *MemoryQuestionStore) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	needle := strings.ToLower(term)
	return s.filter(func(q *domain.Question) bool {
		return strings.Contains(strings.ToLower(q.Question), needle)
	}), nil
}

func (s *MemoryQuestionStore) Insert(ctx context.Context, question *domain.Question) (int64, error) {
	if err := question.Validate(); err != nil {
		return 0, err
	}
	if question.Difficulty == 0 {
		question.Difficulty = domain.DefaultDifficulty
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	question.ID = s.nextID
	s.nextID++
	s.questions = append(s.questions, *question)
	return question.ID, nil
}

func (s *MemoryQuestionStore) Delete(ctx context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, found := slices.BinarySearchFunc(s.questions, id, func(q domain.Question, id int64) int {
		switch {
		case q.ID < id:
			return -1
		case q.ID > id:
			return 1
		}
		return 0
	})
	if !found {
		return 0, domain.NewQuestionNotFoundError(id)
	}
	s.questions = slices.Delete(s.questions, i, i+1)
	return id, nil
}

// PickQuizQuestion chooses uniformly among the eligible questions.
func (s *MemoryQuestionStore) PickQuizQuestion(ctx context.Context, categoryID int64, excludedIDs []int64) (*domain.Question, error) {
	excluded := make(map[int64]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[id] = struct{}{}
	}

	eligible := s.filter(func(q *domain.Question) bool {
		if categoryID != domain.AnyCategory && q.Category != categoryID {
			return false
		}
		_, skip := excluded[q.ID]
		return !skip
	})
	if len(eligible) == 0 {
		return nil, nil
	}
	return eligible[rand.IntN(len(eligible))], nil
}

func (s *MemoryQuestionStore) filter(keep func(q *domain.Question) bool) []*domain.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Question, 0)
	for i := range s.questions {
		if keep(&s.questions[i]) {
			q := s.questions[i]
			out = append(out, &q)
		}
	}
	return out
}

func copyQuestions(src []domain.Question) []*domain.Question {
	out := make([]*domain.Question, len(src))
	for i := range src {
		q := src[i]
		out[i] = &q
	}
	return out
}
