package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"trivia-api/internal/domain"

	"go.uber.org/zap"
)

// SeedQuestion is one entry of a question seed file.
type SeedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Load decodes a JSON array of questions.
func Load(r io.Reader) ([]SeedQuestion, error) {
	var questions []SeedQuestion
	if err := json.NewDecoder(r).Decode(&questions); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return questions, nil
}

// Seeder inserts seed questions through the question repository.
type Seeder struct {
	questions domain.QuestionRepository
	tx        domain.TransactionManager
	log       *zap.Logger
}

func NewSeeder(questions domain.QuestionRepository, tx domain.TransactionManager, log *zap.Logger) *Seeder {
	return &Seeder{questions: questions, tx: tx, log: log}
}

// Run inserts every question in a single transaction. An invalid entry
// aborts the run and nothing is persisted. It returns the new ids in input
// order.
func (s *Seeder) Run(ctx context.Context, questions []SeedQuestion) ([]int64, error) {
	ids := make([]int64, 0, len(questions))
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for i, sq := range questions {
			q := domain.NewQuestion(sq.Question, sq.Answer, sq.Category, sq.Difficulty)
			id, err := s.questions.Insert(ctx, q)
			if err != nil {
				return fmt.Errorf("question %d: %w", i, err)
			}
			s.log.Debug("Seeded question", zap.Int64("id", id), zap.Int64("category", q.Category))
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		s.log.Error("Seeding rolled back", zap.Error(err))
		return nil, err
	}
	s.log.Info("Seeding completed", zap.Int("questions", len(ids)))
	return ids, nil
}
