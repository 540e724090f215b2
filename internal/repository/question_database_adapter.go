package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"trivia-api/internal/database"
	"trivia-api/internal/domain"
	"trivia-api/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

const questionColumns = `id "id", question "question", answer "answer", category "category", difficulty "difficulty"`

// maxInListSize is Oracle's limit on expressions in one IN list (ORA-01795).
const maxInListSize = 1000

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.DB
type QuestionDatabaseAdapter struct {
	db      *sqlx.DB
	tx      domain.TransactionManager
	dialect database.Dialect
}

// NewQuestionDatabaseAdapter creates a new instance of QuestionDatabaseAdapter
func NewQuestionDatabaseAdapter(db *sqlx.DB, tx domain.TransactionManager) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{
		db:      db,
		tx:      tx,
		dialect: database.DialectOf(db),
	}
}

// ListPage implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListPage(ctx context.Context, limit, page int) (*domain.QuestionPage, error) {
	limit, page = domain.NormalizePage(limit, page)
	exec := GetExecutor(ctx, a.db)

	var total int64
	if err := exec.GetContext(ctx, &total, `SELECT COUNT(*) FROM questions`); err != nil {
		return nil, domain.NewStoreError("failed to count questions", err)
	}

	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions ORDER BY id ASC OFFSET ? ROWS FETCH NEXT ? ROWS ONLY`)
	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, domain.PageOffset(limit, page), limit); err != nil {
		return nil, domain.NewStoreError(fmt.Sprintf("failed to list questions page %d", page), err)
	}

	return &domain.QuestionPage{
		Questions: toDomainQuestions(rows),
		Total:     total,
	}, nil
}

// ListByCategory implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE category = ? ORDER BY id ASC`)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, categoryID); err != nil {
		return nil, domain.NewStoreError(fmt.Sprintf("failed to list questions for category %d", categoryID), err)
	}
	return toDomainQuestions(rows), nil
}

// Search implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT ` + questionColumns + ` FROM questions WHERE LOWER(question) LIKE ? ESCAPE '\' ORDER BY id ASC`)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, likePattern(term)); err != nil {
		return nil, domain.NewStoreError("failed to search questions", err)
	}
	return toDomainQuestions(rows), nil
}

// Insert implements domain.QuestionRepository
func (a *QuestionDatabaseAdapter) Insert(ctx context.Context, question *domain.Question) (int64, error) {
	if err := question.Validate(); err != nil {
		return 0, err
	}
	if question.Difficulty == 0 {
		question.Difficulty = domain.DefaultDifficulty
	}

	exec := GetExecutor(ctx, a.db)
	var id int64
	var err error
	switch a.dialect {
	case database.Oracle:
		query := exec.Rebind(`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?) RETURNING id INTO ?`)
		_, err = exec.ExecContext(ctx, query,
			question.Question, question.Answer, question.Category, question.Difficulty,
			sql.Out{Dest: &id},
		)
	default:
		query := exec.Rebind(`INSERT INTO questions (question, answer, category, difficulty) VALUES (?, ?, ?, ?) RETURNING id`)
		err = exec.QueryRowxContext(ctx, query,
			question.Question, question.Answer, question.Category, question.Difficulty,
		).Scan(&id)
	}
	if err != nil {
		return 0, domain.NewStoreError("failed to insert question", err)
	}

	question.ID = id
	return id, nil
}

// Delete implements domain.QuestionRepository. The row is locked before it
// is removed so that concurrent deletes of the same id see NOT_FOUND.
func (a *QuestionDatabaseAdapter) Delete(ctx context.Context, id int64) (int64, error) {
	err := a.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exec := GetExecutor(ctx, a.db)

		var found int64
		err := exec.GetContext(ctx, &found, exec.Rebind(`SELECT id FROM questions WHERE id = ? FOR UPDATE`), id)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewQuestionNotFoundError(id)
		}
		if err != nil {
			return domain.NewStoreError(fmt.Sprintf("failed to find question %d", id), err)
		}

		if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE id = ?`), id); err != nil {
			return domain.NewStoreError(fmt.Sprintf("failed to delete question %d", id), err)
		}
		return nil
	})
	if err != nil {
		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			return 0, err
		}
		return 0, domain.NewStoreError(fmt.Sprintf("failed to delete question %d", id), err)
	}
	return id, nil
}

// PickQuizQuestion implements domain.QuestionRepository. Eligible questions
// are shuffled by the database and the first one is returned.
func (a *QuestionDatabaseAdapter) PickQuizQuestion(ctx context.Context, categoryID int64, excludedIDs []int64) (*domain.Question, error) {
	var conditions []string
	var args []interface{}
	if categoryID != domain.AnyCategory {
		conditions = append(conditions, "category = ?")
		args = append(args, categoryID)
	}
	for chunk := range slices.Chunk(excludedIDs, maxInListSize) {
		conditions = append(conditions, "id NOT IN (?)")
		args = append(args, chunk)
	}

	query := `SELECT ` + questionColumns + ` FROM questions`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY ` + a.dialect.RandomOrder() + ` FETCH FIRST 1 ROWS ONLY`

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, domain.NewStoreError("failed to build quiz question query", err)
	}

	exec := GetExecutor(ctx, a.db)
	var row models.Question
	err = exec.GetContext(ctx, &row, exec.Rebind(query), args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("failed to pick quiz question", err)
	}
	return toDomainQuestion(&row), nil
}

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func toDomainQuestion(row *models.Question) *domain.Question {
	difficulty := domain.DefaultDifficulty
	if row.Difficulty.Valid {
		difficulty = int(row.Difficulty.Int64)
	}
	return &domain.Question{
		ID:         row.ID,
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   row.Category,
		Difficulty: difficulty,
	}
}

func toDomainQuestions(rows []models.Question) []*domain.Question {
	questions := make([]*domain.Question, len(rows))
	for i := range rows {
		questions[i] = toDomainQuestion(&rows[i])
	}
	return questions
}
