package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuestion_DefaultDifficulty(t *testing.T) {
	q := NewQuestion("What?", "That", 1, 0)
	assert.Equal(t, DefaultDifficulty, q.Difficulty)

	q = NewQuestion("What?", "That", 1, 4)
	assert.Equal(t, 4, q.Difficulty)
}

func TestQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		q       *Question
		missing []string
	}{
		{"valid question", NewQuestion("xxx", "yyy", 1, 1), nil},
		{"missing question", NewQuestion("", "yyy", 1, 1), []string{"question"}},
		{"missing answer", NewQuestion("xxx", "", 1, 1), []string{"answer"}},
		{"missing category", NewQuestion("xxx", "yyy", 0, 1), []string{"category"}},
		{"missing everything", NewQuestion("", "", 0, 0), []string{"question", "answer", "category"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.missing == nil {
				assert.NoError(t, err)
				return
			}
			var domainErr *DomainError
			if assert.True(t, errors.As(err, &domainErr)) {
				assert.Equal(t, CodeValidation, domainErr.Code)
				assert.Equal(t, tt.missing, domainErr.Context["missing_fields"])
			}
		})
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                string
		limit, page         int
		wantLimit, wantPage int
		wantOffset          int
	}{
		{"defaults", 0, 0, 10, 1, 0},
		{"negative limit", -5, 2, 10, 2, 10},
		{"explicit", 3, 4, 3, 4, 9},
		{"first page", 1, 1, 1, 1, 0},
		{"large limit", 500, 1, 500, 1, 0},
		{"max limit second page", math.MaxInt, 2, math.MaxInt, 2, math.MaxInt},
		{"max page", 10, math.MaxInt, 10, math.MaxInt, math.MaxInt},
		{"max page single item", 1, math.MaxInt, 1, math.MaxInt, math.MaxInt - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, page := NormalizePage(tt.limit, tt.page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantOffset, PageOffset(limit, page))
		})
	}
}

func TestDomainError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStoreError("failed to list questions", cause)

	assert.Equal(t, "failed to list questions: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeStore))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(cause, CodeStore))

	notFound := NewQuestionNotFoundError(999)
	assert.Equal(t, "Question #999 not found", notFound.Error())
	assert.Equal(t, int64(999), notFound.Context["question_id"])

	data, marshalErr := notFound.MarshalJSON()
	assert.NoError(t, marshalErr)
	assert.JSONEq(t, `{"code":"QUESTION_NOT_FOUND","message":"Question #999 not found","context":{"question_id":999}}`, string(data))
}
