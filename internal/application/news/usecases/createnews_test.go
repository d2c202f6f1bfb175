package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/domain/news"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
	"clubcms/internal/shared/services/markdown"
)

type mockNewsRepo struct {
	posts  map[uint]*news.News
	nextID uint
	err    error
}

func newMockNewsRepo() *mockNewsRepo {
	return &mockNewsRepo{posts: map[uint]*news.News{}, nextID: 1}
}

func (m *mockNewsRepo) Create(ctx context.Context, n *news.News) error {
	if m.err != nil {
		return m.err
	}
	n.ID = m.nextID
	m.nextID++
	m.posts[n.ID] = n
	return nil
}

func (m *mockNewsRepo) GetByID(ctx context.Context, id uint) (*news.News, error) {
	if m.err != nil {
		return nil, m.err
	}
	n, ok := m.posts[id]
	if !ok {
		return nil, errors.NewNotFoundError("news post not found")
	}
	return n, nil
}

func (m *mockNewsRepo) List(ctx context.Context) ([]*news.News, error) {
	var out []*news.News
	for _, n := range m.posts {
		out = append(out, n)
	}
	return out, m.err
}

func (m *mockNewsRepo) Update(ctx context.Context, n *news.News) error { return m.err }
func (m *mockNewsRepo) Delete(ctx context.Context, id uint) error {
	delete(m.posts, id)
	return m.err
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestCreateNewsUseCase_RendersSanitizedHTML(t *testing.T) {
	repo := newMockNewsRepo()
	uc := NewCreateNewsUseCase(repo, markdown.NewService(), noopLogger{})

	result, err := uc.Execute(context.Background(), CreateNewsCommand{
		Title:     "Season opener",
		Content:   "We **won**!\n\n<script>alert(1)</script>",
		Date:      time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		CreatedBy: 1,
	})
	require.NoError(t, err)

	assert.NotZero(t, result.News.ID)
	assert.Contains(t, result.ContentHTML, "<strong>won</strong>")
	assert.NotContains(t, result.ContentHTML, "<script>", "markup is sanitized")
}

func TestCreateNewsUseCase_Validation(t *testing.T) {
	uc := NewCreateNewsUseCase(newMockNewsRepo(), markdown.NewService(), noopLogger{})

	cases := []CreateNewsCommand{
		{Content: "body", Date: time.Now()},             // missing title
		{Title: "t", Date: time.Now()},                  // missing content
		{Title: "t", Content: "body"},                   // missing date
		{Title: "   ", Content: "body", Date: time.Now()}, // whitespace title
	}
	for _, cmd := range cases {
		_, err := uc.Execute(context.Background(), cmd)
		assert.True(t, errors.IsValidationError(err), "command %+v", cmd)
	}
}
