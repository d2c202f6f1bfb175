package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubcms/internal/domain/calendar"
	"clubcms/internal/shared/errors"
	"clubcms/internal/shared/logger"
)

type mockEventRepo struct {
	events  map[uint]*calendar.Event
	nextID  uint
	updated *calendar.Event
	deleted []uint
	err     error
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: map[uint]*calendar.Event{}, nextID: 1}
}

func (m *mockEventRepo) Create(ctx context.Context, e *calendar.Event) error {
	if m.err != nil {
		return m.err
	}
	e.ID = m.nextID
	m.nextID++
	m.events[e.ID] = e
	return nil
}

func (m *mockEventRepo) GetByID(ctx context.Context, id uint) (*calendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.events[id]
	if !ok {
		return nil, errors.NewNotFoundError("calendar event not found")
	}
	return e, nil
}

func (m *mockEventRepo) List(ctx context.Context) ([]*calendar.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*calendar.Event
	for _, e := range m.events {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEventRepo) Update(ctx context.Context, e *calendar.Event) error {
	if m.err != nil {
		return m.err
	}
	m.updated = e
	m.events[e.ID] = e
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	delete(m.events, id)
	return nil
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

func seedEvent(t *testing.T, repo *mockEventRepo) *calendar.Event {
	t.Helper()
	e := &calendar.Event{
		Title:     "Annual general meeting",
		Date:      time.Date(2025, 11, 20, 19, 0, 0, 0, time.UTC),
		CreatedBy: 1,
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestCreateEventUseCase(t *testing.T) {
	repo := newMockEventRepo()
	uc := NewCreateEventUseCase(repo, noopLogger{})

	event, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:       "Summer tournament",
		Description: "All teams welcome",
		Date:        time.Date(2026, 6, 13, 10, 0, 0, 0, time.UTC),
		CreatedBy:   2,
	})
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.Equal(t, uint(2), event.CreatedBy)

	_, err = uc.Execute(context.Background(), CreateEventCommand{Date: time.Now()})
	assert.True(t, errors.IsValidationError(err), "missing title")

	_, err = uc.Execute(context.Background(), CreateEventCommand{Title: "No date"})
	assert.True(t, errors.IsValidationError(err), "missing date")
}

func TestUpdateEventUseCase(t *testing.T) {
	repo := newMockEventRepo()
	existing := seedEvent(t, repo)
	uc := NewUpdateEventUseCase(repo, noopLogger{})

	newDate := existing.Date.AddDate(0, 0, 7)
	event, err := uc.Execute(context.Background(), UpdateEventCommand{
		ID:          existing.ID,
		Title:       "AGM (rescheduled)",
		Description: "Moved one week out",
		Date:        newDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "AGM (rescheduled)", event.Title)
	assert.Equal(t, newDate, event.Date)
	require.NotNil(t, repo.updated)

	_, err = uc.Execute(context.Background(), UpdateEventCommand{ID: 999, Title: "x", Date: newDate})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteEventUseCase(t *testing.T) {
	repo := newMockEventRepo()
	existing := seedEvent(t, repo)
	uc := NewDeleteEventUseCase(repo, noopLogger{})

	require.NoError(t, uc.Execute(context.Background(), existing.ID))
	assert.Equal(t, []uint{existing.ID}, repo.deleted)

	err := uc.Execute(context.Background(), existing.ID)
	assert.True(t, errors.IsNotFoundError(err), "second delete finds nothing")
}

func TestGetAndListEvents(t *testing.T) {
	repo := newMockEventRepo()
	existing := seedEvent(t, repo)

	got, err := NewGetEventUseCase(repo, noopLogger{}).Execute(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.Title, got.Title)

	_, err = NewGetEventUseCase(repo, noopLogger{}).Execute(context.Background(), 42)
	assert.True(t, errors.IsNotFoundError(err))

	events, err := NewListEventsUseCase(repo, noopLogger{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)
}
