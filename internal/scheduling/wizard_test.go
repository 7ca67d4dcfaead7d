package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func newTestWizard(t *testing.T, sessions, minutes int, existing ...domain.OccupiesTime) *Wizard {
	t.Helper()
	w, err := NewWizard(WizardConfig{
		Service: domain.Service{
			ID:              "svc-1",
			DurationMinutes: minutes,
			SessionsCount:   sessions,
		},
		WorkingHours: allWeekHours(),
		Existing:     existing,
		Clock:        &fixedClock{now: at("2025-08-14T07:00")},
	})
	require.NoError(t, err)
	return w
}

func pick(t *testing.T, w *Wizard, step int, date, slot string) {
	t.Helper()
	require.NoError(t, w.GoTo(step))
	require.NoError(t, w.SetDate(date))
	require.NoError(t, w.SetSlot(slot))
}

func TestWizard_Defaults(t *testing.T) {
	w := newTestWizard(t, 3, 60)

	assert.Equal(t, 0, w.CurrentStep())
	assert.Equal(t, 3, w.Sessions())
	for _, p := range w.Picks() {
		assert.Equal(t, "2025-08-14", p.DateISO)
		assert.Empty(t, p.Slot)
	}

	single := newTestWizard(t, 0, 30)
	assert.Equal(t, 1, single.Sessions())
}

func TestWizard_Navigation(t *testing.T) {
	w := newTestWizard(t, 3, 60)

	assert.False(t, w.Prev())
	assert.True(t, w.Next())
	assert.True(t, w.Next())
	assert.False(t, w.Next())
	assert.Equal(t, 2, w.CurrentStep())

	require.NoError(t, w.GoTo(0))
	assert.Equal(t, 0, w.CurrentStep())

	assert.ErrorIs(t, w.GoTo(3), ErrStepOutOfRange)
	assert.ErrorIs(t, w.GoTo(-1), ErrStepOutOfRange)
}

func TestWizard_TentativeHoldsBlockOtherSessions(t *testing.T) {
	w := newTestWizard(t, 2, 60)
	pick(t, w, 0, "2025-08-15", "10:00")

	require.True(t, w.Next())
	require.NoError(t, w.SetDate("2025-08-15"))

	slots, err := w.AvailableSlotsForCurrentStep()
	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "10:30")
	assert.NotContains(t, slots, "09:00")
	assert.Contains(t, slots, "11:00")

	require.NoError(t, w.SetSlot("11:00"))

	first, err := w.AvailableSlotsForStep(0)
	require.NoError(t, err)
	assert.Contains(t, first, "10:00")
	assert.NotContains(t, first, "10:30")
	assert.NotContains(t, first, "11:00")
}

func TestWizard_PersistedCommitments(t *testing.T) {
	w := newTestWizard(t, 1, 60, booking("2025-08-15T09:00", 60))

	require.NoError(t, w.SetDate("2025-08-15"))
	err := w.SetSlot("09:30")

	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)
	assert.Equal(t, 1, sessErr.Session)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, w.Picks()[0].Slot)

	require.NoError(t, w.SetSlot("10:00"))
}

func TestWizard_ChronologyFloor(t *testing.T) {
	w := newTestWizard(t, 2, 60)

	require.NoError(t, w.GoTo(1))
	require.NoError(t, w.SetDate("2025-08-14"))
	slots, err := w.AvailableSlotsForCurrentStep()
	require.NoError(t, err)
	assert.NotEmpty(t, slots, "no floor while previous session is incomplete")

	pick(t, w, 0, "2025-08-15", "12:00")
	require.NoError(t, w.GoTo(1))

	slots, err = w.AvailableSlotsForStep(1)
	require.NoError(t, err)
	assert.Empty(t, slots)

	require.NoError(t, w.SetDate("2025-08-16"))
	slots, err = w.AvailableSlotsForCurrentStep()
	require.NoError(t, err)
	assert.Equal(t, "08:00", slots[0])
}

func TestWizard_InvalidatesStaleSlot(t *testing.T) {
	w := newTestWizard(t, 2, 60)
	pick(t, w, 0, "2025-08-15", "10:00")
	pick(t, w, 1, "2025-08-15", "11:00")

	require.NoError(t, w.GoTo(0))
	require.NoError(t, w.SetDate("2025-08-16"))
	assert.Equal(t, "10:00", w.Picks()[0].Slot)

	require.True(t, w.Next())
	assert.Empty(t, w.Picks()[1].Slot, "session 2 now precedes session 1")
}

func TestWizard_SetPickKeepsPreviousOnFailure(t *testing.T) {
	w := newTestWizard(t, 1, 60)
	require.NoError(t, w.SetPick(domain.SessionPick{DateISO: "2025-08-15", Slot: "10:00"}))

	err := w.SetPick(domain.SessionPick{DateISO: "2025-08-15", Slot: "16:30"})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, domain.SessionPick{DateISO: "2025-08-15", Slot: "10:00"}, w.Picks()[0])

	assert.ErrorIs(t, w.SetPick(domain.SessionPick{DateISO: "tomorrow"}), ErrMalformedDate)
}

func TestWizard_RefreshClearsTakenSlot(t *testing.T) {
	w := newTestWizard(t, 1, 60)
	pick(t, w, 0, "2025-08-15", "10:00")

	w.Refresh([]domain.OccupiesTime{booking("2025-08-15T10:30", 30)})
	assert.Empty(t, w.Picks()[0].Slot)
}

func TestWizard_ValidateIncomplete(t *testing.T) {
	w := newTestWizard(t, 3, 60)
	pick(t, w, 0, "2025-08-15", "09:00")

	err := w.Validate()
	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)
	assert.Equal(t, 2, sessErr.Session)
	assert.ErrorIs(t, err, ErrSessionIncomplete)
}

func TestWizard_ValidateOutOfOrder(t *testing.T) {
	w := newTestWizard(t, 3, 60)

	// второй и третий сеансы выбраны раньше первого, поэтому ограничение не действовало
	pick(t, w, 1, "2025-08-14", "09:00")
	pick(t, w, 2, "2025-08-16", "09:00")
	pick(t, w, 0, "2025-08-15", "09:00")

	err := w.Validate()
	var sessErr *SessionError
	require.ErrorAs(t, err, &sessErr)
	assert.Equal(t, 2, sessErr.Session)
	assert.ErrorIs(t, err, ErrSessionOutOfOrder)

	store := &fakeStore{}
	_, err = w.Submit(context.Background(), store, Customer{Name: "Ana", Phone: "+57 300"})
	assert.ErrorIs(t, err, ErrSessionOutOfOrder)
	assert.Zero(t, store.calls)
}

func TestWizard_SubmitSeries(t *testing.T) {
	w := newTestWizard(t, 3, 60)
	pick(t, w, 0, "2025-08-15", "09:00")
	pick(t, w, 1, "2025-08-15", "10:00")
	pick(t, w, 2, "2025-08-20", "08:00")

	store := &fakeStore{}
	created, err := w.Submit(context.Background(), store, Customer{Name: "Ana", Phone: "+57 300"})
	require.NoError(t, err)
	require.Len(t, created, 3)

	seriesID := created[0].SeriesID
	require.NotNil(t, seriesID)

	var prev time.Time
	for i, b := range created {
		require.NoError(t, b.ValidateSeries())
		assert.Equal(t, *seriesID, *b.SeriesID)
		assert.Equal(t, i+1, *b.SessionIndex)
		assert.Equal(t, 3, *b.TotalSessions)
		assert.Equal(t, 60, b.DurationMinutes)
		assert.Equal(t, "Ana", b.Name)
		assert.False(t, b.DateTime.Before(prev))
		prev = b.DateTime
	}
	assert.Equal(t, at("2025-08-15T10:00"), created[1].DateTime)
}

func TestWizard_SubmitSingleSession(t *testing.T) {
	w := newTestWizard(t, 1, 30)
	pick(t, w, 0, "2025-08-15", "09:00")

	created, err := w.Submit(context.Background(), &fakeStore{}, Customer{Name: "Ana", Phone: "1"})
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Nil(t, created[0].SeriesID)
	assert.Nil(t, created[0].SessionIndex)
}

func TestWizard_SubmitPartialFailure(t *testing.T) {
	w := newTestWizard(t, 3, 60)
	pick(t, w, 0, "2025-08-15", "09:00")
	pick(t, w, 1, "2025-08-16", "09:00")
	pick(t, w, 2, "2025-08-17", "09:00")

	store := &fakeStore{failAt: 2}
	created, err := w.Submit(context.Background(), store, Customer{Name: "Ana", Phone: "1"})

	var partial *PartialSeriesError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, 2, partial.FailedSession)
	require.Len(t, partial.Created, 1)
	assert.Equal(t, "bk-1", partial.Created[0].ID)
	assert.NotEmpty(t, partial.SeriesID)
	assert.Len(t, created, 1)
	assert.Equal(t, 2, store.calls)
	assert.Contains(t, err.Error(), "bk-1")
}

func TestWizard_Holds(t *testing.T) {
	w := newTestWizard(t, 2, 45)
	pick(t, w, 0, "2025-08-15", "09:00")

	holds := w.Holds()
	require.Len(t, holds, 1)
	assert.Equal(t, 1, holds[0].Session)
	assert.Equal(t, 45, holds[0].DurationMinutes)

	occ, ok := holds[0].Occupancy()
	assert.True(t, ok)
	assert.Equal(t, at("2025-08-15T09:00"), occ.Start)
}

func TestNewWizard_InvalidService(t *testing.T) {
	_, err := NewWizard(WizardConfig{
		Service:      domain.Service{ID: "broken"},
		WorkingHours: allWeekHours(),
	})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
