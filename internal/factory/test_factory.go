package factory

import (
	"time"

	"github.com/mcoot/fillerbot/internal/dependencies/mocks"
	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/game"
	"github.com/mcoot/fillerbot/internal/storage"
	"github.com/mcoot/fillerbot/internal/storage/memory"
	"github.com/mcoot/fillerbot/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with in-memory storage
// and mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithStorage(memory.New())
}

// NewTestAppWithStorage creates a test App over the given storage backend
func NewTestAppWithStorage(store storage.Storage) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, game.Config{
		Orientation: model.OrientationBottomUp,
	}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
