package gear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// MockPlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) InsertPlayer(ctx context.Context, player *domain.Player) (int, error) {
	args := m.Called(ctx, player)
	return args.Int(0), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayerByID(ctx context.Context, id int) (*domain.Player, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) GetPlayersByParty(ctx context.Context, partyID int) ([]domain.Player, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockPlayerRepository) DeletePlayer(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGearRepository
type MockGearRepository struct {
	mock.Mock
}

func (m *MockGearRepository) ReplaceGearSet(ctx context.Context, set *domain.GearSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockGearRepository) GetGearSet(ctx context.Context, playerID int, setType domain.GearSetType) (*domain.GearSet, error) {
	args := m.Called(ctx, playerID, setType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GearSet), args.Error(1)
}

type fixture struct {
	players *MockPlayerRepository
	items   *MockItemRepository
	gear    *MockGearRepository
	svc     Service
}

func newFixture() *fixture {
	f := &fixture{
		players: new(MockPlayerRepository),
		items:   new(MockItemRepository),
		gear:    new(MockGearRepository),
	}
	f.svc = NewService(f.players, f.items, f.gear)
	return f
}

var testPlayer = &domain.Player{ID: 1, PartyID: 1, Nickname: "P1"}

func (f *fixture) expectItem(id int, slot domain.ItemSlot) {
	f.items.On("GetItemByID", mock.Anything, id).
		Return(&domain.Item{ID: id, Name: "item", Slot: slot, Source: domain.SourceSavageRaid}, nil)
}

func TestReplaceGearSet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.expectItem(10, domain.SlotWeapon)
	f.expectItem(11, domain.SlotHead)
	f.gear.On("ReplaceGearSet", ctx, mock.AnythingOfType("*domain.GearSet")).Return(nil)

	set, err := f.svc.ReplaceGearSet(ctx, 1, domain.GearSetBiS, []int{10, 11})

	assert.NoError(t, err)
	assert.Equal(t, []int{10, 11}, set.ItemIDs)
	assert.Equal(t, domain.GearSetBiS, set.Type)
	f.gear.AssertExpectations(t)
}

func TestReplaceGearSetDeduplicates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.expectItem(10, domain.SlotWeapon)
	f.gear.On("ReplaceGearSet", ctx, mock.AnythingOfType("*domain.GearSet")).Return(nil)

	set, err := f.svc.ReplaceGearSet(ctx, 1, domain.GearSetStarting, []int{10, 10, 10})

	assert.NoError(t, err)
	assert.Equal(t, []int{10}, set.ItemIDs)
}

func TestReplaceGearSetRejectsSlotCollision(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.expectItem(10, domain.SlotRing)
	f.expectItem(11, domain.SlotRing)

	set, err := f.svc.ReplaceGearSet(ctx, 1, domain.GearSetBiS, []int{10, 11})

	assert.Nil(t, set)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.gear.AssertNotCalled(t, "ReplaceGearSet", mock.Anything, mock.Anything)
}

func TestReplaceGearSetRejectsBadType(t *testing.T) {
	f := newFixture()

	set, err := f.svc.ReplaceGearSet(context.Background(), 1, "midrange", []int{10})

	assert.Nil(t, set)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplaceGearSetUnknownPlayer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 9).Return(nil, domain.ErrPlayerNotFound)

	set, err := f.svc.ReplaceGearSet(ctx, 9, domain.GearSetBiS, []int{10})

	assert.Nil(t, set)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestBiSNeeds(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{30, 10, 20}}, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetStarting, ItemIDs: []int{20}}, nil)

	needs, err := f.svc.BiSNeeds(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, []int{10, 30}, needs, "sorted ascending, owned items removed")
}

func TestBiSNeedsNoBiSSet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).Return(nil, nil)

	needs, err := f.svc.BiSNeeds(ctx, 1)

	assert.NoError(t, err)
	assert.Empty(t, needs)
	f.gear.AssertNotCalled(t, "GetGearSet", ctx, 1, domain.GearSetStarting)
}

func TestBiSNeedsNoStartingSet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{10, 20}}, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).Return(nil, nil)

	needs, err := f.svc.BiSNeeds(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, []int{10, 20}, needs, "everything in BiS is needed")
}

func TestBiSNeedsCached(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{10}}, nil).Once()
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).Return(nil, nil).Once()

	first, err := f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)

	// Second call is served from the cache; the Once() expectations above
	// would fail if the repo were hit again.
	second, err := f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	f.gear.AssertExpectations(t)
}

func TestReplaceGearSetInvalidatesNeedsCache(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{10}}, nil).Once()
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).Return(nil, nil).Once()

	needs, err := f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{10}, needs)

	// Acquiring the former BiS piece as starting gear closes the gap.
	f.expectItem(10, domain.SlotWeapon)
	f.gear.On("ReplaceGearSet", ctx, mock.AnythingOfType("*domain.GearSet")).Return(nil)
	_, err = f.svc.ReplaceGearSet(ctx, 1, domain.GearSetStarting, []int{10})
	assert.NoError(t, err)

	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{10}}, nil).Once()
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetStarting, ItemIDs: []int{10}}, nil).Once()

	needs, err = f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, needs)
}

func TestBiSNeedsReturnsCopy(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.players.On("GetPlayerByID", ctx, 1).Return(testPlayer, nil)
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetBiS).
		Return(&domain.GearSet{PlayerID: 1, Type: domain.GearSetBiS, ItemIDs: []int{10, 20}}, nil).Once()
	f.gear.On("GetGearSet", ctx, 1, domain.GearSetStarting).Return(nil, nil).Once()

	first, err := f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)

	first[0] = 999 // mutating the returned slice must not poison the cache

	second, err := f.svc.BiSNeeds(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []int{10, 20}, second)
}
