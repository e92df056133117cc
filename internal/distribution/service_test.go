package distribution

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/haneul-dev/raidledger/internal/domain"
)

// MockPartyRepository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) InsertParty(ctx context.Context, party *domain.RaidParty) (int, error) {
	args := m.Called(ctx, party)
	return args.Int(0), args.Error(1)
}

func (m *MockPartyRepository) GetPartyByID(ctx context.Context, id int) (*domain.RaidParty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaidParty), args.Error(1)
}

func (m *MockPartyRepository) GetPartyByName(ctx context.Context, name string) (*domain.RaidParty, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RaidParty), args.Error(1)
}

func (m *MockPartyRepository) GetAllParties(ctx context.Context) ([]domain.RaidParty, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RaidParty), args.Error(1)
}

func (m *MockPartyRepository) UpdatePartyPolicy(ctx context.Context, id int, policy domain.DistributionPolicy) error {
	args := m.Called(ctx, id, policy)
	return args.Error(0)
}

func (m *MockPartyRepository) DeleteParty(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartyRepository) GetRoster(ctx context.Context, partyID int) ([]domain.Player, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
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

// MockLootRepository
type MockLootRepository struct {
	mock.Mock
}

func (m *MockLootRepository) InsertLootRecord(ctx context.Context, record *domain.LootRecord, weekStart time.Time) error {
	args := m.Called(ctx, record, weekStart)
	return args.Error(0)
}

func (m *MockLootRepository) GetLootRecords(ctx context.Context, filter domain.LootFilter) ([]domain.LootRecord, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LootRecord), args.Error(1)
}

func (m *MockLootRepository) CountRecordsSince(ctx context.Context, playerID int, since time.Time) (int, error) {
	args := m.Called(ctx, playerID, since)
	return args.Int(0), args.Error(1)
}

// MockPriorityRepository
type MockPriorityRepository struct {
	mock.Mock
}

func (m *MockPriorityRepository) InsertPriority(ctx context.Context, entry *domain.PriorityEntry) (int, error) {
	args := m.Called(ctx, entry)
	return args.Int(0), args.Error(1)
}

func (m *MockPriorityRepository) GetPriority(ctx context.Context, playerID, itemID, partyID int) (*domain.PriorityEntry, error) {
	args := m.Called(ctx, playerID, itemID, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriorityEntry), args.Error(1)
}

func (m *MockPriorityRepository) GetPrioritiesByParty(ctx context.Context, partyID int) ([]domain.PriorityEntry, error) {
	args := m.Called(ctx, partyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PriorityEntry), args.Error(1)
}

func (m *MockPriorityRepository) DeletePriority(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGearService
type MockGearService struct {
	mock.Mock
}

func (m *MockGearService) BiSNeeds(ctx context.Context, playerID int) ([]int, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

type fixture struct {
	parties    *MockPartyRepository
	items      *MockItemRepository
	players    *MockPlayerRepository
	loot       *MockLootRepository
	priorities *MockPriorityRepository
	gear       *MockGearService
	svc        Service
}

func newFixture() *fixture {
	f := &fixture{
		parties:    new(MockPartyRepository),
		items:      new(MockItemRepository),
		players:    new(MockPlayerRepository),
		loot:       new(MockLootRepository),
		priorities: new(MockPriorityRepository),
		gear:       new(MockGearService),
	}
	f.svc = NewService(f.parties, f.items, f.players, f.loot, f.priorities, f.gear)
	return f
}

var (
	testNow   = time.Date(2025, 6, 13, 20, 0, 0, 0, time.UTC) // Friday
	testWeek  = WeekStart(testNow)
	itemX     = &domain.Item{ID: 10, Name: "Savage Earring", Slot: domain.SlotEarrings, Source: domain.SourceSavageRaid}
	fourSeats = []domain.Player{
		{ID: 1, PartyID: 1, Nickname: "P1"},
		{ID: 2, PartyID: 1, Nickname: "P2"},
		{ID: 3, PartyID: 1, Nickname: "P3"},
		{ID: 4, PartyID: 1, Nickname: "P4"},
	}
)

func priorityParty() *domain.RaidParty {
	return &domain.RaidParty{ID: 1, Name: "Static", Policy: domain.PolicyPriority}
}

func rotationParty() *domain.RaidParty {
	return &domain.RaidParty{ID: 1, Name: "Static", Policy: domain.PolicyRotation}
}

// Party of 4 under priority policy with entries P1:1 and P2:2 and no BiS needs
// anywhere. P1's score 99 beats P2's 98 beats the zero-score rest.
func TestResolveRecipientPriorityWinner(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(fourSeats, nil)

	for _, p := range fourSeats {
		f.loot.On("CountRecordsSince", ctx, p.ID, testWeek).Return(0, nil)
		f.gear.On("BiSNeeds", ctx, p.ID).Return([]int{}, nil)
	}
	f.priorities.On("GetPriority", ctx, 1, 10, 1).Return(&domain.PriorityEntry{PlayerID: 1, ItemID: 10, PartyID: 1, Order: 1}, nil)
	f.priorities.On("GetPriority", ctx, 2, 10, 1).Return(&domain.PriorityEntry{PlayerID: 2, ItemID: 10, PartyID: 1, Order: 2}, nil)
	f.priorities.On("GetPriority", ctx, 3, 10, 1).Return(nil, nil)
	f.priorities.On("GetPriority", ctx, 4, 10, 1).Return(nil, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 1, rec.PlayerID)
	assert.Equal(t, 99, rec.Score)
	assert.False(t, rec.NeededForBiS)
}

// Rotation policy, roster {P1, P2}: P1 already received the item and the cycle
// is open, so P2 wins.
func TestResolveRecipientRotationSkipsReceived(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]
	itemID, partyID := 10, 1

	f.parties.On("GetPartyByID", ctx, 1).Return(rotationParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)
	f.loot.On("GetLootRecords", ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID}).
		Return([]domain.LootRecord{{PlayerID: 1, ItemID: 10, PartyID: 1}}, nil)

	f.loot.On("CountRecordsSince", ctx, 1, testWeek).Return(0, nil)
	f.loot.On("CountRecordsSince", ctx, 2, testWeek).Return(0, nil)
	f.priorities.On("GetPriority", ctx, 2, 10, 1).Return(nil, nil)
	f.gear.On("BiSNeeds", ctx, 2).Return([]int{}, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 2, rec.PlayerID)
	// P1 never reaches the scoring stage
	f.priorities.AssertNotCalled(t, "GetPriority", ctx, 1, 10, 1)
}

// Once the received set covers the whole roster the cycle restarts and
// everyone is eligible again.
func TestResolveRecipientRotationCycleRestarts(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]
	itemID, partyID := 10, 1

	f.parties.On("GetPartyByID", ctx, 1).Return(rotationParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)
	f.loot.On("GetLootRecords", ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID}).
		Return([]domain.LootRecord{
			{PlayerID: 1, ItemID: 10, PartyID: 1},
			{PlayerID: 2, ItemID: 10, PartyID: 1},
		}, nil)

	for _, p := range duo {
		f.loot.On("CountRecordsSince", ctx, p.ID, testWeek).Return(0, nil)
		f.priorities.On("GetPriority", ctx, p.ID, 10, 1).Return(nil, nil)
		f.gear.On("BiSNeeds", ctx, p.ID).Return([]int{}, nil)
	}

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	// Both score zero; the player ID tie-break picks P1.
	assert.Equal(t, 1, rec.PlayerID)
}

// A player who already received any item this week is excluded outright, even
// with the best priority entry for this item.
func TestResolveRecipientWeeklyCapExcludes(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)

	f.loot.On("CountRecordsSince", ctx, 1, testWeek).Return(1, nil) // capped
	f.loot.On("CountRecordsSince", ctx, 2, testWeek).Return(0, nil)
	f.priorities.On("GetPriority", ctx, 2, 10, 1).Return(nil, nil)
	f.gear.On("BiSNeeds", ctx, 2).Return([]int{}, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 2, rec.PlayerID)
	f.priorities.AssertNotCalled(t, "GetPriority", ctx, 1, 10, 1)
}

// No priority entries, no BiS gaps: the resolver still returns a deterministic
// winner among the zero-score survivors.
func TestResolveRecipientAllZeroScoresStillDeterministic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(fourSeats, nil)

	for _, p := range fourSeats {
		f.loot.On("CountRecordsSince", ctx, p.ID, testWeek).Return(0, nil)
		f.priorities.On("GetPriority", ctx, p.ID, 10, 1).Return(nil, nil)
		f.gear.On("BiSNeeds", ctx, p.ID).Return([]int{}, nil)
	}

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 1, rec.PlayerID)
	assert.Equal(t, 0, rec.Score)
}

// Everyone capped is a legitimate empty result, not an error.
func TestResolveRecipientNoEligible(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)
	f.loot.On("CountRecordsSince", ctx, 1, testWeek).Return(1, nil)
	f.loot.On("CountRecordsSince", ctx, 2, testWeek).Return(2, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestResolveRecipientEmptyRoster(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return([]domain.Player{}, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestResolveRecipientBiSNeedBreaksTie(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)

	for _, p := range duo {
		f.loot.On("CountRecordsSince", ctx, p.ID, testWeek).Return(0, nil)
		f.priorities.On("GetPriority", ctx, p.ID, 10, 1).Return(nil, nil)
	}
	f.gear.On("BiSNeeds", ctx, 1).Return([]int{}, nil)
	f.gear.On("BiSNeeds", ctx, 2).Return([]int{10, 33}, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 2, rec.PlayerID)
	assert.Equal(t, 50, rec.Score)
	assert.True(t, rec.NeededForBiS)
}

func TestResolveRecipientUnknownParty(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 9).Return(nil, domain.ErrPartyNotFound)

	rec, err := f.svc.ResolveRecipient(ctx, 9, 10, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestResolveRecipientUnknownItem(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 99).Return(nil, domain.ErrItemNotFound)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 99, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestResolveRecipientUnknownPolicy(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).
		Return(&domain.RaidParty{ID: 1, Name: "Static", Policy: "chaos"}, nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrPolicyUnknown)
}

func TestRecordDistribution(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.players.On("GetPlayerByID", ctx, 1).Return(&fourSeats[0], nil)
	f.loot.On("InsertLootRecord", ctx, mock.AnythingOfType("*domain.LootRecord"), testWeek).Return(nil)

	rec, err := f.svc.RecordDistribution(ctx, 1, 10, 1, testNow)

	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.Equal(t, 1, rec.PlayerID)
	assert.Equal(t, domain.PolicyPriority, rec.Policy)
	assert.True(t, rec.DistributedAt.Equal(testNow))
	f.loot.AssertExpectations(t)
}

func TestRecordDistributionPlayerNotOnRoster(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.players.On("GetPlayerByID", ctx, 5).
		Return(&domain.Player{ID: 5, PartyID: 2, Nickname: "Stranger"}, nil)

	rec, err := f.svc.RecordDistribution(ctx, 1, 10, 5, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrPlayerNotOnRoster)
	f.loot.AssertNotCalled(t, "InsertLootRecord", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordDistributionWeeklyCapConflict(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.parties.On("GetPartyByID", ctx, 1).Return(priorityParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.players.On("GetPlayerByID", ctx, 1).Return(&fourSeats[0], nil)
	f.loot.On("InsertLootRecord", ctx, mock.AnythingOfType("*domain.LootRecord"), testWeek).
		Return(domain.ErrWeeklyCapExceeded)

	rec, err := f.svc.RecordDistribution(ctx, 1, 10, 1, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, domain.ErrWeeklyCapExceeded)
}

func TestRotationEligibleService(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	duo := fourSeats[:2]
	itemID, partyID := 10, 1

	f.parties.On("GetPartyByID", ctx, 1).Return(rotationParty(), nil)
	f.parties.On("GetRoster", ctx, 1).Return(duo, nil)
	f.loot.On("GetLootRecords", ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID}).
		Return([]domain.LootRecord{{PlayerID: 1, ItemID: 10, PartyID: 1}}, nil)

	eligible, err := f.svc.RotationEligible(ctx, 1, 10, 1)
	assert.NoError(t, err)
	assert.False(t, eligible)

	eligible, err = f.svc.RotationEligible(ctx, 2, 10, 1)
	assert.NoError(t, err)
	assert.True(t, eligible)
}

func TestResolveRecipientPropagatesLedgerError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	boom := errors.New("connection reset")
	itemID, partyID := 10, 1

	f.parties.On("GetPartyByID", ctx, 1).Return(rotationParty(), nil)
	f.items.On("GetItemByID", ctx, 10).Return(itemX, nil)
	f.parties.On("GetRoster", ctx, 1).Return(fourSeats, nil)
	f.loot.On("GetLootRecords", ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID}).
		Return(nil, boom)

	rec, err := f.svc.ResolveRecipient(ctx, 1, 10, testNow)

	assert.Nil(t, rec)
	assert.ErrorIs(t, err, boom)
}
