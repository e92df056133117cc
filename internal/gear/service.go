package gear

import (
	"context"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/metrics"
	"github.com/haneul-dev/raidledger/internal/repository"
)

const needsCacheSize = 512

// Service defines gear set management and the best-in-slot gap calculation
type Service interface {
	// ReplaceGearSet swaps a player's whole set of the given type.
	ReplaceGearSet(ctx context.Context, playerID int, setType domain.GearSetType, itemIDs []int) (*domain.GearSet, error)

	// GetGearSet returns (nil, nil) when the player has no set of that type.
	GetGearSet(ctx context.Context, playerID int, setType domain.GearSetType) (*domain.GearSet, error)

	// BiSNeeds returns the item IDs present in the player's BiS set but absent
	// from their starting set, sorted ascending. Items are matched by identity,
	// not by slot. No BiS set means no computable need.
	BiSNeeds(ctx context.Context, playerID int) ([]int, error)
}

type service struct {
	players repository.Player
	items   repository.Item
	gear    repository.Gear

	// Derived cache over the stored sets; invalidated on replacement.
	// The gear tables stay the source of truth.
	needs *lru.Cache[int, []int]
}

// NewService creates a new gear service
func NewService(players repository.Player, items repository.Item, gearRepo repository.Gear) Service {
	cache, err := lru.New[int, []int](needsCacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size
		panic(fmt.Sprintf("gear: bad needs cache size: %v", err))
	}
	return &service{
		players: players,
		items:   items,
		gear:    gearRepo,
		needs:   cache,
	}
}

func (s *service) ReplaceGearSet(ctx context.Context, playerID int, setType domain.GearSetType, itemIDs []int) (*domain.GearSet, error) {
	if !setType.IsValid() {
		return nil, fmt.Errorf("%w: set_type %q", domain.ErrInvalidInput, setType)
	}

	if _, err := s.players.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}

	if err := s.validateOneItemPerSlot(ctx, itemIDs); err != nil {
		return nil, err
	}

	set := &domain.GearSet{
		PlayerID: playerID,
		Type:     setType,
		ItemIDs:  dedupe(itemIDs),
	}
	if err := s.gear.ReplaceGearSet(ctx, set); err != nil {
		return nil, err
	}

	s.needs.Remove(playerID)

	logger.FromContext(ctx).Info("Gear set replaced",
		"player_id", playerID,
		"set_type", setType,
		"items", len(set.ItemIDs),
	)
	return set, nil
}

func (s *service) GetGearSet(ctx context.Context, playerID int, setType domain.GearSetType) (*domain.GearSet, error) {
	if !setType.IsValid() {
		return nil, fmt.Errorf("%w: set_type %q", domain.ErrInvalidInput, setType)
	}
	if _, err := s.players.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}
	return s.gear.GetGearSet(ctx, playerID, setType)
}

func (s *service) BiSNeeds(ctx context.Context, playerID int) ([]int, error) {
	if _, err := s.players.GetPlayerByID(ctx, playerID); err != nil {
		return nil, err
	}

	if cached, ok := s.needs.Get(playerID); ok {
		metrics.GearNeedsCacheHits.Inc()
		out := make([]int, len(cached))
		copy(out, cached)
		return out, nil
	}
	metrics.GearNeedsCacheMisses.Inc()

	bis, err := s.gear.GetGearSet(ctx, playerID, domain.GearSetBiS)
	if err != nil {
		return nil, err
	}
	if bis == nil {
		// No BiS target defined: nothing is computably needed
		s.needs.Add(playerID, []int{})
		return []int{}, nil
	}

	starting, err := s.gear.GetGearSet(ctx, playerID, domain.GearSetStarting)
	if err != nil {
		return nil, err
	}

	owned := map[int]bool{}
	if starting != nil {
		for _, id := range starting.ItemIDs {
			owned[id] = true
		}
	}

	needed := []int{}
	for _, id := range bis.ItemIDs {
		if !owned[id] {
			needed = append(needed, id)
		}
	}
	sort.Ints(needed)

	s.needs.Add(playerID, needed)

	out := make([]int, len(needed))
	copy(out, needed)
	return out, nil
}

// validateOneItemPerSlot rejects sets that place two items in the same slot
func (s *service) validateOneItemPerSlot(ctx context.Context, itemIDs []int) error {
	seen := map[domain.ItemSlot]int{}
	for _, id := range dedupe(itemIDs) {
		item, err := s.items.GetItemByID(ctx, id)
		if err != nil {
			return err
		}
		if other, ok := seen[item.Slot]; ok {
			return fmt.Errorf("%w: items %d and %d both occupy slot %s",
				domain.ErrInvalidInput, other, item.ID, item.Slot)
		}
		seen[item.Slot] = item.ID
	}
	return nil
}

func dedupe(ids []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
