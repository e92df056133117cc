package distribution

import (
	"context"
	"fmt"
	"time"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/metrics"
	"github.com/haneul-dev/raidledger/internal/repository"
)

// GearService is the slice of the gear system the resolver needs
type GearService interface {
	BiSNeeds(ctx context.Context, playerID int) ([]int, error)
}

// Service defines the loot distribution decision engine.
//
// ResolveRecipient is a pure decision over a consistent snapshot of roster,
// ledger and priority table: it performs no writes and caches nothing between
// calls. Committing the decision is a separate, explicit step
// (RecordDistribution) so callers can review or discard a recommendation.
type Service interface {
	// ResolveRecipient returns the best-eligible recipient for the item, or
	// (nil, nil) when nobody qualifies. Unknown party or item is an error.
	ResolveRecipient(ctx context.Context, partyID, itemID int, now time.Time) (*domain.Recommendation, error)

	// RotationEligible answers the rotation ("eat and go") rule for one player
	// in isolation, ignoring the weekly cap.
	RotationEligible(ctx context.Context, playerID, itemID, partyID int) (bool, error)

	// RecordDistribution appends the chosen award to the ledger. The storage
	// layer serializes concurrent commits per (party, item, week window).
	RecordDistribution(ctx context.Context, partyID, itemID, playerID int, now time.Time) (*domain.LootRecord, error)
}

type service struct {
	parties    repository.Party
	items      repository.Item
	players    repository.Player
	loot       repository.Loot
	priorities repository.Priority
	gear       GearService
}

// NewService creates a new distribution service
func NewService(parties repository.Party, items repository.Item, players repository.Player, loot repository.Loot, priorities repository.Priority, gearSvc GearService) Service {
	return &service{
		parties:    parties,
		items:      items,
		players:    players,
		loot:       loot,
		priorities: priorities,
		gear:       gearSvc,
	}
}

func (s *service) ResolveRecipient(ctx context.Context, partyID, itemID int, now time.Time) (*domain.Recommendation, error) {
	log := logger.FromContext(ctx)

	party, err := s.parties.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !party.Policy.IsValid() {
		return nil, fmt.Errorf("%w: %q on party %d", domain.ErrPolicyUnknown, party.Policy, party.ID)
	}

	roster, err := s.parties.GetRoster(ctx, partyID)
	if err != nil {
		return nil, err
	}

	// One ledger read for the item's party history covers the rotation rule
	// for every roster member.
	var received map[int]bool
	if party.Policy == domain.PolicyRotation {
		history, err := s.loot.GetLootRecords(ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID})
		if err != nil {
			return nil, err
		}
		var departed []int
		received, departed = receivedSet(history, roster)
		for _, playerID := range departed {
			// Records from players who left stay in the ledger but no longer
			// count toward rotation closure.
			metrics.RosterInconsistencies.WithLabelValues("ledger").Inc()
			log.Warn("Loot record references player absent from roster",
				"player_id", playerID,
				"party_id", partyID,
				"item_id", itemID,
			)
		}
	}

	candidates := []candidate{}
	for _, member := range roster {
		blocked, err := s.weeklyCapBlocked(ctx, member.ID, now)
		if err != nil {
			return nil, err
		}
		if blocked {
			continue
		}

		if party.Policy == domain.PolicyRotation && !rotationEligible(member.ID, received, roster) {
			continue
		}

		entry, err := s.priorities.GetPriority(ctx, member.ID, itemID, partyID)
		if err != nil {
			return nil, err
		}

		needs, err := s.gear.BiSNeeds(ctx, member.ID)
		if err != nil {
			return nil, err
		}
		neededForBiS := false
		for _, id := range needs {
			if id == item.ID {
				neededForBiS = true
				break
			}
		}

		cand := candidate{
			player:       member,
			score:        score(entry, neededForBiS),
			neededForBiS: neededForBiS,
		}
		if entry != nil {
			order := entry.Order
			cand.priorityOrder = &order
		}
		candidates = append(candidates, cand)
	}

	if len(candidates) == 0 {
		// A legitimate empty result: everyone capped, waiting on rotation, or
		// the roster is empty. Not an error.
		metrics.Recommendations.WithLabelValues(string(party.Policy), metrics.OutcomeNoEligible).Inc()
		log.Info("No eligible recipient",
			"party_id", partyID,
			"item_id", itemID,
			"policy", party.Policy,
		)
		return nil, nil
	}

	rank(candidates)
	top := candidates[0]

	metrics.Recommendations.WithLabelValues(string(party.Policy), metrics.OutcomeRecommended).Inc()
	log.Info("Recipient resolved",
		"party_id", partyID,
		"item_id", itemID,
		"player_id", top.player.ID,
		"score", top.score,
		"policy", party.Policy,
	)

	return &domain.Recommendation{
		PlayerID:     top.player.ID,
		Nickname:     top.player.Nickname,
		Score:        top.score,
		NeededForBiS: top.neededForBiS,
	}, nil
}

func (s *service) RotationEligible(ctx context.Context, playerID, itemID, partyID int) (bool, error) {
	if _, err := s.parties.GetPartyByID(ctx, partyID); err != nil {
		return false, err
	}
	roster, err := s.parties.GetRoster(ctx, partyID)
	if err != nil {
		return false, err
	}
	history, err := s.loot.GetLootRecords(ctx, domain.LootFilter{ItemID: &itemID, PartyID: &partyID})
	if err != nil {
		return false, err
	}
	received, _ := receivedSet(history, roster)
	return rotationEligible(playerID, received, roster), nil
}

func (s *service) RecordDistribution(ctx context.Context, partyID, itemID, playerID int, now time.Time) (*domain.LootRecord, error) {
	party, err := s.parties.GetPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}
	player, err := s.players.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.PartyID != partyID {
		return nil, fmt.Errorf("%w: player %d, party %d", domain.ErrPlayerNotOnRoster, playerID, partyID)
	}

	record := &domain.LootRecord{
		PlayerID:      playerID,
		ItemID:        itemID,
		PartyID:       partyID,
		DistributedAt: now.UTC(),
		Policy:        party.Policy,
	}
	if err := s.loot.InsertLootRecord(ctx, record, WeekStart(now)); err != nil {
		return nil, err
	}

	metrics.LootRecorded.WithLabelValues(string(party.Policy)).Inc()
	logger.FromContext(ctx).Info("Loot distribution recorded",
		"record_id", record.ID,
		"party_id", partyID,
		"item_id", itemID,
		"player_id", playerID,
		"policy", party.Policy,
	)
	return record, nil
}
