package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haneul-dev/raidledger/internal/domain"
	"github.com/haneul-dev/raidledger/internal/repository"
)

type partyRepository struct {
	db *pgxpool.Pool
}

// NewPartyRepository creates a new PostgreSQL raid party repository
func NewPartyRepository(db *pgxpool.Pool) repository.Party {
	return &partyRepository{db: db}
}

func (r *partyRepository) InsertParty(ctx context.Context, party *domain.RaidParty) (int, error) {
	query := `
		INSERT INTO raid_parties (party_name, policy)
		VALUES ($1, $2)
		RETURNING party_id
	`

	var id int
	err := r.db.QueryRow(ctx, query, party.Name, party.Policy).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return 0, domain.ErrPartyExists
		}
		return 0, fmt.Errorf("failed to insert party: %w", err)
	}
	return id, nil
}

func (r *partyRepository) GetPartyByID(ctx context.Context, id int) (*domain.RaidParty, error) {
	query := `SELECT party_id, party_name, policy FROM raid_parties WHERE party_id = $1`

	var party domain.RaidParty
	err := r.db.QueryRow(ctx, query, id).Scan(&party.ID, &party.Name, &party.Policy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party: %w", err)
	}
	return &party, nil
}

func (r *partyRepository) GetPartyByName(ctx context.Context, name string) (*domain.RaidParty, error) {
	query := `SELECT party_id, party_name, policy FROM raid_parties WHERE party_name = $1`

	var party domain.RaidParty
	err := r.db.QueryRow(ctx, query, name).Scan(&party.ID, &party.Name, &party.Policy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to get party by name: %w", err)
	}
	return &party, nil
}

func (r *partyRepository) GetAllParties(ctx context.Context) ([]domain.RaidParty, error) {
	query := `SELECT party_id, party_name, policy FROM raid_parties ORDER BY party_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get parties: %w", err)
	}
	defer rows.Close()

	parties := []domain.RaidParty{}
	for rows.Next() {
		var party domain.RaidParty
		if err := rows.Scan(&party.ID, &party.Name, &party.Policy); err != nil {
			return nil, fmt.Errorf("failed to scan party: %w", err)
		}
		parties = append(parties, party)
	}
	return parties, rows.Err()
}

func (r *partyRepository) UpdatePartyPolicy(ctx context.Context, id int, policy domain.DistributionPolicy) error {
	tag, err := r.db.Exec(ctx, `UPDATE raid_parties SET policy = $2 WHERE party_id = $1`, id, policy)
	if err != nil {
		return fmt.Errorf("failed to update party policy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

func (r *partyRepository) DeleteParty(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM raid_parties WHERE party_id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrPartyHasHistory
		}
		return fmt.Errorf("failed to delete party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPartyNotFound
	}
	return nil
}

func (r *partyRepository) GetRoster(ctx context.Context, partyID int) ([]domain.Player, error) {
	query := `
		SELECT player_id, user_id, job_id, party_id, nickname
		FROM players
		WHERE party_id = $1
		ORDER BY player_id
	`

	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

type playerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PostgreSQL player repository
func NewPlayerRepository(db *pgxpool.Pool) repository.Player {
	return &playerRepository{db: db}
}

func (r *playerRepository) InsertPlayer(ctx context.Context, player *domain.Player) (int, error) {
	uid, err := parseUserUUID(player.UserID)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	query := `
		INSERT INTO players (user_id, job_id, party_id, nickname)
		VALUES ($1, $2, $3, $4)
		RETURNING player_id
	`

	var id int
	err = r.db.QueryRow(ctx, query, uid, player.JobID, player.PartyID, player.Nickname).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return 0, domain.ErrDuplicateNickname
			case pgForeignKeyViolation:
				return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, pgErr.ConstraintName)
			}
		}
		return 0, fmt.Errorf("failed to insert player: %w", err)
	}
	return id, nil
}

func (r *playerRepository) GetPlayerByID(ctx context.Context, id int) (*domain.Player, error) {
	query := `
		SELECT player_id, user_id, job_id, party_id, nickname
		FROM players
		WHERE player_id = $1
	`

	var player domain.Player
	err := r.db.QueryRow(ctx, query, id).Scan(
		&player.ID, &player.UserID, &player.JobID, &player.PartyID, &player.Nickname,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

func (r *playerRepository) GetPlayersByParty(ctx context.Context, partyID int) ([]domain.Player, error) {
	query := `
		SELECT player_id, user_id, job_id, party_id, nickname
		FROM players
		WHERE party_id = $1
		ORDER BY player_id
	`

	rows, err := r.db.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}
	defer rows.Close()

	return scanPlayers(rows)
}

func (r *playerRepository) DeletePlayer(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM players WHERE player_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func scanPlayers(rows pgx.Rows) ([]domain.Player, error) {
	players := []domain.Player{}
	for rows.Next() {
		var player domain.Player
		if err := rows.Scan(&player.ID, &player.UserID, &player.JobID, &player.PartyID, &player.Nickname); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}
