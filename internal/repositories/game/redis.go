package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/burracoapp/scoretracker/internal/common/timefmt"
	"github.com/burracoapp/scoretracker/internal/models"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix      = "game:"
	nicknameGamesIndex = "nickname_games:" // Sorted set per owner, scored by creation time
)

// ErrGameNotFound is returned when a game record is not found
var ErrGameNotFound = errors.New("game not found")

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// gameRecord is the stored record shape. Field names follow the record
// store's convention, not the domain model's.
type gameRecord struct {
	IDGame         string `json:"idGame"`
	DateTime       string `json:"DateTime"` // Wire format
	Nickname       string `json:"Nickname"`
	FinalPointGame int    `json:"FinalPointGame"`
	Team1          string `json:"Team1"`
	Team2          string `json:"Team2"`
	Team3          string `json:"Team3"`
	GameStatus     int    `json:"GameStatus"`
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// CreateGame inserts a game record. The stored status is always in-progress:
// new games never start completed, whatever the caller passed in.
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) error {
	if input == nil || input.Game == nil {
		return errors.New("input and game cannot be nil")
	}

	game := input.Game
	if game.ID == "" {
		return errors.New("game ID cannot be empty")
	}

	createdAt, err := timefmt.ParseDisplay(game.DateTime)
	if err != nil {
		return fmt.Errorf("failed to convert game timestamp: %w", err)
	}

	record := &gameRecord{
		IDGame:         game.ID,
		DateTime:       createdAt.UTC().Format(timefmt.WireLayout),
		Nickname:       game.Nickname,
		FinalPointGame: game.FinalScore,
		Team1:          game.Team1,
		Team2:          game.Team2,
		Team3:          game.Team3,
		GameStatus:     int(models.GameStatusInProgress),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the record
	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, game.ID)
	pipe.Set(ctx, gameKey, recordJSON, 0)

	// Index the game under its owner, scored by creation time so history
	// listings can come back most recent first
	ownerKey := fmt.Sprintf("%s%s", nicknameGamesIndex, game.Nickname)
	pipe.ZAdd(ctx, ownerKey, redis.Z{
		Score:  float64(createdAt.UnixNano()),
		Member: game.ID,
	})

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	recordJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return unmarshalGame(recordJSON)
}

// ListGamesByNickname retrieves all games owned by a nickname. Matching is
// exact and case-sensitive; results come back most recent first.
func (r *redisRepository) ListGamesByNickname(ctx context.Context, input *ListGamesByNicknameInput) (*ListGamesByNicknameOutput, error) {
	if input == nil || input.Nickname == "" {
		return nil, errors.New("input and nickname cannot be empty")
	}

	// Highest creation-time score first
	ownerKey := fmt.Sprintf("%s%s", nicknameGamesIndex, input.Nickname)
	gameIDs, err := r.client.ZRevRange(ctx, ownerKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get game IDs for nickname: %w", err)
	}

	if len(gameIDs) == 0 {
		return &ListGamesByNicknameOutput{
			Games: []*models.Game{},
		}, nil
	}

	// Fetch all records in one pipeline
	pipe := r.client.Pipeline()
	gameCommands := make([]*redis.StringCmd, 0, len(gameIDs))
	for _, gameID := range gameIDs {
		gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, gameID)
		gameCommands = append(gameCommands, pipe.Get(ctx, gameKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get games: %w", err)
	}

	// Walk the commands in index order to preserve the listing order
	games := make([]*models.Game, 0, len(gameIDs))
	for i, cmd := range gameCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		game, err := unmarshalGame(recordJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode game %s: %w", gameIDs[i], err)
		}

		games = append(games, game)
	}

	return &ListGamesByNicknameOutput{
		Games: games,
	}, nil
}

// SetGameStatus updates the status field of a game record. When no record
// matches the ID this is a no-op; transport failures still surface.
func (r *redisRepository) SetGameStatus(ctx context.Context, input *SetGameStatusInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	recordJSON, err := r.client.Get(ctx, gameKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		return fmt.Errorf("failed to get game for status update: %w", err)
	}

	var record gameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	record.GameStatus = int(input.Status)

	updatedJSON, err := json.Marshal(&record)
	if err != nil {
		return fmt.Errorf("failed to marshal game record: %w", err)
	}

	if err := r.client.Set(ctx, gameKey, updatedJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to update game status: %w", err)
	}

	return nil
}

// DeleteGame removes a game record and its owner-index entry. A missing
// record is tolerated.
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	// Fetch the record first to learn the owner for index cleanup
	game, err := r.GetGame(ctx, &GetGameInput{GameID: input.GameID})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return nil
		}
		return err
	}

	pipe := r.client.Pipeline()

	gameKey := fmt.Sprintf("%s%s", gameKeyPrefix, input.GameID)
	pipe.Del(ctx, gameKey)

	ownerKey := fmt.Sprintf("%s%s", nicknameGamesIndex, game.Nickname)
	pipe.ZRem(ctx, ownerKey, input.GameID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// unmarshalGame decodes a stored record and translates it back to the domain
// model, converting the wire timestamp to display format.
func unmarshalGame(recordJSON string) (*models.Game, error) {
	var record gameRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	display, err := timefmt.FromWire(record.DateTime)
	if err != nil {
		return nil, fmt.Errorf("failed to convert game timestamp: %w", err)
	}

	return &models.Game{
		ID:         record.IDGame,
		DateTime:   display,
		Nickname:   record.Nickname,
		FinalScore: record.FinalPointGame,
		Team1:      record.Team1,
		Team2:      record.Team2,
		Team3:      record.Team3,
		Status:     models.GameStatus(record.GameStatus),
	}, nil
}
