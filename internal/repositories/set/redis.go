package set

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/burracoapp/scoretracker/internal/models"
)

const (
	// Key prefixes for Redis
	setKeyPrefix      = "set:"
	gameSetsKeyPrefix = "game_sets:" // Sorted set per game, scored by set number
)

// Config holds configuration for the Redis set repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// setRecord is the stored record shape, following the record store's field
// naming. Records get an internal ID on insert, the way the remote store
// assigns its own record IDs.
type setRecord struct {
	Team   string `json:"Team"`
	IDGame string `json:"idGame"`
	Set    int    `json:"Set"`
	Base   int    `json:"Base"`
	Points int    `json:"Points"`
	Total  int    `json:"Total"`
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed set repository
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

// CreateSet inserts one set record and indexes it under its game
func (r *redisRepository) CreateSet(ctx context.Context, input *CreateSetInput) error {
	if input == nil || input.Set == nil {
		return errors.New("input and set cannot be nil")
	}

	set := input.Set
	if set.GameID == "" {
		return errors.New("set game ID cannot be empty")
	}

	if set.Team == "" {
		return errors.New("set team cannot be empty")
	}

	record := &setRecord{
		Team:   set.Team,
		IDGame: set.GameID,
		Set:    set.Number,
		Base:   set.Base,
		Points: set.Points,
		Total:  set.Base + set.Points,
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal set record: %w", err)
	}

	// Generate an internal record ID
	recordID := uuid.New().String()

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Store the set record
	setKey := fmt.Sprintf("%s%s", setKeyPrefix, recordID)
	pipe.Set(ctx, setKey, recordJSON, 0)

	// Add to the game's set index, scored by set number so listings come
	// back in ascending order
	gameKey := fmt.Sprintf("%s%s", gameSetsKeyPrefix, set.GameID)
	pipe.ZAdd(ctx, gameKey, redis.Z{
		Score:  float64(set.Number),
		Member: recordID,
	})

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save set: %w", err)
	}

	return nil
}

// ListSetsForGame retrieves all set records for a game, ordered by set
// number ascending. An unknown game yields an empty slice.
func (r *redisRepository) ListSetsForGame(ctx context.Context, input *ListSetsForGameInput) (*ListSetsForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameSetsKeyPrefix, input.GameID)
	recordIDs, err := r.client.ZRange(ctx, gameKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get set IDs for game: %w", err)
	}

	if len(recordIDs) == 0 {
		return &ListSetsForGameOutput{
			Sets: []*models.Set{},
		}, nil
	}

	// Fetch all records in one pipeline
	pipe := r.client.Pipeline()
	setCommands := make([]*redis.StringCmd, 0, len(recordIDs))
	for _, recordID := range recordIDs {
		setKey := fmt.Sprintf("%s%s", setKeyPrefix, recordID)
		setCommands = append(setCommands, pipe.Get(ctx, setKey))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sets: %w", err)
	}

	// Walk the commands in index order to preserve the listing order
	sets := make([]*models.Set, 0, len(recordIDs))
	for i, cmd := range setCommands {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Record was deleted between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get set %s: %w", recordIDs[i], err)
		}

		var record setRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal set record %s: %w", recordIDs[i], err)
		}

		// Total stays derived: recompute on the way out rather than trusting
		// the stored value
		sets = append(sets, models.NewSet(record.Team, record.IDGame, record.Set, record.Base, record.Points))
	}

	return &ListSetsForGameOutput{
		Sets: sets,
	}, nil
}

// DeleteSetsForGame removes every set record for a game along with the
// game's set index. A game with no sets deletes cleanly.
func (r *redisRepository) DeleteSetsForGame(ctx context.Context, input *DeleteSetsForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	gameKey := fmt.Sprintf("%s%s", gameSetsKeyPrefix, input.GameID)
	recordIDs, err := r.client.ZRange(ctx, gameKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get set IDs for game: %w", err)
	}

	if len(recordIDs) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, recordID := range recordIDs {
		setKey := fmt.Sprintf("%s%s", setKeyPrefix, recordID)
		pipe.Del(ctx, setKey)
	}
	pipe.Del(ctx, gameKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete sets: %w", err)
	}

	return nil
}
