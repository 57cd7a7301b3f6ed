package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"lugx_gaming_server/database"
	"lugx_gaming_server/lib"
	"lugx_gaming_server/observability"
	"lugx_gaming_server/structs"
	"lugx_gaming_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// GameService serves the storefront catalog. Reads go through the redis
// cache where it helps; the database stays the source of truth.
type GameService interface {
	ListGames(ctx context.Context) ([]tables.Game, error)
	GetGameByID(ctx context.Context, id int64) (*tables.Game, error)
	ListCategories(ctx context.Context) ([]tables.GameCategory, error)
	CreateGame(ctx context.Context, req *structs.GameRequest) (*tables.Game, error)
}

type gameService struct {
	logger *gecho.Logger
	db     *database.DB
	cache  *CacheService
}

func NewGameService(logger *gecho.Logger, db *database.DB, cache *CacheService) GameService {
	return &gameService{
		logger: logger,
		db:     db,
		cache:  cache,
	}
}

func (s *gameService) ListGames(ctx context.Context) ([]tables.Game, error) {
	if games, ok := s.cache.GetGamesList(ctx); ok {
		observability.TrackGameOperation("list", "cache_hit")
		return games, nil
	}

	var games []tables.Game
	err := database.WithRetry(ctx, func() error {
		games = nil // reset on retry
		return s.db.NewSelect().Model(&games).Order("g.id ASC").Scan(ctx)
	})
	if err != nil {
		observability.TrackGameOperation("list", "error")
		return nil, lib.MapPgError(err)
	}

	if games == nil {
		games = []tables.Game{}
	}
	s.cache.SetGamesList(ctx, games)
	observability.TrackGameOperation("list", "success")
	return games, nil
}

func (s *gameService) GetGameByID(ctx context.Context, id int64) (*tables.Game, error) {
	game := new(tables.Game)

	err := s.db.NewSelect().Model(game).Where("g.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		observability.TrackGameOperation("get", "not_found")
		return nil, lib.ErrNotFound
	}
	if err != nil {
		observability.TrackGameOperation("get", "error")
		return nil, lib.MapPgError(err)
	}

	observability.TrackGameOperation("get", "success")
	return game, nil
}

func (s *gameService) ListCategories(ctx context.Context) ([]tables.GameCategory, error) {
	var categories []tables.GameCategory

	err := database.WithRetry(ctx, func() error {
		categories = nil
		return s.db.NewSelect().Model(&categories).Order("gc.name ASC").Scan(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if categories == nil {
		categories = []tables.GameCategory{}
	}
	return categories, nil
}

func (s *gameService) CreateGame(ctx context.Context, req *structs.GameRequest) (*tables.Game, error) {
	game := &tables.Game{
		Title:       req.Title,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.db.NewInsert().Model(game).Exec(ctx); err != nil {
		observability.TrackGameOperation("create", "error")
		return nil, lib.MapPgError(err)
	}

	// The cached list is stale now.
	s.cache.InvalidateGamesList(ctx)

	s.logger.Info("Game created",
		gecho.Field("game_id", game.ID),
		gecho.Field("title", game.Title))
	observability.TrackGameOperation("create", "success")
	return game, nil
}
