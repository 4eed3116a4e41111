package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/echosphere/echosphere-backend/domain"
)

type statsUsecase struct {
	songRepo  domain.SongRepository
	albumRepo domain.AlbumRepository
	userRepo  domain.UserRepository
	timeout   time.Duration
}

func NewStatsUsecase(songRepo domain.SongRepository, albumRepo domain.AlbumRepository, userRepo domain.UserRepository, timeout time.Duration) domain.StatsUsecase {
	return &statsUsecase{
		songRepo:  songRepo,
		albumRepo: albumRepo,
		userRepo:  userRepo,
		timeout:   timeout,
	}
}

// Get runs the four independent counts concurrently and assembles the
// snapshot once all of them land. Any failing sub-query fails the
// whole call; no partial stats object is ever returned.
func (uc *statsUsecase) Get(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var stats domain.Stats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.songRepo.Count(gctx)
		stats.TotalSongs = n
		return err
	})
	g.Go(func() error {
		n, err := uc.albumRepo.Count(gctx)
		stats.TotalAlbums = n
		return err
	})
	g.Go(func() error {
		n, err := uc.userRepo.Count(gctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := uc.songRepo.CountDistinctArtists(gctx)
		stats.UniqueArtists = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStatsUnavailable, err)
	}
	return &stats, nil
}
