package domain

import "context"

// Stats is the cross-collection aggregate snapshot. UniqueArtists
// counts distinct artist name strings across the union of songs and
// albums; an artist present in both counts once.
type Stats struct {
	TotalAlbums   int64 `json:"totalAlbums"`
	TotalSongs    int64 `json:"totalSongs"`
	TotalUsers    int64 `json:"totalUsers"`
	UniqueArtists int64 `json:"uniqueArtists"`
}

type StatsUsecase interface {
	Get(ctx context.Context) (*Stats, error)
}
