package domain

const (
	CollectionAlbum = "albums"
)
const (
	CollectionSong = "songs"
)
const (
	CollectionUser = "users"
)
