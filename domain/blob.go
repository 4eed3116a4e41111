package domain

import (
	"context"
	"io"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindAudio MediaKind = "audio"
)

// Logical payload names for the dual-upload ingestion path.
const (
	PayloadAudio = "audioFile"
	PayloadImage = "imageFile"
)

// MediaPayload is one named binary attached to a create request. Data
// must be seekable so the payload can be sniffed before upload.
type MediaPayload struct {
	Name     string
	Kind     MediaKind
	Filename string
	Data     io.ReadSeeker
}

// BlobUpload identifies a durably stored blob: its publicly resolvable
// URL plus the storage key needed for a compensating delete.
type BlobUpload struct {
	PublicID string
	URL      string
}

type BlobStorage interface {
	Upload(ctx context.Context, r io.Reader, kind MediaKind) (*BlobUpload, error)
	Destroy(ctx context.Context, publicID string, kind MediaKind) error
}
