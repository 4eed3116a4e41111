package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/h2non/filetype"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/echosphere/echosphere-backend/domain"
)

// MediaUploadUsecase pushes the binary payloads required by one create
// request to the blob store. All payloads succeed or the whole
// operation fails; on partial failure any sibling blob that already
// made it is destroyed best-effort before the error is surfaced.
type MediaUploadUsecase struct {
	storage domain.BlobStorage
	timeout time.Duration
}

func NewMediaUploadUsecase(storage domain.BlobStorage, timeout time.Duration) *MediaUploadUsecase {
	return &MediaUploadUsecase{
		storage: storage,
		timeout: timeout,
	}
}

// UploadAll uploads every payload concurrently and returns the results
// keyed by logical payload name, so completion order never matters.
// Missing or mistyped payloads are rejected before any network call.
func (uc *MediaUploadUsecase) UploadAll(ctx context.Context, payloads []*domain.MediaPayload) (map[string]*domain.BlobUpload, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	for _, p := range payloads {
		if p == nil || p.Data == nil {
			return nil, domain.NewValidationError("files")
		}
		if err := sniffPayload(p); err != nil {
			return nil, err
		}
	}

	results := make([]*domain.BlobUpload, len(payloads))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range payloads {
		g.Go(func() error {
			up, err := uc.storage.Upload(gctx, p.Data, p.Kind)
			if err != nil {
				return fmt.Errorf("upload %s: %w", p.Name, err)
			}
			results[i] = up
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.destroySiblings(payloads, results)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrRequestTimedOut
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrMediaUploadFailed, err)
	}

	uploads := make(map[string]*domain.BlobUpload, len(payloads))
	for i, p := range payloads {
		uploads[p.Name] = results[i]
	}
	return uploads, nil
}

// destroySiblings issues compensating deletes for the uploads that
// succeeded before a partner failed. Failures are logged, not
// propagated: the caller already has a terminal error to surface.
func (uc *MediaUploadUsecase) destroySiblings(payloads []*domain.MediaPayload, results []*domain.BlobUpload) {
	ctx, cancel := context.WithTimeout(context.Background(), uc.timeout)
	defer cancel()

	for i, up := range results {
		if up == nil {
			continue
		}
		if err := uc.storage.Destroy(ctx, up.PublicID, payloads[i].Kind); err != nil {
			log.Warn().Err(err).
				Str("payload", payloads[i].Name).
				Str("public_id", up.PublicID).
				Msg("failed to destroy orphaned blob")
		}
	}
}

// sniffPayload checks the payload's magic bytes against its declared
// kind and rewinds the reader for the actual upload.
func sniffPayload(p *domain.MediaPayload) error {
	head := make([]byte, 261)
	n, err := io.ReadFull(p.Data, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read %s: %w", p.Name, err)
	}
	if _, err := p.Data.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", p.Name, err)
	}

	head = head[:n]
	switch p.Kind {
	case domain.MediaKindImage:
		if !filetype.IsImage(head) {
			return domain.NewValidationError(p.Name)
		}
	case domain.MediaKindAudio:
		if !filetype.IsAudio(head) {
			return domain.NewValidationError(p.Name)
		}
	}
	return nil
}
