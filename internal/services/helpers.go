package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

const pickerLimit = 20

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil || parsed == uuid.Nil {
		return uuid.Nil, utils.ErrInvalidID
	}
	return parsed, nil
}

// parseIDs parses and de-duplicates ids, keeping their order.
func parseIDs(ids []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := parseID(raw)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

// dbError logs a repository failure and converts it to the error the client sees.
func dbError(log *zap.Logger, op string, err error) error {
	switch {
	case utils.IsUniqueViolation(err):
		return utils.ErrDuplicateRecord
	case utils.IsForeignKeyViolation(err):
		return utils.ErrInvalidReference
	}
	log.Error("database operation failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%w: %s", utils.ErrDatabaseError, op)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

// imageStore wraps the media uploader with the folder of one entity type.
type imageStore struct {
	uploader media.Uploader
	log      *zap.Logger
	folder   string
}

// attach uploads img and points asset at it. The previous public id is
// returned so the caller can destroy it once the record is saved.
func (s imageStore) attach(ctx context.Context, asset *db_models.ImageAsset, img *media.Image) (*media.UploadedImage, string, error) {
	if img == nil {
		return nil, "", nil
	}
	uploaded, err := s.uploader.Upload(ctx, img, s.folder)
	if err != nil {
		s.log.Warn("image upload failed", zap.String("folder", s.folder), zap.Error(err))
		return nil, "", err
	}
	previous := asset.ImagePublicID
	asset.ImageURL = uploaded.URL
	asset.ImagePublicID = uploaded.PublicID
	return uploaded, previous, nil
}

func (s imageStore) destroy(ctx context.Context, publicID string) {
	media.DestroyQuietly(ctx, s.uploader, s.log, publicID)
}

// rollback removes a freshly uploaded asset when saving its record failed.
func (s imageStore) rollback(ctx context.Context, uploaded *media.UploadedImage) {
	if uploaded != nil {
		s.destroy(ctx, uploaded.PublicID)
	}
}
