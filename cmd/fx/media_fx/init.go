package media_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
)

var Module = fx.Provide(provideUploader)

func provideUploader(cfg *config.Config, log *zap.Logger) (media.Uploader, error) {
	if cfg.Media.CloudinaryURL == "" {
		log.Warn("cloudinary not configured, image uploads are disabled")
		return media.DisabledUploader{}, nil
	}
	uploader, err := media.NewCloudinaryUploader(cfg.Media.CloudinaryURL, cfg.Media.Folder)
	if err != nil {
		return nil, err
	}
	log.Info("cloudinary uploader ready", zap.String("folder", cfg.Media.Folder))
	return uploader, nil
}
