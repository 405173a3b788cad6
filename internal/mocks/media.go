package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/media"
)

type Uploader struct {
	mock.Mock
}

func (m *Uploader) Upload(ctx context.Context, img *media.Image, folder string) (*media.UploadedImage, error) {
	args := m.Called(ctx, img, folder)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.UploadedImage), args.Error(1)
}

func (m *Uploader) Destroy(ctx context.Context, publicID string) error {
	return m.Called(ctx, publicID).Error(0)
}

type MailService struct {
	mock.Mock
}

func (m *MailService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MailService) SendBookingStatusMail(ctx context.Context, booking *db_models.Booking) error {
	return m.Called(ctx, booking).Error(0)
}
