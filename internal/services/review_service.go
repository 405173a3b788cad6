package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type ReviewServiceInterface interface {
	Search(ctx context.Context, filter request_models.ReviewFilter) (*resp.ReviewSearchResponse, error)
	Get(ctx context.Context, id string) (*db_models.Review, error)
	Create(ctx context.Context, request request_models.ReviewRequest) (*db_models.Review, error)
	Update(ctx context.Context, id string, request request_models.ReviewUpdateRequest) (*db_models.Review, error)
	Delete(ctx context.Context, id string) error
}

type ReviewService struct {
	repo        repositories.ReviewRepository
	userRepo    repositories.UserRepository
	packageRepo repositories.PackageRepository
	bookingRepo repositories.BookingRepository
	log         *zap.Logger
}

func NewReviewService(
	repo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	packageRepo repositories.PackageRepository,
	bookingRepo repositories.BookingRepository,
	log *zap.Logger,
) ReviewServiceInterface {
	return &ReviewService{
		repo:        repo,
		userRepo:    userRepo,
		packageRepo: packageRepo,
		bookingRepo: bookingRepo,
		log:         log.Named("reviews"),
	}
}

// Search backs both the review list and the search endpoint.
func (s *ReviewService) Search(ctx context.Context, f request_models.ReviewFilter) (*resp.ReviewSearchResponse, error) {
	if f.PackageID != "" {
		if _, err := parseID(f.PackageID); err != nil {
			return nil, err
		}
	}
	result, err := s.repo.Search(ctx, repositories.ReviewCriteria{
		Page:      f.Page,
		Limit:     f.Limit,
		Query:     strings.TrimSpace(f.Query),
		Rating:    f.Rating,
		MinRating: f.MinRating,
		PackageID: f.PackageID,
		Status:    f.Status,
		Sort:      f.Sort,
	})
	if err != nil {
		return nil, dbError(s.log, "search reviews", err)
	}

	out := &resp.ReviewSearchResponse{
		Items:         result.Items,
		Facets:        result.Facets,
		AverageRating: result.Average,
		Pagination:    resp.NewPageMeta(f.Page, f.Limit, result.Total),
	}
	if out.Items == nil {
		out.Items = []resp.ReviewItem{}
	}
	if out.Facets.Ratings == nil {
		out.Facets.Ratings = []resp.RatingFacet{}
	}
	if out.Facets.Statuses == nil {
		out.Facets.Statuses = []resp.StatusFacet{}
	}
	if out.Facets.Packages == nil {
		out.Facets.Packages = []resp.PackageFacet{}
	}
	return out, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*db_models.Review, error) {
	rid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	review, err := s.repo.FindByID(ctx, rid)
	if err != nil {
		return nil, dbError(s.log, "find review", err)
	}
	if review == nil {
		return nil, utils.ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) Create(ctx context.Context, r request_models.ReviewRequest) (*db_models.Review, error) {
	userID, err := parseID(r.UserID)
	if err != nil {
		return nil, err
	}
	packageID, err := parseID(r.PackageID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, dbError(s.log, "find user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, dbError(s.log, "find package", err)
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}

	review := &db_models.Review{
		PackageID: pkg.ID,
		UserID:    user.ID,
		Rating:    r.Rating,
		Title:     strings.TrimSpace(r.Title),
		Comment:   strings.TrimSpace(r.Comment),
		Status:    orDefault(r.Status, db_models.ReviewApproved),
	}

	if r.BookingID != "" {
		bookingID, err := parseID(r.BookingID)
		if err != nil {
			return nil, err
		}
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return nil, dbError(s.log, "find booking", err)
		}
		if booking == nil {
			return nil, utils.ErrBookingNotFound
		}
		if booking.UserID != user.ID || booking.PackageID != pkg.ID {
			return nil, fmt.Errorf("%w: booking %s", utils.ErrBookingMismatch, booking.ID)
		}
		review.BookingID = &booking.ID
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, dbError(s.log, "create review", err)
	}
	review.User = user
	review.Package = pkg
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, id string, r request_models.ReviewUpdateRequest) (*db_models.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r.Rating != 0 {
		review.Rating = r.Rating
	}
	if r.Title != nil {
		review.Title = strings.TrimSpace(*r.Title)
	}
	if r.Comment != nil {
		review.Comment = strings.TrimSpace(*r.Comment)
	}
	if r.Status != "" && r.Status != review.Status {
		s.log.Info("review moderated",
			zap.String("review_id", review.ID.String()),
			zap.String("from", review.Status),
			zap.String("to", r.Status))
		review.Status = r.Status
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, dbError(s.log, "update review", err)
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id string) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, review.ID); err != nil {
		return dbError(s.log, "delete review", err)
	}
	return nil
}
