package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	resp "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/response_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/repositories"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

// Allowed moves between booking states. Terminal states have no entry.
var bookingTransitions = map[string][]string{
	db_models.BookingPending:   {db_models.BookingConfirmed, db_models.BookingCancelled},
	db_models.BookingConfirmed: {db_models.BookingCompleted, db_models.BookingCancelled},
}

var paymentTransitions = map[string][]string{
	db_models.PaymentPending: {db_models.PaymentPaid, db_models.PaymentFailed},
	db_models.PaymentFailed:  {db_models.PaymentPending, db_models.PaymentPaid},
	db_models.PaymentPaid:    {db_models.PaymentRefunded},
}

type BookingServiceInterface interface {
	List(ctx context.Context, filter request_models.BookingFilter) (*resp.Paged[db_models.Booking], error)
	Get(ctx context.Context, id string) (*db_models.Booking, error)
	Create(ctx context.Context, request request_models.BookingRequest) (*db_models.Booking, error)
	Update(ctx context.Context, id string, request request_models.BookingUpdateRequest) (*db_models.Booking, error)
	Delete(ctx context.Context, id string) error
}

type BookingService struct {
	repo        repositories.BookingRepository
	userRepo    repositories.UserRepository
	packageRepo repositories.PackageRepository
	mail        IMailService
	loc         *time.Location
	log         *zap.Logger
	now         func() time.Time
}

func NewBookingService(
	repo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	packageRepo repositories.PackageRepository,
	mail IMailService,
	cfg *config.Config,
	log *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		repo:        repo,
		userRepo:    userRepo,
		packageRepo: packageRepo,
		mail:        mail,
		loc:         utils.LoadLocation(cfg.App.Timezone),
		log:         log.Named("bookings"),
		now:         time.Now,
	}
}

func (s *BookingService) List(ctx context.Context, filter request_models.BookingFilter) (*resp.Paged[db_models.Booking], error) {
	criteria, err := s.criteria(filter)
	if err != nil {
		return nil, err
	}
	bookings, total, err := s.repo.List(ctx, repositories.ListQuery{
		Page:  filter.Page,
		Limit: filter.Limit,
		Scopes: []func(*gorm.DB) *gorm.DB{
			repositories.BookingSearchScope(strings.TrimSpace(filter.Query)),
			repositories.BookingFilterScope(criteria),
		},
	})
	if err != nil {
		return nil, dbError(s.log, "list bookings", err)
	}
	return resp.NewPaged(bookings, filter.Page, filter.Limit, total), nil
}

func (s *BookingService) criteria(f request_models.BookingFilter) (repositories.BookingCriteria, error) {
	c := repositories.BookingCriteria{Status: f.Status, PaymentStatus: f.PaymentStatus}
	if f.PackageID != "" {
		id, err := parseID(f.PackageID)
		if err != nil {
			return c, err
		}
		c.PackageID = &id
	}
	if f.UserID != "" {
		id, err := parseID(f.UserID)
		if err != nil {
			return c, err
		}
		c.UserID = &id
	}
	if f.From != "" {
		from, err := utils.ParseDate(f.From, s.loc)
		if err != nil {
			return c, fmt.Errorf("%w: from", utils.ErrInvalidDateRange)
		}
		c.From = &from
	}
	if f.To != "" {
		to, err := utils.ParseDate(f.To, s.loc)
		if err != nil {
			return c, fmt.Errorf("%w: to", utils.ErrInvalidDateRange)
		}
		c.To = &to
	}
	if c.From != nil && c.To != nil && c.To.Before(*c.From) {
		return c, fmt.Errorf("%w: from is after to", utils.ErrInvalidDateRange)
	}
	return c, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*db_models.Booking, error) {
	bid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	booking, err := s.repo.FindByID(ctx, bid)
	if err != nil {
		return nil, dbError(s.log, "find booking", err)
	}
	if booking == nil {
		return nil, utils.ErrBookingNotFound
	}
	return booking, nil
}

func (s *BookingService) Create(ctx context.Context, r request_models.BookingRequest) (*db_models.Booking, error) {
	user, err := s.findUser(ctx, r.UserID)
	if err != nil {
		return nil, err
	}
	pkg, err := s.findPackage(ctx, r.PackageID)
	if err != nil {
		return nil, err
	}
	if err := checkTravelers(r.Travelers, pkg); err != nil {
		return nil, err
	}
	travelDate, err := utils.ParseDate(r.TravelDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: travel_date", utils.ErrInvalidDateRange)
	}
	meta, err := marshalMeta(r.PaymentMeta)
	if err != nil {
		return nil, err
	}

	booking := &db_models.Booking{
		UserID:          user.ID,
		PackageID:       pkg.ID,
		TravelDate:      travelDate,
		Travelers:       r.Travelers,
		TotalAmount:     pkg.DiscountedPrice() * int64(r.Travelers),
		Currency:        pkg.Currency,
		Status:          db_models.BookingPending,
		PaymentStatus:   db_models.PaymentPending,
		PaymentMethod:   strings.TrimSpace(r.PaymentMethod),
		ContactName:     orDefault(strings.TrimSpace(r.ContactName), user.Name),
		ContactEmail:    orDefault(normalizeEmail(r.ContactEmail), user.Email),
		ContactPhone:    orDefault(strings.TrimSpace(r.ContactPhone), user.Phone),
		SpecialRequests: r.SpecialRequests,
		PaymentMeta:     meta,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, dbError(s.log, "create booking", err)
	}
	booking.User = user
	booking.Package = pkg
	s.log.Info("booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("package_id", pkg.ID.String()),
		zap.Int64("total_amount", booking.TotalAmount))
	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id string, r request_models.BookingUpdateRequest) (*db_models.Booking, error) {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	prevStatus := booking.Status

	if r.Status != "" && r.Status != booking.Status {
		if !allowed(bookingTransitions, booking.Status, r.Status) {
			return nil, fmt.Errorf("%w: %s to %s", utils.ErrInvalidStatus, booking.Status, r.Status)
		}
		booking.Status = r.Status
	}
	if r.PaymentStatus != "" && r.PaymentStatus != booking.PaymentStatus {
		if !allowed(paymentTransitions, booking.PaymentStatus, r.PaymentStatus) {
			return nil, fmt.Errorf("%w: %s to %s", utils.ErrInvalidPaymentState, booking.PaymentStatus, r.PaymentStatus)
		}
		booking.PaymentStatus = r.PaymentStatus
		if r.PaymentStatus == db_models.PaymentPaid {
			paidAt := s.now().Unix()
			booking.PaidAt = &paidAt
		}
	}

	if r.TravelDate != "" {
		travelDate, err := utils.ParseDate(r.TravelDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: travel_date", utils.ErrInvalidDateRange)
		}
		booking.TravelDate = travelDate
	}
	if r.Travelers > 0 && r.Travelers != booking.Travelers {
		if booking.Package == nil {
			if booking.Package, err = s.findPackage(ctx, booking.PackageID.String()); err != nil {
				return nil, err
			}
		}
		if err := checkTravelers(r.Travelers, booking.Package); err != nil {
			return nil, err
		}
		booking.Travelers = r.Travelers
		booking.TotalAmount = booking.Package.DiscountedPrice() * int64(r.Travelers)
	}

	setIfPresent(&booking.PaymentMethod, r.PaymentMethod)
	setIfPresent(&booking.PaymentReference, r.PaymentReference)
	setIfPresent(&booking.ContactName, r.ContactName)
	setIfPresent(&booking.ContactPhone, r.ContactPhone)
	setIfPresent(&booking.SpecialRequests, r.SpecialRequests)
	if r.ContactEmail != nil {
		booking.ContactEmail = normalizeEmail(*r.ContactEmail)
	}
	if r.PaymentMeta != nil {
		if booking.PaymentMeta, err = marshalMeta(r.PaymentMeta); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, dbError(s.log, "update booking", err)
	}

	if booking.Status != prevStatus {
		s.log.Info("booking status changed",
			zap.String("booking_id", booking.ID.String()),
			zap.String("from", prevStatus),
			zap.String("to", booking.Status))
		s.notify(ctx, booking)
	}
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, booking.ID); err != nil {
		return dbError(s.log, "delete booking", err)
	}
	return nil
}

// notify mails the contact about confirmation or cancellation. A failed
// send is logged and never fails the update.
func (s *BookingService) notify(ctx context.Context, b *db_models.Booking) {
	if b.Status != db_models.BookingConfirmed && b.Status != db_models.BookingCancelled {
		return
	}
	if !s.mail.Enabled() {
		return
	}
	if err := s.mail.SendBookingStatusMail(ctx, b); err != nil {
		s.log.Warn("booking notification failed",
			zap.String("booking_id", b.ID.String()),
			zap.String("status", b.Status),
			zap.Error(err))
	}
}

func (s *BookingService) findUser(ctx context.Context, id string) (*db_models.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, dbError(s.log, "find user", err)
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *BookingService) findPackage(ctx context.Context, id string) (*db_models.Package, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packageRepo.FindByID(ctx, pid)
	if err != nil {
		return nil, dbError(s.log, "find package", err)
	}
	if pkg == nil {
		return nil, utils.ErrPackageNotFound
	}
	return pkg, nil
}

func checkTravelers(n int, pkg *db_models.Package) error {
	if n < 1 {
		return utils.ErrInvalidTravelers
	}
	if pkg.MaxGroupSize > 0 && n > pkg.MaxGroupSize {
		return fmt.Errorf("%w: at most %d for this package", utils.ErrInvalidTravelers, pkg.MaxGroupSize)
	}
	return nil
}

func allowed(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func setIfPresent(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func marshalMeta(meta map[string]interface{}) (datatypes.JSON, error) {
	if len(meta) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode payment meta: %w", err)
	}
	return datatypes.JSON(raw), nil
}
