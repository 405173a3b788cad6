package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/mocks"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/db_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/models/request_models"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/utils"
)

type bookingFixture struct {
	repo     *mocks.BookingRepo
	users    *mocks.UserRepo
	packages *mocks.PackageRepo
	mail     *mocks.MailService
	svc      *BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		repo:     new(mocks.BookingRepo),
		users:    new(mocks.UserRepo),
		packages: new(mocks.PackageRepo),
		mail:     new(mocks.MailService),
	}
	f.svc = NewBookingService(f.repo, f.users, f.packages, f.mail, testConfig(), zap.NewNop()).(*BookingService)
	f.svc.now = func() time.Time { return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC) }
	return f
}

func bookingPackage() *db_models.Package {
	p := &db_models.Package{Title: "Golden Jaisalmer", Price: 1000000, DiscountPercent: 10, MaxGroupSize: 4, Currency: "INR"}
	p.ID = uuid.New()
	return p
}

func bookingUser() *db_models.User {
	u := &db_models.User{Name: "Ravi", Email: "ravi@example.com", Phone: "+91 90000 00000", Role: db_models.RoleUser}
	u.ID = uuid.New()
	return u
}

func TestBookingService_Create(t *testing.T) {
	user, pkg := bookingUser(), bookingPackage()

	t.Run("prices with the discount and defaults contact details", func(t *testing.T) {
		f := newBookingFixture()
		f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.packages.On("FindByID", mock.Anything, pkg.ID).Return(pkg, nil)
		f.repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		b, err := f.svc.Create(context.Background(), request_models.BookingRequest{
			UserID:      user.ID.String(),
			PackageID:   pkg.ID.String(),
			TravelDate:  "2024-12-20",
			Travelers:   3,
			PaymentMeta: map[string]interface{}{"gateway": "razorpay"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2700000), b.TotalAmount)
		assert.Equal(t, db_models.BookingPending, b.Status)
		assert.Equal(t, db_models.PaymentPending, b.PaymentStatus)
		assert.Equal(t, "Ravi", b.ContactName)
		assert.Equal(t, "ravi@example.com", b.ContactEmail)
		assert.Equal(t, "2024-12-20", b.TravelDate.Format("2006-01-02"))
		assert.JSONEq(t, `{"gateway":"razorpay"}`, string(b.PaymentMeta))
	})

	t.Run("group size is enforced", func(t *testing.T) {
		f := newBookingFixture()
		f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.packages.On("FindByID", mock.Anything, pkg.ID).Return(pkg, nil)

		_, err := f.svc.Create(context.Background(), request_models.BookingRequest{
			UserID: user.ID.String(), PackageID: pkg.ID.String(), TravelDate: "2024-12-20", Travelers: 5,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidTravelers)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing package", func(t *testing.T) {
		f := newBookingFixture()
		f.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.packages.On("FindByID", mock.Anything, pkg.ID).Return(nil, nil)

		_, err := f.svc.Create(context.Background(), request_models.BookingRequest{
			UserID: user.ID.String(), PackageID: pkg.ID.String(), TravelDate: "2024-12-20", Travelers: 1,
		})
		assert.ErrorIs(t, err, utils.ErrPackageNotFound)
	})
}

func existingBooking(status, payment string) *db_models.Booking {
	b := &db_models.Booking{
		Status:        status,
		PaymentStatus: payment,
		Travelers:     2,
		TotalAmount:   1800000,
		ContactEmail:  "ravi@example.com",
		Package:       bookingPackage(),
	}
	b.ID = uuid.New()
	b.PackageID = b.Package.ID
	return b
}

func TestBookingService_UpdateTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		to      string
		wantErr error
	}{
		{"pending to confirmed", db_models.BookingPending, db_models.BookingConfirmed, nil},
		{"pending to cancelled", db_models.BookingPending, db_models.BookingCancelled, nil},
		{"confirmed to completed", db_models.BookingConfirmed, db_models.BookingCompleted, nil},
		{"pending to completed", db_models.BookingPending, db_models.BookingCompleted, utils.ErrInvalidStatus},
		{"cancelled is terminal", db_models.BookingCancelled, db_models.BookingConfirmed, utils.ErrInvalidStatus},
		{"completed is terminal", db_models.BookingCompleted, db_models.BookingCancelled, utils.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture()
			b := existingBooking(tc.from, db_models.PaymentPending)
			f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
			f.repo.On("Update", mock.Anything, b).Return(nil).Maybe()
			f.mail.On("Enabled").Return(false).Maybe()

			_, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{Status: tc.to})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, b.Status)
		})
	}
}

func TestBookingService_PaymentTransitions(t *testing.T) {
	t.Run("paid stamps paid_at", func(t *testing.T) {
		f := newBookingFixture()
		b := existingBooking(db_models.BookingConfirmed, db_models.PaymentPending)
		f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
		f.repo.On("Update", mock.Anything, b).Return(nil)

		ref := " pay_123 "
		out, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{
			PaymentStatus:    db_models.PaymentPaid,
			PaymentReference: &ref,
		})
		require.NoError(t, err)
		require.NotNil(t, out.PaidAt)
		assert.Equal(t, f.svc.now().Unix(), *out.PaidAt)
		assert.Equal(t, "pay_123", out.PaymentReference)
		f.mail.AssertNotCalled(t, "SendBookingStatusMail", mock.Anything, mock.Anything)
	})

	t.Run("refund needs a paid booking", func(t *testing.T) {
		f := newBookingFixture()
		b := existingBooking(db_models.BookingConfirmed, db_models.PaymentPending)
		f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)

		_, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{PaymentStatus: db_models.PaymentRefunded})
		assert.ErrorIs(t, err, utils.ErrInvalidPaymentState)
	})
}

func TestBookingService_UpdateRecomputesTotal(t *testing.T) {
	f := newBookingFixture()
	b := existingBooking(db_models.BookingPending, db_models.PaymentPending)
	f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	f.repo.On("Update", mock.Anything, b).Return(nil)

	out, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{Travelers: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(3600000), out.TotalAmount)

	_, err = f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{Travelers: 9})
	assert.ErrorIs(t, err, utils.ErrInvalidTravelers)
}

func TestBookingService_NotifiesOnConfirmation(t *testing.T) {
	t.Run("sends the mail", func(t *testing.T) {
		f := newBookingFixture()
		b := existingBooking(db_models.BookingPending, db_models.PaymentPending)
		f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
		f.repo.On("Update", mock.Anything, b).Return(nil)
		f.mail.On("Enabled").Return(true)
		f.mail.On("SendBookingStatusMail", mock.Anything, b).Return(nil)

		_, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{Status: db_models.BookingConfirmed})
		require.NoError(t, err)
		f.mail.AssertExpectations(t)
	})

	t.Run("mail failure does not fail the update", func(t *testing.T) {
		f := newBookingFixture()
		b := existingBooking(db_models.BookingConfirmed, db_models.PaymentPaid)
		f.repo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
		f.repo.On("Update", mock.Anything, b).Return(nil)
		f.mail.On("Enabled").Return(true)
		f.mail.On("SendBookingStatusMail", mock.Anything, b).Return(errors.New("smtp timeout"))

		out, err := f.svc.Update(context.Background(), b.ID.String(), request_models.BookingUpdateRequest{Status: db_models.BookingCancelled})
		require.NoError(t, err)
		assert.Equal(t, db_models.BookingCancelled, out.Status)
	})
}

func TestBookingService_ListCriteria(t *testing.T) {
	f := newBookingFixture()

	_, err := f.svc.List(context.Background(), request_models.BookingFilter{From: "2024-06-10", To: "2024-06-01"})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	f.repo.On("List", mock.Anything, mock.Anything).Return([]db_models.Booking{}, int64(0), nil)
	out, err := f.svc.List(context.Background(), request_models.BookingFilter{
		ListFilter: request_models.ListFilter{Page: 1, Limit: 10},
		Status:     db_models.BookingPending,
		From:       "2024-06-01",
		To:         "2024-06-10",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.NotNil(t, out.Items)
}
