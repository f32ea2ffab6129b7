package services

import (
	"context"
	"testing"
	"time"

	"courtside/internal/models"
	"courtside/internal/repositories/interfaces"
	"courtside/internal/utils"
	"courtside/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCourtRepo struct {
	courts map[primitive.ObjectID]*models.Court
}

func (f *fakeCourtRepo) Create(ctx context.Context, court *models.Court) error { return nil }

func (f *fakeCourtRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, interfaces.ErrCourtNotFound
	}
	return court, nil
}

func (f *fakeCourtRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	return nil
}

func (f *fakeCourtRepo) GetBySlug(ctx context.Context, slug string) (*models.Court, error) {
	for _, court := range f.courts {
		if court.Slug == slug {
			return court, nil
		}
	}
	return nil, interfaces.ErrCourtNotFound
}

func (f *fakeCourtRepo) GetActive(ctx context.Context) ([]*models.Court, error) { return nil, nil }
func (f *fakeCourtRepo) GetAll(ctx context.Context) ([]*models.Court, error)    { return nil, nil }
func (f *fakeCourtRepo) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[primitive.ObjectID]*models.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, interfaces.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	var out []*models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return interfaces.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func newBookingFixture(t *testing.T, promoRepo *fakePromoRepo) (*BookingService, *fakeBookingRepo, primitive.ObjectID) {
	t.Helper()

	courtID := primitive.NewObjectID()
	courtRepo := &fakeCourtRepo{courts: map[primitive.ObjectID]*models.Court{
		courtID: {
			ID:         courtID,
			Name:       "Center Court",
			Slug:       "center-court",
			HourlyRate: 30000,
			DailyRate:  140000,
			WeeklyRate: 800000,
			IsActive:   true,
		},
	}}

	bookingRepo := newFakeBookingRepo()
	promoSvc := NewPromoService(promoRepo, testLogger(t))
	svc := NewBookingService(bookingRepo, courtRepo, promoSvc, nil, nil, testLogger(t))

	return svc, bookingRepo, courtID
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(utils.DateLayout)
}

func bookingRequest(courtID primitive.ObjectID) *validators.BookingRequest {
	return &validators.BookingRequest{
		CourtID:       courtID.Hex(),
		Plan:          "hourly",
		StartDate:     futureDate(),
		StartTime:     "10:00",
		Hours:         2,
		CustomerName:  "Dewi Lestari",
		CustomerPhone: "081234567890",
		CustomerEmail: "dewi@example.com",
	}
}

func TestCreateBookingPricesServerSide(t *testing.T) {
	svc, _, courtID := newBookingFixture(t, &fakePromoRepo{})

	booking, err := svc.Create(context.Background(), bookingRequest(courtID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.Status != models.BookingStatusPending {
		t.Errorf("Status = %q, want pending", booking.Status)
	}
	if booking.BaseAmount != 60000 {
		t.Errorf("BaseAmount = %d, want 60000", booking.BaseAmount)
	}
	if booking.TotalAmount != 60000 {
		t.Errorf("TotalAmount = %d, want 60000", booking.TotalAmount)
	}
	if booking.CourtName != "Center Court" {
		t.Errorf("CourtName = %q, want snapshot of court name", booking.CourtName)
	}
}

func TestCreateBookingClampsNegativeHours(t *testing.T) {
	svc, _, courtID := newBookingFixture(t, &fakePromoRepo{})

	req := bookingRequest(courtID)
	req.Hours = -3

	booking, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.Hours != 1 {
		t.Errorf("Hours = %d, want clamped to 1", booking.Hours)
	}
	if booking.BaseAmount != 30000 {
		t.Errorf("BaseAmount = %d, want one clamped hour", booking.BaseAmount)
	}
}

func TestCreateBookingAppliesPromoAtSubmission(t *testing.T) {
	promoID := primitive.NewObjectID()
	promoRepo := &fakePromoRepo{promos: map[string]*models.Promo{
		"SUMMER10": {ID: promoID, Code: "SUMMER10", Type: models.PromoTypePercentage, Value: 10, IsActive: true},
	}}
	svc, _, courtID := newBookingFixture(t, promoRepo)

	req := bookingRequest(courtID)
	req.PromoCode = "summer10"

	booking, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.DiscountAmount != 6000 {
		t.Errorf("DiscountAmount = %d, want 6000", booking.DiscountAmount)
	}
	if booking.TotalAmount != 54000 {
		t.Errorf("TotalAmount = %d, want 54000", booking.TotalAmount)
	}
	if booking.PromoID == nil || *booking.PromoID != promoID {
		t.Error("expected promo id to be attached")
	}
	if booking.PromoCode != "SUMMER10" {
		t.Errorf("PromoCode = %q, want normalized code", booking.PromoCode)
	}
}

func TestCreateBookingDropsStalePromo(t *testing.T) {
	// The code was valid when quoted, but the redemption limit filled up
	// before submission. The booking proceeds at full price.
	promoRepo := &fakePromoRepo{promos: map[string]*models.Promo{
		"LIMITED": {Code: "LIMITED", Type: models.PromoTypeFixed, Value: 5000, IsActive: true, MaxRedemptions: 1, RedeemedCount: 1},
	}}
	svc, _, courtID := newBookingFixture(t, promoRepo)

	req := bookingRequest(courtID)
	req.PromoCode = "LIMITED"

	booking, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.PromoID != nil || booking.PromoCode != "" {
		t.Error("stale promo should be dropped from the booking")
	}
	if booking.TotalAmount != 60000 {
		t.Errorf("TotalAmount = %d, want full price 60000", booking.TotalAmount)
	}
}

func TestCreateBookingRejectsInactiveCourt(t *testing.T) {
	svc, _, courtID := newBookingFixture(t, &fakePromoRepo{})
	court, _ := svc.courtRepo.GetByID(context.Background(), courtID)
	court.IsActive = false

	if _, err := svc.Create(context.Background(), bookingRequest(courtID)); err != ErrCourtUnavailable {
		t.Fatalf("err = %v, want ErrCourtUnavailable", err)
	}
}

func TestCreateBookingValidationFailureHasNoSideEffects(t *testing.T) {
	svc, repo, courtID := newBookingFixture(t, &fakePromoRepo{})

	req := bookingRequest(courtID)
	req.CustomerEmail = ""

	if _, err := svc.Create(context.Background(), req); err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.bookings) != 0 {
		t.Error("a rejected submission must not persist anything")
	}
}

func TestUpdateStatusRedeemsPromoOnConfirm(t *testing.T) {
	promoID := primitive.NewObjectID()
	promoRepo := &fakePromoRepo{promos: map[string]*models.Promo{
		"SUMMER10": {ID: promoID, Code: "SUMMER10", Type: models.PromoTypePercentage, Value: 10, IsActive: true},
	}}
	svc, _, courtID := newBookingFixture(t, promoRepo)

	req := bookingRequest(courtID)
	req.PromoCode = "SUMMER10"
	booking, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, models.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.BookingStatusConfirmed {
		t.Errorf("Status = %q, want confirmed", updated.Status)
	}
	if len(promoRepo.incremented) != 1 {
		t.Fatalf("incremented %d times, want 1", len(promoRepo.incremented))
	}

	// Confirming an already confirmed booking must not redeem again.
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, models.BookingStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus repeat: %v", err)
	}
	if len(promoRepo.incremented) != 1 {
		t.Errorf("incremented %d times after repeat confirm, want 1", len(promoRepo.incremented))
	}
}

func TestUpdateStatusReopen(t *testing.T) {
	svc, _, courtID := newBookingFixture(t, &fakePromoRepo{})

	booking, err := svc.Create(context.Background(), bookingRequest(courtID))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, models.BookingStatusRejected); err != nil {
		t.Fatalf("reject: %v", err)
	}
	reopened, err := svc.UpdateStatus(context.Background(), booking.ID, models.BookingStatusPending)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Status != models.BookingStatusPending {
		t.Errorf("Status = %q, want pending", reopened.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newBookingFixture(t, &fakePromoRepo{})

	if _, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), "archived"); err != ErrInvalidStatus {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
