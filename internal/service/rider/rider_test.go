package rider

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/Dastan7k/gig-track-system/internal/domain/models"
	"github.com/Dastan7k/gig-track-system/internal/domain/types"
	"github.com/Dastan7k/gig-track-system/pkg/uuid"
)

type stubRiderRepo struct {
	profiles   map[uuid.UUID]*models.RiderProfile
	takenPhone string
	areaLinks  map[uuid.UUID][]uuid.UUID
	platLinks  map[uuid.UUID][]uuid.UUID
}

func newStubRiderRepo() *stubRiderRepo {
	return &stubRiderRepo{
		profiles:  make(map[uuid.UUID]*models.RiderProfile),
		areaLinks: make(map[uuid.UUID][]uuid.UUID),
		platLinks: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *stubRiderRepo) Create(_ context.Context, p *models.RiderProfile) error {
	p.CreatedAt = time.Now()
	s.profiles[p.ID] = p
	return nil
}

func (s *stubRiderRepo) GetByID(_ context.Context, id uuid.UUID) (*models.RiderProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, types.ErrRiderNotFound
	}
	return p, nil
}

func (s *stubRiderRepo) IsPhoneTaken(_ context.Context, phone string) (bool, error) {
	return phone == s.takenPhone, nil
}

func (s *stubRiderRepo) LinkServiceAreas(_ context.Context, riderID uuid.UUID, ids []uuid.UUID) error {
	s.areaLinks[riderID] = ids
	return nil
}

func (s *stubRiderRepo) LinkPlatforms(_ context.Context, riderID uuid.UUID, ids []uuid.UUID) error {
	s.platLinks[riderID] = ids
	return nil
}

type stubActivityRepo struct {
	stored []models.Activity
}

func (s *stubActivityRepo) Insert(_ context.Context, a *models.Activity) error {
	a.CreatedAt = time.Now()
	s.stored = append(s.stored, *a)
	return nil
}

func (s *stubActivityRepo) ListByRider(_ context.Context, riderID uuid.UUID) ([]models.Activity, error) {
	var out []models.Activity
	for i := len(s.stored) - 1; i >= 0; i-- {
		if s.stored[i].RiderProfileID == riderID {
			out = append(out, s.stored[i])
		}
	}
	return out, nil
}

type stubCatalogRepo struct {
	areas     map[string]uuid.UUID
	platforms map[string]uuid.UUID
}

func (s *stubCatalogRepo) ListServiceAreas(_ context.Context) ([]models.ServiceArea, error) {
	return nil, nil
}

func (s *stubCatalogRepo) ListPlatforms(_ context.Context) ([]models.DeliveryPlatform, error) {
	return nil, nil
}

func (s *stubCatalogRepo) AreaIDsByNames(_ context.Context, names []string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, n := range names {
		if id, ok := s.areas[n]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *stubCatalogRepo) PlatformIDsByNames(_ context.Context, names []string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, n := range names {
		if id, ok := s.platforms[n]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

type stubProducer struct {
	published []models.ActivityRecordedMessage
	fail      bool
}

func (s *stubProducer) PublishActivityRecorded(_ context.Context, msg models.ActivityRecordedMessage) error {
	if s.fail {
		return errors.New("broker down")
	}
	s.published = append(s.published, msg)
	return nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any)        {}
func (nopLogger) Info(context.Context, string, ...any)         {}
func (nopLogger) Warn(context.Context, string, ...any)         {}
func (nopLogger) Error(context.Context, string, error, ...any) {}
func (nopLogger) GetSlogLogger() *slog.Logger                  { return slog.New(slog.DiscardHandler) }

func newTestService() (*RiderService, *stubRiderRepo, *stubActivityRepo, *stubCatalogRepo, *stubProducer) {
	riders := newStubRiderRepo()
	acts := &stubActivityRepo{}
	catalog := &stubCatalogRepo{
		areas:     map[string]uuid.UUID{"Koramangala": uuid.New(), "Indiranagar": uuid.New()},
		platforms: map[string]uuid.UUID{"Swiggy": uuid.New(), "Zomato": uuid.New()},
	}
	producer := &stubProducer{}
	svc := NewRiderService(riders, acts, catalog, producer, stubTxManager{}, nopLogger{})
	return svc, riders, acts, catalog, producer
}

func TestCreateProfile_InvalidPhone(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	p := &models.RiderProfile{Name: "Ravi", Age: 24, Phone: "+919876543210", WeeklyGoal: 5000}
	_, err := svc.CreateProfile(context.Background(), p, nil, nil)
	if !errors.Is(err, types.ErrInvalidMobile) {
		t.Fatalf("expected ErrInvalidMobile, got %v", err)
	}
}

func TestCreateProfile_PhoneTaken(t *testing.T) {
	svc, riders, _, _, _ := newTestService()
	riders.takenPhone = "9876543210"

	p := &models.RiderProfile{Name: "Ravi", Age: 24, Phone: "9876543210"}
	_, err := svc.CreateProfile(context.Background(), p, nil, nil)
	if !errors.Is(err, types.ErrPhoneAlreadyUsed) {
		t.Fatalf("expected ErrPhoneAlreadyUsed, got %v", err)
	}
}

func TestCreateProfile_UnknownArea(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	p := &models.RiderProfile{Name: "Ravi", Age: 24, Phone: "9876543210"}
	_, err := svc.CreateProfile(context.Background(), p, []string{"Atlantis"}, nil)
	if !errors.Is(err, types.ErrAreaNotFound) {
		t.Fatalf("expected ErrAreaNotFound, got %v", err)
	}
}

func TestCreateProfile_LinksAreasAndPlatforms(t *testing.T) {
	svc, riders, _, _, _ := newTestService()

	p := &models.RiderProfile{Name: "Ravi", Age: 24, Phone: "9876543210", WeeklyGoal: 5000}
	created, err := svc.CreateProfile(context.Background(), p, []string{"Koramangala"}, []string{"Swiggy", "Zomato"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected profile id to be assigned")
	}
	if got := len(riders.areaLinks[created.ID]); got != 1 {
		t.Errorf("expected 1 linked area, got %d", got)
	}
	if got := len(riders.platLinks[created.ID]); got != 2 {
		t.Errorf("expected 2 linked platforms, got %d", got)
	}
}

func TestSubmitActivity_UnknownRider(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	a := &models.Activity{RiderProfileID: uuid.New(), Earnings: 650}
	if err := svc.SubmitActivity(context.Background(), a); !errors.Is(err, types.ErrRiderNotFound) {
		t.Fatalf("expected ErrRiderNotFound, got %v", err)
	}
}

func TestSubmitActivity_StoresAndPublishes(t *testing.T) {
	svc, riders, acts, _, producer := newTestService()

	id := uuid.New()
	riders.profiles[id] = &models.RiderProfile{ID: id, Name: "Ravi"}

	a := &models.Activity{RiderProfileID: id, Date: time.Now(), Earnings: 650, HoursWorked: 8, PrimaryPlatform: "Swiggy", SatisfactionRating: 4}
	if err := svc.SubmitActivity(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(acts.stored) != 1 {
		t.Fatalf("expected 1 stored activity, got %d", len(acts.stored))
	}
	if len(producer.published) != 1 {
		t.Fatalf("expected 1 published message, got %d", len(producer.published))
	}
	if producer.published[0].ActivityID != acts.stored[0].ID {
		t.Error("published message should carry the stored activity id")
	}
}

func TestSubmitActivity_PublishFailureIsNotFatal(t *testing.T) {
	svc, riders, acts, _, producer := newTestService()
	producer.fail = true

	id := uuid.New()
	riders.profiles[id] = &models.RiderProfile{ID: id}

	a := &models.Activity{RiderProfileID: id, Date: time.Now(), Earnings: 100, PrimaryPlatform: "Zomato", SatisfactionRating: 5}
	if err := svc.SubmitActivity(context.Background(), a); err != nil {
		t.Fatalf("broker failure should not fail submission, got %v", err)
	}
	if len(acts.stored) != 1 {
		t.Fatalf("expected activity to be stored anyway")
	}
}

func TestDashboard(t *testing.T) {
	svc, riders, acts, _, _ := newTestService()

	id := uuid.New()
	riders.profiles[id] = &models.RiderProfile{ID: id, Name: "Ravi", WeeklyGoal: 2000}

	now := time.Now()
	acts.stored = []models.Activity{
		{ID: uuid.New(), RiderProfileID: id, Date: now, Earnings: 650, HoursWorked: 8, PrimaryPlatform: "Swiggy", SatisfactionRating: 4},
		{ID: uuid.New(), RiderProfileID: id, Date: now, Earnings: 350, HoursWorked: 5, PrimaryPlatform: "Zomato", SatisfactionRating: 5},
	}

	dash, err := svc.Dashboard(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dash.Weekly.TotalEarnings != 1000 {
		t.Errorf("expected weekly total 1000, got %v", dash.Weekly.TotalEarnings)
	}
	if dash.GoalProgress != 50 {
		t.Errorf("expected 50%% goal progress, got %v", dash.GoalProgress)
	}
	if dash.TopPlatform == nil || dash.TopPlatform.Platform != "Swiggy" {
		t.Errorf("expected Swiggy as top platform, got %+v", dash.TopPlatform)
	}
}
