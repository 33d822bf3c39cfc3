package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/datatypes"

	"github.com/citasya/citas-api/models"
)

func TestCreateClientValidatesFavorites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, sp, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	cl := testClient("carlos")
	cl.Favorites = datatypes.NewJSONSlice([]string{fmt.Sprint(sp.ID)})
	if err := s.CreateClient(ctx, cl, nil, nil); err != nil {
		t.Fatalf("CreateClient with valid favorite: %v", err)
	}

	bad := testClient("diana")
	bad.Favorites = datatypes.NewJSONSlice([]string{"9999"})
	if err := s.CreateClient(ctx, bad, nil, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dangling favorite, got %v", err)
	}

	garbage := testClient("elena")
	garbage.Favorites = datatypes.NewJSONSlice([]string{"ana"})
	if err := s.CreateClient(ctx, garbage, nil, nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for non-numeric favorite, got %v", err)
	}
}

func TestCreateClientValidatesSeededAppointments(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, sp, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	seed := func(specialistID uint, start, end string) []models.Appointment {
		return []models.Appointment{{
			Date:             "2024-06-03",
			StartTime:        start,
			EstimatedEndTime: end,
			SpecialistID:     specialistID,
			Subject:          "Manicura",
			Value:            25000,
		}}
	}

	ghost := testClient("carlos")
	err := s.CreateClient(ctx, ghost, nil, seed(9999, "09:00", "10:00"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for seeded appointment with missing specialist, got %v", err)
	}
	// The failed seed must roll the whole creation back.
	if _, err := s.FindAccountByUsername(ctx, "carlos"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected client creation to be rolled back, got %v", err)
	}

	outside := testClient("diana")
	if err := s.CreateClient(ctx, outside, nil, seed(sp.ID, "13:00", "14:00")); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for seeded appointment outside the schedule, got %v", err)
	}

	ok := testClient("elena")
	if err := s.CreateClient(ctx, ok, nil, seed(sp.ID, "09:00", "10:00")); err != nil {
		t.Fatalf("CreateClient with valid seeded appointment: %v", err)
	}

	// The seeded booking occupies the window like any other.
	overlapping := testClient("flor")
	if err := s.CreateClient(ctx, overlapping, nil, seed(sp.ID, "09:30", "10:30")); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for seeded appointment overlapping a booking, got %v", err)
	}
}

func TestUpdateClientPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cl := testClient("carlos")
	if err := s.CreateClient(ctx, cl, nil, nil); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	city := "Cartagena"
	updated, err := s.UpdateClient(ctx, cl.ID, ClientPatch{City: &city})
	if err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}
	if updated.City != "Cartagena" {
		t.Fatalf("expected city updated, got %s", updated.City)
	}
	if updated.Username != "carlos" || updated.Email != "carlos@example.com" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated.AccountFields)
	}

	if _, err := s.UpdateClient(ctx, 9999, ClientPatch{City: &city}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteClientLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cl := testClient("carlos")
	if err := s.CreateClient(ctx, cl, nil, nil); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	deleted, err := s.DeleteClient(ctx, cl.ID)
	if err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if deleted.Username != "carlos" {
		t.Fatalf("expected pre-deletion value, got %s", deleted.Username)
	}

	if _, err := s.GetClient(ctx, cl.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.DeleteClient(ctx, cl.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestFindAccountByUsernameSpansKinds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateSpecialist(ctx, testSpecialist("ana"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}
	if err := s.CreateClient(ctx, testClient("carlos"), nil, nil); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	acct, err := s.FindAccountByUsername(ctx, "ana")
	if err != nil {
		t.Fatalf("FindAccountByUsername: %v", err)
	}
	if acct.Role != "specialist" {
		t.Fatalf("expected specialist account, got %s", acct.Role)
	}

	acct, err = s.FindAccountByUsername(ctx, "carlos")
	if err != nil {
		t.Fatalf("FindAccountByUsername: %v", err)
	}
	if acct.Role != "client" {
		t.Fatalf("expected client account, got %s", acct.Role)
	}

	if _, err := s.FindAccountByUsername(ctx, "nadie"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
