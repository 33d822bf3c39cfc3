package store

import (
	"context"
	"errors"
	"testing"

	"github.com/citasya/citas-api/models"
)

func TestCreateAndCountSpecialists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateSpecialist(ctx, testSpecialist("ana"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}
	if err := s.CreateSpecialist(ctx, testSpecialist("berta"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	count, err := s.CountSpecialists(ctx)
	if err != nil {
		t.Fatalf("CountSpecialists: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 specialists, got %d", count)
	}
}

func TestCreateSpecialistDuplicateUsername(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateSpecialist(ctx, testSpecialist("ana"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	dup := testSpecialist("ana")
	dup.Email = "other@example.com"
	err := s.CreateSpecialist(ctx, dup, nil, nil)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
}

func TestCreateSpecialistDuplicateUsernameAcrossKinds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateClient(ctx, testClient("ana"), nil, nil); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	sp := testSpecialist("ana")
	sp.Email = "other@example.com"
	if err := s.CreateSpecialist(ctx, sp, nil, nil); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict across account kinds, got %v", err)
	}
}

func TestCreateSpecialistValidatesSeededRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	cl := testClient("carlos")
	if err := s.CreateClient(ctx, cl, nil, nil); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	badReview := []models.Review{{UserID: 9999, Title: "x", Text: "y", Rating: 4}}
	err := s.CreateSpecialist(ctx, testSpecialist("ana"), badReview, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for seeded review with missing reviewer, got %v", err)
	}

	badAppointment := []models.Appointment{{
		Date:             "2024-06-03",
		StartTime:        "09:00",
		EstimatedEndTime: "10:00",
		ClientID:         9999,
		Subject:          "Manicura",
		Value:            25000,
	}}
	err = s.CreateSpecialist(ctx, testSpecialist("ana"), nil, badAppointment)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for seeded appointment with missing client, got %v", err)
	}
	if _, err := s.FindSpecialistByName(ctx, "ana"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected specialist creation to be rolled back, got %v", err)
	}

	goodReview := []models.Review{{UserID: cl.ID, Title: "Excelente", Text: "Muy bien", Rating: 4.5}}
	goodAppointment := []models.Appointment{{
		Date:             "2024-06-03",
		StartTime:        "09:00",
		EstimatedEndTime: "10:00",
		ClientID:         cl.ID,
		Subject:          "Manicura",
		Value:            25000,
	}}
	if err := s.CreateSpecialist(ctx, testSpecialist("ana"), goodReview, goodAppointment); err != nil {
		t.Fatalf("CreateSpecialist with valid seeds: %v", err)
	}
	sp, err := s.FindSpecialistByName(ctx, "ana")
	if err != nil {
		t.Fatalf("FindSpecialistByName: %v", err)
	}
	if len(sp.Reviews) != 1 || len(sp.Appointments) != 1 {
		t.Fatalf("expected seeded rows attached, got %d reviews, %d appointments",
			len(sp.Reviews), len(sp.Appointments))
	}
}

func TestFindSpecialistByNameCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateSpecialist(ctx, testSpecialist("Ana"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	sp, err := s.FindSpecialistByName(ctx, "aNA")
	if err != nil {
		t.Fatalf("FindSpecialistByName: %v", err)
	}
	if sp.Username != "Ana" {
		t.Fatalf("expected Ana, got %s", sp.Username)
	}

	if _, err := s.FindSpecialistByName(ctx, "nadie"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindSpecialistsFilterIsUnion(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	manicurist := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, manicurist, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}
	hairdresser := testSpecialist("berta")
	hairdresser.Specialtys = []models.Specialty{models.SpecialtyPeluqueria}
	if err := s.CreateSpecialist(ctx, hairdresser, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	all, err := s.FindSpecialists(ctx, nil)
	if err != nil {
		t.Fatalf("FindSpecialists: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected every specialist without a filter, got %d", len(all))
	}

	matched, err := s.FindSpecialists(ctx, []models.Specialty{models.SpecialtyManicura, models.SpecialtyPedicura})
	if err != nil {
		t.Fatalf("FindSpecialists: %v", err)
	}
	if len(matched) != 1 || matched[0].Username != "ana" {
		t.Fatalf("expected only ana to match, got %v", matched)
	}
}

func TestToggleSpecialistHighlightIsItsOwnInverse(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, sp, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	once, err := s.ToggleSpecialistHighlight(ctx, sp.ID)
	if err != nil {
		t.Fatalf("ToggleSpecialistHighlight: %v", err)
	}
	if !once.Highlighted {
		t.Fatalf("expected highlighted after first toggle")
	}

	twice, err := s.ToggleSpecialistHighlight(ctx, sp.ID)
	if err != nil {
		t.Fatalf("ToggleSpecialistHighlight: %v", err)
	}
	if twice.Highlighted {
		t.Fatalf("expected original value after second toggle")
	}

	if _, err := s.ToggleSpecialistHighlight(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing specialist, got %v", err)
	}
}

func TestChangeSpecialtysReplacesSet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.CreateSpecialist(ctx, testSpecialist("ana"), nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	want := []models.Specialty{models.SpecialtyPeluqueria, models.SpecialtyPedicura}
	updated, err := s.ChangeSpecialtys(ctx, "ana", want)
	if err != nil {
		t.Fatalf("ChangeSpecialtys: %v", err)
	}
	if len(updated.Specialtys) != 2 {
		t.Fatalf("expected replacement set of 2, got %v", updated.Specialtys)
	}
	for i, sp := range want {
		if updated.Specialtys[i] != sp {
			t.Fatalf("expected %v at %d, got %v", sp, i, updated.Specialtys[i])
		}
	}

	// The query after the change must observe exactly the replacement.
	found, err := s.FindSpecialistByName(ctx, "ana")
	if err != nil {
		t.Fatalf("FindSpecialistByName: %v", err)
	}
	if len(found.Specialtys) != 2 {
		t.Fatalf("expected persisted replacement, got %v", found.Specialtys)
	}

	if _, err := s.ChangeSpecialtys(ctx, "nadie", want); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown name, got %v", err)
	}
}

func TestUpdateSpecialistPartial(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, sp, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	city := "Cali"
	highlighted := true
	updated, err := s.UpdateSpecialist(ctx, sp.ID, SpecialistPatch{City: &city, Highlighted: &highlighted})
	if err != nil {
		t.Fatalf("UpdateSpecialist: %v", err)
	}
	if updated.City != "Cali" {
		t.Fatalf("expected city updated, got %s", updated.City)
	}
	if !updated.Highlighted {
		t.Fatalf("expected highlighted updated")
	}
	if updated.Username != "ana" || updated.Phone != "555-0100" {
		t.Fatalf("expected untouched fields preserved, got %+v", updated.AccountFields)
	}

	if _, err := s.UpdateSpecialist(ctx, 9999, SpecialistPatch{City: &city}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestDeleteSpecialistReturnsLastValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sp := testSpecialist("ana")
	if err := s.CreateSpecialist(ctx, sp, nil, nil); err != nil {
		t.Fatalf("CreateSpecialist: %v", err)
	}

	deleted, err := s.DeleteSpecialist(ctx, sp.ID)
	if err != nil {
		t.Fatalf("DeleteSpecialist: %v", err)
	}
	if deleted.Username != "ana" {
		t.Fatalf("expected pre-deletion value, got %s", deleted.Username)
	}

	if _, err := s.GetSpecialist(ctx, sp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.DeleteSpecialist(ctx, sp.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
