package services

import (
	"testing"
	"time"

	"citizens-voice-http-service/internal/domain/models"
)

func seedStruggles(t *testing.T, svc InterfaceStruggleService) {
	t.Helper()
	seed := []models.Struggle{
		{Headline: "Potholes on Sheriff Street", Category: models.CategoryInfrastructure, Location: "Georgetown"},
		{Headline: "Clinic without supplies", Category: models.CategoryHealth, Location: "Bartica, Region 7"},
		{Headline: "Overcrowded classrooms", Category: models.CategoryEducation, Location: "Georgetown"},
	}
	for i := range seed {
		if err := svc.CreateStruggle(&seed[i]); err != nil {
			t.Fatalf("CreateStruggle: %v", err)
		}
		// distinct creation instants so the feed order is deterministic
		time.Sleep(2 * time.Millisecond)
	}
}

func TestGetStrugglesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewStruggleService(db, newTestConfig())
	seedStruggles(t, svc)

	struggles, err := svc.GetStruggles("", "")
	if err != nil {
		t.Fatalf("GetStruggles: %v", err)
	}
	if len(struggles) != 3 {
		t.Fatalf("got %d struggles, want 3", len(struggles))
	}
	for i := 1; i < len(struggles); i++ {
		if struggles[i].CreatedAt.After(struggles[i-1].CreatedAt) {
			t.Errorf("feed not ordered newest first at index %d", i)
		}
	}
	if struggles[0].Headline != "Overcrowded classrooms" {
		t.Errorf("newest struggle = %q", struggles[0].Headline)
	}
}

func TestGetStrugglesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewStruggleService(db, newTestConfig())
	seedStruggles(t, svc)

	byCategory, err := svc.GetStruggles(models.CategoryHealth, "")
	if err != nil {
		t.Fatalf("GetStruggles: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Category != models.CategoryHealth {
		t.Errorf("category filter returned %d items", len(byCategory))
	}

	// "All" disables the category filter
	all, err := svc.GetStruggles("All", "")
	if err != nil {
		t.Fatalf("GetStruggles: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("All category returned %d items, want 3", len(all))
	}

	byDistrict, err := svc.GetStruggles("", "Georgetown")
	if err != nil {
		t.Fatalf("GetStruggles: %v", err)
	}
	if len(byDistrict) != 2 {
		t.Errorf("district filter returned %d items, want 2", len(byDistrict))
	}
}

func TestCreateStruggleLocationDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewStruggleService(db, newTestConfig())

	struggle := models.Struggle{Headline: "No running water", Category: models.CategoryHousing}
	if err := svc.CreateStruggle(&struggle); err != nil {
		t.Fatalf("CreateStruggle: %v", err)
	}
	if struggle.Location != models.UnknownLocation {
		t.Errorf("location = %q, want %q", struggle.Location, models.UnknownLocation)
	}

	if err := svc.CreateStruggle(&models.Struggle{}); err == nil {
		t.Error("expected error for missing headline")
	}
}

func TestSetVerified(t *testing.T) {
	db := newTestDB(t)
	svc := NewStruggleService(db, newTestConfig())

	struggle := models.Struggle{Headline: "Sea defence breach", Category: models.CategoryInfrastructure, Location: "Region 2"}
	if err := svc.CreateStruggle(&struggle); err != nil {
		t.Fatalf("CreateStruggle: %v", err)
	}

	updated, err := svc.SetVerified(struggle.ID, true)
	if err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	if !updated.Verified {
		t.Error("struggle not verified")
	}

	updated, err = svc.SetVerified(struggle.ID, false)
	if err != nil {
		t.Fatalf("SetVerified: %v", err)
	}
	if updated.Verified {
		t.Error("verification flag not cleared")
	}

	if _, err := svc.SetVerified(9999, true); err == nil {
		t.Error("expected error for unknown struggle")
	}
}
