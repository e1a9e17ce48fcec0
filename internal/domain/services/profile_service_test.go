package services

import (
	"testing"

	"citizens-voice-http-service/internal/domain/models"
)

func TestGetOrCreateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, newTestConfig())
	user := createUser(t, db, "c@example.gy")

	profile, err := svc.GetOrCreateProfile(user.ID)
	if err != nil {
		t.Fatalf("GetOrCreateProfile: %v", err)
	}
	if profile.UserID != user.ID {
		t.Errorf("profile user = %d", profile.UserID)
	}
	if profile.DisplayName != user.DisplayName {
		t.Errorf("default display name = %q, want %q", profile.DisplayName, user.DisplayName)
	}

	// second access returns the same row, not another default
	again, err := svc.GetOrCreateProfile(user.ID)
	if err != nil {
		t.Fatalf("second GetOrCreateProfile: %v", err)
	}
	if again.ID != profile.ID {
		t.Error("auto-create is not idempotent")
	}

	var count int64
	db.Model(&models.UserProfile{}).Count(&count)
	if count != 1 {
		t.Errorf("profile rows = %d, want 1", count)
	}

	if _, err := svc.GetOrCreateProfile(9999); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(db, newTestConfig())
	user := createUser(t, db, "c@example.gy")

	updated, err := svc.UpdateProfile(user.ID, map[string]interface{}{
		"display_name": "New Name",
		"district":     "Region 4",
		"user_id":      9999, // must be ignored
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.DisplayName != "New Name" || updated.District != "Region 4" {
		t.Errorf("updates not applied: %+v", updated)
	}
	if updated.UserID != user.ID {
		t.Error("user reference was rewritten")
	}
}
