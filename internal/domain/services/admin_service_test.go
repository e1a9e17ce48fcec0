package services

import (
	"testing"

	"citizens-voice-http-service/internal/domain/models"
)

func TestIsAdminExistenceBased(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())
	user := createUser(t, db, "citizen@example.gy")

	isAdmin, err := svc.IsAdmin(user.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if isAdmin {
		t.Error("plain user reported as admin")
	}

	admin, err := svc.AddAdmin(user.Email, "")
	if err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("default role = %q, want admin", admin.Role)
	}

	isAdmin, err = svc.IsAdmin(user.ID)
	if err != nil {
		t.Fatalf("IsAdmin: %v", err)
	}
	if !isAdmin {
		t.Error("admin register row not honored")
	}

	// revocation is effective the moment the row is gone
	if err := svc.RemoveAdmin(admin.ID); err != nil {
		t.Fatalf("RemoveAdmin: %v", err)
	}
	isAdmin, _ = svc.IsAdmin(user.ID)
	if isAdmin {
		t.Error("revoked user still reported as admin")
	}
}

func TestAddAdminErrors(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())

	if _, err := svc.AddAdmin("nobody@example.gy", ""); err == nil {
		t.Error("expected error for unknown user")
	}

	user := createUser(t, db, "mod@example.gy")
	if _, err := svc.AddAdmin(user.Email, "moderator"); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	if _, err := svc.AddAdmin(user.Email, "moderator"); err == nil {
		t.Error("expected error for duplicate grant")
	}

	if err := svc.RemoveAdmin(9999); err == nil {
		t.Error("expected error for unknown register row")
	}
}

func TestGetAdminUsersJoinsEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAdminService(db, newTestConfig())
	user := createUser(t, db, "mod@example.gy")

	if _, err := svc.AddAdmin(user.Email, ""); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}

	views, err := svc.GetAdminUsers()
	if err != nil {
		t.Fatalf("GetAdminUsers: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d admin views, want 1", len(views))
	}
	if views[0].Email != "mod@example.gy" {
		t.Errorf("email = %q", views[0].Email)
	}
}

func TestEnsureDefaultAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAdminService(db, cfg)

	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("EnsureDefaultAdmin: %v", err)
	}

	var user models.User
	if err := db.Where("email = ?", cfg.DefaultAdminEmail).First(&user).Error; err != nil {
		t.Fatalf("default admin user missing: %v", err)
	}
	isAdmin, _ := svc.IsAdmin(user.ID)
	if !isAdmin {
		t.Error("default admin has no register row")
	}

	// idempotent on restart
	if err := svc.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("second EnsureDefaultAdmin: %v", err)
	}
	var count int64
	db.Model(&models.AdminUser{}).Count(&count)
	if count != 1 {
		t.Errorf("admin register rows = %d, want 1", count)
	}
}
