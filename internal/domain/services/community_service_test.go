package services

import (
	"testing"
	"time"

	"citizens-voice-http-service/internal/domain/models"
)

func TestCreateCommunityUniqueName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, newTestConfig())

	community := models.Community{Name: "  Sophia Residents Association  ", District: "Region 4", CreatedBy: 1}
	if err := svc.CreateCommunity(&community); err != nil {
		t.Fatalf("CreateCommunity: %v", err)
	}
	if community.Name != "Sophia Residents Association" {
		t.Errorf("name not trimmed: %q", community.Name)
	}

	dup := models.Community{Name: "Sophia Residents Association"}
	if err := svc.CreateCommunity(&dup); err == nil {
		t.Error("expected error for duplicate name")
	}

	if err := svc.CreateCommunity(&models.Community{Name: "   "}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestGetCommunitiesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommunityService(db, newTestConfig())

	for _, name := range []string{"First", "Second", "Third"} {
		if err := svc.CreateCommunity(&models.Community{Name: name}); err != nil {
			t.Fatalf("CreateCommunity: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	communities, err := svc.GetCommunities()
	if err != nil {
		t.Fatalf("GetCommunities: %v", err)
	}
	if len(communities) != 3 {
		t.Fatalf("got %d communities, want 3", len(communities))
	}
	if communities[0].Name != "Third" {
		t.Errorf("newest community = %q", communities[0].Name)
	}
}
