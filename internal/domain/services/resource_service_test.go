package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSyntheticFeedRanges(t *testing.T) {
	feed := &SyntheticFeed{}

	for i := 0; i < 50; i++ {
		snapshot, err := feed.Fetch()
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}

		if b := snapshot.OilProduction.DailyBarrels; b < 300000 || b >= 350000 {
			t.Errorf("daily_barrels = %d, out of range", b)
		}
		if m := snapshot.GasProduction.DailyMcf; m < 50000 || m >= 60000 {
			t.Errorf("daily_mcf = %d, out of range", m)
		}
		if r := snapshot.Revenue.MonthlyUSD; r < 500000000 || r >= 600000000 {
			t.Errorf("monthly_usd = %d, out of range", r)
		}
		if r := snapshot.Revenue.YtdUSD; r < 6000000000 || r >= 7000000000 {
			t.Errorf("ytd_usd = %d, out of range", r)
		}
		if snapshot.OilProduction.TotalWells != 12 || snapshot.OilProduction.ActiveRigs != 3 {
			t.Errorf("well/rig counts = %d/%d", snapshot.OilProduction.TotalWells, snapshot.OilProduction.ActiveRigs)
		}
		if snapshot.GasProduction.Reserves != "15+ TCF" {
			t.Errorf("reserves = %q", snapshot.GasProduction.Reserves)
		}
		if snapshot.Source != "https://petroleum.gov.gy/data-visualization" {
			t.Errorf("source = %q", snapshot.Source)
		}
		if len(snapshot.Blocks) != 3 {
			t.Fatalf("got %d blocks, want 3", len(snapshot.Blocks))
		}
		if snapshot.Blocks[0].Name != "Stabroek Block" || snapshot.Blocks[0].Status != "Producing" {
			t.Errorf("unexpected first block: %+v", snapshot.Blocks[0])
		}
	}
}

func TestSyntheticFeedTimestampsAdvance(t *testing.T) {
	feed := &SyntheticFeed{}

	first, err := feed.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second, err := feed.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	if !second.LastUpdated.After(first.LastUpdated) {
		t.Errorf("last_updated did not advance: %v then %v", first.LastUpdated, second.LastUpdated)
	}
}

func TestPetroleumFeed(t *testing.T) {
	want := LiveResourceSnapshot{
		Source:      "upstream",
		LastUpdated: time.Now().UTC().Truncate(time.Second),
		OilProduction: OilProduction{
			DailyBarrels: 320000,
			TotalWells:   12,
			ActiveRigs:   3,
		},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	}))
	defer server.Close()

	feed := &PetroleumFeed{URL: server.URL, Client: server.Client()}
	got, err := feed.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got.Source != "upstream" || got.OilProduction.DailyBarrels != 320000 {
		t.Errorf("unexpected snapshot: %+v", got)
	}
}

func TestPetroleumFeedUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	feed := &PetroleumFeed{URL: server.URL, Client: server.Client()}
	if _, err := feed.Fetch(); err == nil {
		t.Error("expected error for upstream failure")
	}
}
