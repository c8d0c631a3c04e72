package dal

import (
	"testing"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/models"
)

func TestMemoryStoreSessionLifecycle(t *testing.T) {
	store := NewMemoryStore()

	session, err := store.CreateSession("test draft", 10, 5)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if session.ID == "" {
		t.Fatal("session has no ID")
	}

	loaded, err := store.Session(session.ID)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if loaded.Name != "test draft" || loaded.TeamCount != 10 || loaded.UserSlot != 5 {
		t.Errorf("loaded session %+v does not match created", loaded)
	}

	if _, err := store.Session("session_missing"); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestMemoryStoreDraftState(t *testing.T) {
	store := NewMemoryStore()
	session, _ := store.CreateSession("test draft", 10, 5)

	picks := []models.DraftPick{
		{SessionID: session.ID, PickNumber: 1, Round: 1, Position: models.RB, TeamSlot: 1, UserPick: false},
		{SessionID: session.ID, PickNumber: 5, Round: 1, Position: models.RB, TeamSlot: 5, UserPick: true},
		{SessionID: session.ID, PickNumber: 16, Round: 2, Position: models.WR, TeamSlot: 5, UserPick: true},
	}
	for _, pick := range picks {
		if err := store.RecordPick(pick); err != nil {
			t.Fatalf("RecordPick(%d): %v", pick.PickNumber, err)
		}
	}

	roster, nextPick, err := store.DraftState(session.ID)
	if err != nil {
		t.Fatalf("DraftState: %v", err)
	}
	// Only user picks count toward the roster
	if roster.RB != 1 || roster.WR != 1 || roster.Total() != 2 {
		t.Errorf("roster = %+v, want 1 RB and 1 WR", roster)
	}
	if nextPick != 17 {
		t.Errorf("nextPick = %d, want 17", nextPick)
	}
}

func TestMemoryStoreRecordPickUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	err := store.RecordPick(models.DraftPick{SessionID: "session_missing", PickNumber: 1, Position: models.RB})
	if err == nil {
		t.Error("expected error recording a pick for an unknown session")
	}
}

func TestMemoryStoreStrategyUpsert(t *testing.T) {
	store := NewMemoryStore()

	first := models.StrategyRecord{
		SessionID:     "session_a",
		PickNumber:    16,
		NextPositions: []models.Position{models.RB, models.WR},
		FullSequence:  []models.Position{models.RB, models.WR, models.QB},
		Confidence:    80,
		ExpectedValue: 500,
		Rationale:     "first pass",
	}
	if err := store.SaveStrategyState(first); err != nil {
		t.Fatalf("SaveStrategyState: %v", err)
	}

	second := first
	second.Confidence = 65
	second.Rationale = "recomputed"
	if err := store.SaveStrategyState(second); err != nil {
		t.Fatalf("SaveStrategyState (upsert): %v", err)
	}

	got, err := store.StrategyState("session_a", 16)
	if err != nil {
		t.Fatalf("StrategyState: %v", err)
	}
	if got.Confidence != 65 || got.Rationale != "recomputed" {
		t.Errorf("upsert did not overwrite: %+v", got)
	}

	// A different pick number is a separate row
	third := first
	third.PickNumber = 17
	if err := store.SaveStrategyState(third); err != nil {
		t.Fatalf("SaveStrategyState (new pick): %v", err)
	}
	if _, err := store.StrategyState("session_a", 17); err != nil {
		t.Errorf("StrategyState(17): %v", err)
	}

	kept, _ := store.StrategyState("session_a", 16)
	if kept.Rationale != "recomputed" {
		t.Error("saving pick 17 disturbed pick 16")
	}
}

func TestMemoryStoreReferenceData(t *testing.T) {
	store := NewMemoryStore()

	tiers, err := store.LoadTiers()
	if err != nil || len(tiers) == 0 {
		t.Fatalf("LoadTiers: %v (%d tiers)", err, len(tiers))
	}
	params, err := store.LoadStrategyParameters()
	if err != nil || len(params) == 0 {
		t.Fatalf("LoadStrategyParameters: %v (%d params)", err, len(params))
	}
}

func TestSequenceRoundTrip(t *testing.T) {
	seq := []models.Position{models.RB, models.WR, models.QB}

	got := unmarshalSequence(marshalSequence(seq))
	if len(got) != len(seq) {
		t.Fatalf("round trip length %d, want %d", len(got), len(seq))
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], seq[i])
		}
	}

	if unmarshalSequence("not json") != nil {
		t.Error("invalid payload should unmarshal to nil")
	}
}
