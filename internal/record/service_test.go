package record

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/kiroku-dev/sensekibot/internal/domain"
)

// mockRecordRepository implements Repository for testing
type mockRecordRepository struct {
	records        map[string]*domain.PlayerRecord
	incrementError error
}

func newMockRecordRepository() *mockRecordRepository {
	return &mockRecordRepository{records: make(map[string]*domain.PlayerRecord)}
}

func key(channelID, playerName string) string {
	return channelID + "|" + playerName
}

func (m *mockRecordRepository) GetRecord(ctx context.Context, channelID, playerName string) (*domain.PlayerRecord, error) {
	rec, ok := m.records[key(channelID, playerName)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *mockRecordRepository) UpsertRecord(ctx context.Context, rec *domain.PlayerRecord) error {
	cp := *rec
	m.records[key(rec.ChannelID, rec.PlayerName)] = &cp
	return nil
}

func (m *mockRecordRepository) IncrementRecord(ctx context.Context, channelID, playerName string, winDelta, loseDelta, gamesDelta int) error {
	if m.incrementError != nil {
		return m.incrementError
	}
	rec, ok := m.records[key(channelID, playerName)]
	if !ok {
		rec = &domain.PlayerRecord{ChannelID: channelID, PlayerName: playerName}
		m.records[key(channelID, playerName)] = rec
	}
	rec.Win += winDelta
	rec.Lose += loseDelta
	rec.Games += gamesDelta
	return nil
}

func (m *mockRecordRepository) DeleteRecord(ctx context.Context, channelID, playerName string) (bool, error) {
	k := key(channelID, playerName)
	if _, ok := m.records[k]; !ok {
		return false, nil
	}
	delete(m.records, k)
	return true, nil
}

func (m *mockRecordRepository) ListRecords(ctx context.Context, channelID string) ([]domain.PlayerRecord, error) {
	var out []domain.PlayerRecord
	for _, rec := range m.records {
		if rec.ChannelID == channelID {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out, nil
}

func TestIncrementAccumulates(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Increment(ctx, "ch1", "taro", 1, 2, 3); err != nil {
		t.Fatalf("first increment failed: %v", err)
	}
	if err := svc.Increment(ctx, "ch1", "taro", 4, 5, 6); err != nil {
		t.Fatalf("second increment failed: %v", err)
	}

	rec, err := svc.GetRecord(ctx, "ch1", "taro")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record, got nil")
	}

	// Two increments must equal one combined increment
	if rec.Win != 5 || rec.Lose != 7 || rec.Games != 9 {
		t.Errorf("expected counters (5,7,9), got (%d,%d,%d)", rec.Win, rec.Lose, rec.Games)
	}
}

func TestSetRecordRoundTrip(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetRecord(ctx, "ch1", "hanako", 10, 4, 20); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	rec, err := svc.GetRecord(ctx, "ch1", "hanako")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record, got nil")
	}
	if rec.Win != 10 || rec.Lose != 4 || rec.Games != 20 {
		t.Errorf("expected counters (10,4,20), got (%d,%d,%d)", rec.Win, rec.Lose, rec.Games)
	}
}

func TestSetRecordOverwritesNotAdds(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetRecord(ctx, "ch1", "taro", 10, 10, 10); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}
	if err := svc.SetRecord(ctx, "ch1", "taro", 1, 2, 3); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	rec, _ := svc.GetRecord(ctx, "ch1", "taro")
	if rec.Win != 1 || rec.Lose != 2 || rec.Games != 3 {
		t.Errorf("expected counters (1,2,3), got (%d,%d,%d)", rec.Win, rec.Lose, rec.Games)
	}
}

func TestSetRecordRejectsNegativeCounters(t *testing.T) {
	svc := NewService(newMockRecordRepository())

	err := svc.SetRecord(context.Background(), "ch1", "taro", -1, 0, 0)
	if err == nil {
		t.Fatal("expected error for negative counter")
	}
}

func TestDeleteRecordThenFetchAbsent(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetRecord(ctx, "ch1", "taro", 1, 1, 2); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	removed, err := svc.DeleteRecord(ctx, "ch1", "taro")
	if err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if !removed {
		t.Error("expected removed=true for existing record")
	}

	rec, err := svc.GetRecord(ctx, "ch1", "taro")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil after delete, got %+v", rec)
	}
}

func TestDeleteAbsentRecordIsNoOp(t *testing.T) {
	svc := NewService(newMockRecordRepository())

	removed, err := svc.DeleteRecord(context.Background(), "ch1", "ghost")
	if err != nil {
		t.Fatalf("DeleteRecord failed: %v", err)
	}
	if removed {
		t.Error("expected removed=false for absent record")
	}
}

func TestListRecordsEmptyChannel(t *testing.T) {
	svc := NewService(newMockRecordRepository())

	records, err := svc.ListRecords(context.Background(), "empty")
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestListRecordsChannelIsolation(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetRecord(ctx, "chA", "taro", 1, 0, 1); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}
	if err := svc.SetRecord(ctx, "chB", "taro", 9, 9, 9); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	records, err := svc.ListRecords(ctx, "chA")
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Win != 1 || records[0].Lose != 0 || records[0].Games != 1 {
		t.Errorf("got record from wrong channel: %+v", records[0])
	}
}

func TestAddGamePlayedTouchesEveryPlayer(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.SetRecord(ctx, "ch1", "taro", 2, 1, 3); err != nil {
		t.Fatalf("SetRecord failed: %v", err)
	}

	if err := svc.AddGamePlayed(ctx, "ch1", []string{"taro", "hanako", "jiro"}); err != nil {
		t.Fatalf("AddGamePlayed failed: %v", err)
	}

	// Existing player: games bumped, win/lose untouched
	taro, _ := svc.GetRecord(ctx, "ch1", "taro")
	if taro.Win != 2 || taro.Lose != 1 || taro.Games != 4 {
		t.Errorf("expected taro (2,1,4), got (%d,%d,%d)", taro.Win, taro.Lose, taro.Games)
	}

	// New players: created with a single game
	for _, name := range []string{"hanako", "jiro"} {
		rec, _ := svc.GetRecord(ctx, "ch1", name)
		if rec == nil {
			t.Fatalf("expected record for %s", name)
		}
		if rec.Win != 0 || rec.Lose != 0 || rec.Games != 1 {
			t.Errorf("expected %s (0,0,1), got (%d,%d,%d)", name, rec.Win, rec.Lose, rec.Games)
		}
	}
}

func TestAddGamePlayedEmptyNames(t *testing.T) {
	svc := NewService(newMockRecordRepository())

	if err := svc.AddGamePlayed(context.Background(), "ch1", nil); err == nil {
		t.Fatal("expected error for empty player list")
	}
}

func TestAddResultDelegatesToIncrement(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.AddResult(ctx, "ch1", "taro", 2, 1); err != nil {
		t.Fatalf("AddResult failed: %v", err)
	}

	rec, _ := svc.GetRecord(ctx, "ch1", "taro")
	if rec.Win != 2 || rec.Lose != 1 || rec.Games != 0 {
		t.Errorf("expected (2,1,0), got (%d,%d,%d)", rec.Win, rec.Lose, rec.Games)
	}
}

func TestValidationErrors(t *testing.T) {
	svc := NewService(newMockRecordRepository())
	ctx := context.Background()

	if _, err := svc.GetRecord(ctx, "", "taro"); err == nil {
		t.Error("expected error for empty channel ID")
	}
	if err := svc.Increment(ctx, "ch1", "   ", 1, 0, 0); err == nil {
		t.Error("expected error for blank player name")
	}
	if err := svc.Increment(ctx, "ch1", "taro", -1, 0, 0); err == nil {
		t.Error("expected error for negative delta")
	}
}

func TestIncrementPropagatesRepositoryError(t *testing.T) {
	repo := newMockRecordRepository()
	repo.incrementError = errors.New("connection refused")
	svc := NewService(repo)

	err := svc.Increment(context.Background(), "ch1", "taro", 1, 0, 0)
	if err == nil {
		t.Fatal("expected error from repository")
	}
	if !errors.Is(err, repo.incrementError) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}
}

func TestPlayerNameNormalizedBeforeKeying(t *testing.T) {
	repo := newMockRecordRepository()
	svc := NewService(repo)
	ctx := context.Background()

	// Half-width and full-width spellings of the same name share one record
	if err := svc.Increment(ctx, "ch1", "ﾀﾛｳ", 1, 0, 0); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if err := svc.Increment(ctx, "ch1", "タロウ", 0, 1, 0); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}

	rec, err := svc.GetRecord(ctx, "ch1", "タロウ")
	if err != nil {
		t.Fatalf("GetRecord failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected record, got nil")
	}
	if rec.Win != 1 || rec.Lose != 1 {
		t.Errorf("expected merged record (1,1), got (%d,%d)", rec.Win, rec.Lose)
	}
}
