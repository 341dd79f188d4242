package leaderboard

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  ACE  ", "ACE"},
		{"", ""},
		{strings.Repeat("X", 25), strings.Repeat("X", 20)},
		{"ÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜ", "ÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖÜÄÖ"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClampScore(t *testing.T) {
	if got := ClampScore(1_500_000_000); got != MaxScore {
		t.Errorf("ClampScore(1.5e9) = %d, want %d", got, MaxScore)
	}
	if got := ClampScore(-5); got != 0 {
		t.Errorf("ClampScore(-5) = %d, want 0", got)
	}
	if got := ClampScore(420); got != 420 {
		t.Errorf("ClampScore(420) = %d", got)
	}
}

func TestSubmitGuardOncePerSession(t *testing.T) {
	var g SubmitGuard
	if !g.Claim() {
		t.Fatal("first claim should succeed")
	}
	if g.Claim() {
		t.Fatal("second claim should fail")
	}
	if !g.Used() {
		t.Error("guard should report used")
	}
	g.Reset()
	if !g.Claim() {
		t.Error("claim after reset should succeed")
	}
}

func TestBoardOrderAndSubscribe(t *testing.T) {
	b := NewBoard(fixedClock(time.Unix(1000, 0)))

	var got [][]Entry
	unsub := b.Subscribe(func(entries []Entry) { got = append(got, entries) })

	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("initial delivery = %v, want one empty list", got)
	}

	b.Add("LOW", 100)
	b.Add("HIGH", 900)
	b.Add("TIE", 100)

	if len(got) != 4 {
		t.Fatalf("deliveries = %d, want 4", len(got))
	}
	last := got[3]
	names := []string{last[0].Name, last[1].Name, last[2].Name}
	want := []string{"HIGH", "LOW", "TIE"}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("rank %d = %s, want %s", i+1, names[i], want[i])
		}
	}

	unsub()
	unsub()
	b.Add("AFTER", 5)
	if len(got) != 4 {
		t.Errorf("delivered after unsubscribe")
	}
}

func TestBoardIDsUnique(t *testing.T) {
	b := NewBoard(func() time.Time { return time.Unix(5, 0) })
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		e := b.Add("P", i+1)
		if seen[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.msgpack")
	fs := NewFileStore(path)

	entries, err := fs.Load()
	if err != nil || entries != nil {
		t.Fatalf("Load missing = %v, %v; want nil, nil", entries, err)
	}

	b := NewBoard(fixedClock(time.Unix(0, 0)))
	b.Add("ONE", 10)
	b.Add("TWO", 20)
	if err := fs.Save(b.Entries()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0].Name != "TWO" || loaded[1].Score != 10 {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.msgpack")
	fs := NewFileStore(path)
	if err := fs.Save(nil); err != nil {
		t.Fatal(err)
	}
	if err := writeFile(path, []byte{0xc1, 0xff}); err != nil {
		t.Fatal(err)
	}
	if _, err := fs.Load(); err == nil {
		t.Error("expected decode error")
	}
}

func TestScoreboardRank(t *testing.T) {
	sb := NewScoreboard()
	sb.Update([]Entry{
		{ID: "a", Name: "ACE", Score: 900},
		{ID: "b", Name: "BOB", Score: 500},
		{ID: "c", Name: "BOB", Score: 500},
		{ID: "d", Name: "CAT", Score: 100},
	})

	if rank, total := sb.Rank(); rank != 0 || total != 4 {
		t.Errorf("unmarked rank = %d/%d, want 0/4", rank, total)
	}

	sb.MarkPlayer("BOB", 500, "")
	if rank, _ := sb.Rank(); rank != 2 {
		t.Errorf("name+score rank = %d, want 2", rank)
	}

	sb.MarkPlayer("BOB", 500, "c")
	if rank, _ := sb.Rank(); rank != 3 {
		t.Errorf("id rank = %d, want 3", rank)
	}

	sb.MarkPlayer("ZED", 1, "")
	if rank, _ := sb.Rank(); rank != 0 {
		t.Errorf("absent rank = %d, want 0", rank)
	}

	top := sb.Top(5)
	if len(top) != 4 || top[0].Name != "ACE" {
		t.Errorf("Top(5) = %+v", top)
	}
	if len(sb.Top(2)) != 2 {
		t.Error("Top(2) length")
	}
}

func TestLocalService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.msgpack")
	l := NewLocal(NewFileStore(path), nil)
	if err := l.Init(); err != nil {
		t.Fatal(err)
	}

	var latest []Entry
	unsub := l.SubscribeToScores(func(e []Entry) { latest = e })
	defer unsub()
	if latest == nil || len(latest) != 0 {
		t.Fatalf("initial list = %v, want empty", latest)
	}

	if !l.SubmitScore(context.Background(), "  pilot  ", 1200) {
		t.Fatal("submit failed")
	}
	if len(latest) != 1 || latest[0].Name != "pilot" {
		t.Errorf("latest = %+v", latest)
	}

	reopened := NewLocal(NewFileStore(path), nil)
	if err := reopened.Init(); err != nil {
		t.Fatal(err)
	}
	if reopened.board.Len() != 1 {
		t.Errorf("persisted entries = %d, want 1", reopened.board.Len())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if l.SubmitScore(ctx, "X", 1) {
		t.Error("submit with cancelled context should fail")
	}
}
