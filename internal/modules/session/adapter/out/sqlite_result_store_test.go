package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	questiondomain "sciquiz/internal/modules/question/domain"
	sessionout "sciquiz/internal/modules/session/adapter/out"
	"sciquiz/internal/modules/session/domain"
)

func TestSQLiteResultStoreListsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")
	store, err := sessionout.NewSQLiteResultStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	base := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	for i, score := range []int{2, 5, 4} {
		started := base.Add(time.Duration(i) * time.Hour)
		r := domain.NewResult(
			[]string{"s-1", "s-2", "s-3"}[i],
			questiondomain.SubjectPhysics,
			questiondomain.DifficultyHard,
			score, 5,
			started, started.Add(90*time.Second),
		)
		if err := store.Save(ctx, r); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].SessionID != "s-3" || all[2].SessionID != "s-1" {
		t.Fatalf("unexpected order: %+v", all)
	}
	if all[1].Score != 5 || all[1].Grade != domain.GradeGreat || all[1].Duration() != 90*time.Second {
		t.Fatalf("round trip lost data: %+v", all[1])
	}

	top, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("limit ignored, got %d", len(top))
	}
}

func TestSQLiteResultStoreSaveIsIdempotentPerSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store, err := sessionout.NewSQLiteResultStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	at := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	r := domain.NewResult("s-1", questiondomain.SubjectMaths, questiondomain.DifficultyEasy, 1, 3, at, at.Add(time.Minute))
	for range 2 {
		if err := store.Save(ctx, r); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	got, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one row, got %d", len(got))
	}
}
