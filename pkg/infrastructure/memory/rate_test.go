package memory_test

import (
	"testing"
	"time"

	"botbase/pkg/domain/model"
	"botbase/pkg/infrastructure/memory"
)

func TestRateRepository(t *testing.T) {
	repo := memory.NewRateRepository(3)

	if got := repo.GetCurrentRate(); got != nil {
		t.Errorf("GetCurrentRate() = %v, want nil", *got)
	}
	if got := repo.GetHistorySizeMax(); got != 3 {
		t.Errorf("GetHistorySizeMax() = %d, want 3", got)
	}

	for i, rate := range []float64{100, 101, 102, 103} {
		err := repo.AddRate(&model.Rate{
			Pair: "btc_jpy",
			Rate: rate,
			Time: time.Date(2023, 6, 15, 0, 0, i, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("AddRate() error = %v", err)
		}
	}

	got := repo.GetRateHistory()
	want := []float64{101, 102, 103}
	if len(got) != len(want) {
		t.Fatalf("GetRateHistory() len = %d, want %d; got: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetRateHistory()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	cur := repo.GetCurrentRate()
	if cur == nil || *cur != 103 {
		t.Errorf("GetCurrentRate() = %v, want 103", cur)
	}
}
