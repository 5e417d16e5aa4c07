package losses_test

import (
	"context"
	"testing"

	"github.com/okian/foresight/internal/testdata"
	"github.com/okian/foresight/pkg/losses"
)

func BenchmarkWAPE(b *testing.B) {
	df, err := testdata.Panel(testdata.Config{
		Series:      200,
		Horizons:    28,
		Cutoffs:     3,
		Models:      []string{"naive", "ets", "arima"},
		MissingRate: 0.05,
		Noise:       5,
		Seed:        1,
	})
	if err != nil {
		b.Fatalf("generating panel: %v", err)
	}
	ctx := context.Background()
	models := []string{"naive", "ets", "arima"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := losses.WAPE(ctx, df, models); err != nil {
			b.Fatalf("wape: %v", err)
		}
	}
}

func BenchmarkBIAS(b *testing.B) {
	df, err := testdata.Panel(testdata.Config{
		Series:      200,
		Horizons:    28,
		Models:      []string{"naive", "ets"},
		MissingRate: 0.05,
		Noise:       5,
		Seed:        2,
	})
	if err != nil {
		b.Fatalf("generating panel: %v", err)
	}
	ctx := context.Background()
	models := []string{"naive", "ets"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := losses.BIAS(ctx, df, models); err != nil {
			b.Fatalf("bias: %v", err)
		}
	}
}
