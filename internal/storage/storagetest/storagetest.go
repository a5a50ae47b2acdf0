// Package storagetest holds the behaviour every storage.InputStore must share.
package storagetest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/domain"
	"github.com/rpgo/coastfire-calculator/internal/storage"
)

func sampleInputs() domain.RawInputs {
	return domain.RawInputs{
		Currency:            "EUR",
		CurrentAge:          "35",
		RetirementAge:       "60",
		CurrentSavings:      "120000",
		MonthlyContribution: "1500",
		AnnualExpenses:      "45000",
		ReturnRate:          "6.5",
		InflationRate:       "2.5",
		SafeWithdrawalRate:  "3.5",
	}
}

// Run exercises store against the InputStore contract. The store must start empty.
func Run(t *testing.T, store storage.InputStore) {
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
	})

	t.Run("save and load", func(t *testing.T) {
		in := sampleInputs()
		require.NoError(t, store.Save(ctx, storage.DefaultKey, in))
		got, err := store.Load(ctx, storage.DefaultKey)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	})

	t.Run("save overwrites", func(t *testing.T) {
		in := sampleInputs()
		in.MonthlyContribution = "2000"
		require.NoError(t, store.Save(ctx, "overwrite", sampleInputs()))
		require.NoError(t, store.Save(ctx, "overwrite", in))
		got, err := store.Load(ctx, "overwrite")
		require.NoError(t, err)
		assert.Equal(t, "2000", got.MonthlyContribution)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, store.Save(ctx, "", sampleInputs()))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "gone", sampleInputs()))
		require.NoError(t, store.Delete(ctx, "gone"))
		_, err := store.Load(ctx, "gone")
		assert.True(t, errors.Is(err, storage.ErrNotFound))
		assert.NoError(t, store.Delete(ctx, "gone"))
	})

	t.Run("concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Save(ctx, "shared", sampleInputs()))
				_, err := store.Load(ctx, "shared")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}
