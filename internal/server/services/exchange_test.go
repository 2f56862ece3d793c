package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/server/config"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRegister(t *testing.T, env *testEnv) *models.User {
	t.Helper()
	u, err := env.svc.Register(context.Background())
	require.NoError(t, err)
	return u
}

func mustBalance(t *testing.T, env *testEnv, userID string) float64 {
	t.Helper()
	b, err := env.svc.Balance(context.Background(), userID)
	require.NoError(t, err)
	return b
}

func mustPrice(t *testing.T, env *testEnv, stockID string) float64 {
	t.Helper()
	p, err := env.svc.GetPrice(context.Background(), stockID)
	require.NoError(t, err)
	return p
}

func TestEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seller := mustRegister(t, env)
	token, err := env.svc.Login(ctx, seller.ID, seller.Password)
	require.NoError(t, err)
	sellerID, err := env.svc.Resolve(ctx, token)
	require.NoError(t, err)

	v, err := env.svc.CreateVaccine(ctx, sellerID, CreateVaccineInput{
		RNAInfo: "AUGGCC", Name: "sputnik", PrivatePrice: 2.0, PublicPrice: ptr(3.0),
	})
	require.NoError(t, err)
	require.NotNil(t, v.Public)

	list, err := env.svc.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, list, models.FeedEntry{Name: "sputnik", StockID: v.Public.ID})

	buyer := mustRegister(t, env)
	btoken, err := env.svc.Login(ctx, buyer.ID, buyer.Password)
	require.NoError(t, err)
	buyerID, err := env.svc.Resolve(ctx, btoken)
	require.NoError(t, err)

	info, err := env.svc.Buy(ctx, buyerID, v.Public.ID)
	require.NoError(t, err)
	assert.Equal(t, "AUGGCC", info.RNAInfo)
	assert.Equal(t, seller.ID, info.SellerID)

	assert.Equal(t, 2.0, mustBalance(t, env, buyer.ID))
	assert.Equal(t, 8.0, mustBalance(t, env, seller.ID))
	assert.Equal(t, 6.0, mustPrice(t, env, v.Public.ID))
	assert.Equal(t, 2.0, mustPrice(t, env, v.Private.ID))

	own, err := env.svc.GetUserVaccine(ctx, seller.ID)
	require.NoError(t, err)
	require.NotNil(t, own.Public)
	assert.Equal(t, 6.0, own.Public.Price)

	assert.Equal(t, []float64{3.0}, env.obs.completed)
}

func TestBuy_SelfTrade(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	u := mustRegister(t, env)

	v, err := env.svc.CreateVaccine(ctx, u.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1})
	require.NoError(t, err)

	_, err = env.svc.Buy(ctx, u.ID, v.Private.ID)
	assert.ErrorIs(t, err, common.ErrorSelfTrade)
	assert.Equal(t, 5.0, mustBalance(t, env, u.ID))
	assert.Equal(t, 1.0, mustPrice(t, env, v.Private.ID))
	assert.Equal(t, []string{RejectSelfTrade}, env.obs.rejected)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller := mustRegister(t, env)
	buyer := mustRegister(t, env)

	v, err := env.svc.CreateVaccine(ctx, seller.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 5.5})
	require.NoError(t, err)

	_, err = env.svc.Buy(ctx, buyer.ID, v.Private.ID)
	assert.ErrorIs(t, err, common.ErrorInsufficientFunds)
	assert.Equal(t, 5.0, mustBalance(t, env, buyer.ID))
	assert.Equal(t, 5.0, mustBalance(t, env, seller.ID))
	assert.Equal(t, 5.5, mustPrice(t, env, v.Private.ID))
}

func TestBuy_ExactBalanceAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller := mustRegister(t, env)
	buyer := mustRegister(t, env)

	v, err := env.svc.CreateVaccine(ctx, seller.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 5})
	require.NoError(t, err)

	_, err = env.svc.Buy(ctx, buyer.ID, v.Private.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mustBalance(t, env, buyer.ID))
	assert.Equal(t, 10.0, mustPrice(t, env, v.Private.ID))
}

func TestBuy_UnknownStock(t *testing.T) {
	env := newTestEnv(t)
	u := mustRegister(t, env)

	_, err := env.svc.Buy(context.Background(), u.ID, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestBuy_NaNBalanceNeverPasses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seller := mustRegister(t, env)
	buyer := mustRegister(t, env)

	v, err := env.svc.CreateVaccine(ctx, seller.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1})
	require.NoError(t, err)
	require.NoError(t, env.store.HSet(ctx, "user_"+buyer.ID, "balance", "NaN"))

	_, err = env.svc.Buy(ctx, buyer.ID, v.Private.ID)
	assert.ErrorIs(t, err, common.ErrorInsufficientFunds)
	assert.Equal(t, 5.0, mustBalance(t, env, seller.ID))
}

func TestBuy_RepeatedDoubling(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.DefaultBalance = 100 })
	ctx := context.Background()
	seller := mustRegister(t, env)
	buyer := mustRegister(t, env)

	v, err := env.svc.CreateVaccine(ctx, seller.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1, PublicPrice: ptr(1)})
	require.NoError(t, err)

	for _, p := range []float64{1, 2, 4, 8} {
		before := mustBalance(t, env, buyer.ID) + mustBalance(t, env, seller.ID)
		require.Equal(t, p, mustPrice(t, env, v.Public.ID))

		_, err := env.svc.Buy(ctx, buyer.ID, v.Public.ID)
		require.NoError(t, err)

		assert.Equal(t, 2*p, mustPrice(t, env, v.Public.ID))
		assert.Equal(t, before, mustBalance(t, env, buyer.ID)+mustBalance(t, env, seller.ID))
	}
	assert.Equal(t, 85.0, mustBalance(t, env, buyer.ID))
	assert.Equal(t, 115.0, mustBalance(t, env, seller.ID))
	assert.Equal(t, 1.0, mustPrice(t, env, v.Private.ID))
}

func TestBuy_CancelledContextBeforeStart(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := env.svc.Buy(ctx, "u", "s")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCreateVaccine_Validation(t *testing.T) {
	env := newTestEnv(t)
	u := mustRegister(t, env)

	tests := []struct {
		name string
		in   CreateVaccineInput
	}{
		{"empty rna", CreateVaccineInput{Name: "n", PrivatePrice: 1}},
		{"empty name", CreateVaccineInput{RNAInfo: "r", PrivatePrice: 1}},
		{"zero private", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 0}},
		{"negative private", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: -1}},
		{"nan private", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: math.NaN()}},
		{"inf private", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: math.Inf(1)}},
		{"bad public", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1, PublicPrice: ptr(0)}},
		{"nan public", CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1, PublicPrice: ptr(math.NaN())}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.svc.CreateVaccine(context.Background(), u.ID, tt.in)
			assert.ErrorIs(t, err, common.ErrorValidation)
		})
	}

	// none of the rejected requests left a listing behind
	_, err := env.svc.GetUserVaccine(context.Background(), u.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCreateVaccine_ConcurrentSameSeller(t *testing.T) {
	env := newTestEnv(t)
	u := mustRegister(t, env)

	const n = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dup       int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := env.svc.CreateVaccine(context.Background(), u.ID, CreateVaccineInput{
				RNAInfo: "r", Name: fmt.Sprintf("n%d", i), PrivatePrice: 1, PublicPrice: ptr(1),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, common.ErrorAlreadyExists):
				dup++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, dup)

	list, err := env.svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestList_CappedAtLimit(t *testing.T) {
	env := newTestEnv(t, func(c *config.Config) { c.ListLimit = 3 })
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u := mustRegister(t, env)
		_, err := env.svc.CreateVaccine(ctx, u.ID, CreateVaccineInput{RNAInfo: "r", Name: fmt.Sprintf("n%d", i), PrivatePrice: 1, PublicPrice: ptr(1)})
		require.NoError(t, err)
	}

	list, err := env.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n4", list[0].Name)
}

// TestBuy_ConcurrentTerminatesAndConserves runs random cross trades on a
// two-stripe arena so that unrelated users and stocks collide constantly.
func TestBuy_ConcurrentTerminatesAndConserves(t *testing.T) {
	const (
		users      = 6
		workers    = 12
		iterations = 60
		initial    = 1 << 20
	)
	env := newTestEnv(t, func(c *config.Config) {
		c.LockStripes = 2
		c.DefaultBalance = initial
	})
	ctx := context.Background()

	ids := make([]string, users)
	var stockIDs []string
	for i := range ids {
		u := mustRegister(t, env)
		ids[i] = u.ID
		v, err := env.svc.CreateVaccine(ctx, u.ID, CreateVaccineInput{RNAInfo: "r", Name: "n", PrivatePrice: 1, PublicPrice: ptr(1)})
		require.NoError(t, err)
		stockIDs = append(stockIDs, v.Private.ID, v.Public.ID)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < iterations; i++ {
				buyer := ids[rnd.Intn(len(ids))]
				stock := stockIDs[rnd.Intn(len(stockIDs))]
				_, err := env.svc.Buy(ctx, buyer, stock)
				if err != nil && !errors.Is(err, common.ErrorSelfTrade) && !errors.Is(err, common.ErrorInsufficientFunds) {
					t.Errorf("unexpected buy error: %v", err)
				}
			}
		}(int64(w))
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("concurrent buys did not terminate")
	}

	var total float64
	for _, id := range ids {
		b := mustBalance(t, env, id)
		assert.GreaterOrEqual(t, b, 0.0)
		total += b
	}
	assert.Equal(t, float64(users*initial), total)

	// every completed trade doubled some price; prices stay powers of two
	for _, s := range stockIDs {
		p := mustPrice(t, env, s)
		frac, _ := math.Frexp(p)
		assert.Equal(t, 0.5, frac, "price %v of %s is not a power of two", p, s)
	}
}
