package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/dmitrijs2005/vaccx/internal/client/client"
	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func getMeta(t *testing.T, db *sql.DB, k string) (string, bool) {
	t.Helper()
	var v string
	err := db.QueryRow(`SELECT value FROM metadata WHERE key=?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return v, true
}

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	token string

	registerRet models.Credentials
	registerErr error

	// password -> token; a missing password fails the login
	logins    map[string]string
	loginErr  error
	lastLogin models.Credentials

	// tokens the server still accepts
	validTokens map[string]bool

	balance float64

	prices   []float64
	priceErr []error
	calls    int

	closed bool
}

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) Register(ctx context.Context) (models.Credentials, error) {
	return f.registerRet, f.registerErr
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.lastLogin = creds
	if f.loginErr != nil {
		return "", f.loginErr
	}
	token, ok := f.logins[creds.Password]
	if !ok {
		return "", client.ErrUnauthorized
	}
	f.SetToken(token)
	return token, nil
}

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) checkSession() error {
	t := f.Token()
	if t == "" {
		return client.ErrNotLoggedIn
	}
	if !f.validTokens[t] {
		return client.ErrUnauthorized
	}
	return nil
}

func (f *fakeClient) CreateVaccine(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error) {
	if err := f.checkSession(); err != nil {
		return nil, err
	}
	return &models.Vaccine{RNAInfo: v.RNAInfo, Name: v.Name, Private: models.Offer{StockID: "p", Price: v.PrivatePrice}}, nil
}

func (f *fakeClient) Buy(ctx context.Context, stockID string) (string, error) {
	if err := f.checkSession(); err != nil {
		return "", err
	}
	return "AUG", nil
}

func (f *fakeClient) Balance(ctx context.Context) (float64, error) {
	if err := f.checkSession(); err != nil {
		return 0, err
	}
	return f.balance, nil
}

// GetPrice replays prices; the last one repeats.
func (f *fakeClient) GetPrice(ctx context.Context, stockID string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.calls
	f.calls++
	if i < len(f.priceErr) && f.priceErr[i] != nil {
		return 0, f.priceErr[i]
	}
	if len(f.prices) == 0 {
		return 0, nil
	}
	if i >= len(f.prices) {
		i = len(f.prices) - 1
	}
	return f.prices[i], nil
}

func (f *fakeClient) List(ctx context.Context) ([]models.Listing, error) {
	return []models.Listing{{Name: "n", StockID: "q"}}, nil
}

func (f *fakeClient) GetUserVaccine(ctx context.Context) (*models.Vaccine, error) {
	if err := f.checkSession(); err != nil {
		return nil, err
	}
	return &models.Vaccine{Name: "mine"}, nil
}
