package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/client/config"
	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/dmitrijs2005/vaccx/internal/client/services"
)

type fakeAuth struct {
	creds      models.Credentials
	loginCreds models.Credentials
	loggedOut  bool
	forgotten  bool
	restoreID  string
	restoreOK  bool
	err        error
}

func (f *fakeAuth) Register(ctx context.Context) (models.Credentials, error) {
	return f.creds, f.err
}

func (f *fakeAuth) Login(ctx context.Context, creds models.Credentials) (string, error) {
	f.loginCreds = creds
	if f.err != nil {
		return "", f.err
	}
	if creds.UserID == "" {
		return f.creds.UserID, nil
	}
	return creds.UserID, nil
}

func (f *fakeAuth) Restore(ctx context.Context) (string, bool, error) {
	return f.restoreID, f.restoreOK, nil
}

func (f *fakeAuth) Reauthenticate(ctx context.Context) error { return f.err }

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return f.err
}

func (f *fakeAuth) Forget(ctx context.Context) error {
	f.forgotten = true
	return f.err
}

func (f *fakeAuth) Close(ctx context.Context) error { return nil }

type fakeMarket struct {
	balance  float64
	listings []models.Listing
	created  models.NewVaccine
	vaccine  *models.Vaccine
	bought   string
	rna      string
	price    float64
	updates  []services.PriceUpdate
	interval time.Duration
	err      error
}

func (f *fakeMarket) Balance(ctx context.Context) (float64, error) { return f.balance, f.err }

func (f *fakeMarket) List(ctx context.Context) ([]models.Listing, error) { return f.listings, f.err }

func (f *fakeMarket) Create(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error) {
	f.created = v
	return f.vaccine, f.err
}

func (f *fakeMarket) Buy(ctx context.Context, stockID string) (string, error) {
	f.bought = stockID
	return f.rna, f.err
}

func (f *fakeMarket) Price(ctx context.Context, stockID string) (float64, error) {
	return f.price, f.err
}

func (f *fakeMarket) MyVaccine(ctx context.Context) (*models.Vaccine, error) {
	return f.vaccine, f.err
}

func (f *fakeMarket) Monitor(ctx context.Context, stockID string, interval time.Duration, onUpdate func(services.PriceUpdate)) error {
	f.interval = interval
	for _, u := range f.updates {
		onUpdate(u)
	}
	return f.err
}

func newTestApp(auth *fakeAuth, market *fakeMarket, input string) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &App{
		config: &config.Config{
			MonitorInterval: 10 * time.Millisecond,
			RequestTimeout:  time.Second,
		},
		authService:   auth,
		marketService: market,
		reader:        bufio.NewReader(strings.NewReader(input)),
		out:           out,
	}, out
}
