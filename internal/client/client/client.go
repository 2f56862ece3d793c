package client

import (
	"context"

	"github.com/dmitrijs2005/vaccx/internal/client/models"
)

// Client is the exchange API as the CLI uses it. Calls that need a session
// use the token set by Login or SetToken.
type Client interface {
	Close() error
	Register(ctx context.Context) (models.Credentials, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
	SetToken(token string)
	Token() string
	CreateVaccine(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error)
	Buy(ctx context.Context, stockID string) (string, error)
	Balance(ctx context.Context) (float64, error)
	GetPrice(ctx context.Context, stockID string) (float64, error)
	List(ctx context.Context) ([]models.Listing, error)
	GetUserVaccine(ctx context.Context) (*models.Vaccine, error)
}
