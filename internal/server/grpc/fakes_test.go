package grpc

import (
	"context"

	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/dmitrijs2005/vaccx/internal/server/services"
)

type fakeExchange struct {
	user     *models.User
	regErr   error
	token    string
	loginErr error

	tokens     map[string]string
	resolveErr error

	createIn  services.CreateVaccineInput
	createFor string
	vaccine   *models.Vaccine
	createErr error

	buyer  string
	info   models.VaccineInfo
	buyErr error

	balance    float64
	balanceErr error

	price    float64
	priceErr error

	feed    []models.FeedEntry
	listErr error

	userVaccineErr error
}

func (f *fakeExchange) Register(ctx context.Context) (*models.User, error) {
	return f.user, f.regErr
}

func (f *fakeExchange) Login(ctx context.Context, userID, password string) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeExchange) Resolve(ctx context.Context, token string) (string, error) {
	if f.resolveErr != nil {
		return "", f.resolveErr
	}
	return f.tokens[token], nil
}

func (f *fakeExchange) CreateVaccine(ctx context.Context, userID string, in services.CreateVaccineInput) (*models.Vaccine, error) {
	f.createFor = userID
	f.createIn = in
	return f.vaccine, f.createErr
}

func (f *fakeExchange) Buy(ctx context.Context, buyerID, stockID string) (models.VaccineInfo, error) {
	f.buyer = buyerID
	return f.info, f.buyErr
}

func (f *fakeExchange) Balance(ctx context.Context, userID string) (float64, error) {
	return f.balance, f.balanceErr
}

func (f *fakeExchange) GetPrice(ctx context.Context, stockID string) (float64, error) {
	return f.price, f.priceErr
}

func (f *fakeExchange) List(ctx context.Context) ([]models.FeedEntry, error) {
	return f.feed, f.listErr
}

func (f *fakeExchange) GetUserVaccine(ctx context.Context, userID string) (*models.Vaccine, error) {
	return f.vaccine, f.userVaccineErr
}

func newServer(e Exchange, opts ...Option) *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, e, opts...)
}

func withUser(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}
