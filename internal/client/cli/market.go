package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/dmitrijs2005/vaccx/internal/client/services"
)

var errStockIDRequired = errors.New("stock id required")

func (a *App) Balance(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	b, err := a.marketService.Balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Balance: %g\n", b)
	return nil
}

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.marketService.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No public vaccines yet")
		return nil
	}
	for _, l := range list {
		fmt.Fprintf(a.out, "%s\t%s\n", l.StockID, l.Name)
	}
	return nil
}

// Create lists a vaccine. Arguments are name, rna info, private price and an
// optional public price; without arguments every value is prompted for.
func (a *App) Create(ctx context.Context, args []string) error {
	v, err := a.readNewVaccine(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	created, err := a.marketService.Create(ctx, v)
	if err != nil {
		return err
	}
	printVaccine(a, created)
	return nil
}

func (a *App) readNewVaccine(args []string) (models.NewVaccine, error) {
	var v models.NewVaccine

	if len(args) > 0 {
		if len(args) < 3 || len(args) > 4 {
			return v, errors.New("usage: create <name> <rna_info> <private_price> [public_price]")
		}
		v.Name, v.RNAInfo = args[0], args[1]
		p, err := parsePrice(args[2])
		if err != nil {
			return v, err
		}
		v.PrivatePrice = p
		if len(args) == 4 {
			pub, err := parsePrice(args[3])
			if err != nil {
				return v, err
			}
			v.PublicPrice = &pub
		}
		return v, nil
	}

	var err error
	if v.Name, err = getSimpleText(a.reader, "Vaccine name", a.out); err != nil {
		return v, err
	}
	if v.RNAInfo, err = getSimpleText(a.reader, "RNA info", a.out); err != nil {
		return v, err
	}
	private, err := getPrice(a.reader, "Private price", false, a.out)
	if err != nil {
		return v, err
	}
	v.PrivatePrice = *private
	if v.PublicPrice, err = getPrice(a.reader, "Public price (empty to keep it private)", true, a.out); err != nil {
		return v, err
	}
	return v, nil
}

func (a *App) stockID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	id, err := getSimpleText(a.reader, "Stock id", a.out)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errStockIDRequired
	}
	return id, nil
}

// Buy purchases a stock and prints the rna info received.
func (a *App) Buy(ctx context.Context, args []string) error {
	stockID, err := a.stockID(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rna, err := a.marketService.Buy(ctx, stockID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bought. RNA info: %s\n", rna)
	return nil
}

func (a *App) Price(ctx context.Context, args []string) error {
	stockID, err := a.stockID(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	p, err := a.marketService.Price(ctx, stockID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Price: %g\n", p)
	return nil
}

func (a *App) Vaccine(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	v, err := a.marketService.MyVaccine(ctx)
	if err != nil {
		return err
	}
	printVaccine(a, v)
	return nil
}

// Monitor prints price changes of a stock until interrupted.
func (a *App) Monitor(ctx context.Context, args []string) error {
	stockID, err := a.stockID(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(a.out, "Watching %s, Ctrl-C to stop\n", stockID)
	return a.marketService.Monitor(ctx, stockID, a.config.MonitorInterval, func(u services.PriceUpdate) {
		if u.Previous == 0 {
			fmt.Fprintf(a.out, "%s  %s  %g\n", u.At.Format("15:04:05"), u.StockID, u.Price)
			return
		}
		fmt.Fprintf(a.out, "%s  %s  %g -> %g\n", u.At.Format("15:04:05"), u.StockID, u.Previous, u.Price)
	})
}

func printVaccine(a *App, v *models.Vaccine) {
	fmt.Fprintf(a.out, "Name:     %s\nRNA info: %s\nSeller:   %s\n", v.Name, v.RNAInfo, v.SellerID)
	fmt.Fprintf(a.out, "Private:  %s  price %g\n", v.Private.StockID, v.Private.Price)
	if v.Public != nil {
		fmt.Fprintf(a.out, "Public:   %s  price %g\n", v.Public.StockID, v.Public.Price)
	}
}
