package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"storeradar/internal/app"
	"storeradar/internal/domain/entity"
	"storeradar/internal/domain/service"
	"storeradar/internal/infra/progress"
	"storeradar/internal/usecase"
	"storeradar/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported subcommands:
// - catalog:       goods then stores
// - prices:        prices for one inspect day
// - regions:       region codes
// - price-changes: differencing for one inspect day

func main() {
	catalogCmd := flag.NewFlagSet("catalog", flag.ExitOnError)
	pricesCmd := flag.NewFlagSet("prices", flag.ExitOnError)
	regionsCmd := flag.NewFlagSet("regions", flag.ExitOnError)
	priceChangesCmd := flag.NewFlagSet("price-changes", flag.ExitOnError)

	pricesDay := pricesCmd.String("day", "", "Inspect day to fetch (YYYYMMDD)")
	priceChangesDay := priceChangesCmd.String("day", "", "Inspect day to difference against the previous one (YYYYMMDD)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := syncFlags{
		Catalog:      catalogCmd,
		Prices:       dayFlags{cmd: pricesCmd, day: pricesDay},
		Regions:      regionsCmd,
		PriceChanges: dayFlags{cmd: priceChangesCmd, day: priceChangesDay},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type syncFlags struct {
	Catalog      *flag.FlagSet
	Prices       dayFlags
	Regions      *flag.FlagSet
	PriceChanges dayFlags
}

type dayFlags struct {
	cmd *flag.FlagSet
	day *string
}

// parse validates the -day flag after the flag set consumed the remaining args.
func (f dayFlags) parse(args []string) (entity.InspectDay, error) {
	if err := f.cmd.Parse(args); err != nil {
		return "", errors.Wrap(err, "parse flags")
	}
	if *f.day == "" {
		return "", errors.New("-day is required")
	}

	return entity.ParseInspectDay(*f.day)
}

type runFunc func(ctx context.Context, syncUC usecase.SyncUsecase, priceChangeUC usecase.PriceChangeUsecase) (any, error)

func runSubcommand(flags *syncFlags) error {
	args := os.Args[2:]

	var run runFunc
	switch os.Args[1] {
	case "catalog":
		if err := flags.Catalog.Parse(args); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		run = func(ctx context.Context, syncUC usecase.SyncUsecase, _ usecase.PriceChangeUsecase) (any, error) {
			return syncUC.SyncCatalog(ctx)
		}
	case "prices":
		day, err := flags.Prices.parse(args)
		if err != nil {
			return err
		}
		run = func(ctx context.Context, syncUC usecase.SyncUsecase, _ usecase.PriceChangeUsecase) (any, error) {
			return syncUC.SyncPrices(ctx, day)
		}
	case "regions":
		if err := flags.Regions.Parse(args); err != nil {
			return errors.Wrap(err, "parse flags")
		}
		run = func(ctx context.Context, syncUC usecase.SyncUsecase, _ usecase.PriceChangeUsecase) (any, error) {
			return syncUC.SyncRegions(ctx)
		}
	case "price-changes":
		day, err := flags.PriceChanges.parse(args)
		if err != nil {
			return err
		}
		run = func(ctx context.Context, _ usecase.SyncUsecase, priceChangeUC usecase.PriceChangeUsecase) (any, error) {
			inserted, err := priceChangeUC.SyncPriceChanges(ctx, day)
			if err != nil {
				return nil, err
			}

			return &entity.PriceChangeSyncResult{InspectDay: day, Inserted: inserted}, nil
		}
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}

	return execute(os.Args[1], run)
}

// execute boots the shared providers without the HTTP server or scheduler and runs one usecase.
func execute(name string, run runFunc) error {
	var (
		syncUC        usecase.SyncUsecase
		priceChangeUC usecase.PriceChangeUsecase
	)

	fxApp := fx.New(
		fx.NopLogger,
		app.Infra(),
		app.Repositories(),
		app.Services(),
		app.Usecases(),
		fx.Provide(
			fx.Annotate(
				func() *progress.BarReporter { return progress.NewBarReporter(os.Stderr) },
				fx.As(new(service.ProgressReporter)),
			),
		),
		fx.Populate(&syncUC, &priceChangeUC),
	)
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
		defer cancelStop()
		if err := fxApp.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: shutdown failed: %v\n", err)
		}
	}()

	started := time.Now()
	result, err := run(context.Background(), syncUC, priceChangeUC)
	if err != nil {
		return errors.Wrapf(err, "%s sync", name)
	}

	return printSummary(name, time.Since(started), result)
}

func printSummary(name string, elapsed time.Duration, result any) error {
	summary := struct {
		Command  string `json:"command"`
		Duration string `json:"duration"`
		Result   any    `json:"result"`
	}{
		Command:  name,
		Duration: util.FormatDuration(elapsed),
		Result:   result,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(summary); err != nil {
		return errors.Wrap(err, "write summary")
	}

	return nil
}

func printUsage() {
	fmt.Println("StoreRadar Sync Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  sync <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  catalog         Sync goods, then geocode and sync stores")
	fmt.Println("  prices          Sync prices for every store on one inspect day")
	fmt.Println("  regions         Sync region codes")
	fmt.Println("  price-changes   Difference one inspect day against the previous one")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  sync catalog")
	fmt.Println("  sync prices -day 20240105")
	fmt.Println("  sync price-changes -day 20240105")
}
