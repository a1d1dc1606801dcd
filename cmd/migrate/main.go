package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storeradar/config"
	logs "storeradar/internal/infra/log"
	"storeradar/internal/infra/persistence/migrations"
	"storeradar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)
	if command == "help" {
		printUsage()

		return
	}

	if err := run(command, flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	var db *gorm.DB

	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db),
	)
	if err := fxApp.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	ctx := context.Background()
	if err := fxApp.Start(ctx); err != nil {
		return errors.Wrap(err, "start application")
	}
	defer func() { _ = fxApp.Stop(ctx) }()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB from gorm")
	}

	return migrations.Run(ctx, sqlDB, command, args...)
}

func printUsage() {
	fmt.Println("StoreRadar Migration Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  migrate <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back the latest migration")
	fmt.Println("  status   Print the applied and pending migrations")
	fmt.Println("  reset    Roll back every migration")
}
