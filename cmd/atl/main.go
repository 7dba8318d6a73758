// Command atl runs the Aotearoa Tours management terminal application.
package main

import (
	"context"
	"fmt"
	"os"

	"aotearoa/internal/audit"
	"aotearoa/internal/catalog"
	"aotearoa/internal/cli"
	"aotearoa/internal/customer"
	"aotearoa/internal/enrollment"
	"aotearoa/internal/platform/config"
	"aotearoa/internal/platform/logger"
	"aotearoa/internal/registration"
	"aotearoa/internal/reporting"
	"aotearoa/internal/tour"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "atl:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	customers := customer.NewInMemoryStore()
	tours := tour.NewInMemoryStore()

	data, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := catalog.Apply(ctx, data, customers, tours); err != nil {
		return fmt.Errorf("apply catalog: %w", err)
	}

	publisher := audit.NewPublisher(audit.NewInMemoryStore(), log)

	app := cli.NewApp(
		cli.NewConsole(os.Stdin, os.Stdout, cfg.ColorEnabled),
		enrollment.New(customers, tours,
			enrollment.WithLogger(log),
			enrollment.WithAuditPublisher(publisher),
		),
		registration.New(customers,
			registration.WithLogger(log),
			registration.WithAuditPublisher(publisher),
		),
		reporting.New(customers, tours),
		log,
	)
	return app.Run(ctx)
}
