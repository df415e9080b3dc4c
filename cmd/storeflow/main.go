package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/api"
	"github.com/wellywell/storeflow/internal/audit"
	"github.com/wellywell/storeflow/internal/clock"
	"github.com/wellywell/storeflow/internal/compress"
	"github.com/wellywell/storeflow/internal/config"
	"github.com/wellywell/storeflow/internal/dashboard"
	"github.com/wellywell/storeflow/internal/db"
	"github.com/wellywell/storeflow/internal/handlers"
	"github.com/wellywell/storeflow/internal/order"
	"github.com/wellywell/storeflow/internal/products"
	"github.com/wellywell/storeflow/internal/router"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		panic(err)
	}
	conf.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var clockOpts []clock.Option
	if conf.DatabaseDSN != "" {
		database, err := db.NewDatabase(conf.DatabaseDSN)
		if err != nil {
			panic(err)
		}
		defer database.Close()
		clockOpts = append(clockOpts, clock.WithPersister(database))
	}
	clk := clock.New(clockOpts...)
	if err := clk.Restore(ctx); err != nil {
		logger.Errorf("Could not restore virtual clock: %s", err.Error())
	}

	var publisher order.Publisher = audit.LogPublisher{}
	if len(conf.KafkaBrokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(conf.KafkaBrokers, conf.KafkaTopic)
		if err != nil {
			panic(err)
		}
		defer kafka.Close()
		publisher = kafka
	}

	client := api.NewClient(conf.APIAddress, conf.APIToken, conf.FetchTimeout)
	catalog := products.NewCache(client)
	store := dashboard.NewStore(ctx, client, catalog, clk, publisher, dashboard.Config{
		Debounce:     conf.Debounce,
		FetchTimeout: conf.FetchTimeout,
		PageSize:     conf.PageSize,
		MaxQuantity:  conf.MaxQuantity,
		WindowDays:   conf.SummaryWindowDays,
		DiscardStale: conf.DiscardStale,
	})
	defer store.Close()
	store.Refresh()

	handlerSet := handlers.NewHandlerSet(store, catalog, clk, conf.SLA())

	r := router.NewRouter(conf, handlerSet, compress.RequestUngzipper{})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := r.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("Shutdown failed: %s", err.Error())
		}
	}()

	logger.Infof("Listening on %s, order API at %s", conf.RunAddress, conf.APIAddress)
	err = r.ListenAndServe()
	if err != nil {
		logger.Error(err)
	}
}
