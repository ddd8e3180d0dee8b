/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	gamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "characterdle",
		Name:      "games_started_total",
		Help:      "Games started.",
	})

	gamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "characterdle",
		Name:      "games_finished_total",
		Help:      "Games finished, by outcome.",
	}, []string{"outcome"})

	guessesMade = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "characterdle",
		Name:      "guesses_total",
		Help:      "Guesses evaluated.",
	})

	datasetRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "characterdle",
		Name:      "dataset_records",
		Help:      "Characters in the loaded dataset.",
	})

	datasetRejected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "characterdle",
		Name:      "dataset_rejected_records",
		Help:      "Records skipped while loading the dataset.",
	})

	gamesOpen = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "characterdle",
		Name:      "games_open",
		Help:      "Games currently held in memory.",
	})
)

func registerMetrics(cfg *Config, mux *httprouter.Router) {
	mux.Handler("GET", cfg.prefix+"/metrics", promhttp.Handler())

	logf(cfg, "SERVE: Registered metrics handler at %s/metrics", cfg.prefix)
}
