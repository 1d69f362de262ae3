package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paybatch_batch_validations_total",
		Help: "Batch validation requests by target bank and outcome.",
	}, []string{"bank", "outcome"})

	batchExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paybatch_batch_exports_total",
		Help: "Batch export requests by target bank and outcome.",
	}, []string{"bank", "outcome"})
)
