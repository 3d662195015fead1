package catalog

import "github.com/zeromicro/go-zero/core/metric"

var (
	remoteRequests = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "playshelf",
		Subsystem: "catalog",
		Name:      "remote_requests_total",
		Help:      "remote catalog requests by operation and result",
		Labels:    []string{"op", "result"},
	})
	cacheLookups = metric.NewCounterVec(&metric.CounterVecOpts{
		Namespace: "playshelf",
		Subsystem: "catalog",
		Name:      "cache_lookups_total",
		Help:      "catalog cache lookups by operation and outcome",
		Labels:    []string{"op", "outcome"},
	})
)
