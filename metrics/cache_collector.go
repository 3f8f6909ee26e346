// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/filtra/dataset"
)

// CacheCollector exports dataset.Cache lookup counters on scrape.
type CacheCollector struct {
	cache *dataset.Cache

	lookups *prometheus.Desc
	writes  *prometheus.Desc
	entries *prometheus.Desc
}

// NewCacheCollector returns a collector over c; register it with
// prometheus.Registerer.Register.
func NewCacheCollector(c *dataset.Cache) *CacheCollector {
	return &CacheCollector{
		cache: c,
		lookups: prometheus.NewDesc(
			"filtra_cache_lookups_total",
			"Distance-matrix cache lookups by outcome",
			[]string{"result"}, nil,
		),
		writes: prometheus.NewDesc(
			"filtra_cache_writes_total",
			"Distance matrices written to disk",
			nil, nil,
		),
		entries: prometheus.NewDesc(
			"filtra_cache_memory_entries",
			"Distance matrices held in memory",
			nil, nil,
		),
	}
}

func (cc *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cc.lookups
	ch <- cc.writes
	ch <- cc.entries
}

func (cc *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	st := cc.cache.Stats()

	ch <- prometheus.MustNewConstMetric(cc.lookups, prometheus.CounterValue, float64(st.MemHits), "memory")
	ch <- prometheus.MustNewConstMetric(cc.lookups, prometheus.CounterValue, float64(st.DiskHits), "disk")
	ch <- prometheus.MustNewConstMetric(cc.lookups, prometheus.CounterValue, float64(st.Misses), "miss")
	ch <- prometheus.MustNewConstMetric(cc.writes, prometheus.CounterValue, float64(st.Writes))
	ch <- prometheus.MustNewConstMetric(cc.entries, prometheus.GaugeValue, float64(cc.cache.Len()))
}
