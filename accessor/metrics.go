package accessor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports a Cache's counters to Prometheus
type Collector struct {
	cache *Cache

	entries      *prometheus.Desc
	hits         *prometheus.Desc
	misses       *prometheus.Desc
	compilations *prometheus.Desc
	failures     *prometheus.Desc
	discarded    *prometheus.Desc
}

// NewCollector describes the cache's metrics under namespace, labelled with the cache ID
func NewCollector(c *Cache, namespace string) *Collector {
	labels := prometheus.Labels{"cache_id": c.ID()}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "accessor_cache", name), help, nil, labels)
	}

	return &Collector{
		cache:        c,
		entries:      desc("entries", "Number of compiled accessors stored in the cache."),
		hits:         desc("hits_total", "Lookups answered by a stored accessor."),
		misses:       desc("misses_total", "Lookups that found no stored accessor."),
		compilations: desc("compilations_total", "Successful accessor compilations."),
		failures:     desc("failures_total", "Compilations rejected with an error."),
		discarded:    desc("discarded_total", "Compilations dropped because another caller stored the key first."),
	}
}

// Describe implements prometheus.Collector
func (col *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- col.entries
	ch <- col.hits
	ch <- col.misses
	ch <- col.compilations
	ch <- col.failures
	ch <- col.discarded
}

// Collect implements prometheus.Collector
func (col *Collector) Collect(ch chan<- prometheus.Metric) {
	s := col.cache.Stats()
	ch <- prometheus.MustNewConstMetric(col.entries, prometheus.GaugeValue, float64(s.Entries))
	ch <- prometheus.MustNewConstMetric(col.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(col.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(col.compilations, prometheus.CounterValue, float64(s.Compilations))
	ch <- prometheus.MustNewConstMetric(col.failures, prometheus.CounterValue, float64(s.Failures))
	ch <- prometheus.MustNewConstMetric(col.discarded, prometheus.CounterValue, float64(s.Discarded))
}
