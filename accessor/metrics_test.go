package accessor

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorExportsStats(t *testing.T) {
	c := newCatalog(t)
	cache := NewCache(WithID("test"))
	age := resolve[Person](t, c, "Age")

	cache.GetOrCompile(age, InstanceAnyVisibility, Get)
	cache.GetOrCompile(age, InstanceAnyVisibility, Get)
	cache.GetOrCompile(age, StaticAnyVisibility, Get)

	col := NewCollector(cache, "fastflect")

	if n := testutil.CollectAndCount(col); n != 6 {
		t.Errorf("Expected 6 metrics, got %d", n)
	}

	expected := `
# HELP fastflect_accessor_cache_entries Number of compiled accessors stored in the cache.
# TYPE fastflect_accessor_cache_entries gauge
fastflect_accessor_cache_entries{cache_id="test"} 1
# HELP fastflect_accessor_cache_failures_total Compilations rejected with an error.
# TYPE fastflect_accessor_cache_failures_total counter
fastflect_accessor_cache_failures_total{cache_id="test"} 1
# HELP fastflect_accessor_cache_hits_total Lookups answered by a stored accessor.
# TYPE fastflect_accessor_cache_hits_total counter
fastflect_accessor_cache_hits_total{cache_id="test"} 1
# HELP fastflect_accessor_cache_misses_total Lookups that found no stored accessor.
# TYPE fastflect_accessor_cache_misses_total counter
fastflect_accessor_cache_misses_total{cache_id="test"} 2
`
	err := testutil.CollectAndCompare(col, strings.NewReader(expected),
		"fastflect_accessor_cache_entries",
		"fastflect_accessor_cache_failures_total",
		"fastflect_accessor_cache_hits_total",
		"fastflect_accessor_cache_misses_total")
	if err != nil {
		t.Errorf("Unexpected metrics: %v", err)
	}
}

func TestCollectorRegistersWithoutConflict(t *testing.T) {
	registry := prometheus.NewPedanticRegistry()
	if err := registry.Register(NewCollector(NewCache(WithID("a")), "fastflect")); err != nil {
		t.Fatalf("Failed to register first collector: %v", err)
	}
	if err := registry.Register(NewCollector(NewCache(WithID("b")), "fastflect")); err != nil {
		t.Fatalf("Expected caches with different IDs to coexist, got %v", err)
	}
	if _, err := registry.Gather(); err != nil {
		t.Errorf("Failed to gather: %v", err)
	}
}
