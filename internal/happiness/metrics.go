package happiness

import (
	"fmt"
	"sync"
)

// MetricDef describes one numeric column of the dataset: how it appears in
// the source CSV, how it is displayed, and how to read it off a Record.
// Accessors return Float so missing values stay explicit.
type MetricDef struct {
	Key    Metric
	Label  string // display name: "Life Ladder"
	Header string // CSV header, matched case-insensitively
	Value  func(Record) Float
}

var (
	metricRegistry = make(map[Metric]MetricDef)
	metricOrder    []Metric
	metricMu       sync.RWMutex
)

// RegisterMetric adds a metric definition to the registry.
// Panics if a metric with the same key is already registered.
func RegisterMetric(def MetricDef) {
	metricMu.Lock()
	defer metricMu.Unlock()

	if _, exists := metricRegistry[def.Key]; exists {
		panic(fmt.Sprintf("metric already registered: %s", def.Key))
	}

	metricRegistry[def.Key] = def
	metricOrder = append(metricOrder, def.Key)
}

// GetMetric returns a metric definition by key.
// Returns false if not found.
func GetMetric(key Metric) (MetricDef, bool) {
	metricMu.RLock()
	defer metricMu.RUnlock()

	def, ok := metricRegistry[key]
	return def, ok
}

// Metrics returns all registered metric definitions in registration order.
func Metrics() []MetricDef {
	metricMu.RLock()
	defer metricMu.RUnlock()

	result := make([]MetricDef, 0, len(metricOrder))
	for _, key := range metricOrder {
		result = append(result, metricRegistry[key])
	}
	return result
}

// MetricCount returns the number of registered metrics.
func MetricCount() int {
	metricMu.RLock()
	defer metricMu.RUnlock()
	return len(metricRegistry)
}

func init() {
	RegisterMetric(MetricDef{
		Key:    MetricLifeLadder,
		Label:  "Life Ladder",
		Header: "Life Ladder",
		Value:  func(r Record) Float { return r.LifeLadder },
	})
	RegisterMetric(MetricDef{
		Key:    MetricLogGDP,
		Label:  "Log GDP per capita",
		Header: "Log GDP per capita",
		Value:  func(r Record) Float { return r.LogGDP },
	})
	RegisterMetric(MetricDef{
		Key:    MetricSocialSupport,
		Label:  "Social support",
		Header: "Social support",
		Value:  func(r Record) Float { return r.SocialSupport },
	})
	RegisterMetric(MetricDef{
		Key:    MetricLifeExpectancy,
		Label:  "Healthy life expectancy at birth",
		Header: "Healthy life expectancy at birth",
		Value:  func(r Record) Float { return r.LifeExpectancy },
	})
}
