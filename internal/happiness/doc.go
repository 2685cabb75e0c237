// Package happiness provides the domain logic for the happiness dashboard.
//
// This package is independent of any UI or transport layer. It can be used
// by web handlers, CLI tools, or tests without modification.
//
// # Dataset
//
// [Load] reads the World Happiness Report CSV once at startup into an
// immutable [Dataset]. The dataset is safe for concurrent read-only access;
// construct it once in main and pass the handle to every consumer. There is
// no hidden global cache; single-load semantics come from single
// construction.
//
// # Filtering and aggregation
//
// [Dataset.Filter] applies [Criteria] (country set plus inclusive year
// range) and returns a [View], an index list into the dataset with no data
// copied. Filtering is pure: identical criteria always yield identical
// views, and odd inputs (unknown countries, inverted ranges, empty
// selections) yield empty views rather than errors.
//
// [Summarize] reduces a registered metric over a view to mean/min/max,
// skipping missing values. An empty or all-missing view produces
// Summary{Available: false}; only an unregistered metric key is an error.
//
// # Metric registry
//
// Numeric columns are registered at init time as [MetricDef] values with a
// typed accessor each, so column access is never by loose string indexing
// and unknown keys are rejected with [ErrUnknownMetric].
//
// # Presentation feeds
//
// [TrendChart], [ComparisonChart], [Dataset.MapChart], [BuildTable], and
// [WriteCSV] turn views into render-ready payloads; the frontend draws them
// without recomputing anything.
//
// # Error Handling
//
// Loader failures are *[MalformedDataError] and fatal to startup. At the
// presentation boundary, [MapError] converts technical errors into coded
// user messages (DATA001, QRY001, ...) for support reference.
package happiness
