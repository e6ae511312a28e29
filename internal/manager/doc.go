// Package manager provides lifecycle coordination for the emotion
// classification model. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, simple getters.
//   - config.go: ManagerConfig and package defaults; NewWithConfig applies defaults.
//   - types.go: state machine types plus the Handle and Loader contracts.
//   - errors.go: error types and helpers (IsInvalidInput, IsLoad, IsInference).
//   - ensure.go: EnsureReady single-flight loading.
//   - predict.go: Predict validation and inference orchestration.
//   - status_report.go: Snapshot/Status/Health projections.
//   - metrics.go: prometheus counters for loads and predictions.
//
// The state machine is unloaded → loading → ready, with failed as a
// re-attemptable terminal for a single load attempt. Exactly one load is in
// flight at any time; concurrent EnsureReady callers coalesce on it and all
// observe the same outcome. The loaded Handle is read-only and may be shared
// by any number of concurrent Predict calls.
//
// External packages should treat this package as the orchestration layer and
// use public methods only (New/NewWithConfig, EnsureReady, Predict, Ready,
// Status, Health, Snapshot). Internal types are subject to change.
package manager
