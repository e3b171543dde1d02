// Package results records and persists algorithm run outcomes.
//
// A Record captures one optimizer invocation: the algorithm, its parameter
// set (as strings, exactly as configured), the best route and length, wall
// clock, iteration count, and dataset identity. The search engine itself
// never sees this schema; callers attach the metadata and hand the record to
// a Monitor for persistence.
package results

import "time"

// Record is one persisted algorithm run.
type Record struct {
	AlgorithmName     string             `json:"algorithm_name"`
	Parameters        map[string]string  `json:"parameters"`
	RouteLength       float64            `json:"route_length"`
	Route             []int              `json:"route"`
	ExecutionTimeMS   int64              `json:"execution_time_ms"`
	Iterations        int                `json:"iterations"`
	StartTimestamp    time.Time          `json:"start_timestamp"`
	AdditionalMetrics map[string]float64 `json:"additional_metrics"`
	DatasetSize       int                `json:"dataset_size"`
	DatasetName       string             `json:"dataset_name"`
}

// NewRecord starts a record for the named algorithm, stamped with the
// current UTC time.
func NewRecord(algorithm string) *Record {
	return &Record{
		AlgorithmName:     algorithm,
		Parameters:        make(map[string]string),
		AdditionalMetrics: make(map[string]float64),
		StartTimestamp:    time.Now().UTC(),
	}
}

// WithDataset attaches the dataset identity.
func (r *Record) WithDataset(name string, size int) *Record {
	r.DatasetName = name
	r.DatasetSize = size

	return r
}

// WithParameter attaches one configured parameter.
func (r *Record) WithParameter(key, value string) *Record {
	r.Parameters[key] = value

	return r
}

// WithMetric attaches one additional numeric metric.
func (r *Record) WithMetric(key string, value float64) *Record {
	r.AdditionalMetrics[key] = value

	return r
}

// SetResult stores the best route and its length.
func (r *Record) SetResult(length float64, route []int) *Record {
	r.RouteLength = length
	r.Route = route

	return r
}

// SetExecutionTime stores the measured wall-clock duration.
func (r *Record) SetExecutionTime(d time.Duration) *Record {
	r.ExecutionTimeMS = d.Milliseconds()

	return r
}

// SetIterations stores the iteration count reported by the optimizer.
func (r *Record) SetIterations(n int) *Record {
	r.Iterations = n

	return r
}
