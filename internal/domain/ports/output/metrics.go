package ports

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../../../mocks/metrics --outpkg mocks --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementCacheHits()
	IncrementCacheMisses()
	RecordCacheOperationDuration(operation string, duration time.Duration)

	IncrementPostOperations(operation string, success bool)
	IncrementTagOperations(operation string, success bool)
	IncrementMediaOperations(operation string, success bool)
	RecordPipelineDuration(pipeline string, duration time.Duration)

	SetServiceHealth(healthy bool)
}
