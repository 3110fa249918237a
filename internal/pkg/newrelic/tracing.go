package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromEchoContext extracts New Relic transaction from Echo context
func FromEchoContext(c echo.Context) *newrelic.Transaction {
	return nrecho.FromContext(c)
}

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// AddTransactionAttribute adds a custom attribute to the transaction
func AddTransactionAttribute(txn *newrelic.Transaction, key string, value interface{}) {
	if txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports err on the transaction carried by ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// StartDatastoreSegment opens a Postgres segment for a repository call.
// The returned func ends it and is safe to call without a transaction.
func StartDatastoreSegment(ctx context.Context, table, operation string) func() {
	txn := FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	seg := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: table,
		Operation:  operation,
	}
	return seg.End
}

// StartMessageSegment opens a NATS producer segment for a gateway publish
func StartMessageSegment(ctx context.Context, subject string) func() {
	txn := FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	seg := &newrelic.MessageProducerSegment{
		StartTime:       txn.StartSegmentNow(),
		Library:         "NATS",
		DestinationType: newrelic.MessageTopic,
		DestinationName: subject,
	}
	return seg.End
}

// WithSegment executes fn within a named segment
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}
	seg := txn.StartSegment(segmentName)
	defer seg.End()
	return fn()
}
