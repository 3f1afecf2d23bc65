// Package jobs runs the service's scheduled background tasks on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OutboxRelayJob publishes pending outbox messages (shipment carrier
// changes) to RabbitMQ. Its schedule and batch size come from configuration;
// the default "*/5 * * * * *" runs every five seconds.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewOutboxRelayJob(relayHandler, schedule, batchSize, logger))
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried on the next tick. Runs never overlap:
// a tick that fires while the previous run is still busy is skipped.
package jobs
