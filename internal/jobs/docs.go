// Package jobs provides scheduled background tasks for the ordering service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and publishes committed outbox events to the broker
// 2. PendingOrderExpiryJob - Runs every minute and cancels unpaid PENDING orders older than the TTL
//
// # Usage
//
//	jobManager := jobs.NewJobManager(publishHandler, expireHandler, cfg.PendingOrderTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log failures and wait for the next tick; nothing is retried in between
// - Overlapping ticks are skipped
// - Failed job starts will stop any already running jobs
package jobs
