// Package jobs provides scheduled background tasks for the order desk.
//
// Jobs are cron-based (github.com/robfig/cron/v3). Schedules accept the
// standard five fields, an optional leading seconds field, or descriptors
// such as "@every 30s".
//
// # Available Jobs
//
//  1. AgentReleaseJob - returns agents whose delivery window has passed to idle
//     and marks their orders delivered
//  2. LowStockJob - logs a warning for every menu item at or below a threshold
//
// # Usage
//
//	jobManager := jobs.NewJobManager(releaseJob, lowStockJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the schedule keeps going. A job that fails to
// start stops the jobs started before it.
package jobs
