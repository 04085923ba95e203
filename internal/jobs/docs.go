// Package jobs provides scheduled background tasks for the delivery system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Currently one job exists:
//
// RiderReconciliationJob - runs every 30 seconds and frees riders whose
// availability flag is stuck on busy although no delivery assigned to them
// remains in a non-terminal status. The lifecycle engine keeps the flag and
// the delivery status in lockstep inside one transaction, so under normal
// operation the job finds nothing to do; it exists for crash recovery and
// manual data surgery.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
