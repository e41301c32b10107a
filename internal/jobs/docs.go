// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(matchStoragesHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is MatchingJob, which sweeps activated vendor storages
// once a minute and creates order requests for every order a storage can
// serve. A sweep tolerates partial failures: unreachable routing or a failed
// candidate insert skips that candidate, the rest of the sweep proceeds, and
// the aggregated error is logged after the run.
package jobs
