package daemons

import (
	"sync"

	"github.com/zsmartex/mocktrade/jobs"
)

type Worker interface {
	Start()
	Stop()
}

type CronJob struct {
	Jobs []jobs.Job

	stop chan struct{}
	once sync.Once
}

func NewCronJob(jobs ...jobs.Job) *CronJob {
	return &CronJob{
		Jobs: jobs,
		stop: make(chan struct{}),
	}
}

// Stop stops every job and unblocks Start.
func (c *CronJob) Stop() {
	c.once.Do(func() {
		for _, job := range c.Jobs {
			job.Stop()
		}

		close(c.stop)
	})
}

// Start runs every job in its own goroutine and blocks until Stop.
func (c *CronJob) Start() {
	for _, job := range c.Jobs {
		go job.Process()
	}

	<-c.stop
}
