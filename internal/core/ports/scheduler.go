package ports

import "time"

// SchedulerService drives the background reconciler.
type SchedulerService interface {
	Start()
	Stop()
	ScheduleRecurring(interval time.Duration, task func()) error
}
