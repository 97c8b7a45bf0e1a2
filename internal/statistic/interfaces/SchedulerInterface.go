package interfaces

import "time"

type SchedulerInterface interface {
	Init() error
	Stop()
	NextRun() time.Time
	Restore() error
	Persist() error
}
