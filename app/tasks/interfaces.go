package tasks

type TaskSchedulerInterface interface {
	Start()
	Stop()
	Enqueue(task TaskInterface) bool
}
