package process_scheduled_tasks

// DefaultBatchLimit максимальное число задач за один прогон poller-а
const DefaultBatchLimit = 100

// Request модель запроса на исполнение назревших задач
type Request struct {
	Limit uint64 // Максимум задач за прогон (0 - DefaultBatchLimit)
}

// Response модель ответа с итогами прогона
type Response struct {
	Processed int // Задач помечено исполненными
	Approved  int // Назначений переведено pending -> approved
	Skipped   int // Задач пропущено (решение уже принято или задача перехвачена)
}
