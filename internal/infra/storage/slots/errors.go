package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots.repository: slot not found")

	// ErrNoCapacity возвращается, когда условное обновление не прошло:
	// мест не хватает или слот заблокирован. Одна и та же ошибка для
	// "мест нет" и "проиграли гонку за последнее место".
	ErrNoCapacity = errors.New("slots.repository: not enough capacity")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slots.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slots.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slots.repository: failed to scan row")
)
