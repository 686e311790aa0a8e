package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда токен неизвестен
	ErrReservationNotFound = errors.New("reservations.repository: reservation not found")

	// ErrTokenExists возвращается при попытке создать резервацию с уже
	// существующим токеном
	ErrTokenExists = errors.New("reservations.repository: reservation token already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservations.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservations.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservations.repository: failed to scan row")
)
