package addons

import "errors"

var (
	// ErrAddonNotFound возвращается, когда дополнение не найдено
	ErrAddonNotFound = errors.New("addons.repository: addon not found")

	// ErrCodeExists возвращается при попытке создать дополнение с занятым кодом
	ErrCodeExists = errors.New("addons.repository: addon code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("addons.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("addons.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("addons.repository: failed to scan row")
)
