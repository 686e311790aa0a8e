package guide_approval

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("guide_approval: booking not found")

	// ErrNotAssignedGuide возвращается, когда гид не назначен на эту бронь
	ErrNotAssignedGuide = errors.New("guide_approval: guide is not assigned to this booking")

	// ErrAlreadyDecided возвращается, когда решение по назначению уже принято
	ErrAlreadyDecided = errors.New("guide_approval: assignment already decided")

	// ErrTooLateToReject возвращается, когда до начала тура меньше 48 часов
	ErrTooLateToReject = errors.New("guide_approval: too late to reject the assignment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("guide_approval: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("guide_approval: internal error")
)
