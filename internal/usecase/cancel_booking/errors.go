package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrNotOwner возвращается, когда клиент пытается отменить чужую бронь
	ErrNotOwner = errors.New("cancel_booking: booking belongs to another customer")

	// ErrNotCancellable возвращается, когда бронь уже завершена или отменена
	ErrNotCancellable = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
