package availability

import "errors"

var (
	// ErrSlotBlocked возвращается при попытке брони на заблокированную
	// дату. Частичная бронь на blackout-дату запрещена.
	ErrSlotBlocked = errors.New("availability: slot is blocked")

	// ErrNoCapacity возвращается, когда мест не хватает. Одна и та же
	// ошибка до и после гонки за последнее место - вызывающий код
	// не должен их различать и не должен ретраить.
	ErrNoCapacity = errors.New("availability: not enough capacity")

	// ErrUnknownToken возвращается при release с неизвестным токеном
	ErrUnknownToken = errors.New("availability: unknown reservation token")

	// ErrInvalidCount возвращается при неположительном количестве мест
	ErrInvalidCount = errors.New("availability: count must be positive")

	// ErrDuplicateReservation возвращается, когда токен брони уже
	// существует (повторный запрос с тем же номером бронирования)
	ErrDuplicateReservation = errors.New("availability: reservation already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
