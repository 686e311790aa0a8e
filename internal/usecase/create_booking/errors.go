package create_booking

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("create_booking: tour not found")

	// ErrTourInactive возвращается, когда тур снят с продажи
	ErrTourInactive = errors.New("create_booking: tour is not bookable")

	// ErrNoMatchingTier возвращается, когда ни один tier не покрывает
	// запрошенные сезон и размер группы
	ErrNoMatchingTier = errors.New("create_booking: no price tier matches")

	// ErrUnknownAddon возвращается при неизвестном коде дополнения
	ErrUnknownAddon = errors.New("create_booking: unknown addon code")

	// ErrInactiveAddon возвращается, когда дополнение снято с продажи
	ErrInactiveAddon = errors.New("create_booking: addon is no longer offered")

	// ErrDuplicateAddon возвращается при повторении кода дополнения в запросе
	ErrDuplicateAddon = errors.New("create_booking: duplicate addon code")

	// ErrDateBlocked возвращается, когда дата или слот заблокированы персоналом
	ErrDateBlocked = errors.New("create_booking: date is blocked")

	// ErrNoCapacity возвращается, когда в слоте не хватает мест на всю группу
	ErrNoCapacity = errors.New("create_booking: not enough spots available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
