package quote_price

import "errors"

var (
	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("quote_price: tour not found")

	// ErrTourInactive возвращается, когда тур снят с продажи
	ErrTourInactive = errors.New("quote_price: tour is not bookable")

	// ErrNoMatchingTier возвращается, когда ни один tier не покрывает
	// запрошенные сезон и размер группы
	ErrNoMatchingTier = errors.New("quote_price: no price tier matches")

	// ErrUnknownAddon возвращается при неизвестном коде дополнения
	ErrUnknownAddon = errors.New("quote_price: unknown addon code")

	// ErrInactiveAddon возвращается, когда дополнение снято с продажи
	ErrInactiveAddon = errors.New("quote_price: addon is no longer offered")

	// ErrDuplicateAddon возвращается при повторении кода дополнения в запросе
	ErrDuplicateAddon = errors.New("quote_price: duplicate addon code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
