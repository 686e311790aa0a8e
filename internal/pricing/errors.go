package pricing

import "errors"

var (
	// ErrTierNotFound возвращается, когда для даты и размера группы не
	// настроен ни один ценовой tier. Фолбэк на цену по умолчанию запрещён.
	ErrTierNotFound = errors.New("pricing: no price tier matches")

	// ErrUnknownAddon возвращается при неизвестном коде дополнения
	ErrUnknownAddon = errors.New("pricing: unknown addon code")

	// ErrInactiveAddon возвращается при выборе деактивированного дополнения
	ErrInactiveAddon = errors.New("pricing: addon is not active")

	// ErrDuplicateAddon возвращается, когда один код дополнения выбран дважды
	ErrDuplicateAddon = errors.New("pricing: duplicate addon code")

	// ErrInvalidPartySize возвращается при неположительном размере группы
	ErrInvalidPartySize = errors.New("pricing: party size must be positive")
)
