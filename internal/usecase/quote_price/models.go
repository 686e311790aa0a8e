package quote_price

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	TourID         int64     // ID тура
	Date           time.Time // Дата тура (без времени)
	NumberOfPeople int       // Размер группы
	AddonCodes     []string  // Выбранные коды дополнений (опционально)
}

// AddonLine одна строка дополнения в котировке
type AddonLine struct {
	Code  string      // Код дополнения
	Total money.Cents // Стоимость строки (с учётом размера группы)
}

// Response модель ответа с котировкой
type Response struct {
	TourID         int64       // ID тура
	Date           time.Time   // Дата тура
	NumberOfPeople int         // Размер группы
	Season         string      // Определённый сезон
	TierLabel      string      // Метка применённого tier-а
	BasePrice      money.Cents // Базовая стоимость по tier-у
	Addons         []AddonLine // Строки дополнений
	AddonsTotal    money.Cents // Сумма дополнений
	Total          money.Cents // Итоговая стоимость
	Currency       string      // Всегда "EUR"
}
