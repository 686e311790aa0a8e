package get_availability

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// Request модель запроса доступности на день
type Request struct {
	TourID int64     // ID тура
	Date   time.Time // Дата (без времени)
}

// Slot один сконфигурированный слот дня
type Slot struct {
	StartTime      types.TimeString // Время начала
	EndTime        types.TimeString // Время окончания
	Status         string           // available / booked / blocked
	AvailableSpots int              // Свободных мест
	TotalSpots     int              // Всего мест
}

// Response модель ответа для витрины: слоты дня плюс ценовой диапазон
// сезона "от ... до ..."
type Response struct {
	TourID    int64        // ID тура
	Date      time.Time    // Дата
	Season    string       // Сезон на эту дату
	PriceFrom *money.Cents // Минимальная цена tier-а сезона (nil - tier-ов нет)
	PriceTo   *money.Cents // Максимальная цена tier-а сезона
	Slots     []Slot       // Слоты дня
}
