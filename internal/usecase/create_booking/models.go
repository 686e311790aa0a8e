package create_booking

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/money"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID      int64            // ID клиента (из заголовка авторизации)
	TourID          int64            // ID тура
	Date            time.Time        // Дата тура (без времени)
	StartTime       types.TimeString // Время начала (например, "09:30")
	NumberOfPeople  int              // Размер группы
	AddonCodes      []string         // Выбранные коды дополнений (опционально)
	GuideID         *int64           // Назначенный гид (опционально)
	PickupLocation  *string          // Место подбора (опционально)
	SpecialRequests *string          // Особые пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64            // ID созданного бронирования
	BookingNumber  string           // Публичный номер бронирования
	CustomerID     int64            // ID клиента
	TourID         int64            // ID тура
	Date           time.Time        // Дата тура
	StartTime      types.TimeString // Время начала
	NumberOfPeople int              // Размер группы
	Status         string           // Статус бронирования

	// Снапшот принятой котировки
	Season      string      // Сезон на дату тура
	TierLabel   string      // Метка применённого tier-а
	BasePrice   money.Cents // Базовая стоимость
	AddonsTotal money.Cents // Сумма дополнений
	TotalPrice  money.Cents // Итоговая стоимость
	AddonCodes  []string    // Принятые коды дополнений
	Currency    string      // Всегда "EUR"

	GuideID       *int64 // Назначенный гид
	GuideApproval string // Статус подтверждения гида

	PickupLocation  *string // Место подбора
	SpecialRequests *string // Особые пожелания

	CreatedAt time.Time // Время создания
}
