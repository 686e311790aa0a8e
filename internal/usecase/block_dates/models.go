package block_dates

import (
	"time"

	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// Request модель запроса на блокировку/разблокировку даты.
// Если From и To не заданы, блокируется весь день; заданные оба -
// блокируются слоты в диапазоне. Unblock снимает блокировку всего дня.
type Request struct {
	TourID  int64             // ID тура
	Date    time.Time         // Дата (без времени)
	From    *types.TimeString // Начало диапазона (опционально)
	To      *types.TimeString // Конец диапазона (опционально)
	Unblock bool              // Снять блокировку вместо установки
}

// Response модель ответа. Существующие брони никогда не отменяются
// автоматически: их количество возвращается персоналу для ручного решения.
type Response struct {
	TourID         int64     // ID тура
	Date           time.Time // Дата
	Blocked        bool      // Итоговое состояние
	ActiveBookings int       // Активные брони, затронутые блокировкой
}
