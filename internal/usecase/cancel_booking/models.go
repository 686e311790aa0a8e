package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64   // ID бронирования
	ActorID   int64   // ID инициатора (клиент или сотрудник)
	ByStaff   bool    // Отмена персоналом (без проверки владельца)
	Reason    *string // Причина отмены (опционально)
}

// Response модель ответа после отмены
type Response struct {
	ID            int64     // ID бронирования
	BookingNumber string    // Публичный номер
	Status        string    // Итоговый статус
	CancelledAt   time.Time // Время отмены
}
