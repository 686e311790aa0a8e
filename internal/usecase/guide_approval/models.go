package guide_approval

// Request модель запроса на решение гида по назначению
type Request struct {
	BookingID    int64   // ID бронирования
	GuideID      int64   // ID гида (из заголовка авторизации)
	Approve      bool    // true - подтвердить, false - отклонить
	Observations *string // Комментарий гида (опционально)
}

// Response модель ответа с принятым решением
type Response struct {
	BookingID     int64   // ID бронирования
	BookingNumber string  // Публичный номер
	GuideApproval string  // Итоговый статус назначения
	HoursUntil    float64 // Часов до начала тура на момент решения
}
