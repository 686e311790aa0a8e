package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
	slotsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/slots"
	reservationsRepo "github.com/yydtours/YYD-BookingService/internal/infra/storage/reservations"
	"github.com/yydtours/YYD-BookingService/pkg/metrics"
	"github.com/yydtours/YYD-BookingService/pkg/types"
)

// dayEnd конец суток для blackout-строки на весь день
const dayEnd = types.TimeString("23:59")

// Service (AvailabilityLedger) - единственный источник истины о наличии
// мест и единственный писатель занятости слотов. Проверка и инкремент
// счётчика выполняются одним условным UPDATE в хранилище, поэтому
// конкурентные брони на последнее место линеаризуются без блокировок
// в памяти сервиса.
type Service struct {
	slotRepo SlotRepository
	resRepo  ReservationRepository
	bookings BookingCounter
	cache    DayCache
	logger   Logger
	metrics  ReservationMetrics
}

// NewService создает новый экземпляр ledger-а
func NewService(
	slotRepo SlotRepository,
	resRepo ReservationRepository,
	bookings BookingCounter,
	cache DayCache,
	logger Logger,
	m ReservationMetrics,
) *Service {
	if cache == nil {
		cache = NopCache{}
	}
	if m == nil {
		m = NopMetrics{}
	}
	return &Service{
		slotRepo: slotRepo,
		resRepo:  resRepo,
		bookings: bookings,
		cache:    cache,
		logger:   logger,
		metrics:  m,
	}
}

// Reserve атомарно занимает count мест в слоте (tourID, date, startTime)
// и возвращает долговечную резервацию. Слот материализуется лениво:
// несконфигурированная дата читается как открытая с вместимостью тура
// по умолчанию. Вызывается внутри сериализуемой транзакции usecase-а.
func (s *Service) Reserve(
	ctx context.Context,
	tour *domain.Tour,
	date time.Time,
	startTime types.TimeString,
	count int,
	bookingNumber string,
) (*domain.Reservation, error) {
	if count < 1 {
		s.metrics.ObserveReservation(metrics.ResultError)
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	slot, err := s.ensureSlot(ctx, tour, date, startTime)
	if err != nil {
		s.metrics.ObserveReservation(metrics.ResultError)
		return nil, err
	}

	if slot.IsBlocked() {
		s.logger.Warn("Reserve: slot tour=%d date=%s time=%s is blocked",
			tour.ID, date.Format(domain.DateFormat), startTime)
		s.metrics.ObserveReservation(metrics.ResultBlocked)
		return nil, ErrSlotBlocked
	}

	if err := s.slotRepo.ReserveCapacity(ctx, slot.ID, count); err != nil {
		if errors.Is(err, slotsRepo.ErrNoCapacity) {
			s.logger.Warn("Reserve: no capacity on slot id=%d (%d/%d booked, need %d)",
				slot.ID, slot.BookedSlots, slot.MaxSlots, count)
			s.metrics.ObserveReservation(metrics.ResultCapacity)
			return nil, ErrNoCapacity
		}
		s.metrics.ObserveReservation(metrics.ResultError)
		return nil, fmt.Errorf("%w: reserve capacity: %v", ErrInternal, err)
	}

	reservation := &domain.Reservation{
		Token:         domain.ReservationTokenFor(bookingNumber),
		SlotID:        slot.ID,
		BookingNumber: bookingNumber,
		Count:         count,
	}

	if err := s.resRepo.Create(ctx, reservation); err != nil {
		if errors.Is(err, reservationsRepo.ErrTokenExists) {
			return nil, ErrDuplicateReservation
		}
		s.metrics.ObserveReservation(metrics.ResultError)
		return nil, fmt.Errorf("%w: create reservation: %v", ErrInternal, err)
	}

	s.metrics.ObserveReservation(metrics.ResultOK)

	s.logger.Info("Reserve: slot id=%d reserved %d spots, token=%s", slot.ID, count, reservation.Token)
	return reservation, nil
}

// Release возвращает места резервации слоту. Идемпотентна: повторный
// release того же токена - no-op (защита от дублей webhook-ов отмены).
// Токен восстановим из номера бронирования, поэтому release работает
// и после рестарта процесса.
func (s *Service) Release(ctx context.Context, token string) error {
	reservation, err := s.resRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, reservationsRepo.ErrReservationNotFound) {
			return ErrUnknownToken
		}
		return fmt.Errorf("%w: get reservation: %v", ErrInternal, err)
	}

	if reservation.IsReleased() {
		s.logger.Info("Release: token=%s already released, no-op", token)
		return nil
	}

	released, err := s.resRepo.MarkReleased(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: mark released: %v", ErrInternal, err)
	}
	if !released {
		// Проиграли гонку конкурентному release - места уже возвращены
		s.logger.Info("Release: token=%s released concurrently, no-op", token)
		return nil
	}

	if err := s.slotRepo.ReleaseCapacity(ctx, reservation.SlotID, reservation.Count); err != nil {
		return fmt.Errorf("%w: release capacity: %v", ErrInternal, err)
	}

	s.logger.Info("Release: token=%s returned %d spots to slot id=%d",
		token, reservation.Count, reservation.SlotID)
	return nil
}

// BlockDate блокирует все слоты тура на дату (blackout). Существующие
// подтверждённые бронирования не отменяются - их количество возвращается
// вызывающему коду, решение за ним. Если на дату нет ни одного слота,
// создаётся блокирующая строка на весь день, чтобы ленивое чтение
// "нет строки = открыто" не обошло blackout.
func (s *Service) BlockDate(ctx context.Context, tour *domain.Tour, date time.Time) (activeBookings int, err error) {
	blocked, err := s.slotRepo.BlockByDate(ctx, tour.ID, date)
	if err != nil {
		return 0, fmt.Errorf("%w: block by date: %v", ErrInternal, err)
	}

	if blocked == 0 {
		dayBlock := &domain.AvailabilitySlot{
			TourID:    tour.ID,
			Date:      date,
			StartTime: types.TimeString("00:00"),
			EndTime:   dayEnd,
			MaxSlots:  0,
			Status:    domain.SlotBlocked,
		}
		if err := s.slotRepo.CreateIfAbsent(ctx, dayBlock); err != nil {
			return 0, fmt.Errorf("%w: create day block: %v", ErrInternal, err)
		}
	}

	activeBookings, err = s.bookings.CountActiveByTourDate(ctx, tour.ID, date)
	if err != nil {
		return 0, fmt.Errorf("%w: count active bookings: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDate: tour=%d date=%s blocked (%d slots, %d active bookings remain)",
		tour.ID, date.Format(domain.DateFormat), blocked, activeBookings)
	return activeBookings, nil
}

// BlockTimeRange блокирует слоты тура на дату со временем начала в
// диапазоне [from, to)
func (s *Service) BlockTimeRange(ctx context.Context, tour *domain.Tour, date time.Time, from, to types.TimeString) (activeBookings int, err error) {
	blocked, err := s.slotRepo.BlockByTimeRange(ctx, tour.ID, date, from, to)
	if err != nil {
		return 0, fmt.Errorf("%w: block by time range: %v", ErrInternal, err)
	}

	if blocked == 0 {
		rangeBlock := &domain.AvailabilitySlot{
			TourID:    tour.ID,
			Date:      date,
			StartTime: from,
			EndTime:   to,
			MaxSlots:  0,
			Status:    domain.SlotBlocked,
		}
		if err := s.slotRepo.CreateIfAbsent(ctx, rangeBlock); err != nil {
			return 0, fmt.Errorf("%w: create range block: %v", ErrInternal, err)
		}
	}

	activeBookings, err = s.bookings.CountActiveByTourDate(ctx, tour.ID, date)
	if err != nil {
		return 0, fmt.Errorf("%w: count active bookings: %v", ErrInternal, err)
	}

	s.logger.Info("BlockTimeRange: tour=%d date=%s [%s, %s) blocked (%d slots)",
		tour.ID, date.Format(domain.DateFormat), from, to, blocked)
	return activeBookings, nil
}

// UnblockDate снимает blackout с даты, восстанавливая вместимость тура.
// Блокировка снимается только этим явным действием - никогда автоматически.
func (s *Service) UnblockDate(ctx context.Context, tour *domain.Tour, date time.Time) error {
	unblocked, err := s.slotRepo.UnblockByDate(ctx, tour.ID, date, tour.SlotCapacity())
	if err != nil {
		return fmt.Errorf("%w: unblock by date: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockDate: tour=%d date=%s unblocked (%d slots)",
		tour.ID, date.Format(domain.DateFormat), unblocked)
	return nil
}

// DayAvailability возвращает слоты тура на дату (cache-aside).
// Пустой результат означает, что дата не сконфигурирована: при ленивой
// материализации она читается как открытая.
func (s *Service) DayAvailability(ctx context.Context, tour *domain.Tour, date time.Time) ([]*domain.AvailabilitySlot, error) {
	if cached, hit, err := s.cache.GetDay(ctx, tour.ID, date); err == nil && hit {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("DayAvailability: cache read failed: %v", err)
	}

	slots, err := s.slotRepo.ListByTourDate(ctx, tour.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: list slots: %v", ErrInternal, err)
	}

	if err := s.cache.SetDay(ctx, tour.ID, date, slots); err != nil {
		s.logger.Warn("DayAvailability: cache write failed: %v", err)
	}

	return slots, nil
}

// ensureSlot читает слот или лениво создает его с вместимостью тура.
// При конкурентном создании выигрывает первая вставка, остальные
// перечитывают строку.
func (s *Service) ensureSlot(ctx context.Context, tour *domain.Tour, date time.Time, startTime types.TimeString) (*domain.AvailabilitySlot, error) {
	slot, err := s.slotRepo.GetByKey(ctx, tour.ID, date, startTime)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, slotsRepo.ErrSlotNotFound) {
		return nil, fmt.Errorf("%w: get slot: %v", ErrInternal, err)
	}

	endTime, timeErr := startTime.AddMinutes(tour.DurationHours * 60)
	if timeErr != nil {
		// Тур уходит за полночь - закрываем слот концом суток
		endTime = dayEnd
	}

	fresh := &domain.AvailabilitySlot{
		TourID:    tour.ID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		MaxSlots:  tour.SlotCapacity(),
		Status:    domain.SlotAvailable,
	}

	if err := s.slotRepo.CreateIfAbsent(ctx, fresh); err != nil {
		return nil, fmt.Errorf("%w: create slot: %v", ErrInternal, err)
	}

	slot, err = s.slotRepo.GetByKey(ctx, tour.ID, date, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: reread slot: %v", ErrInternal, err)
	}

	return slot, nil
}

// InvalidateDay сбрасывает кэш доступности дня. Мутации слотов идут
// внутри сериализуемых транзакций usecase-ов, поэтому сброс вызывается
// отдельно ПОСЛЕ коммита: DEL внутри открытой транзакции бесполезен -
// конкурентный читатель успеет заново положить в кэш ещё не
// закоммиченные данные. Ошибка кэша не фатальна, staleness ограничен TTL.
func (s *Service) InvalidateDay(ctx context.Context, tourID int64, date time.Time) {
	if err := s.cache.InvalidateDay(ctx, tourID, date); err != nil {
		s.logger.Warn("availability: cache invalidation failed for tour=%d date=%s: %v",
			tourID, date.Format(domain.DateFormat), err)
	}
}
