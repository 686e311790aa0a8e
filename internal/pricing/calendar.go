package pricing

import (
	"time"

	"github.com/yydtours/YYD-BookingService/internal/domain"
)

// MonthRule относит перечисленные месяцы к сезону
type MonthRule struct {
	Season domain.Season
	Months []int // 1-12
}

// DateRangeRule специальный диапазон дат (включительно), перекрывающий
// месячные правила. Если From позже To, диапазон переходит через новый год
// (например, 23 декабря - 1 января).
type DateRangeRule struct {
	Season    domain.Season
	FromMonth int
	FromDay   int
	ToMonth   int
	ToDay     int
}

// Contains проверяет, попадает ли дата в диапазон
func (r DateRangeRule) Contains(date time.Time) bool {
	md := int(date.Month())*100 + date.Day()
	from := r.FromMonth*100 + r.FromDay
	to := r.ToMonth*100 + r.ToDay

	if from <= to {
		return md >= from && md <= to
	}
	// Диапазон через новый год
	return md >= from || md <= to
}

// Calendar детерминированно отображает дату в сезон. Правила применяются
// по порядку: сначала специальные диапазоны, затем месячные правила;
// дата без правила получает defaultSeason. Никакого вывода сезона из
// данных - только явная конфигурация.
type Calendar struct {
	defaultSeason domain.Season
	monthRules    []MonthRule
	specialRules  []DateRangeRule
}

// NewCalendar создает календарь сезонов из явных правил
func NewCalendar(defaultSeason domain.Season, months []MonthRule, specials []DateRangeRule) *Calendar {
	return &Calendar{
		defaultSeason: defaultSeason,
		monthRules:    months,
		specialRules:  specials,
	}
}

// DefaultCalendar календарь по умолчанию: высокий сезон с мая по октябрь
// плюс 23 декабря - 1 января, остальное - низкий
func DefaultCalendar() *Calendar {
	return NewCalendar(
		domain.SeasonLow,
		[]MonthRule{
			{Season: domain.SeasonHigh, Months: []int{5, 6, 7, 8, 9, 10}},
		},
		[]DateRangeRule{
			{Season: domain.SeasonHigh, FromMonth: 12, FromDay: 23, ToMonth: 1, ToDay: 1},
		},
	)
}

// SeasonFor возвращает сезон для даты. Функция тотальна: любая дата
// получает какой-то сезон.
func (c *Calendar) SeasonFor(date time.Time) domain.Season {
	for _, rule := range c.specialRules {
		if rule.Contains(date) {
			return rule.Season
		}
	}

	month := int(date.Month())
	for _, rule := range c.monthRules {
		for _, m := range rule.Months {
			if m == month {
				return rule.Season
			}
		}
	}

	return c.defaultSeason
}
