package money

import (
	"fmt"
	"math"
)

// Cents денежная сумма в евроцентах. Вся арифметика ядра ведётся в целых
// центах, float64 появляется только на границах (JSON, БД).
type Cents int64

// FromEur конвертирует сумму в евро в центы с округлением half-up
func FromEur(eur float64) Cents {
	if eur >= 0 {
		return Cents(math.Floor(eur*100 + 0.5))
	}
	return Cents(math.Ceil(eur*100 - 0.5))
}

// Eur возвращает сумму в евро как float64 (только для сериализации)
func (c Cents) Eur() float64 {
	return float64(c) / 100
}

// MulInt умножает сумму на целое количество (например, человек)
func (c Cents) MulInt(n int) Cents {
	return c * Cents(n)
}

// String форматирует сумму как "123.45"
func (c Cents) String() string {
	sign := ""
	v := c
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
