// Package payday считает дату следующего платежа по тарифу.
package payday

import (
	"strconv"
	"time"
)

// Build возвращает дату следующего платежа: now, обнулённое до полуночи,
// плюс payPeriod месяцев. Если в целевом месяце меньше дней и прибавление
// перескочило в следующий месяц (31 января + 1 месяц = 3 марта),
// результат прижимается к последнему дню целевого месяца.
func Build(now time.Time, payPeriod int) time.Time {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := date.AddDate(0, payPeriod, 0)
	if res.Day() != date.Day() {
		// День 0 следующего за целевым месяца — последний день целевого.
		res = time.Date(res.Year(), res.Month(), 0, 0, 0, 0, 0, res.Location())
	}
	return res
}

// Stamp форматирует дату платежа для поля new_payday: unix-метка,
// склеенная без разделителя со смещением часового пояса вида ±HHMM.
func Stamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + t.Format("-0700")
}
