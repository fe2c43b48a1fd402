// Package models содержит доменные структуры услуг и тарифов,
// а также вспомогательные типы для работы с данными из JSON-запросов.
package models

import "time"

// Service представляет собой услугу пользователя: привязку пользователя
// к тарифу с датой следующего платежа.
type Service struct {
	ID      int       // Идентификатор услуги
	UserID  int       // Идентификатор пользователя-владельца
	TarifID int       // Текущий тариф услуги
	Payday  time.Time // Дата следующего платежа
}

// Tarif представляет собой тариф, как он хранится в базе.
type Tarif struct {
	ID           int    // Идентификатор тарифа
	Title        string // Название тарифа
	Link         string // Ссылка на страницу тарифа
	Speed        string // Скорость в виде строки, например "100 Mbit/s"
	Price        int    // Цена за период
	PayPeriod    int    // Период оплаты в месяцах
	TarifGroupID int    // Группа, внутри которой доступен переход
}

// FormattedTarif — тариф в том виде, в котором он отдается клиенту:
// с датой следующего платежа, рассчитанной на момент запроса.
// Имена json-полей зафиксированы для совместимости с клиентами.
type FormattedTarif struct {
	ID        int    `json:"ID"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
	PayPeriod int    `json:"pay_period"`
	NewPayday string `json:"new_payday"` // unix-время с суффиксом смещения ±HHMM
}

// TarifInfo — данные текущего тарифа услуги вместе со списком тарифов
// его группы. Внешний и внутренний ключи исторически совпадают.
type TarifInfo struct {
	Title  string           `json:"title"`
	Link   string           `json:"link"`
	Speed  string           `json:"speed"`
	Tarifs []FormattedTarif `json:"tarifs"`
}

// DummyUpdate используется для приёма тела запроса на смену тарифа.
type DummyUpdate struct {
	TarifID int `json:"tarif_id" validate:"required"` // Целевой тариф
}
