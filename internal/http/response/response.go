// Package response содержит типы и функции для формирования единого
// JSON-конверта ответов сервиса: {"result": "ok"|"error"}. Сообщение
// добавляется только в ответах с ошибкой, данные тарифов — в успешном
// ответе на чтение.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/tarif-service/internal/models"
)

const (
	// ResultOK — значение result для успешного ответа.
	ResultOK = "ok"
	// ResultError — значение result для ответа с ошибкой.
	ResultError = "error"
)

// Response — минимальный конверт ответа. Message опускается, если пуст:
// клиенты исторически разбирают {"result":"error"} без сообщения.
type Response struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
}

// TarifsResponse — конверт успешного ответа на чтение тарифов.
type TarifsResponse struct {
	Result string           `json:"result"`
	Tarifs models.TarifInfo `json:"tarifs"`
}

// OK возвращает успешный Response без данных.
func OK() Response {
	return Response{Result: ResultOK}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Result:  ResultError,
		Message: msg,
	}
}

// OKWithTarifs возвращает успешный ответ с информацией о тарифах.
func OKWithTarifs(info models.TarifInfo) TarifsResponse {
	return TarifsResponse{
		Result: ResultOK,
		Tarifs: info,
	}
}

// ValidationError формирует Response со статусом error на основе ошибок
// валидации. Нарушения склеиваются в один человеко-читаемый текст.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}
