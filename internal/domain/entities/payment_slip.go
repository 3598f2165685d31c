package entities

import (
	"strconv"
	"strings"
	"time"
)

// SlipStatus is the lifecycle status of a payment slip (boleto).

type SlipStatus string

const (
	SlipStatusPago     SlipStatus = "Pago"
	SlipStatusPendente SlipStatus = "Pendente"
	SlipStatusVencido  SlipStatus = "Vencido"
)

// PaymentSlip is a billable statement tied to one insured vehicle and one
// billing period.
//
// Domain notes:
//   - Date and DueDate keep the backend's pt-BR formatting (dd/mm/yyyy).
//   - Amount keeps the "R$ 1.120,00" formatting; AmountValue parses it when
//     the dashboard needs to aggregate.
//   - CarID must reference an existing Vehicle. Slips whose vehicle cannot be
//     resolved are excluded from every derived view; that is a data-integrity
//     issue upstream, not a user-facing error.
//   - LicensePlate is a denormalized copy of the vehicle's plate, kept for
//     free-text search.
//
// Storage model (DynamoDB):
//   - PK: id

type PaymentSlip struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Amount       string     `json:"amount"`
	Status       SlipStatus `json:"status"`
	Period       string     `json:"period"`
	CarID        string     `json:"carId"`
	LicensePlate string     `json:"licensePlate"`
	DueDate      string     `json:"dueDate,omitempty"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}

const slipDateLayout = "02/01/2006"

// AmountValue parses the locale-formatted amount into a plain number:
// currency symbol and thousands dots stripped, decimal comma converted.
func (s PaymentSlip) AmountValue() (float64, error) {
	return ParseAmountBRL(s.Amount)
}

// IssueDate parses the dd/mm/yyyy issue date.
func (s PaymentSlip) IssueDate() (time.Time, error) {
	return time.Parse(slipDateLayout, s.Date)
}

func ParseAmountBRL(amount string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case 'R', '$', ' ', '.', '\u00a0':
			return -1
		}
		return r
	}, amount)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	return strconv.ParseFloat(cleaned, 64)
}
