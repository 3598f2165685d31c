// Package fixture holds the static dataset served when no backend data
// source is configured: eight insured vehicles and thirteen payment slips
// with dates generated relative to the current day.
package fixture

import (
	"time"

	"novo_seguros/internal/domain/entities"
)

const dateLayout = "02/01/2006"

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(dateLayout)
}

func daysFromNow(n int) string {
	return time.Now().AddDate(0, 0, n).Format(dateLayout)
}

func Vehicles() []entities.Vehicle {
	return []entities.Vehicle{
		{ID: "car-001", Make: "Chevrolet", Model: "Montana", Year: "2021", LicensePlate: "ABC-1234", Color: "Branco", PolicyNumber: "APL-12345", Premium: "R$ 745,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-002", Make: "Toyota", Model: "Corolla", Year: "2022", LicensePlate: "DEF-5678", Color: "Prata", PolicyNumber: "APL-12346", Premium: "R$ 892,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-003", Make: "Honda", Model: "Civic", Year: "2020", LicensePlate: "GHI-9012", Color: "Preto", PolicyNumber: "APL-12347", Premium: "R$ 1.120,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-004", Make: "Volkswagen", Model: "Gol", Year: "2019", LicensePlate: "JKL-3456", Color: "Azul", PolicyNumber: "APL-12348", Premium: "R$ 654,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-005", Make: "Fiat", Model: "Pulse", Year: "2023", LicensePlate: "MNO-7890", Color: "Vermelho", PolicyNumber: "APL-12349", Premium: "R$ 876,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-006", Make: "Hyundai", Model: "HB20", Year: "2022", LicensePlate: "PQR-1234", Color: "Prata", PolicyNumber: "APL-12350", Premium: "R$ 732,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-007", Make: "Renault", Model: "Kwid", Year: "2021", LicensePlate: "STU-5678", Color: "Branco", PolicyNumber: "APL-12351", Premium: "R$ 598,00", Status: entities.VehicleStatusAtiva},
		{ID: "car-008", Make: "Jeep", Model: "Renegade", Year: "2023", LicensePlate: "VWX-9012", Color: "Verde", PolicyNumber: "APL-12352", Premium: "R$ 1.245,00", Status: entities.VehicleStatusAtiva},
	}
}

func PaymentSlips() []entities.PaymentSlip {
	return []entities.PaymentSlip{
		// Recent paid slips.
		{ID: "COMP-001", Date: daysAgo(2), Amount: "R$ 745,00", Status: entities.SlipStatusPago, Period: "Jan 2025", CarID: "car-001", LicensePlate: "ABC-1234", DueDate: daysAgo(5), UpdatedAt: daysAgo(2)},
		{ID: "COMP-002", Date: daysAgo(5), Amount: "R$ 892,00", Status: entities.SlipStatusPago, Period: "Jan 2025", CarID: "car-002", LicensePlate: "DEF-5678", DueDate: daysAgo(8), UpdatedAt: daysAgo(5)},
		{ID: "COMP-003", Date: daysAgo(1), Amount: "R$ 1.120,00", Status: entities.SlipStatusPago, Period: "Jan 2025", CarID: "car-003", LicensePlate: "GHI-9012", DueDate: daysAgo(4), UpdatedAt: daysAgo(1)},

		// Pending slips.
		{ID: "COMP-004", Date: daysAgo(3), Amount: "R$ 654,00", Status: entities.SlipStatusPendente, Period: "Fev 2025", CarID: "car-004", LicensePlate: "JKL-3456", DueDate: daysFromNow(5), UpdatedAt: daysAgo(3)},
		{ID: "COMP-005", Date: daysAgo(7), Amount: "R$ 876,00", Status: entities.SlipStatusPendente, Period: "Fev 2025", CarID: "car-005", LicensePlate: "MNO-7890", DueDate: daysFromNow(10), UpdatedAt: daysAgo(7)},

		// Overdue slips.
		{ID: "COMP-006", Date: daysAgo(45), Amount: "R$ 732,00", Status: entities.SlipStatusVencido, Period: "Dez 2024", CarID: "car-006", LicensePlate: "PQR-1234", DueDate: daysAgo(15), UpdatedAt: daysAgo(10)},
		{ID: "COMP-007", Date: daysAgo(60), Amount: "R$ 598,00", Status: entities.SlipStatusVencido, Period: "Nov 2024", CarID: "car-007", LicensePlate: "STU-5678", DueDate: daysAgo(30), UpdatedAt: daysAgo(25)},

		{ID: "COMP-008", Date: daysAgo(10), Amount: "R$ 1.245,00", Status: entities.SlipStatusPago, Period: "Jan 2025", CarID: "car-008", LicensePlate: "VWX-9012", DueDate: daysAgo(13), UpdatedAt: daysAgo(10)},

		// Older paid slips.
		{ID: "COMP-009", Date: daysAgo(35), Amount: "R$ 745,00", Status: entities.SlipStatusPago, Period: "Dez 2024", CarID: "car-001", LicensePlate: "ABC-1234", DueDate: daysAgo(38), UpdatedAt: daysAgo(35)},
		{ID: "COMP-010", Date: daysAgo(40), Amount: "R$ 892,00", Status: entities.SlipStatusPago, Period: "Nov 2024", CarID: "car-002", LicensePlate: "DEF-5678", DueDate: daysAgo(43), UpdatedAt: daysAgo(40)},

		// More pending slips.
		{ID: "COMP-011", Date: daysAgo(12), Amount: "R$ 1.120,00", Status: entities.SlipStatusPendente, Period: "Fev 2025", CarID: "car-003", LicensePlate: "GHI-9012", DueDate: daysFromNow(3), UpdatedAt: daysAgo(12)},
		{ID: "COMP-012", Date: daysAgo(20), Amount: "R$ 654,00", Status: entities.SlipStatusPendente, Period: "Jan 2025", CarID: "car-004", LicensePlate: "JKL-3456", DueDate: daysFromNow(1), UpdatedAt: daysAgo(15)},

		// Additional overdue.
		{ID: "COMP-013", Date: daysAgo(50), Amount: "R$ 876,00", Status: entities.SlipStatusVencido, Period: "Out 2024", CarID: "car-005", LicensePlate: "MNO-7890", DueDate: daysAgo(20), UpdatedAt: daysAgo(18)},
	}
}
