package dto

import (
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/idanlevi/cost_manager_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ReportDateResponse is the day-of-month projection attached to each report row.
type ReportDateResponse struct {
	Day int `json:"day"`
}

// ReportCostResponse is one cost inside a monthly report response.
type ReportCostResponse struct {
	Sum          decimal.Decimal    `json:"sum"`
	Currency     string             `json:"currency"`
	Category     string             `json:"category"`
	Description  string             `json:"description"`
	Date         ReportDateResponse `json:"Date"`
	ConvertedSum decimal.Decimal    `json:"convertedSum"`
}

// ReportTotalResponse is the aggregate of converted sums in the target
// currency. Total is exact; DisplayTotal is the rounded rendering for UIs.
type ReportTotalResponse struct {
	Currency     string          `json:"currency"`
	Total        decimal.Decimal `json:"total"`
	DisplayTotal string          `json:"displayTotal"`
}

// ReportResponse is the monthly report returned to the caller.
type ReportResponse struct {
	Year  int                  `json:"year"`
	Month int                  `json:"month"`
	Costs []ReportCostResponse `json:"costs"`
	Total ReportTotalResponse  `json:"total"`
}

// ToReportResponse converts a domain.MonthlyReport to a ReportResponse DTO.
func ToReportResponse(report *domain.MonthlyReport) ReportResponse {
	response := ReportResponse{
		Year:  report.Year,
		Month: report.Month,
		Costs: make([]ReportCostResponse, len(report.Costs)),
		Total: ReportTotalResponse{
			Currency:     report.Total.Currency,
			Total:        report.Total.Total,
			DisplayTotal: utils.FormatForDisplay(report.Total.Total),
		},
	}

	for i, entry := range report.Costs {
		response.Costs[i] = ReportCostResponse{
			Sum:          entry.Sum,
			Currency:     entry.Currency,
			Category:     entry.Category,
			Description:  entry.Description,
			Date:         ReportDateResponse{Day: entry.Day},
			ConvertedSum: entry.ConvertedSum,
		}
	}

	return response
}
