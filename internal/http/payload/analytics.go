package payload

import (
	"net/url"

	"eduledger/internal/core"

	"github.com/jellydator/validation"
)

const dateLayout = "2006-01-02"

type AnalyticsParams struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Operation string `json:"operation"`
}

func AnalyticsParamsFromQuery(values url.Values) AnalyticsParams {
	return AnalyticsParams{
		StartDate: values.Get("startDate"),
		EndDate:   values.Get("endDate"),
		Operation: values.Get("operation"),
	}
}

func (p AnalyticsParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&p.EndDate, validation.Required, validation.Date(dateLayout)),
	)
}

func (p AnalyticsParams) ToQuery() core.AnalyticsQuery {
	return core.AnalyticsQuery{
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Operation: p.Operation,
	}
}
