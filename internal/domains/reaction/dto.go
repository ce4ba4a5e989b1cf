package reaction

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type ReactReq struct {
	Kind string `json:"kind" binding:"required"`
}

func (r ReactReq) Validate() error {
	kinds := make([]interface{}, 0, len(Kinds))
	for _, k := range Kinds {
		kinds = append(kinds, k)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required.Error("kind is required"),
			validation.In(kinds...).Error("unknown reaction kind"),
		),
	)
}

// CountsResp maps every reaction kind to its count. Kinds with no
// reactions yet are present with a zero count.
type CountsResp struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

func NewCountsResp(rows []*Reaction) *CountsResp {
	counts := make(map[string]int, len(Kinds))
	for _, k := range Kinds {
		counts[k] = 0
	}

	total := 0
	for _, row := range rows {
		counts[row.Kind] = row.Count
		total += row.Count
	}

	return &CountsResp{Counts: counts, Total: total}
}
