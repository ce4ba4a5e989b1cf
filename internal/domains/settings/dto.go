package settings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type UpsertSettingReq struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
	Group string `json:"group" binding:"required"`
}

func (r UpsertSettingReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Key,
			validation.Required.Error("key is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Group,
			validation.Required.Error("group is required"),
			validation.In(GroupAppearance, GroupGeneral, GroupSocial).Error("unknown group"),
		),
	)
}

type BulkUpsertReq struct {
	Settings []UpsertSettingReq `json:"settings" binding:"required"`
}

func (r BulkUpsertReq) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Settings, validation.Required.Error("settings are required")),
	); err != nil {
		return err
	}

	for _, s := range r.Settings {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
