// internals/features/schools/dto/school_dto.go
package dto

import (
	schoolModel "schoolsg_backend/internals/features/schools/model"
)

/* ===================== REQUESTS ===================== */

type CreateSchoolRequest struct {
	SchoolName    string  `json:"school_name" validate:"required,min=2,max=150"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	PostalCode    string  `json:"postal_code" validate:"required,len=6,numeric"`
	ZoneCode      string  `json:"zone_code" validate:"required,oneof=NORTH SOUTH EAST WEST CENTRAL"`
	MainlevelCode string  `json:"mainlevel_code" validate:"required,oneof='PRIMARY' 'SECONDARY' 'JUNIOR COLLEGE' 'CENTRALISED INSTITUTE'"`
	PrincipalName *string `json:"principal_name" validate:"omitempty,max=150"`
}

func (r *CreateSchoolRequest) ToModel() *schoolModel.SchoolModel {
	pc := r.PostalCode
	return &schoolModel.SchoolModel{
		SchoolName:    r.SchoolName,
		Address:       r.Address,
		PostalCode:    &pc,
		ZoneCode:      schoolModel.SchoolZone(r.ZoneCode),
		MainlevelCode: schoolModel.SchoolLevel(r.MainlevelCode),
		PrincipalName: r.PrincipalName,
	}
}

type UpdateSchoolRequest struct {
	SchoolName    *string `json:"school_name" validate:"omitempty,min=2,max=150"`
	Address       *string `json:"address" validate:"omitempty,max=200"`
	PostalCode    *string `json:"postal_code" validate:"omitempty,len=6,numeric"`
	ZoneCode      *string `json:"zone_code" validate:"omitempty,oneof=NORTH SOUTH EAST WEST CENTRAL"`
	MainlevelCode *string `json:"mainlevel_code" validate:"omitempty,oneof='PRIMARY' 'SECONDARY' 'JUNIOR COLLEGE' 'CENTRALISED INSTITUTE'"`
	PrincipalName *string `json:"principal_name" validate:"omitempty,max=150"`
}

func (r *UpdateSchoolRequest) ApplyToModel(m *schoolModel.SchoolModel) {
	if r.SchoolName != nil {
		m.SchoolName = *r.SchoolName
	}
	if r.Address != nil {
		m.Address = r.Address
	}
	if r.PostalCode != nil {
		m.PostalCode = r.PostalCode
	}
	if r.ZoneCode != nil {
		m.ZoneCode = schoolModel.SchoolZone(*r.ZoneCode)
	}
	if r.MainlevelCode != nil {
		m.MainlevelCode = schoolModel.SchoolLevel(*r.MainlevelCode)
	}
	if r.PrincipalName != nil {
		m.PrincipalName = r.PrincipalName
	}
}
