// internals/features/schools/model/school_general_info_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolGeneralInfoModel is the extended MOE profile record. It joins
// schools by normalized_name (lower/btrim of the school name) rather than
// by FK — an inherited denormalization the rest of the code tolerates.
type SchoolGeneralInfoModel struct {
	// PK
	GeneralInfoID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:general_info_id" json:"general_info_id"`

	// Join key
	SchoolName     string `gorm:"type:varchar(150);not null;column:school_name" json:"school_name"`
	NormalizedName string `gorm:"type:varchar(150);not null;index;column:normalized_name" json:"-"`

	// Contact
	EmailAddress *string `gorm:"column:email_address" json:"email_address,omitempty"`
	TelephoneNo  *string `gorm:"type:varchar(20);column:telephone_no" json:"telephone_no,omitempty"`
	FaxNo        *string `gorm:"type:varchar(20);column:fax_no" json:"fax_no,omitempty"`
	URLAddress   *string `gorm:"column:url_address" json:"url_address,omitempty"`

	// Vice-principals (MOE publishes up to six)
	VPName1 *string `gorm:"column:vp_name1" json:"vp_name1,omitempty"`
	VPName2 *string `gorm:"column:vp_name2" json:"vp_name2,omitempty"`
	VPName3 *string `gorm:"column:vp_name3" json:"vp_name3,omitempty"`
	VPName4 *string `gorm:"column:vp_name4" json:"vp_name4,omitempty"`
	VPName5 *string `gorm:"column:vp_name5" json:"vp_name5,omitempty"`
	VPName6 *string `gorm:"column:vp_name6" json:"vp_name6,omitempty"`

	// Classification codes
	TypeCode    *string `gorm:"type:varchar(40);column:type_code" json:"type_code,omitempty"`
	NatureCode  *string `gorm:"type:varchar(40);column:nature_code" json:"nature_code,omitempty"`
	SessionCode *string `gorm:"type:varchar(40);column:session_code" json:"session_code,omitempty"`
	DGPCode     *string `gorm:"type:varchar(40);column:dgp_code" json:"dgp_code,omitempty"`

	// Indicator flags ("Yes"/"No" in the MOE dataset, matched raw)
	AutonomousInd *string `gorm:"type:varchar(10);column:autonomous_ind" json:"autonomous_ind,omitempty"`
	GiftedInd     *string `gorm:"type:varchar(10);column:gifted_ind" json:"gifted_ind,omitempty"`
	IPInd         *string `gorm:"type:varchar(10);column:ip_ind" json:"ip_ind,omitempty"`
	SAPInd        *string `gorm:"type:varchar(10);column:sap_ind" json:"sap_ind,omitempty"`

	// Mother tongues (up to three)
	MothertongueCode1 *string `gorm:"type:varchar(30);column:mothertongue_code1" json:"mothertongue_code1,omitempty"`
	MothertongueCode2 *string `gorm:"type:varchar(30);column:mothertongue_code2" json:"mothertongue_code2,omitempty"`
	MothertongueCode3 *string `gorm:"type:varchar(30);column:mothertongue_code3" json:"mothertongue_code3,omitempty"`

	// Transport notes
	BusDesc *string `gorm:"column:bus_desc" json:"bus_desc,omitempty"`
	MRTDesc *string `gorm:"column:mrt_desc" json:"mrt_desc,omitempty"`

	// Audit
	GeneralInfoCreatedAt time.Time  `gorm:"column:general_info_created_at;autoCreateTime" json:"general_info_created_at"`
	GeneralInfoUpdatedAt *time.Time `gorm:"column:general_info_updated_at;autoUpdateTime" json:"general_info_updated_at,omitempty"`
}

func (SchoolGeneralInfoModel) TableName() string { return "school_general_infos" }

// Keep the join key in sync with the display name.
func (m *SchoolGeneralInfoModel) BeforeSave(tx *gorm.DB) error {
	m.NormalizedName = NormalizeName(m.SchoolName)
	return nil
}
