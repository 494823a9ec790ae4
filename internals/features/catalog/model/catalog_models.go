// internals/features/catalog/model/catalog_models.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =====================
   Catalog entities
   Globally deduplicated by natural key (unique description/name).
===================== */

type SubjectModel struct {
	SubjectID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectDesc      string    `gorm:"type:varchar(150);unique;not null;column:subject_desc" json:"subject_desc"`
	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

type CCAModel struct {
	CCAID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:cca_id" json:"cca_id"`
	CCAGenericName string    `gorm:"type:varchar(150);unique;not null;column:cca_generic_name" json:"cca_generic_name"`
	CCACreatedAt   time.Time `gorm:"column:cca_created_at;autoCreateTime" json:"cca_created_at"`
}

func (CCAModel) TableName() string { return "ccas" }

type ProgrammeModel struct {
	ProgrammeID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:programme_id" json:"programme_id"`
	MOEProgrammeDesc   string    `gorm:"type:varchar(200);unique;not null;column:moe_programme_desc" json:"moe_programme_desc"`
	ProgrammeCreatedAt time.Time `gorm:"column:programme_created_at;autoCreateTime" json:"programme_created_at"`
}

func (ProgrammeModel) TableName() string { return "programmes" }

// DistinctiveModel carries the ALP/LLP pair for one school's designation.
// Natural key is the full (alp_domain, alp_title, llp_domain1, llp_title1)
// tuple: MOE reuses domains across titles.
type DistinctiveModel struct {
	DistinctiveID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:distinctive_id" json:"distinctive_id"`
	ALPDomain            *string   `gorm:"type:varchar(150);column:alp_domain;uniqueIndex:uq_distinctive" json:"alp_domain,omitempty"`
	ALPTitle             *string   `gorm:"type:varchar(200);column:alp_title;uniqueIndex:uq_distinctive" json:"alp_title,omitempty"`
	LLPDomain1           *string   `gorm:"type:varchar(150);column:llp_domain1;uniqueIndex:uq_distinctive" json:"llp_domain1,omitempty"`
	LLPTitle1            *string   `gorm:"type:varchar(200);column:llp_title1;uniqueIndex:uq_distinctive" json:"llp_title1,omitempty"`
	DistinctiveCreatedAt time.Time `gorm:"column:distinctive_created_at;autoCreateTime" json:"distinctive_created_at"`
}

func (DistinctiveModel) TableName() string { return "distinctive_programmes" }

/* =====================
   Join tables (school ↔ catalog)
===================== */

type SchoolSubjectModel struct {
	SchoolSubjectID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_subject_id" json:"school_subject_id"`
	SchoolID        uuid.UUID `gorm:"type:uuid;not null;column:school_id;uniqueIndex:uq_school_subject" json:"school_id"`
	SubjectID       uuid.UUID `gorm:"type:uuid;not null;column:subject_id;uniqueIndex:uq_school_subject" json:"subject_id"`
}

func (SchoolSubjectModel) TableName() string { return "school_subjects" }

/*
CCA section (fixed enumeration in DB):
- PRIMARY / SECONDARY / BOTH
*/
type CCASection string

const (
	CCASectionPrimary   CCASection = "PRIMARY"
	CCASectionSecondary CCASection = "SECONDARY"
	CCASectionBoth      CCASection = "BOTH"
)

func (s *CCASection) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = CCASection(strings.ToUpper(strings.TrimSpace(v)))
	case []byte:
		*s = CCASection(strings.ToUpper(strings.TrimSpace(string(v))))
	case nil:
		*s = ""
	}
	return nil
}
func (s CCASection) Value() (driver.Value, error) {
	return strings.ToUpper(strings.TrimSpace(string(s))), nil
}

// SchoolCCAModel additionally carries the per-school customization.
type SchoolCCAModel struct {
	SchoolCCAID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_cca_id" json:"school_cca_id"`
	SchoolID          uuid.UUID  `gorm:"type:uuid;not null;column:school_id;uniqueIndex:uq_school_cca" json:"school_id"`
	CCAID             uuid.UUID  `gorm:"type:uuid;not null;column:cca_id;uniqueIndex:uq_school_cca" json:"cca_id"`
	CCACustomizedName *string    `gorm:"type:varchar(150);column:cca_customized_name" json:"cca_customized_name,omitempty"`
	CCASection        CCASection `gorm:"type:varchar(10);column:cca_section" json:"cca_section"`
}

func (SchoolCCAModel) TableName() string { return "school_ccas" }

type SchoolProgrammeModel struct {
	SchoolProgrammeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_programme_id" json:"school_programme_id"`
	SchoolID          uuid.UUID `gorm:"type:uuid;not null;column:school_id;uniqueIndex:uq_school_programme" json:"school_id"`
	ProgrammeID       uuid.UUID `gorm:"type:uuid;not null;column:programme_id;uniqueIndex:uq_school_programme" json:"programme_id"`
}

func (SchoolProgrammeModel) TableName() string { return "school_programmes" }

type SchoolDistinctiveModel struct {
	SchoolDistinctiveID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_distinctive_id" json:"school_distinctive_id"`
	SchoolID            uuid.UUID `gorm:"type:uuid;not null;column:school_id;uniqueIndex:uq_school_distinctive" json:"school_id"`
	DistinctiveID       uuid.UUID `gorm:"type:uuid;not null;column:distinctive_id;uniqueIndex:uq_school_distinctive" json:"distinctive_id"`
}

func (SchoolDistinctiveModel) TableName() string { return "school_distinctives" }
