// internals/features/schools/model/school_model.go
package model

import (
	"database/sql/driver"
	"strings"
	"time"

	"github.com/google/uuid"
)

/*
Zone (fixed enumeration in DB):
- NORTH / SOUTH / EAST / WEST / CENTRAL
*/
type SchoolZone string

const (
	ZoneNorth   SchoolZone = "NORTH"
	ZoneSouth   SchoolZone = "SOUTH"
	ZoneEast    SchoolZone = "EAST"
	ZoneWest    SchoolZone = "WEST"
	ZoneCentral SchoolZone = "CENTRAL"
)

// Always upper-case on scan/save (MOE exports are mixed-case in places)
func (z *SchoolZone) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*z = SchoolZone(strings.ToUpper(strings.TrimSpace(v)))
	case []byte:
		*z = SchoolZone(strings.ToUpper(strings.TrimSpace(string(v))))
	case nil:
		*z = ""
	}
	return nil
}
func (z SchoolZone) Value() (driver.Value, error) {
	return strings.ToUpper(strings.TrimSpace(string(z))), nil
}

/*
Mainlevel (fixed enumeration in DB):
- PRIMARY / SECONDARY / JUNIOR COLLEGE / CENTRALISED INSTITUTE
*/
type SchoolLevel string

const (
	LevelPrimary              SchoolLevel = "PRIMARY"
	LevelSecondary            SchoolLevel = "SECONDARY"
	LevelJuniorCollege        SchoolLevel = "JUNIOR COLLEGE"
	LevelCentralisedInstitute SchoolLevel = "CENTRALISED INSTITUTE"
)

func (l *SchoolLevel) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*l = SchoolLevel(strings.ToUpper(strings.TrimSpace(v)))
	case []byte:
		*l = SchoolLevel(strings.ToUpper(strings.TrimSpace(string(v))))
	case nil:
		*l = ""
	}
	return nil
}
func (l SchoolLevel) Value() (driver.Value, error) {
	return strings.ToUpper(strings.TrimSpace(string(l))), nil
}

type SchoolModel struct {
	// PK
	SchoolID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_id" json:"school_id"`

	// Identity
	SchoolName string  `gorm:"type:varchar(150);unique;not null;column:school_name" json:"school_name"`
	Address    *string `gorm:"column:address" json:"address,omitempty"`
	PostalCode *string `gorm:"type:char(6);column:postal_code" json:"postal_code,omitempty"`

	// Classification
	ZoneCode      SchoolZone  `gorm:"type:varchar(10);column:zone_code" json:"zone_code"`
	MainlevelCode SchoolLevel `gorm:"type:varchar(30);column:mainlevel_code" json:"mainlevel_code"`

	PrincipalName *string `gorm:"column:principal_name" json:"principal_name,omitempty"`

	// Audit
	SchoolCreatedAt time.Time  `gorm:"column:school_created_at;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt *time.Time `gorm:"column:school_updated_at;autoUpdateTime" json:"school_updated_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

// NormalizeName is the join key into school_general_infos.
// The extended profile is keyed by name, not by FK (legacy data shape,
// kept deliberately; see DESIGN.md).
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
