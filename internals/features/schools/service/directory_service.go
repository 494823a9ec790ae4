// internals/features/schools/service/directory_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "schoolsg_backend/internals/features/catalog/model"
	schoolModel "schoolsg_backend/internals/features/schools/model"
	"schoolsg_backend/internals/helpers/errs"
)

// DirectoryService owns CRUD and detail aggregation over the school store.
type DirectoryService struct {
	DB *gorm.DB
}

func NewDirectoryService(db *gorm.DB) *DirectoryService {
	return &DirectoryService{DB: db}
}

/* ===================== READS ===================== */

func (s *DirectoryService) List(ctx context.Context, limit, offset int) ([]schoolModel.SchoolModel, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var total int64
	if err := s.DB.WithContext(ctx).Model(&schoolModel.SchoolModel{}).Count(&total).Error; err != nil {
		return nil, 0, errs.QueryExecution(err)
	}
	var rows []schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).
		Order("school_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, errs.QueryExecution(err)
	}
	return rows, total, nil
}

func (s *DirectoryService) GetByID(ctx context.Context, id uuid.UUID) (*schoolModel.SchoolModel, error) {
	var m schoolModel.SchoolModel
	err := s.DB.WithContext(ctx).First(&m, "school_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("school " + id.String() + " does not exist")
	}
	if err != nil {
		return nil, errs.QueryExecution(err)
	}
	return &m, nil
}

func (s *DirectoryService) GetByName(ctx context.Context, name string) (*schoolModel.SchoolModel, error) {
	var m schoolModel.SchoolModel
	err := s.DB.WithContext(ctx).
		Where("lower(btrim(school_name)) = ?", schoolModel.NormalizeName(name)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NotFound("school " + name + " does not exist")
	}
	if err != nil {
		return nil, errs.QueryExecution(err)
	}
	return &m, nil
}

// CCAWithCustomization is a CCA row plus the per-school customization
// carried on the join table.
type CCAWithCustomization struct {
	CCAID             uuid.UUID               `json:"cca_id" gorm:"column:cca_id"`
	CCAGenericName    string                  `json:"cca_generic_name" gorm:"column:cca_generic_name"`
	CCACustomizedName *string                 `json:"cca_customized_name,omitempty" gorm:"column:cca_customized_name"`
	CCASection        catalogModel.CCASection `json:"cca_section" gorm:"column:cca_section"`
}

// SchoolDetail aggregates the school row with its extended profile and
// every linked catalog entity.
type SchoolDetail struct {
	School       schoolModel.SchoolModel             `json:"school"`
	GeneralInfo  *schoolModel.SchoolGeneralInfoModel `json:"general_info,omitempty"`
	Subjects     []catalogModel.SubjectModel         `json:"subjects"`
	CCAs         []CCAWithCustomization              `json:"ccas"`
	Programmes   []catalogModel.ProgrammeModel       `json:"programmes"`
	Distinctives []catalogModel.DistinctiveModel     `json:"distinctives"`
}

func (s *DirectoryService) Detail(ctx context.Context, id uuid.UUID) (*SchoolDetail, error) {
	school, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := SchoolDetail{
		School:       *school,
		Subjects:     []catalogModel.SubjectModel{},
		CCAs:         []CCAWithCustomization{},
		Programmes:   []catalogModel.ProgrammeModel{},
		Distinctives: []catalogModel.DistinctiveModel{},
	}

	// Extended profile joins by normalized name, not FK.
	var info schoolModel.SchoolGeneralInfoModel
	err = s.DB.WithContext(ctx).
		Where("normalized_name = ?", schoolModel.NormalizeName(school.SchoolName)).
		First(&info).Error
	if err == nil {
		detail.GeneralInfo = &info
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.QueryExecution(err)
	}

	if err := s.DB.WithContext(ctx).
		Raw(`SELECT subj.* FROM subjects subj
		     JOIN school_subjects ss ON ss.subject_id = subj.subject_id
		     WHERE ss.school_id = ? ORDER BY subj.subject_desc ASC`, id).
		Scan(&detail.Subjects).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}

	if err := s.DB.WithContext(ctx).
		Raw(`SELECT cca.cca_id, cca.cca_generic_name, sc.cca_customized_name, sc.cca_section
		     FROM ccas cca
		     JOIN school_ccas sc ON sc.cca_id = cca.cca_id
		     WHERE sc.school_id = ? ORDER BY cca.cca_generic_name ASC`, id).
		Scan(&detail.CCAs).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}

	if err := s.DB.WithContext(ctx).
		Raw(`SELECT prog.* FROM programmes prog
		     JOIN school_programmes sp ON sp.programme_id = prog.programme_id
		     WHERE sp.school_id = ? ORDER BY prog.moe_programme_desc ASC`, id).
		Scan(&detail.Programmes).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}

	if err := s.DB.WithContext(ctx).
		Raw(`SELECT dist.* FROM distinctive_programmes dist
		     JOIN school_distinctives sd ON sd.distinctive_id = dist.distinctive_id
		     WHERE sd.school_id = ?`, id).
		Scan(&detail.Distinctives).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}

	return &detail, nil
}

/* ===================== WRITES ===================== */

func (s *DirectoryService) Create(ctx context.Context, m *schoolModel.SchoolModel) error {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return err // controller maps unique violations to 409
	}
	return nil
}

func (s *DirectoryService) Update(ctx context.Context, m *schoolModel.SchoolModel) error {
	if err := s.DB.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes the school and all of its join rows in one transaction:
// join rows strictly before the owning school row, so a mid-sequence
// failure can never leave orphans.
func (s *DirectoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("school_id = ?", id).Delete(&catalogModel.SchoolSubjectModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("school_id = ?", id).Delete(&catalogModel.SchoolCCAModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("school_id = ?", id).Delete(&catalogModel.SchoolProgrammeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("school_id = ?", id).Delete(&catalogModel.SchoolDistinctiveModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&schoolModel.SchoolModel{}, "school_id = ?", id).Error
	})
	if err != nil {
		return errs.QueryExecution(err)
	}
	return nil
}
