// internals/features/catalog/service/catalog_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "schoolsg_backend/internals/features/catalog/model"
	schoolModel "schoolsg_backend/internals/features/schools/model"
	helper "schoolsg_backend/internals/helpers"
	"schoolsg_backend/internals/helpers/errs"
)

// CatalogService owns the deduplicated reference entities and their
// school links. Catalog writes are upsert-by-natural-key: inserting a
// duplicate description must never create a second row.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

/* ===================== UPSERTS ===================== */

func (s *CatalogService) UpsertSubject(ctx context.Context, desc string) (*catalogModel.SubjectModel, error) {
	var m catalogModel.SubjectModel
	err := s.DB.WithContext(ctx).First(&m, "subject_desc = ?", desc).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.QueryExecution(err)
	}
	m = catalogModel.SubjectModel{SubjectDesc: desc}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		// lost the race: someone inserted the same key, re-select
		if helper.IsUniqueViolation(err) {
			if err2 := s.DB.WithContext(ctx).First(&m, "subject_desc = ?", desc).Error; err2 == nil {
				return &m, nil
			}
		}
		return nil, errs.QueryExecution(err)
	}
	return &m, nil
}

func (s *CatalogService) UpsertCCA(ctx context.Context, genericName string) (*catalogModel.CCAModel, error) {
	var m catalogModel.CCAModel
	err := s.DB.WithContext(ctx).First(&m, "cca_generic_name = ?", genericName).Error
	if err == nil {
		return &m, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.QueryExecution(err)
	}
	m = catalogModel.CCAModel{CCAGenericName: genericName}
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			if err2 := s.DB.WithContext(ctx).First(&m, "cca_generic_name = ?", genericName).Error; err2 == nil {
				return &m, nil
			}
		}
		return nil, errs.QueryExecution(err)
	}
	return &m, nil
}

// AttachCCA links a CCA to a school with its per-school customization,
// upserting the catalog row first. Re-attaching updates the customization
// instead of duplicating the pair.
func (s *CatalogService) AttachCCA(ctx context.Context, schoolID uuid.UUID, genericName string, customizedName *string, section catalogModel.CCASection) (*catalogModel.SchoolCCAModel, error) {
	cca, err := s.UpsertCCA(ctx, genericName)
	if err != nil {
		return nil, err
	}

	var link catalogModel.SchoolCCAModel
	err = s.DB.WithContext(ctx).
		First(&link, "school_id = ? AND cca_id = ?", schoolID, cca.CCAID).Error
	if err == nil {
		link.CCACustomizedName = customizedName
		link.CCASection = section
		if err := s.DB.WithContext(ctx).Save(&link).Error; err != nil {
			return nil, errs.QueryExecution(err)
		}
		return &link, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.QueryExecution(err)
	}

	link = catalogModel.SchoolCCAModel{
		SchoolID:          schoolID,
		CCAID:             cca.CCAID,
		CCACustomizedName: customizedName,
		CCASection:        section,
	}
	if err := s.DB.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return &link, nil
}

/* ===================== CATALOG READS ===================== */

func (s *CatalogService) ListSubjects(ctx context.Context) ([]catalogModel.SubjectModel, error) {
	var rows []catalogModel.SubjectModel
	if err := s.DB.WithContext(ctx).Order("subject_desc ASC").Find(&rows).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return rows, nil
}

func (s *CatalogService) ListCCAs(ctx context.Context) ([]catalogModel.CCAModel, error) {
	var rows []catalogModel.CCAModel
	if err := s.DB.WithContext(ctx).Order("cca_generic_name ASC").Find(&rows).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return rows, nil
}

func (s *CatalogService) ListProgrammes(ctx context.Context) ([]catalogModel.ProgrammeModel, error) {
	var rows []catalogModel.ProgrammeModel
	if err := s.DB.WithContext(ctx).Order("moe_programme_desc ASC").Find(&rows).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return rows, nil
}

func (s *CatalogService) ListDistinctives(ctx context.Context) ([]catalogModel.DistinctiveModel, error) {
	var rows []catalogModel.DistinctiveModel
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return rows, nil
}

/* ===================== SCHOOLS BY CATALOG ITEM ===================== */

var schoolsByCatalogSQL = map[string]string{
	"subject": `SELECT s.* FROM schools s
	            JOIN school_subjects ss ON ss.school_id = s.school_id
	            WHERE ss.subject_id = ? ORDER BY s.school_name ASC`,
	"cca": `SELECT s.* FROM schools s
	        JOIN school_ccas sc ON sc.school_id = s.school_id
	        WHERE sc.cca_id = ? ORDER BY s.school_name ASC`,
	"programme": `SELECT s.* FROM schools s
	              JOIN school_programmes sp ON sp.school_id = s.school_id
	              WHERE sp.programme_id = ? ORDER BY s.school_name ASC`,
	"distinctive": `SELECT s.* FROM schools s
	                JOIN school_distinctives sd ON sd.school_id = s.school_id
	                WHERE sd.distinctive_id = ? ORDER BY s.school_name ASC`,
}

func (s *CatalogService) SchoolsByCatalogItem(ctx context.Context, kind string, id uuid.UUID) ([]schoolModel.SchoolModel, error) {
	q, ok := schoolsByCatalogSQL[kind]
	if !ok {
		return nil, errs.InvalidInput("unknown catalog kind " + kind)
	}
	var rows []schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).Raw(q, id).Scan(&rows).Error; err != nil {
		return nil, errs.QueryExecution(err)
	}
	return rows, nil
}
