// internals/features/search/service/advanced_search_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	logService "schoolsg_backend/internals/features/activitylog/service"
	schoolModel "schoolsg_backend/internals/features/schools/model"
	"schoolsg_backend/internals/helpers/errs"
)

type AdvancedSearchService struct {
	DB  *gorm.DB
	Log logService.Sink
}

func NewAdvancedSearchService(db *gorm.DB, sink logService.Sink) *AdvancedSearchService {
	if sink == nil {
		sink = logService.NoopSink{}
	}
	return &AdvancedSearchService{DB: db, Log: sink}
}

// Search validates and executes one advanced search. Either the full
// criteria set is honored in a single store query, or the call fails;
// nothing is partially applied.
func (s *AdvancedSearchService) Search(ctx context.Context, raw map[string]string) ([]schoolModel.SchoolModel, map[string]string, error) {
	q, err := BuildAdvancedSearch(raw)
	if err != nil {
		return nil, nil, err
	}

	var rows []schoolModel.SchoolModel
	if err := s.DB.WithContext(ctx).Raw(q.SQL, q.Args...).Scan(&rows).Error; err != nil {
		return nil, nil, errs.QueryExecution(err)
	}

	s.Log.Append("advanced_search", map[string]any{
		"criteria_count": len(q.Criteria),
		"criteria":       q.Criteria,
		"result_count":   len(rows),
	})
	return rows, q.Criteria, nil
}
