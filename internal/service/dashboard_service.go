package service

import (
	"easymed-backend/internal/repository"
)

type DashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats returns the doctor dashboard counters. The doctor must exist;
// a doctor with no activity gets all-zero counters, not an error.
func (s *DashboardService) Stats(doctorID uint) (*repository.DashboardStats, error) {
	if _, err := s.store.GetDoctor(doctorID); err != nil {
		return nil, err
	}
	return s.store.DashboardStats(doctorID)
}
