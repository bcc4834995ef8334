package services

import (
	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/repository"
)

// ParkService, salt okunur park kataloğu. Giriş yapmış vatandaşın park
// detayı görüntülemesi parks_visited sayacını artırır.
type ParkService interface {
	List(query string) []models.Park
	Get(viewer *models.Account, id string) (*models.Park, error)
	Count() int
}

type parkService struct {
	parkRepo repository.ParkRepository
	stats    StatsService
}

// NewParkService, constructor.
func NewParkService(parkRepo repository.ParkRepository, stats StatsService) ParkService {
	return &parkService{parkRepo: parkRepo, stats: stats}
}

func (s *parkService) List(query string) []models.Park {
	return s.parkRepo.Search(query)
}

func (s *parkService) Get(viewer *models.Account, id string) (*models.Park, error) {
	park, err := s.parkRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if viewer != nil && !viewer.IsAdmin() {
		s.stats.IncrementParksVisited(viewer.ID)
	}
	return park, nil
}

func (s *parkService) Count() int {
	return s.parkRepo.Count()
}
