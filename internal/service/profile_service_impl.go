package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, equipment domain.EquipmentSet, sessionSize int) error {
	if sessionSize < 1 {
		return fmt.Errorf("session size must be at least 1, got %d", sessionSize)
	}
	for e := range equipment {
		if !domain.ValidEquipment[string(e)] {
			return fmt.Errorf("unknown equipment %q", e)
		}
	}
	return s.profiles.Upsert(ctx, &domain.UserProfile{
		ID:          "default",
		Equipment:   equipment,
		SessionSize: sessionSize,
	})
}
