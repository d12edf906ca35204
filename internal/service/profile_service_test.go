package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/repository"
	"github.com/alexanderramin/snacks/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) ProfileService {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewProfileService(repository.NewSQLiteProfileRepo(database))
}

func TestProfileService_DefaultProfile(t *testing.T) {
	svc := newProfileService(t)

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p.Equipment)
	assert.Equal(t, 4, p.SessionSize)
}

func TestProfileService_Update(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	equipment := domain.NewEquipmentSet(domain.EquipmentDumbbells, domain.EquipmentTreadmill)
	require.NoError(t, svc.Update(ctx, equipment, 3))

	p, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, equipment, p.Equipment)
	assert.Equal(t, 3, p.SessionSize)
}

func TestProfileService_Update_RejectsInvalidInput(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	err := svc.Update(ctx, nil, 0)
	require.Error(t, err)

	err = svc.Update(ctx, domain.EquipmentSet{"kettlebell": true}, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kettlebell")
}
