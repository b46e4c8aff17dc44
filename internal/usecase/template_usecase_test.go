package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motionstock/internal/domain/entity"
	"motionstock/internal/infrastructure/seed"
	"motionstock/pkg/errors"
)

func TestSeedTemplates(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.templateUseCase()

	created, err := uc.SeedTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, created)

	created, err = uc.SeedTemplates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	n, err := f.templates.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}

func TestListTemplatesSeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	uc := f.templateUseCase()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ListTemplates(ctx, "")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := uc.ListTemplates(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 9)
	assert.Equal(t, entity.KindCounter, all[0].Kind)
	assert.Equal(t, entity.KindLoading, all[8].Kind)

	seen := map[string]bool{}
	for _, tpl := range all {
		assert.False(t, seen[tpl.ID], "duplicate template %s", tpl.ID)
		seen[tpl.ID] = true
		assert.Equal(t, seed.TemplateID(tpl.Kind), tpl.ID)
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	ctx := context.Background()
	uc := newFixture().templateUseCase()

	business, err := uc.ListTemplates(ctx, "business")
	require.NoError(t, err)
	require.NotEmpty(t, business)
	for _, tpl := range business {
		assert.Equal(t, "business", tpl.Category)
	}

	none, err := uc.ListTemplates(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetTemplate(t *testing.T) {
	ctx := context.Background()
	uc := newFixture().templateUseCase()

	_, err := uc.SeedTemplates(ctx)
	require.NoError(t, err)

	tpl, err := uc.GetTemplate(ctx, seed.TemplateID(entity.KindCountdown))
	require.NoError(t, err)
	assert.Equal(t, entity.KindCountdown, tpl.Kind)
	assert.NotEmpty(t, tpl.EditableParams)

	_, err = uc.GetTemplate(ctx, "missing")
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}
