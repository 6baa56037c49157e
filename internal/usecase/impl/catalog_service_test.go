package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	"bazaar/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddResource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resource := f.addResource(t, "Cooking Oil", "120")
	assert.True(t, resource.Price.Equal(decimal.NewFromInt(120)))
	assert.Equal(t, entity.CategoryIngredients, resource.Category)

	tests := []struct {
		name  string
		input *usecase.AddResourceInput
	}{
		{
			name: "blank name",
			input: &usecase.AddResourceInput{
				Name:        "   ",
				Description: "desc",
				Price:       decimal.NewFromInt(1),
				Category:    entity.CategoryIngredients,
			},
		},
		{
			name: "blank description",
			input: &usecase.AddResourceInput{
				Name:        "Salt",
				Description: "",
				Price:       decimal.NewFromInt(1),
				Category:    entity.CategoryIngredients,
			},
		},
		{
			name: "negative price",
			input: &usecase.AddResourceInput{
				Name:        "Salt",
				Description: "desc",
				Price:       decimal.NewFromInt(-1),
				Category:    entity.CategoryIngredients,
			},
		},
		{
			name: "unknown category",
			input: &usecase.AddResourceInput{
				Name:        "Salt",
				Description: "desc",
				Price:       decimal.NewFromInt(1),
				Category:    entity.ResourceCategory("luxuries"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.catalog.AddResource(ctx, tt.input)
			requireAppError(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestCatalogService_ListResources_SortedByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addResource(t, "Paper Plates", "80")
	f.addResource(t, "Cooking Oil", "120")
	f.addResource(t, "Napkins", "50")

	resources, err := f.catalog.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	assert.Equal(t, "Cooking Oil", resources[0].Name)
	assert.Equal(t, "Napkins", resources[1].Name)
	assert.Equal(t, "Paper Plates", resources[2].Name)
}
