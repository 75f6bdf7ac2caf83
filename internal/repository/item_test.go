package repository

import (
	"testing"

	"github.com/stpnv0/RentalShop/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildItemListQuery_SearchIsLiteral(t *testing.T) {
	query, args, err := buildItemListQuery(domain.ItemFilter{Search: `50%_off\`})
	require.NoError(t, err)

	assert.Contains(t, query, "ILIKE")
	assert.Contains(t, args, `%50\%\_off\\%`)
}

func TestBuildItemListQuery_Filters(t *testing.T) {
	query, args, err := buildItemListQuery(domain.ItemFilter{Category: "tools", OwnerID: "owner-1"})
	require.NoError(t, err)

	assert.Contains(t, query, `"category" = $`)
	assert.Contains(t, query, `"owner_id" = $`)
	assert.NotContains(t, query, "ILIKE")
	assert.Contains(t, args, "tools")
	assert.Contains(t, args, "owner-1")
}
