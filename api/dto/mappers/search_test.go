package mappers

import (
	"strings"
	"testing"

	"cultural-search-api/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSearchResponse_Nil(t *testing.T) {
	resp := ToSearchResponse(nil)

	assert.Equal(t, 200, resp.Code)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Nil(t, resp.AIAnalysis)
}

func TestToSearchResponse_Page(t *testing.T) {
	c := domain.NewSearchCandidate(7, "春节", "<p>春节是农历新年</p>", 2.0, 1.0)
	c.Tags = []string{"传统实体"}
	c.Origin = "cultural_entities"
	c.FinalScore = 1.0

	resp := ToSearchResponse(&domain.SearchResult{
		Items:      []domain.SearchCandidate{c},
		Total:      9,
		Page:       2,
		PageSize:   8,
		TotalPages: 2,
	})

	require.Len(t, resp.Data, 1)
	item := resp.Data[0]
	assert.Equal(t, int64(7), item.ID)
	assert.Equal(t, "春节", item.EntityName)
	assert.Equal(t, "春节是农历新年", item.Snippet)
	assert.Equal(t, 2.0, item.CombinedScore)
	assert.Equal(t, 1.0, item.Similarity)
	assert.Equal(t, 9, resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Nil(t, resp.AIAnalysis)
}

func TestToSearchResponse_Hint(t *testing.T) {
	resp := ToSearchResponse(&domain.SearchResult{Hint: &domain.Hint{SearchQuery: "灯会"}})

	require.NotNil(t, resp.AIAnalysis)
	assert.Equal(t, []string{}, resp.AIAnalysis.Keywords)
	assert.Equal(t, "灯会", resp.AIAnalysis.SearchQuery)
}

func TestToSearchItem_SnippetTruncated(t *testing.T) {
	desc := strings.Repeat("剪", 120)

	item := ToSearchItem(domain.SearchCandidate{Description: desc})

	assert.Equal(t, strings.Repeat("剪", 100)+"...", item.Snippet)
	assert.Equal(t, desc, item.Description)
	assert.Equal(t, []string{}, item.Tags)
}
