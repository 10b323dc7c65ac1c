// AngelaMos | 2026
// generator_test.go

package facts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticKnownLeader(t *testing.T) {
	gen := NewStatic()

	got, err := gen.Generate(context.Background(), Leader{
		NameRu:    "Владимир Ильич Ленин",
		NameEn:    "Vladimir Lenin",
		BirthYear: 1870,
		Position:  "Председатель Совнаркома",
	}, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, fact := range got {
		assert.NotEmpty(t, fact)
	}
}

func TestStaticUnknownLeaderTemplates(t *testing.T) {
	gen := NewStatic()

	got, err := gen.Generate(context.Background(), Leader{
		NameRu:    "Неизвестный Деятель",
		NameEn:    "Unknown Figure",
		BirthYear: 1900,
		Position:  "народный комиссар",
	}, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, fact := range got {
		assert.NotEmpty(t, fact)
	}
}

func TestStaticCountDefaults(t *testing.T) {
	gen := NewStatic()

	got, err := gen.Generate(context.Background(), Leader{
		NameRu:    "Иосиф Виссарионович Сталин",
		NameEn:    "Joseph Stalin",
		BirthYear: 1878,
	}, 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestParseFactsStripsListMarkers(t *testing.T) {
	content := "1. Первый факт\n2) Второй факт\n- Третий факт\n\n• Четвёртый факт"

	got := parseFacts(content, 5)
	require.Len(t, got, 4)
	assert.Equal(t, "Первый факт", got[0])
	assert.Equal(t, "Второй факт", got[1])
	assert.Equal(t, "Третий факт", got[2])
	assert.Equal(t, "Четвёртый факт", got[3])
}

func TestParseFactsHonorsLimit(t *testing.T) {
	content := "один\nдва\nтри\nчетыре\nпять\nшесть"

	got := parseFacts(content, 3)
	assert.Len(t, got, 3)
}

func TestParseFactsEmpty(t *testing.T) {
	assert.Empty(t, parseFacts("", 5))
	assert.Empty(t, parseFacts("\n\n  \n", 5))
}
