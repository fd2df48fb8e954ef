package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-waste-bot/internal/domain/models"
)

func TestParseWasteType_Synonyms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label    string
		expected models.WasteKind
	}{
		{"Bio", models.WasteBio},
		{"Biotonne", models.WasteBio},
		{"Rest", models.WasteRest},
		{"Restmüll", models.WasteRest},
		{"Restabfall", models.WasteRest},
		{"Papier", models.WastePapier},
		{"Pappe", models.WastePapier},
		{"Blaue Tonne", models.WastePapier},
		{"Gelb", models.WasteGelb},
		{"Gelbe Tonne", models.WasteGelb},
		{"Gelber Sack", models.WasteGelb},
		{"Weihnachtsbaum", models.WasteWeihnachtsbaum},
		{"Weihnachtsbäume", models.WasteWeihnachtsbaum},
	}

	for _, tc := range cases {
		result := models.ParseWasteType(tc.label)

		assert.Equal(t, tc.expected, result.Kind, "метка %q", tc.label)
		assert.Empty(t, result.Label)
	}
}

func TestParseWasteType_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	result := models.ParseWasteType("  Biotonne  ")

	assert.Equal(t, models.WasteBio, result.Kind)
}

func TestParseWasteType_UnknownIsTotal(t *testing.T) {
	t.Parallel()

	result := models.ParseWasteType("Sperrmüll")

	assert.Equal(t, models.WasteOther, result.Kind)
	assert.Equal(t, "Sperrmüll", result.Label)
	assert.Equal(t, "Sperrmüll", result.String())
}

func TestWasteType_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"Bio", "Rest", "Papier", "Gelb", "Weihnachtsbaum", "Sondermüll"} {
		parsed := models.ParseWasteType(label)
		again := models.ParseWasteType(parsed.String())

		assert.Equal(t, parsed, again, "метка %q", label)
	}
}

func TestNormalizeWasteTypes(t *testing.T) {
	t.Parallel()

	types := models.NormalizeWasteTypes("Biotonne, Restabfall, , Gelbe Tonne")

	assert.Equal(t, []models.WasteType{
		{Kind: models.WasteBio},
		{Kind: models.WasteRest},
		{Kind: models.WasteGelb},
	}, types)
}

func TestNormalizeWasteTypes_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, models.NormalizeWasteTypes(""))
	assert.Empty(t, models.NormalizeWasteTypes(" , ,"))
}

func TestDefaultSubscriptions(t *testing.T) {
	t.Parallel()

	defaults := models.DefaultSubscriptions()

	assert.Equal(t, []models.WasteType{
		{Kind: models.WasteBio},
		{Kind: models.WasteRest},
		{Kind: models.WastePapier},
		{Kind: models.WasteGelb},
	}, defaults)
}

func TestUserLocation_DisplayLabel(t *testing.T) {
	t.Parallel()

	withAlias := &models.UserLocation{LocationCode: "70339", Alias: "Дом"}
	withoutAlias := &models.UserLocation{LocationCode: "70339"}

	assert.Equal(t, "Дом", withAlias.DisplayLabel())
	assert.Equal(t, "70339", withoutAlias.DisplayLabel())
}
