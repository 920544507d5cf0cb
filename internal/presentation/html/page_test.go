package html

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockwalk/blockwalk/pkg/catalog"
	"github.com/blockwalk/blockwalk/pkg/domain"
)

func TestRenderPage_ChartCapable(t *testing.T) {
	for _, slug := range Exportable() {
		d, err := catalog.FromSlug(slug)
		require.NoError(t, err)
		state := domain.NewState(d.Info().Mode, d.Params())

		var buf bytes.Buffer
		require.NoErrorf(t, RenderPage(&buf, d, state), "slug %q", slug)
		assert.Contains(t, buf.String(), "echarts", "page should embed chart markup")
	}
}

func TestRenderPage_NoChartView(t *testing.T) {
	d, err := catalog.FromSlug("utxo")
	require.NoError(t, err)
	var buf bytes.Buffer
	err = RenderPage(&buf, d, domain.NewState(d.Info().Mode, d.Params()))
	assert.Error(t, err)
}

func TestRenderCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCatalog(&buf))
	assert.NotZero(t, buf.Len())
}

func TestExportable(t *testing.T) {
	slugs := Exportable()
	assert.Contains(t, slugs, "amm-swap")
	assert.Contains(t, slugs, "ec-field")
	assert.NotContains(t, slugs, "utxo")
}
