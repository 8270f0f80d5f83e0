package puzzle

import (
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPredictor_Predict(t *testing.T) {
	p := NewPredictor("/work")
	date := day(2024, time.May, 1)

	tests := []struct {
		kind Kind
		url  string
		name string
	}{
		{WSJStandard, "https://s.wsj.net/public/resources/documents/XWD05012024.pdf", "2024-05-01-wsj-standard.pdf"},
		{WSJNumber, "https://s.wsj.net/public/resources/documents/WSJ_2024.pdf", "2024-05-01-wsj-number.pdf"},
		{WSJVariety, "https://s.wsj.net/public/resources/documents/SatPuz05012024.pdf", "2024-05-01-wsj-variety.pdf"},
		{GuardianCryptic, "https://crosswords-static.guim.co.uk/gdn.cryptic.20240501.pdf", "2024-05-01-guardian-cryptic.pdf"},
		{GuardianQuick, "https://crosswords-static.guim.co.uk/gdn.quick.20240501.pdf", "2024-05-01-guardian-quick.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			spec, err := p.Predict(Identity{Kind: tt.kind, Date: date})
			require.NoError(t, err)

			assert.Equal(t, tt.url, spec.RemoteURL)
			assert.Equal(t, tt.name, spec.CanonicalName)
			assert.Equal(t, filepath.Join("/work", tt.name), spec.LocalPath)
			assert.Equal(t, tt.kind, spec.Identity.Kind)
		})
	}
}

func TestPredictor_ZeroPadsSingleDigitDates(t *testing.T) {
	p := NewPredictor("")
	spec, err := p.Predict(Identity{Kind: WSJStandard, Date: day(987, time.January, 9)})
	require.NoError(t, err)

	assert.Equal(t, "https://s.wsj.net/public/resources/documents/XWD01090987.pdf", spec.RemoteURL)
	assert.Equal(t, "0987-01-09-wsj-standard.pdf", spec.CanonicalName)
}

func TestPredictor_UsesDateInItsOwnLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-06-02 01:30 UTC is still June 1st in New York.
	local := time.Date(2024, time.June, 2, 1, 30, 0, 0, time.UTC).In(ny)

	spec, err := NewPredictor("").Predict(Identity{Kind: GuardianQuick, Date: local})
	require.NoError(t, err)
	assert.Equal(t, "https://crosswords-static.guim.co.uk/gdn.quick.20240601.pdf", spec.RemoteURL)
	assert.Equal(t, "2024-06-01-guardian-quick.pdf", spec.CanonicalName)
}

func TestPredictor_UnknownKindFailsFast(t *testing.T) {
	_, err := NewPredictor("").Predict(Identity{Kind: Kind{Source: "nyt", Variant: "mini"}, Date: day(2024, 5, 1)})
	require.ErrorIs(t, err, ErrUnknownPuzzle)
	assert.Contains(t, err.Error(), "nyt/mini")

	_, err = NewPredictor("").PredictAll([]Identity{
		{Kind: WSJStandard, Date: day(2024, 5, 1)},
		{Kind: Kind{Source: SourceGuardian, Variant: VariantStandard}, Date: day(2024, 5, 1)},
	})
	require.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestPredictor_EveryKindHasAPattern(t *testing.T) {
	p := NewPredictor("")
	seen := map[string]bool{}
	for _, k := range []Kind{WSJStandard, WSJNumber, WSJVariety, GuardianCryptic, GuardianQuick} {
		spec, err := p.Predict(Identity{Kind: k, Date: day(2025, time.December, 31)})
		require.NoError(t, err, k.String())
		require.False(t, seen[spec.CanonicalName], "canonical names must not collide")
		seen[spec.CanonicalName] = true
	}
}

func TestIdentity_Stamps(t *testing.T) {
	id := Identity{Kind: WSJStandard, Date: day(2024, time.March, 9)}
	assert.Equal(t, "03092024", id.MDY())
	assert.Equal(t, "20240309", id.YMD())
	assert.Equal(t, "2024", id.Year())
}

func TestIdentity_String(t *testing.T) {
	id := Identity{Kind: WSJVariety, Date: day(2024, time.May, 4)}
	assert.Equal(t, "wsj/variety@2024-05-04", id.String())
}
