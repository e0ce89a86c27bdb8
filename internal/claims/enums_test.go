package claims

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFileExtension(t *testing.T) {
	for _, s := range []string{"TXT", "txt", "Csv", "XML"} {
		_, ok := ParseFileExtension(s)
		assert.True(t, ok, s)
	}

	_, ok := ParseFileExtension("PDF")
	assert.False(t, ok)
}

func TestParseAreaOfLaw(t *testing.T) {
	area, ok := ParseAreaOfLaw("LEGAL HELP")
	require.True(t, ok)
	assert.Equal(t, AreaLegalHelp, area)

	area, ok = ParseAreaOfLaw(" crime lower ")
	require.True(t, ok)
	assert.Equal(t, AreaCrimeLower, area)

	_, ok = ParseAreaOfLaw("CIVIL")
	assert.False(t, ok)
}

func TestParseMediationType_PrefixResolution(t *testing.T) {
	// Truncated wire codes resolve to the first declared member with that
	// prefix.
	mt, ok := ParseMediationType("MDAC")
	require.True(t, ok)
	assert.Equal(t, MediationMDACAllIssuesCo, mt)

	mt, ok = ParseMediationType("MDAS")
	require.True(t, ok)
	assert.Equal(t, MediationMDASSole, mt)

	// Full names resolve to themselves.
	mt, ok = ParseMediationType("MDCC_CHILD_ONLY_SOLE")
	require.True(t, ok)
	assert.Equal(t, MediationMDCCChildOnlySole, mt)

	_, ok = ParseMediationType("MDXX")
	assert.False(t, ok)
}

func TestResolveMatterCode(t *testing.T) {
	mc, ok := ResolveMatterCode("AAP")
	require.True(t, ok)
	require.NotNil(t, mc.Category)
	assert.Equal(t, CategoryAAP, *mc.Category)
	assert.Nil(t, mc.Mediation)

	mc, ok = ResolveMatterCode("MDAC")
	require.True(t, ok)
	require.NotNil(t, mc.Mediation)
	assert.Equal(t, MediationMDACAllIssuesCo, *mc.Mediation)
	assert.Nil(t, mc.Category)

	_, ok = ResolveMatterCode("ZZZ")
	assert.False(t, ok)
}
