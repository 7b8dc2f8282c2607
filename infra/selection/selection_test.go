package selection

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParts_NoSelectionReturnsWholeDocument(t *testing.T) {
	doc := "package main\n\nfunc main() {}\n"

	assert.Equal(t, []string{doc}, Parts(doc, nil))
	assert.Equal(t, []string{doc}, Parts(doc, []Region{{Begin: 3, End: 3}}))
}

func TestParts_OrderedNonEmptyRegions(t *testing.T) {
	doc := "alpha beta gamma"
	got := Parts(doc, []Region{
		{Begin: 11, End: 16},
		{Begin: 4, End: 4},
		{Begin: 0, End: 5},
	})
	assert.Equal(t, []string{"gamma", "alpha"}, got)
}

func TestParts_RuneOffsetsAndClamping(t *testing.T) {
	doc := "héllo wörld"
	got := Parts(doc, []Region{{Begin: 6, End: 99}, {Begin: -4, End: 2}})
	assert.Equal(t, []string{"wörld", "hé"}, got)

	got = Parts(doc, []Region{{Begin: 50, End: 60}})
	assert.Equal(t, []string{doc}, got, "fully out-of-range regions select nothing")
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion(" 3:10 ")
	require.NoError(t, err)
	assert.Equal(t, Region{Begin: 3, End: 10}, r)

	r, err = ParseRegion("10:3")
	require.NoError(t, err)
	assert.Equal(t, Region{Begin: 3, End: 10}, r)
	assert.True(t, Region{Begin: 4, End: 4}.Empty())

	for _, bad := range []string{"", "3", "a:4", "3:b", "-1:4", "1:-4"} {
		_, err := ParseRegion(bad)
		assert.Error(t, err, bad)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "main.go", Filename(filepath.Join("src", "cmd", "main.go")))
	assert.Equal(t, "", Filename(""))
	assert.Equal(t, "", Filename("-"))
}
