package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docwolf/actionmap/internal/diag"
)

func TestHarvest(t *testing.T) {
	doc := mustDoc(t, pageHTML(`
	<tr><td>s3:GetObject</td><td>Grants read</td><td>Read</td><td>object*</td><td></td><td></td></tr>
	<tr><td>s3:PutObject</td><td>Grants write</td><td>Write</td><td>object*</td><td></td><td></td></tr>`))

	records, diags := NewHarvester().Harvest(doc, "amazons3")
	assert.Empty(t, diags)
	require.Len(t, records, 2)
	assert.Equal(t, AccessRead, records["s3:GetObject"].AccessLevel)
	assert.Equal(t, AccessWrite, records["s3:PutObject"].AccessLevel)
}

func TestHarvestMissingTable(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>moved</p></body></html>`)

	records, diags := NewHarvester().Harvest(doc, "amazons3")
	assert.Empty(t, records)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SeverityWarning, diags[0].Severity)
	assert.Equal(t, "Page missing actions table: amazons3", diags[0].Message)
}

func TestHarvestVocabularyErrorDiscardsPage(t *testing.T) {
	// One bad access level discards the whole page, including rows that
	// parsed before it.
	doc := mustDoc(t, pageHTML(`
	<tr><td>s3:GetObject</td><td>Grants read</td><td>Read</td><td></td><td></td><td></td></tr>
	<tr><td>s3:Frobnicate</td><td>???</td><td>Maybe</td><td></td><td></td><td></td></tr>`))

	records, diags := NewHarvester().Harvest(doc, "amazons3")
	assert.Empty(t, records)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SeverityFatal, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "amazons3")
	assert.Contains(t, diags[0].Message, "unknown access level")
}

func TestHarvestShapeErrorDiscardsPage(t *testing.T) {
	doc := mustDoc(t, pageHTML(`
	<tr><td>s3:GetObject</td><td>Grants read</td><td>Read</td><td></td><td></td></tr>`))

	records, diags := NewHarvester().Harvest(doc, "amazons3")
	assert.Empty(t, records)
	require.Len(t, diags, 1)
	assert.Equal(t, diag.SeverityFatal, diags[0].Severity)
}

func TestHarvestKeepsFirstDuplicateWithinPage(t *testing.T) {
	doc := mustDoc(t, pageHTML(`
	<tr><td>s3:GetObject</td><td>first</td><td>Read</td><td></td><td></td><td></td></tr>
	<tr><td>s3:GetObject</td><td>second</td><td>Write</td><td></td><td></td><td></td></tr>`))

	records, diags := NewHarvester().Harvest(doc, "amazons3")
	assert.Empty(t, diags)
	require.Len(t, records, 1)
	assert.Equal(t, "first", records["s3:GetObject"].Description)
}
