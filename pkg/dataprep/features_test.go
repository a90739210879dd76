package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titanic/pkg/dataset"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Braund, Mr. Owen Harris", "Mr"},
		{"Heikkinen, Miss. Laina", "Miss"},
		{"Cumings, Mrs. John Bradley (Florence Briggs Thayer)", "Mrs"},
		{"Simonius-Blumer, Col. Oberst Alfons", "Col"},
		{"no title here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractTitle(tt.name), tt.name)
	}
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "Rare", GroupTitle("Jonkheer"))
	assert.Equal(t, "Rare", GroupTitle("Dr"))
	assert.Equal(t, "Miss", GroupTitle("Mlle"))
	assert.Equal(t, "Miss", GroupTitle("Ms"))
	assert.Equal(t, "Mrs", GroupTitle("Mme"))
	assert.Equal(t, "Mr", GroupTitle("Mr"))
}

func TestGenerateFeatures(t *testing.T) {
	f, err := dataset.New(
		[]string{ColName, ColSex, ColAge, ColSibSp, ColParch, ColFare},
		[][]string{
			{"Braund, Mr. Owen Harris", "male", "22", "1", "0", "7.25"},
			{"Heikkinen, Miss. Laina", "female", "26", "0", "0", "7.925"},
			{"Allen, Master. Hudson", "male", "4", "3", "2", "151.55"},
			{"Dodge, Dr. Washington", "male", "70", "0", "0", "81.8583"},
		},
	)
	require.NoError(t, err)
	require.NoError(t, GenerateFeatures(f))

	family, err := f.FloatColumn(ColFamilySize)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 6, 1}, family)

	alone, err := f.FloatColumn(ColIsAlone)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 1}, alone)

	titles, err := f.Column(ColTitle)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mr", "Miss", "Master", "Rare"}, titles)

	ageBins, err := f.Column(ColAgeBin)
	require.NoError(t, err)
	assert.Equal(t, []string{"Adult", "Adult", "Child", "Senior"}, ageBins)

	// fare quartiles of {7.25, 7.925, 81.8583, 151.55}
	fareBins, err := f.Column(ColFareBin)
	require.NoError(t, err)
	assert.Equal(t, []string{"Low", "Medium", "VeryHigh", "High"}, fareBins)
}

func TestBinAgeBoundaries(t *testing.T) {
	tests := []struct {
		age  float64
		want string
	}{
		{0.42, "Child"},
		{12, "Child"},
		{12.5, "Teenager"},
		{18, "Teenager"},
		{35, "Adult"},
		{36, "Middle"},
		{60, "Middle"},
		{80, "Senior"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, binAge(tt.age), "age %v", tt.age)
	}
}
