/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	c, err := LoadCategories("")
	require.NoError(t, err)

	assert.Equal(t, []string{"Avatar Comics", "Korra Comics"}, c.Children("comics"))
	assert.Len(t, c.Children("novels"), 4)
	assert.Nil(t, c.Children("The Legend of Korra"))
	assert.Contains(t, c.Tags(), "Roku Novels")
	assert.NotContains(t, c.Tags(), "novels")
}

func TestCategoriesExpand(t *testing.T) {
	c, err := LoadCategories("")
	require.NoError(t, err)

	active := c.Expand(map[string]bool{
		"comics":                     true,
		"The Legend of Korra":        false,
		"Avatar: The Last Airbender": true,
	})

	assert.Contains(t, active, "Avatar Comics")
	assert.Contains(t, active, "Korra Comics")
	assert.Contains(t, active, "Avatar: The Last Airbender")
	assert.NotContains(t, active, "The Legend of Korra")
}

func TestCategoriesParentChecked(t *testing.T) {
	c, err := LoadCategories("")
	require.NoError(t, err)

	assert.False(t, c.ParentChecked(map[string]bool{}, "novels"))
	assert.True(t, c.ParentChecked(map[string]bool{"Roku Novels": true}, "novels"))
	assert.True(t, c.ParentChecked(map[string]bool{"novels": true}, "novels"))
	assert.False(t, c.ParentChecked(map[string]bool{"Roku Novels": false}, "novels"))
}

func TestParseCategoriesRejectsBadCatalogs(t *testing.T) {
	tests := map[string]string{
		"empty":     `categories: []`,
		"no tag":    `categories: [{label: x}]`,
		"duplicate": `categories: [{tag: a}, {tag: b, children: [{tag: a}]}]`,
		"too deep":  `categories: [{tag: a, children: [{tag: b, children: [{tag: c}]}]}]`,
		"not yaml":  `categories: [`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCategories([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestNilCategories(t *testing.T) {
	var c *Categories
	assert.Nil(t, c.Children("comics"))
	assert.Nil(t, c.Tags())
	assert.Equal(t, map[string]struct{}{"x": {}}, c.Expand(map[string]bool{"x": true}))
}

func TestImagePath(t *testing.T) {
	tests := []struct {
		image, want string
	}{
		{"", ""},
		{"images/characters/Aang.png", "/images/characters/Aang.png"},
		{"/images/characters/Aang.png", "/images/characters/Aang.png"},
		{"../images/Aang.png", "/images/characters/Aang.png"},
		{"https://static.example.com/a/b/Aang.png", "/images/characters/Aang.png"},
		{`C:\portraits\Aang.png`, "/images/characters/Aang.png"},
		{"dir/", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ImagePath(tt.image, "/images/characters/"), tt.image)
	}
}
