package repository

import (
	"testing"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticParkRepo_Catalog(t *testing.T) {
	repo := NewStaticParkRepo(nil)

	parks := repo.GetAll()
	require.Len(t, parks, 50)
	assert.Equal(t, 50, repo.Count())

	seen := make(map[string]bool)
	for _, p := range parks {
		assert.False(t, seen[p.ID], "duplicate park id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.ReviewCount, 0)
	}

	park, err := repo.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Kültür Parkı", park.Name)
	assert.Equal(t, 128, park.ReviewCount)

	_, err = repo.GetByID("999")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestStaticParkRepo_GetAllReturnsCopy(t *testing.T) {
	repo := NewStaticParkRepo(nil)

	parks := repo.GetAll()
	parks[0].Name = "changed"

	park, err := repo.GetByID(parks[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", park.Name)
}

func TestStaticParkRepo_Search(t *testing.T) {
	repo := NewStaticParkRepo([]models.Park{
		{ID: "1", Name: "Kültür Parkı", Address: "Merkez, Malatya", Description: "Şehrin kalbi"},
		{ID: "2", Name: "Abdullah Gül Parkı", Address: "Yeşilyurt, Malatya", Description: "Modern tasarım"},
		{ID: "3", Name: "Mişmiş Parkı", Address: "Mişmiş Mahallesi, Yeşilyurt", Description: "Kompakt"},
	})

	tests := []struct {
		query string
		want  []string
	}{
		{"kültür", []string{"1"}},
		{"KÜLTÜR", []string{"1"}},
		{"PARKI", []string{"1", "2", "3"}},
		{"yeşilyurt", []string{"2", "3"}},
		{"modern", []string{"2"}},
		{"  ", []string{"1", "2", "3"}},
		{"Battalgazi", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			ids := []string{}
			for _, p := range repo.Search(tt.query) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
