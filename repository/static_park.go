package repository

import (
	"fmt"
	"strings"

	"github.com/akinalp/parkapp/models"
	"github.com/akinalp/parkapp/pkg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// staticParkRepo, ParkRepository'nin bellek içi implementasyonu.
// Katalog deploy anında sabittir; yazma yoktur, bu yüzden lock gerekmez.
type staticParkRepo struct {
	parks []models.Park
	byID  map[string]int
}

// NewStaticParkRepo, verilen parklarla katalog oluşturur. parks nil ise
// Malatya kataloğu kullanılır.
func NewStaticParkRepo(parks []models.Park) ParkRepository {
	if parks == nil {
		parks = malatyaParks
	}

	byID := make(map[string]int, len(parks))
	for i, p := range parks {
		byID[p.ID] = i
	}

	return &staticParkRepo{parks: parks, byID: byID}
}

func (r *staticParkRepo) GetAll() []models.Park {
	out := make([]models.Park, len(r.parks))
	copy(out, r.parks)
	return out
}

func (r *staticParkRepo) GetByID(id string) (*models.Park, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: park %s", pkg.ErrNotFound, id)
	}
	park := r.parks[i]
	return &park, nil
}

func (r *staticParkRepo) Search(query string) []models.Park {
	query = strings.TrimSpace(query)
	if query == "" {
		return r.GetAll()
	}

	// Türkçe kurallarıyla küçült: "I" → "ı", "İ" → "i".
	// cases.Caser goroutine-safe değildir, her çağrıda yenisi alınır.
	lower := cases.Lower(language.Turkish)
	needle := lower.String(query)

	out := []models.Park{}
	for _, p := range r.parks {
		if strings.Contains(lower.String(p.Name), needle) ||
			strings.Contains(lower.String(p.Address), needle) ||
			strings.Contains(lower.String(p.Description), needle) {
			out = append(out, p)
		}
	}
	return out
}

func (r *staticParkRepo) Count() int {
	return len(r.parks)
}
