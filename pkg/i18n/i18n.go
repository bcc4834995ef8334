// Package i18n, API'nin döndüğü sabit etiketleri kullanıcının diline çevirir.
//
// Değerlerin kendisi (durum, birim adı) her zaman Türkçe kalır; client
// filtre ve PATCH isteklerinde bunları kullanır. Çeviri sadece görüntülenen
// etiket içindir. Dil sırası: Accept-Language, sonra varsayılan (tr).
//
//	catalog, _ := i18n.NewCatalog(i18n.Locales())
//	catalog.Localizer("en").T("status.Çözüldü") // "Resolved"
package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/akinalp/parkapp/pkg/logger"
	"golang.org/x/text/language"
)

// SupportedLanguages, desteklenen dil kodları.
var SupportedLanguages = []string{"tr", "en"}

// DefaultLanguage, eşleşme yoksa kullanılan dil.
const DefaultLanguage = "tr"

// matcher, SupportedLanguages ile aynı sırada olmalı; Match'in döndüğü
// index bu slice'a bakar.
var matcher = language.NewMatcher([]language.Tag{language.Turkish, language.English})

// Catalog, yüklenmiş çevirileri tutar. Oluşturulduktan sonra salt okunur,
// goroutine'ler arasında paylaşılabilir.
type Catalog struct {
	// map[lang]map[key]value
	translations map[string]map[string]string
}

// NewCatalog, her desteklenen dil için <lang>.json dosyasını okur.
// İç içe anahtarlar noktalı hale getirilir: {"status": {"x": ".."}} → "status.x".
func NewCatalog(localesFS fs.FS) (*Catalog, error) {
	log := logger.For("i18n")
	c := &Catalog{translations: make(map[string]map[string]string, len(SupportedLanguages))}

	for _, lang := range SupportedLanguages {
		fileName := lang + ".json"

		data, err := fs.ReadFile(localesFS, fileName)
		if err != nil {
			return nil, fmt.Errorf("failed to read translation file %s: %w", fileName, err)
		}

		var nested map[string]any
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, fmt.Errorf("failed to parse translation file %s: %w", fileName, err)
		}

		flat := make(map[string]string)
		flattenMap("", nested, flat)
		c.translations[lang] = flat

		log.Debug().Str("lang", lang).Int("keys", len(flat)).Msg("translations loaded")
	}

	return c, nil
}

// Localizer, tek bir dil için çeviri yapar.
type Localizer struct {
	lang    string
	catalog *Catalog
}

// Localizer, verilen dil için Localizer döner. Desteklenmeyen dil
// varsayılana düşer.
func (c *Catalog) Localizer(lang string) *Localizer {
	if !isSupported(lang) {
		lang = DefaultLanguage
	}
	return &Localizer{lang: lang, catalog: c}
}

// Lang, localizer'ın fiilen kullandığı dil.
func (l *Localizer) Lang() string {
	return l.lang
}

// T, anahtarın çevirisini döner. Kullanıcının dilinde yoksa varsayılan
// dile, orada da yoksa anahtarın son parçasına düşer.
func (l *Localizer) T(key string) string {
	if msg, ok := l.catalog.translations[l.lang][key]; ok {
		return msg
	}
	if msg, ok := l.catalog.translations[DefaultLanguage][key]; ok {
		return msg
	}
	if i := strings.Index(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}

// DetectLanguage, Accept-Language header'ından en uygun desteklenen dili
// seçer. q değerleri ve bölge alt etiketleri dikkate alınır:
// "en-US,en;q=0.9,tr;q=0.8" → "en"
func DetectLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}

func isSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

func flattenMap(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			dst[key] = val
		case map[string]any:
			flattenMap(key, val, dst)
		}
	}
}
