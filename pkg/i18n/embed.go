package i18n

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Locales, binary'ye gömülü çeviri dosyalarını döner.
func Locales() fs.FS {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		// embed pattern'i sabit; buraya düşmek derleme hatası demektir.
		panic(err)
	}
	return sub
}
