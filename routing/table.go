// Package routing, sorun tipinden sorumlu birime sabit eşlemeyi tutar.
//
// Bir şikayetin hangi birime düşeceği sadece burada belirlenir; başka hiçbir
// katman birimi kendisi hesaplamaz veya client'tan almaz.
package routing

import "github.com/akinalp/parkapp/models"

// DefaultDepartment, tanınmayan sorun tipleri için hedef birim.
// Bilinmeyen tip hata değildir; şikayet yine kabul edilir ve buraya yönlenir.
const DefaultDepartment = models.DeptEnvironment

// route, tek bir sorun tipi → birim satırı.
type route struct {
	issueType  string
	department models.Department
}

// table, 24 sorun tipi, birim başına 4. Sıra client'taki seçim listesinin sırasıdır.
var table = []route{
	{"Kırık Bank", models.DeptEnvironment},
	{"Çöp Kutusu Arızası", models.DeptEnvironment},
	{"Çevre Kirliliği", models.DeptEnvironment},
	{"Gürültü Kirliliği", models.DeptEnvironment},

	{"Aydınlatma Arızası", models.DeptLighting},
	{"Elektrik Sorunu", models.DeptLighting},
	{"Sokak Lambası Kırık", models.DeptLighting},
	{"Enerji Kesintisi", models.DeptLighting},

	{"Çim Bakımı", models.DeptParks},
	{"Ağaç Dikimi", models.DeptParks},
	{"Çiçek Bakımı", models.DeptParks},
	{"Sulama Sistemi", models.DeptParks},

	{"Çöp Toplama", models.DeptCleaning},
	{"Temizlik Eksikliği", models.DeptCleaning},
	{"Atık Sorunu", models.DeptCleaning},
	{"Hijyen Problemi", models.DeptCleaning},

	{"Yol Arızası", models.DeptRoads},
	{"Kaldırım Sorunu", models.DeptRoads},
	{"Altyapı Problemi", models.DeptRoads},
	{"Su Birikintisi", models.DeptRoads},

	{"Spor Ekipmanı Arızası", models.DeptSports},
	{"Spor Sahası Sorunu", models.DeptSports},
	{"Fitness Aleti Kırık", models.DeptSports},
	{"Spor Tesisi Problemi", models.DeptSports},
}

// index, table'dan paket yüklenirken bir kez kurulur; sonrasında sadece okunur.
var index = func() map[string]models.Department {
	m := make(map[string]models.Department, len(table))
	for _, r := range table {
		m[r.issueType] = r.department
	}
	return m
}()

// DepartmentFor, sorun tipinin sorumlu birimini döner.
// Total fonksiyondur: tanınmayan tipler DefaultDepartment'a düşer.
func DepartmentFor(issueType string) models.Department {
	if dept, ok := index[issueType]; ok {
		return dept
	}
	return DefaultDepartment
}

// IsKnown, sorun tipinin sabit listede olup olmadığını döner.
func IsKnown(issueType string) bool {
	_, ok := index[issueType]
	return ok
}

// IssueTypes, 24 sorun tipini sabit sırayla döner.
func IssueTypes() []string {
	out := make([]string, len(table))
	for i, r := range table {
		out[i] = r.issueType
	}
	return out
}

// IssueTypesFor, bir birime eşlenen sorun tiplerini sırayla döner.
func IssueTypesFor(dept models.Department) []string {
	var out []string
	for _, r := range table {
		if r.department == dept {
			out = append(out, r.issueType)
		}
	}
	return out
}
