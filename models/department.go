package models

// Department, şikayetlerden sorumlu belediye birimidir.
// Kapalı bir kümedir; her admin hesabı ve her şikayet tam olarak birini taşır.
type Department string

const (
	DeptEnvironment Department = "Çevre ve Şehircilik"
	DeptLighting    Department = "Aydınlatma ve Enerji"
	DeptParks       Department = "Park ve Bahçeler"
	DeptCleaning    Department = "Temizlik İşleri"
	DeptRoads       Department = "Yol ve Altyapı"
	DeptSports      Department = "Spor ve Gençlik"
)

// departments, sabit sıralı birim listesi.
var departments = []Department{
	DeptEnvironment,
	DeptLighting,
	DeptParks,
	DeptCleaning,
	DeptRoads,
	DeptSports,
}

// departmentMailboxes, her birimin kurumsal posta kutusu.
// Admin seed'i ve yeni şikayet bildirimleri bu adresleri kullanır.
var departmentMailboxes = map[Department]string{
	DeptEnvironment: "cevre@malatya.gov.tr",
	DeptLighting:    "isik@malatya.gov.tr",
	DeptParks:       "cim@malatya.gov.tr",
	DeptCleaning:    "temizlik@malatya.gov.tr",
	DeptRoads:       "yol@malatya.gov.tr",
	DeptSports:      "spor@malatya.gov.tr",
}

// Departments, altı birimi sabit sırayla döner. Dönen slice kopyadır.
func Departments() []Department {
	out := make([]Department, len(departments))
	copy(out, departments)
	return out
}

// Valid, değerin kapalı kümede olup olmadığını kontrol eder.
func (d Department) Valid() bool {
	_, ok := departmentMailboxes[d]
	return ok
}

// Mailbox, birimin kurumsal email adresini döner. Geçersiz birim için boş string.
func (d Department) Mailbox() string {
	return departmentMailboxes[d]
}

func (d Department) String() string {
	return string(d)
}
