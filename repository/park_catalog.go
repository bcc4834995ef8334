package repository

import "github.com/akinalp/parkapp/models"

// malatyaParks, Malatya'daki parkların sabit kataloğu.
var malatyaParks = []models.Park{
	{
		ID:           "1",
		Name:         "Kültür Parkı",
		Description:  "Malatya'nın merkezindeki en büyük ve en popüler park. Yeşil alanları, yürüyüş yolları, dinlenme alanları ve çeşitli aktivite imkanları ile şehrin kalbi konumunda.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Merkez, Malatya",
		Facilities:   "Çocuk Oyun Alanı, Spor Sahaları, Yürüyüş Yolları, Piknik Alanları, Kafeler",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.5,
		ReviewCount:  128,
	},
	{
		ID:           "2",
		Name:         "Abdullah Gül Parkı",
		Description:  "Modern tasarımı ve geniş yeşil alanları ile öne çıkan park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeşilyurt, Malatya",
		Facilities:   "Basketbol Sahası, Tenis Kortu, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.3,
		ReviewCount:  95,
	},
	{
		ID:           "3",
		Name:         "Mişmiş Parkı",
		Description:  "Mişmiş mahallesinde bulunan kompakt ve kullanışlı park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Mişmiş Mahallesi, Yeşilyurt",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  67,
	},
	{
		ID:           "4",
		Name:         "Beşkonaklar Parkı",
		Description:  "Beşkonaklar mahallesinde bulunan modern park. Çocuk oyun alanları ve spor imkanları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Beşkonaklar Mahallesi, Battalgazi",
		Facilities:   "Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  78,
	},
	{
		ID:           "5",
		Name:         "Yeşilyurt Parkı",
		Description:  "Yeşilyurt ilçesindeki büyük park. Piknik alanları ve doğal güzellikleri ile tanınır.",
		Manager:      "Yeşilyurt Belediyesi",
		Address:      "Yeşilyurt Merkez",
		Facilities:   "Piknik Alanları, Çocuk Oyun Alanı, Spor Sahaları, Yürüyüş Yolları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.4,
		ReviewCount:  89,
	},
	{
		ID:           "6",
		Name:         "Battalgazi Parkı",
		Description:  "Battalgazi ilçesinde tarihi dokunun yanında yer alan park. Tarihi atmosfer ile modern park anlayışını birleştirir.",
		Manager:      "Battalgazi Belediyesi",
		Address:      "Battalgazi Merkez",
		Facilities:   "Tarihi Dokuda Dinlenme Alanları, Çocuk Oyun Alanı, Kafeler",
		OpeningHours: "08:00 - 20:00",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  56,
	},
	{
		ID:           "7",
		Name:         "Hacı Halil Parkı",
		Description:  "Hacı Halil mahallesinde bulunan modern park. Çocuk oyun alanları ve spor imkanları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Hacı Halil Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları, Dinlenme Bankları",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  72,
	},
	{
		ID:           "8",
		Name:         "Fırat Parkı",
		Description:  "Fırat nehri kenarında bulunan doğal güzellikleri ile öne çıkan park. Piknik alanları ve manzara seyir noktaları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Fırat Kenarı, Merkez",
		Facilities:   "Piknik Alanları, Manzara Seyir Noktaları, Yürüyüş Yolları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.6,
		ReviewCount:  103,
	},
	{
		ID:           "9",
		Name:         "Gazi Parkı",
		Description:  "Gazi mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Gazi Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  58,
	},
	{
		ID:           "10",
		Name:         "Cumhuriyet Parkı",
		Description:  "Cumhuriyet mahallesinde bulunan tarihi park. Tarihi dokunun yanında yer alan yeşil alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Cumhuriyet Mahallesi, Merkez",
		Facilities:   "Tarihi Dokuda Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "08:00 - 20:00",
		IsOpen:       true,
		Rating:       3.9,
		ReviewCount:  45,
	},
	{
		ID:           "11",
		Name:         "Yenişehir Parkı",
		Description:  "Yenişehir mahallesinde bulunan modern park. Geniş yeşil alanları ve spor imkanları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yenişehir Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Piknik Alanları",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  81,
	},
	{
		ID:           "12",
		Name:         "Fatih Parkı",
		Description:  "Fatih mahallesinde bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Fatih Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  63,
	},
	{
		ID:           "13",
		Name:         "Atatürk Parkı",
		Description:  "Atatürk mahallesinde bulunan büyük park. Anıt ve heykeller ile donatılmış tarihi park.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Atatürk Mahallesi, Merkez",
		Facilities:   "Anıt ve Heykeller, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.3,
		ReviewCount:  92,
	},
	{
		ID:           "14",
		Name:         "İnönü Parkı",
		Description:  "İnönü mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "İnönü Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Tenis Kortu, Çocuk Oyun Alanı, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  74,
	},
	{
		ID:           "15",
		Name:         "Orduze Parkı",
		Description:  "Orduze mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Piknik alanları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Orduze Mahallesi, Merkez",
		Facilities:   "Piknik Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları, Doğal Güzellikler",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.4,
		ReviewCount:  87,
	},
	{
		ID:           "16",
		Name:         "Çarşı Parkı",
		Description:  "Çarşı mahallesinde bulunan merkezi konumdaki park. Alışveriş merkezlerinin yanında yer alır.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Çarşı Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan, Kafeler",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  69,
	},
	{
		ID:           "17",
		Name:         "Hürriyet Parkı",
		Description:  "Hürriyet mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Hürriyet Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  76,
	},
	{
		ID:           "18",
		Name:         "Yalvaç Parkı",
		Description:  "Yalvaç mahallesinde bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yalvaç Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       3.9,
		ReviewCount:  52,
	},
	{
		ID:           "19",
		Name:         "Çamlıca Parkı",
		Description:  "Çamlıca mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Çam ağaçları ile kaplı.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Çamlıca Mahallesi, Merkez",
		Facilities:   "Çam Ağaçları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.5,
		ReviewCount:  94,
	},
	{
		ID:           "20",
		Name:         "Gündüzbey Parkı",
		Description:  "Gündüzbey mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Gündüzbey Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  68,
	},
	{
		ID:           "21",
		Name:         "Beydağı Parkı",
		Description:  "Beydağı mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Manzara seyir noktaları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Beydağı Mahallesi, Merkez",
		Facilities:   "Manzara Seyir Noktaları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.6,
		ReviewCount:  105,
	},
	{
		ID:           "22",
		Name:         "Turgut Özal Parkı",
		Description:  "Turgut Özal mahallesinde bulunan modern park. Anıt ve heykeller ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Turgut Özal Mahallesi, Merkez",
		Facilities:   "Anıt ve Heykeller, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.3,
		ReviewCount:  89,
	},
	{
		ID:           "23",
		Name:         "Şehit Fevzi Parkı",
		Description:  "Şehit Fevzi mahallesinde bulunan anıt park. Şehitlerin anısına yapılmış özel park.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Şehit Fevzi Mahallesi, Merkez",
		Facilities:   "Şehit Anıtı, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.7,
		ReviewCount:  112,
	},
	{
		ID:           "24",
		Name:         "Yeni Emek Parkı",
		Description:  "Yeni Emek mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Emek Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  77,
	},
	{
		ID:           "25",
		Name:         "Çilesiz Parkı",
		Description:  "Çilesiz mahallesinde bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Çilesiz Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  61,
	},
	{
		ID:           "26",
		Name:         "Alacakapı Parkı",
		Description:  "Alacakapı mahallesinde bulunan tarihi dokunun yanında yer alan park. Tarihi atmosfer ile modern park anlayışını birleştirir.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Alacakapı Mahallesi, Merkez",
		Facilities:   "Tarihi Dokuda Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "08:00 - 20:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  73,
	},
	{
		ID:           "27",
		Name:         "Yeni Cami Parkı",
		Description:  "Yeni Cami mahallesinde bulunan modern park. Cami çevresinde yer alan yeşil alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Cami Mahallesi, Merkez",
		Facilities:   "Cami Çevresi Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  65,
	},
	{
		ID:           "28",
		Name:         "Kırlangıç Parkı",
		Description:  "Kırlangıç mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Kuş gözlem noktaları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Kırlangıç Mahallesi, Merkez",
		Facilities:   "Kuş Gözlem Noktaları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.4,
		ReviewCount:  91,
	},
	{
		ID:           "29",
		Name:         "Gültepe Parkı",
		Description:  "Gültepe mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Gültepe Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  69,
	},
	{
		ID:           "30",
		Name:         "Yeni Mahalle Parkı",
		Description:  "Yeni Mahalle'de bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Mahalle, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  58,
	},
	{
		ID:           "31",
		Name:         "Çarşıbaşı Parkı",
		Description:  "Çarşıbaşı mahallesinde bulunan merkezi konumdaki park. Alışveriş alanlarının yanında yer alır.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Çarşıbaşı Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan, Kafeler",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  71,
	},
	{
		ID:           "32",
		Name:         "Şehit İbrahim Parkı",
		Description:  "Şehit İbrahim mahallesinde bulunan anıt park. Şehitlerin anısına yapılmış özel park.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Şehit İbrahim Mahallesi, Merkez",
		Facilities:   "Şehit Anıtı, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.6,
		ReviewCount:  98,
	},
	{
		ID:           "33",
		Name:         "Yeni İnönü Parkı",
		Description:  "Yeni İnönü mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni İnönü Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  75,
	},
	{
		ID:           "34",
		Name:         "Yeni Fatih Parkı",
		Description:  "Yeni Fatih mahallesinde bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Fatih Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  62,
	},
	{
		ID:           "35",
		Name:         "Yeni Gazi Parkı",
		Description:  "Yeni Gazi mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Gazi Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  67,
	},
	{
		ID:           "36",
		Name:         "Yeni Hürriyet Parkı",
		Description:  "Yeni Hürriyet mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Hürriyet Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  74,
	},
	{
		ID:           "37",
		Name:         "Yeni Cumhuriyet Parkı",
		Description:  "Yeni Cumhuriyet mahallesinde bulunan tarihi park. Tarihi dokunun yanında yer alan yeşil alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Cumhuriyet Mahallesi, Merkez",
		Facilities:   "Tarihi Dokuda Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "08:00 - 20:00",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  59,
	},
	{
		ID:           "38",
		Name:         "Yeni Atatürk Parkı",
		Description:  "Yeni Atatürk mahallesinde bulunan büyük park. Anıt ve heykeller ile donatılmış tarihi park.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Atatürk Mahallesi, Merkez",
		Facilities:   "Anıt ve Heykeller, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.3,
		ReviewCount:  83,
	},
	{
		ID:           "39",
		Name:         "Yeni Çarşı Parkı",
		Description:  "Yeni Çarşı mahallesinde bulunan merkezi konumdaki park. Alışveriş merkezlerinin yanında yer alır.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Çarşı Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan, Kafeler",
		OpeningHours: "06:00 - 23:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  70,
	},
	{
		ID:           "40",
		Name:         "Yeni Orduze Parkı",
		Description:  "Yeni Orduze mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Piknik alanları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Orduze Mahallesi, Merkez",
		Facilities:   "Piknik Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları, Doğal Güzellikler",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.4,
		ReviewCount:  86,
	},
	{
		ID:           "41",
		Name:         "Yeni Çamlıca Parkı",
		Description:  "Yeni Çamlıca mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Çam ağaçları ile kaplı.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Çamlıca Mahallesi, Merkez",
		Facilities:   "Çam Ağaçları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.5,
		ReviewCount:  93,
	},
	{
		ID:           "42",
		Name:         "Yeni Gündüzbey Parkı",
		Description:  "Yeni Gündüzbey mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Gündüzbey Mahallesi, Merkez",
		Facilities:   "Basketbol Sahası, Çocuk Oyun Alanı, Spor Ekipmanları, Yürüyüş Yolları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  66,
	},
	{
		ID:           "43",
		Name:         "Yeni Beydağı Parkı",
		Description:  "Yeni Beydağı mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Manzara seyir noktaları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Beydağı Mahallesi, Merkez",
		Facilities:   "Manzara Seyir Noktaları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.6,
		ReviewCount:  104,
	},
	{
		ID:           "44",
		Name:         "Yeni Turgut Özal Parkı",
		Description:  "Yeni Turgut Özal mahallesinde bulunan modern park. Anıt ve heykeller ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Turgut Özal Mahallesi, Merkez",
		Facilities:   "Anıt ve Heykeller, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.3,
		ReviewCount:  88,
	},
	{
		ID:           "45",
		Name:         "Yeni Şehit Fevzi Parkı",
		Description:  "Yeni Şehit Fevzi mahallesinde bulunan anıt park. Şehitlerin anısına yapılmış özel park.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Şehit Fevzi Mahallesi, Merkez",
		Facilities:   "Şehit Anıtı, Çocuk Oyun Alanı, Yürüyüş Yolları, Dinlenme Alanları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.7,
		ReviewCount:  111,
	},
	{
		ID:           "46",
		Name:         "Yeni Emek Parkı",
		Description:  "Yeni Emek mahallesinde bulunan modern park. Spor alanları ve çocuk oyun parkları ile donatılmış.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Emek Mahallesi, Merkez",
		Facilities:   "Spor Sahaları, Çocuk Oyun Alanı, Yürüyüş Yolları, Spor Ekipmanları",
		OpeningHours: "06:00 - 22:00",
		IsOpen:       true,
		Rating:       4.2,
		ReviewCount:  76,
	},
	{
		ID:           "47",
		Name:         "Yeni Çilesiz Parkı",
		Description:  "Yeni Çilesiz mahallesinde bulunan kompakt park. Yerel halkın sıkça kullandığı sosyal alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Çilesiz Mahallesi, Merkez",
		Facilities:   "Çocuk Oyun Alanı, Dinlenme Bankları, Yeşil Alan",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  60,
	},
	{
		ID:           "48",
		Name:         "Yeni Alacakapı Parkı",
		Description:  "Yeni Alacakapı mahallesinde bulunan tarihi dokunun yanında yer alan park. Tarihi atmosfer ile modern park anlayışını birleştirir.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Alacakapı Mahallesi, Merkez",
		Facilities:   "Tarihi Dokuda Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "08:00 - 20:00",
		IsOpen:       true,
		Rating:       4.1,
		ReviewCount:  72,
	},
	{
		ID:           "49",
		Name:         "Yeni Yeni Cami Parkı",
		Description:  "Yeni Yeni Cami mahallesinde bulunan modern park. Cami çevresinde yer alan yeşil alan.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Yeni Cami Mahallesi, Merkez",
		Facilities:   "Cami Çevresi Dinlenme Alanları, Çocuk Oyun Alanı, Yürüyüş Yolları",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.0,
		ReviewCount:  64,
	},
	{
		ID:           "50",
		Name:         "Yeni Kırlangıç Parkı",
		Description:  "Yeni Kırlangıç mahallesinde bulunan doğal güzellikleri ile öne çıkan park. Kuş gözlem noktaları mevcut.",
		Manager:      "Malatya Büyükşehir Belediyesi",
		Address:      "Yeni Kırlangıç Mahallesi, Merkez",
		Facilities:   "Kuş Gözlem Noktaları, Yürüyüş Yolları, Piknik Alanları, Çocuk Oyun Alanı",
		OpeningHours: "24 Saat Açık",
		IsOpen:       true,
		Rating:       4.4,
		ReviewCount:  90,
	},
}
