package ui

// turkishProvinces is the city select of the shelter form; the first entry is
// the form default.
var turkishProvinces = []string{
	"Adana", "Adıyaman", "Afyonkarahisar", "Ağrı", "Amasya", "Ankara",
	"Antalya", "Artvin", "Aydın", "Balıkesir", "Bilecik", "Bingöl", "Bitlis",
	"Bolu", "Burdur", "Bursa", "Çanakkale", "Çankırı", "Çorum", "Denizli",
	"Diyarbakır", "Edirne", "Elazığ", "Erzincan", "Erzurum", "Eskişehir",
	"Gaziantep", "Giresun", "Gümüşhane", "Hakkari", "Hatay", "Isparta",
	"Mersin", "İstanbul", "İzmir", "Kars", "Kastamonu", "Kayseri",
	"Kırklareli", "Kırşehir", "Kocaeli", "Konya", "Kütahya", "Malatya",
	"Manisa", "Kahramanmaraş", "Mardin", "Muğla", "Muş", "Nevşehir", "Niğde",
	"Ordu", "Rize", "Sakarya", "Samsun", "Siirt", "Sinop", "Sivas",
	"Tekirdağ", "Tokat", "Trabzon", "Tunceli", "Şanlıurfa", "Uşak", "Van",
	"Yozgat", "Zonguldak", "Aksaray", "Bayburt", "Karaman", "Kırıkkale",
	"Batman", "Şırnak", "Bartın", "Ardahan", "Iğdır", "Yalova", "Karabük",
	"Kilis", "Osmaniye", "Düzce",
}
