package ui

import (
	"errors"

	"golang.org/x/text/language"

	"bagisadmin/internal/domain"
)

var supportedLocales = []language.Tag{
	language.Turkish, // default
	language.English,
}

// Messages resolves operator-facing text for the configured locale. The
// stored data stays Turkish either way; only console chrome is translated.
type Messages struct {
	tag language.Tag
}

// NewMessages picks the closest supported locale.
func NewMessages(locale string) *Messages {
	matcher := language.NewMatcher(supportedLocales)
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	if base.String() == "en" {
		return &Messages{tag: language.English}
	}
	return &Messages{tag: language.Turkish}
}

var messageTable = map[string]map[language.Tag]string{
	"login.title":      {language.Turkish: "Sosyal Bağış Admin Paneli", language.English: "Sosyal Bağış Admin Console"},
	"login.email":      {language.Turkish: "E-posta", language.English: "Email"},
	"login.password":   {language.Turkish: "Şifre", language.English: "Password"},
	"login.submit":     {language.Turkish: "Giriş Yap", language.English: "Sign in"},
	"login.checking":   {language.Turkish: "Oturum denetleniyor...", language.English: "Checking session..."},
	"shelters.title":   {language.Turkish: "Barınaklar", language.English: "Shelters"},
	"shelters.empty":   {language.Turkish: "Hiç barınak bulunamadı. Lütfen önce bir barınak ekleyin.", language.English: "No shelters found. Add a shelter first."},
	"shelters.added":   {language.Turkish: "%s başarıyla eklendi!", language.English: "%s added successfully!"},
	"shelters.require": {language.Turkish: "Lütfen Barınak Adı, Şehir ve Adres alanlarını doldurun.", language.English: "Please fill in the shelter name, city and address."},
	"animals.title":    {language.Turkish: "Hayvanlar", language.English: "Animals"},
	"animals.empty":    {language.Turkish: "Hiç hayvan kaydı yok.", language.English: "No animal records."},
	"animals.added":    {language.Turkish: "%s başarıyla %s barınağına eklendi!", language.English: "%s added to the %s shelter!"},
	"animals.require":  {language.Turkish: "Lütfen Hayvan Adı, Türü ve Barınak seçimini yapın.", language.English: "Please provide the animal name, type and shelter."},
	"animals.shelter":  {language.Turkish: "Geçerli bir barınak seçilemedi.", language.English: "No valid shelter could be selected."},
	"prices.title":     {language.Turkish: "Bağış Kalemi Fiyatları", language.English: "Donation Item Prices"},
	"prices.saved":     {language.Turkish: "Fiyatlar başarıyla güncellendi!", language.English: "Prices updated."},
	"donations.title":  {language.Turkish: "Bağışlar", language.English: "Donations"},
	"donations.empty":  {language.Turkish: "Bu hayvan için kayıtlı bağış yok.", language.English: "No donations recorded for this animal."},
	"donations.index":  {language.Turkish: "Bağışları listelemek için veri deposunda bir bileşik indeks oluşturmanız gerekiyor.", language.English: "Listing donations requires creating a composite index in the data store."},
	"donations.failed": {language.Turkish: "Bağışlar yüklenirken bir sorun oluştu.", language.English: "Failed to load donations."},
	"common.loading":   {language.Turkish: "Yükleniyor...", language.English: "Loading..."},
	"common.saved":     {language.Turkish: "Kayıt başarıyla eklendi.", language.English: "Record saved."},
	"common.deleted":   {language.Turkish: "Kayıt silindi.", language.English: "Record deleted."},
	"common.confirm":   {language.Turkish: "silinsin mi? Bu işlem geri alınamaz. (e/h)", language.English: "delete? This cannot be undone. (y/n)"},
	"error.store":      {language.Turkish: "Veri deposuna ulaşılamadı. Lütfen tekrar deneyin.", language.English: "Could not reach the data store. Please retry."},
	"error.notfound":   {language.Turkish: "Kayıt bulunamadı.", language.English: "Record not found."},
	"error.credential": {language.Turkish: "E-posta veya şifre hatalı.", language.English: "Wrong email or password."},
	"error.email":      {language.Turkish: "Geçersiz e-posta adresi.", language.English: "Invalid email address."},
	"error.auth":       {language.Turkish: "Giriş yapılamadı. Lütfen tekrar deneyin.", language.English: "Sign-in failed. Please retry."},
	"error.signout":    {language.Turkish: "Çıkış yapılamadı.", language.English: "Sign-out failed."},
	"keys.lists":       {language.Turkish: "s barınaklar · a hayvanlar · p fiyatlar · n yeni · enter düzenle · d sil · b bağışlar · x çıkış · q kapat", language.English: "s shelters · a animals · p prices · n new · enter edit · d delete · b donations · x sign out · q quit"},
	"keys.form":        {language.Turkish: "tab alan · ←/→ seçenek · ctrl+s kaydet · esc vazgeç", language.English: "tab field · ←/→ option · ctrl+s save · esc cancel"},
	"keys.overlay":     {language.Turkish: "esc kapat", language.English: "esc close"},
}

// Get returns the text for a message key in the active locale.
func (m *Messages) Get(key string) string {
	if byTag, ok := messageTable[key]; ok {
		if s, ok := byTag[m.tag]; ok {
			return s
		}
		return byTag[language.Turkish]
	}
	return key
}

// ForError maps a failure to its dismissible operator message.
func (m *Messages) ForError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrValidation):
		// Validation errors carry field context; show them as produced.
		return err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return m.Get("error.notfound")
	case errors.Is(err, domain.ErrInvalidCredential):
		return m.Get("error.credential")
	case errors.Is(err, domain.ErrInvalidEmail):
		return m.Get("error.email")
	case errors.Is(err, domain.ErrAuthUnknown):
		return m.Get("error.auth")
	default:
		return m.Get("error.store")
	}
}
