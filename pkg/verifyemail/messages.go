package verifyemail

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// expirationForms holds singular and plural forms per language and unit.
var expirationForms = map[language.Tag]map[Unit][2]string{
	language.English: {
		UnitYear:   {"%d year", "%d years"},
		UnitMonth:  {"%d month", "%d months"},
		UnitDay:    {"%d day", "%d days"},
		UnitHour:   {"%d hour", "%d hours"},
		UnitMinute: {"%d minute", "%d minutes"},
		UnitSecond: {"%d second", "%d seconds"},
	},
	language.German: {
		UnitYear:   {"%d Jahr", "%d Jahre"},
		UnitMonth:  {"%d Monat", "%d Monate"},
		UnitDay:    {"%d Tag", "%d Tage"},
		UnitHour:   {"%d Stunde", "%d Stunden"},
		UnitMinute: {"%d Minute", "%d Minuten"},
		UnitSecond: {"%d Sekunde", "%d Sekunden"},
	},
	language.French: {
		UnitYear:   {"%d an", "%d ans"},
		UnitMonth:  {"%d mois", "%d mois"},
		UnitDay:    {"%d jour", "%d jours"},
		UnitHour:   {"%d heure", "%d heures"},
		UnitMinute: {"%d minute", "%d minutes"},
		UnitSecond: {"%d seconde", "%d secondes"},
	},
	language.Spanish: {
		UnitYear:   {"%d año", "%d años"},
		UnitMonth:  {"%d mes", "%d meses"},
		UnitDay:    {"%d día", "%d días"},
		UnitHour:   {"%d hora", "%d horas"},
		UnitMinute: {"%d minuto", "%d minutos"},
		UnitSecond: {"%d segundo", "%d segundos"},
	},
}

// supportedLanguages lists catalog languages; the first is the fallback.
var supportedLanguages = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var (
	expirationCatalog = buildExpirationCatalog()
	languageMatcher   = language.NewMatcher(supportedLanguages)
)

func buildExpirationCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, forms := range expirationForms {
		for unit, f := range forms {
			msg := plural.Selectf(1, "%d", plural.One, f[0], plural.Other, f[1])
			if err := b.Set(tag, expirationKey(unit), msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

func expirationKey(unit Unit) string {
	return "expires." + string(unit)
}

func expirationText(tag language.Tag, unit Unit, count int) string {
	_, i, _ := languageMatcher.Match(tag)
	p := message.NewPrinter(supportedLanguages[i], message.Catalog(expirationCatalog))
	return p.Sprintf(expirationKey(unit), count)
}
