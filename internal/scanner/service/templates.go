package service

import (
	"strings"

	"github.com/nanokm/pola-backend/internal/scanner"
)

// Card and report button styles understood by the mobile client.
const (
	typeWhite = "type_white"
	typeGrey  = "type_grey"
	typeRed   = "type_red"
)

const reportButtonText = "Zgłoś"

const defaultReportText = "Zgłoś jeśli posiadasz bardziej aktualne dane na temat tego produktu"

const askForReportText = "Bardzo prosimy o zgłoszenie nam tego produktu"

const notInDatabaseAltText = "Każde skanowanie jest rejestrowane. Najczęściej skanowane firmy i produkty, " +
	"których nie mamy jeszcze w bazie, są weryfikowane w pierwszej kolejności. " +
	"Nie pobieramy przy tym żadnych informacji o użytkowniku.\n" +
	"\n" +
	"Jeśli chcesz zgłosić błąd lub wyrazić opinię, prosimy o kontakt: pola@klubjagiellonski.pl"

// cardTemplate is the fixed localized copy for one classification kind.
// {country} placeholders are filled from the classification.
type cardTemplate struct {
	AltText          string
	Name             string
	CardType         string
	ReportButtonType string
	ReportText       string
	ZeroPlScore      bool
}

// cardTemplates is total over every kind except KindProduct, which builds
// its card from store data instead of static copy.
var cardTemplates = map[scanner.CodeKind]cardTemplate{
	scanner.KindInvalid: {
		AltText: "Pola rozpoznaje tylko kody kreskowe typu EAN8 i EAN13. " +
			"Zeskanowany przez Ciebie kod jest innego typu. Spróbuj " +
			"zeskanować kod z czegoś innego",
		Name:             "Nieprawidłowy kod",
		CardType:         typeWhite,
		ReportButtonType: typeWhite,
		ReportText:       defaultReportText,
	},
	scanner.KindBook: {
		AltText: "Zeskanowany kod jest kodem ISBN/ISSN/ISMN dotyczącym książki,  " +
			"czasopisma lub albumu muzycznego. Wydawnictwa tego typu nie są " +
			"aktualnie w obszarze zainteresowań Poli.",
		Name:             "Kod ISBN/ISSN/ISMN",
		CardType:         typeWhite,
		ReportButtonType: typeWhite,
		ReportText:       "To nie jest książka, czasopismo lub album muzyczny? Prosimy o zgłoszenie",
	},
	scanner.KindSanctionedCountry: {
		AltText: "Ten produkt został wyprodukowany przez zagraniczną firmę, której " +
			"miejscem rejestracji jest: {country}. \n" +
			"Ten kraj dokonał inwazji na Ukrainę. Zastanów się, czy chcesz go " +
			"kupić.",
		Name:             "Miejsce rejestracji: {country}",
		CardType:         typeGrey,
		ReportButtonType: typeWhite,
		ReportText:       defaultReportText,
		ZeroPlScore:      true,
	},
	scanner.KindFlaggedCountry: {
		AltText: "Ten produkt został wyprodukowany przez zagraniczną firmę, " +
			"której miejscem rejestracji jest: {country}.",
		Name:             "Miejsce rejestracji: {country}",
		CardType:         typeGrey,
		ReportButtonType: typeWhite,
		ReportText:       defaultReportText,
		ZeroPlScore:      true,
	},
	scanner.KindInternal: {
		AltText: "Zeskanowany kod jest wewnętrznym kodem sieci handlowej. Pola nie " +
			"potrafi powiedzieć o nim nic więcej",
		Name:             "Kod wewnętrzny",
		CardType:         typeWhite,
		ReportButtonType: typeWhite,
		ReportText:       defaultReportText,
	},
}

// Product-lookup cards without a known producer are not classification
// kinds; they depend on whether the code is Polish.
var (
	notInDatabaseTemplate = cardTemplate{
		AltText:          notInDatabaseAltText,
		Name:             "Tego produktu nie mamy jeszcze w bazie",
		CardType:         typeGrey,
		ReportButtonType: typeRed,
		ReportText:       askForReportText,
	}

	unknownProducerTemplate = cardTemplate{
		AltText:          notInDatabaseAltText,
		Name:             "Nie znamy producenta tego produktu",
		CardType:         typeGrey,
		ReportButtonType: typeWhite,
		ReportText:       defaultReportText,
	}
)

// render fills the {country} placeholders of a template.
func (t cardTemplate) render(country string) cardTemplate {
	t.AltText = strings.ReplaceAll(t.AltText, "{country}", country)
	t.Name = strings.ReplaceAll(t.Name, "{country}", country)

	return t
}
