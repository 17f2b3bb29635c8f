package service

import "github.com/nanokm/pola-backend/internal/scanner"

// report collects the report-button state while the card is assembled; it is
// merged into the card last so replacement handling can still rewrite the
// text.
type report struct {
	ButtonText string
	ButtonType string
	Text       string
}

func newBaseCard(code string) scanner.ResultCard {
	return scanner.ResultCard{
		"altText":            nil,
		"card_type":          typeWhite,
		"code":               code,
		"name":               nil,
		"plCapital":          nil,
		"plCapital_notes":    nil,
		"plNotGlobEnt":       nil,
		"plNotGlobEnt_notes": nil,
		"plRegistered":       nil,
		"plRegistered_notes": nil,
		"plRnD":              nil,
		"plRnD_notes":        nil,
		"plScore":            nil,
		"plWorkers":          nil,
		"plWorkers_notes":    nil,
		"official_url":       nil,
		"logotype_url":       nil,
		"product_id":         nil,
	}
}

func applyTemplate(result scanner.ResultCard, rep *report, tpl cardTemplate) {
	result["altText"] = tpl.AltText
	result["name"] = tpl.Name
	result["card_type"] = tpl.CardType
	if tpl.ZeroPlScore {
		result["plScore"] = 0
	}

	rep.ButtonType = tpl.ReportButtonType
	rep.Text = tpl.ReportText
}

func mergeReport(result scanner.ResultCard, rep *report) {
	result["report_button_text"] = rep.ButtonText
	result["report_button_type"] = rep.ButtonType
	result["report_text"] = rep.Text
}
