package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	message.SetString(lang, "title.onboarding", "Choose a platform")
	message.SetString(lang, "onboarding.heading", "What are you building?")
	message.SetString(lang, "onboarding.subtitle", "Pick the platform of your project and we will tailor the setup instructions.")
	message.SetString(lang, "onboarding.mono_on", "Monochrome icons")
	message.SetString(lang, "onboarding.mono_off", "Colored icons")
	message.SetString(lang, "onboarding.count", "%d platforms")
	message.SetString(lang, "tile.label", "%s icon")
	message.SetString(lang, "platform.heading", "You picked %s")
	message.SetString(lang, "platform.back", "Choose another platform")

	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")
}
