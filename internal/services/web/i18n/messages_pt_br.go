package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "title.onboarding", "Escolha uma plataforma")
	message.SetString(lang, "onboarding.heading", "O que você está construindo?")
	message.SetString(lang, "onboarding.subtitle", "Escolha a plataforma do seu projeto e adaptaremos as instruções de configuração.")
	message.SetString(lang, "onboarding.mono_on", "Ícones monocromáticos")
	message.SetString(lang, "onboarding.mono_off", "Ícones coloridos")
	message.SetString(lang, "onboarding.count", "%d plataformas")
	message.SetString(lang, "tile.label", "Ícone de %s")
	message.SetString(lang, "platform.heading", "Você escolheu %s")
	message.SetString(lang, "platform.back", "Escolher outra plataforma")

	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")
}
