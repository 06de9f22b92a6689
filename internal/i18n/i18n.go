// /internal/i18n/i18n.go
package i18n

import "strings"

// messages holds every user-facing string. The bot speaks pt-BR only; the
// table exists so command code never embeds copy inline.
var messages = map[string]string{
	"errors.permission_denied": "Você não tem cargo pra falar comigo, {username}. Conquista isso primeiro.",
	"errors.cooldown":          "Calma aí, apressadinho. Espera mais {seconds}s antes de pedir de novo.",
	"errors.no_target":         "Zoar quem, exatamente? Marca alguém.",
	"errors.self_target":       "Se zoar sozinho é nível avançado demais pra você. Escolhe outra pessoa.",
	"errors.bot_target":        "Deixa os bots fora disso. Eles já sofrem o suficiente.",
	"errors.generation_failed": "Minha criatividade travou. Tenta de novo daqui a pouco.",
	"errors.admin_only":        "Só admin mexe nisso. Você claramente não é.",
	"errors.no_members":        "Não achei ninguém digno de humilhação por aqui.",

	"achievements.mocked_10":    "Saco de Pancada",
	"achievements.mocked_50":    "Alvo Preferido",
	"achievements.mocked_100":   "Lenda da Zoeira (do lado errado)",
	"achievements.mocker_30":    "Zoador Profissional",
	"achievements.nicknamer_20": "Batizador Oficial",

	"achievements.dm_title":         "Conquista desbloqueada!",
	"achievements.dm_body":          "Você desbloqueou: **{title}**. Parabéns, acho.",
	"achievements.list_title_self":  "Suas conquistas",
	"achievements.list_title_other": "Conquistas de {username}",
	"achievements.list_empty_self":  "Você não tem nenhuma conquista. Continua tentando (ou apanhando).",
	"achievements.list_empty_other": "{username} não tem nenhuma conquista ainda.",
	"achievements.unlocked_section": "Desbloqueadas",
	"achievements.pending_section":  "Em progresso",

	"commands.mock.title":      "Zoada entregue",
	"commands.nickname.title":  "Apelido novo no pedaço",
	"commands.humiliate.title": "Humilhação pública",

	"ranking.title": "🏆 Ranking dos Mais Zoados",
	"ranking.empty": "Ainda não temos zoados suficientes! 🥲",

	"footer": "{botName} — zoando com carinho",

	"guild.channel_set":  "Fechado. Agora eu só falo em <#{channelID}>.",
	"guild.role_added":   "Beleza, quem tiver o cargo {role} pode me usar.",
	"guild.role_removed": "Cargo {role} removido da lista.",
	"guild.role_list":    "Cargos liberados: {roles}",
	"guild.role_none":    "Nenhum cargo configurado, valendo o padrão.",
}

// T resolves a message key and substitutes {param} placeholders. Unknown
// keys come back as-is so a typo shows up in chat instead of panicking.
func T(key string, params map[string]string) string {
	msg, ok := messages[key]
	if !ok {
		return key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "{"+name+"}", value)
	}
	return msg
}
