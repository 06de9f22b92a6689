package roast

import (
	"math/rand"
	"strings"
)

// FallbackRoasts is the static pool used whenever generation fails.
// Must never be empty.
var FallbackRoasts = []string{
	"Você não merece nem zoeira.",
	"Nossa, nem vou zoar... ia ser muito fácil.",
	"Tá querendo atenção? Volta outro dia.",
	"Nem a IA quer zoar você, triste.",
	"Economizando processamento pra quem merece.",
	"Internet lenta demais pra zoar você agora.",
	"Desculpa, tô ocupada zoando alguém que vale a pena.",
	"Error 404: Zoeira not found.",
	"Tente novamente quando for mais interessante.",
	"Zzzzz... que? Ah, nem vi que você estava aí.",
}

// HumiliationPhrases feed the humiliate command; {username} is replaced
// with the picked member's mention.
var HumiliationPhrases = []string{
	"{username} digita tão devagar que o servidor dorme esperando.",
	"{username} é o motivo do matchmaking ter proteção pra iniciante.",
	"Até os bots do lobby acham {username} previsível.",
	"{username} perde até no modo tutorial.",
	"Se lag fosse pessoa, seria {username}.",
	"{username} joga tanto no modo fácil que o jogo pediu folga.",
}

// RandomPhrases feed the randomphrase command; {botName} is replaced with
// the bot's name.
var RandomPhrases = []string{
	"A {botName} viu seu histórico de partidas e decidiu ficar só na zoeira.",
	"Pergunta pro seu time se eles concordam com você. Ah, esqueci, eles já te mutaram.",
	"Hoje eu tô boazinha. Aproveita, amanhã não prometo nada.",
	"Ranked é tipo segunda-feira: ninguém merece, mas você insiste.",
	"A guilda Soberanos agradece por você jogar no time inimigo.",
	"Confia no seu potencial! Alguém precisa confiar, né.",
}

// MessageRoasts maps a message-offense kind to its reply pool.
var MessageRoasts = map[string][]string{
	"long_message": {
		"Textão hein? Resumindo: ninguém leu.",
		"Calma, Machado de Assis, aqui é Discord.",
		"TL;DR. Próximo.",
		"Escreveu mais que minha monografia e disse menos.",
	},
	"emoji_spam": {
		"Faltou palavra ou sobrou emoji?",
		"Seu teclado tem letras também, sabia?",
		"Entendi nada mas achei colorido.",
	},
	"all_caps": {
		"GRITAR NÃO DEIXA VOCÊ MAIS CERTO.",
		"Pode soltar a tecla caps lock, já te ouvimos.",
		"Calma, respira, digita de novo em minúscula.",
	},
	"keyboard_smash": {
		"Seu gato pisou no teclado ou foi você mesmo?",
		"Tradução indisponível pra esse idioma.",
		"kkkkk de nervoso ou de vergonha?",
	},
}

// ForMessageKind picks a random roast for a message-offense kind; empty
// string when the kind has no pool.
func ForMessageKind(kind string) string {
	pool, ok := MessageRoasts[kind]
	if !ok || len(pool) == 0 {
		return ""
	}
	return pool[rand.Intn(len(pool))]
}

// GameRoasts maps a lowercased game name to its phrase pool.
var GameRoasts = map[string][]string{
	"league of legends": {
		"Time to feed mid lane, I see.",
		"Another day, another ragequit after first blood.",
		"Let me guess: 'My team is holding me back'?",
		"Your CS is probably lower than your IQ... and that's saying something.",
	},
	"valorant": {
		"Another day, another missed headshot.",
		"I can already hear you blaming your ping.",
		"Your aim is as consistent as your excuses.",
	},
	"fortnite": {
		"Building a tower won't hide your poor aim.",
		"Thank the bus driver, because that's the only kill you'll get.",
		"Is 'get eliminated instantly' your go-to strategy?",
	},
	"rust": {
		"Enjoy respawning naked again!",
		"Time to farm for hours just to lose it all in seconds!",
		"Door campers have more strategy than you.",
	},
	"minecraft": {
		"Mining straight down is still your go-to strategy?",
		"Your builds look like creeper accidents.",
		"Even zombies have better pathfinding than you.",
	},
	"apex legends": {
		"First one to die, first one to blame teammates.",
		"Hot dropping solo? How original.",
		"Even the training dummies have higher damage stats.",
	},
	"counter-strike": {
		"Stop blaming your gaming chair for your aim.",
		"Have you tried shooting the enemy instead of the wall?",
		"Your spray control looks like you're drawing modern art.",
	},
}

// genericGameRoasts cover games without a dedicated pool.
var genericGameRoasts = []string{
	"Playing that? Bold choice for someone with your skill level.",
	"I'd wish you good luck, but we both know it won't help.",
	"Your teammates are already drafting the report.",
	"Even spectator mode is embarrassed for you.",
}

// ForGame picks a random roast for the given game, falling back to the
// generic pool for unknown titles.
func ForGame(gameName string) string {
	pool, ok := GameRoasts[strings.ToLower(strings.TrimSpace(gameName))]
	if !ok || len(pool) == 0 {
		pool = genericGameRoasts
	}
	return pool[rand.Intn(len(pool))]
}

// Pick returns a uniformly random phrase from a non-empty pool.
func Pick(pool []string) string {
	return pool[rand.Intn(len(pool))]
}
