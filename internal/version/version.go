package version

var (
	AppName        = "Soberaninha"
	AppDescription = "A sarcastic gamer-girl Discord bot that roasts members on demand and keeps score."
	AppVersion     = "dev"
)
