package truncate

// DefaultNotice is appended to truncated content. It is written in the
// panel's default locale (pt-BR).
const DefaultNotice = "\n\n[... conteúdo truncado para respeitar limite de tokens ...]"

var notices = map[string]string{
	"pt-BR": DefaultNotice,
	"pt-PT": DefaultNotice,
	"en":    "\n\n[... content truncated to respect the token limit ...]",
	"es":    "\n\n[... contenido truncado para respetar el límite de tokens ...]",
}

// Notice returns the truncation notice for a panel language.
// Unknown languages get DefaultNotice.
func Notice(lang string) string {
	if n, ok := notices[lang]; ok {
		return n
	}
	return DefaultNotice
}
