package chat

// DefaultMediaPlaceholders are the phrases exports substitute for omitted
// attachments, lowercase. The corpus is Brazilian Portuguese plus the English
// equivalents seen in mixed-locale exports.
var DefaultMediaPlaceholders = []string{
	"<anexado:",
	"<attached:",
	"imagem omitida",
	"vídeo omitido",
	"áudio omitido",
	"documento omitido",
	"sticker omitido",
	"figurinha omitida",
	"image omitted",
	"video omitted",
	"audio omitted",
	"document omitted",
	"sticker omitted",
}

// FilterLexicon drives the relevance filter. All matching is lowercase
// substring matching, so entries must be lowercase.
type FilterLexicon struct {
	// Generic is the exact-match filler set: messages whose trimmed,
	// lowercased body equals one of these are dropped.
	Generic []string

	// Emotional entries always keep a message.
	Emotional []string

	// Nouns are contextually-important subjects that always keep a message.
	Nouns []string
}

// DefaultFilterLexicon is the Brazilian Portuguese corpus the product
// launched with. Detectors and the filter accept any FilterLexicon, so other
// corpora plug in without code changes.
var DefaultFilterLexicon = FilterLexicon{
	Generic: []string{
		"ok", "tá", "oi", "oie", "oii", "hmm", "hm", "uhu", "ata", "blz",
		"vlw", "kk", "kkk", "kkkk", "rs", "rsrs", "haha", "hehe", "eh",
		"sim", "não", "nao", "ss", "nn", "ah", "oh", "oi?", "e?", "q",
	},
	Emotional: []string{
		"amor", "amo", "ciúme", "ciume", "desculpa", "perdão", "perdao",
		"briga", "brigamos", "saudade", "preocupado", "preocupada",
		"chateado", "chateada", "triste", "feliz", "orgulho", "raiva",
		"nervoso", "nervosa", "cansado", "cansada", "where", "onde",
		"com quem", "sozinho", "sozinha", "volta", "demora", "responde",
	},
	Nouns: []string{
		"trabalho", "casa", "família", "familia", "amigo", "amiga",
		"namorado", "namorada", "pai", "mãe", "mae", "irmão", "irmao",
		"viagem", "festa", "jantar", "almoço", "almoco", "encontro",
	},
}
