package detector

import "regexp"

// Lexicon holds the compiled pattern sets the detectors match against.
// Patterns are language-specific configuration, not architecture: swap the
// lexicon to analyse another corpus. DefaultLexicon is Brazilian Portuguese.
type Lexicon struct {
	// Jealousy signals.
	Location   []*regexp.Regexp
	Companion  []*regexp.Regexp
	TimeAsk    []*regexp.Regexp
	Possessive *regexp.Regexp
	Suspicious []*regexp.Regexp
	Demanding  []*regexp.Regexp

	// Conflict signals. Aggressive and PassiveAggressive also drive the
	// shared aggressiveness classification used by the pride detector.
	Aggressive        []*regexp.Regexp
	PassiveAggressive []*regexp.Regexp
	NeedToTalk        []*regexp.Regexp
	Accusation        []*regexp.Regexp
	Demand            []*regexp.Regexp

	// Pride signals.
	ShortResponse []*regexp.Regexp
	Apology       []*regexp.Regexp

	// Affection markers that disqualify a short reply from counting as
	// cold.
	Affection []string
}

var DefaultLexicon = Lexicon{
	Location: compile(
		`t[aá]\s+onde`,
		`cad[eê]\s+(voc[eê]|vc|tu)`,
		`onde\s+(voc[eê]|vc|tu)\s+t[aá]`,
		`onde\s+(voc[eê]|vc|tu)\s+est[aá]`,
		`aonde\s+(voc[eê]|vc|tu)`,
		`em\s+qual\s+lugar`,
	),
	Companion: compile(
		`com\s+quem`,
		`quem\s+t[aá]\s+(a[ií]|contigo)`,
		`t[aá]\s+sozinho`,
		`t[aá]\s+sozinha`,
		`quem\s+[eé]\s+esse`,
		`quem\s+[eé]\s+essa`,
		`quem\s+foi`,
	),
	TimeAsk: compile(
		`que\s+horas?\s+volta`,
		`quando\s+volta`,
		`vai\s+demorar`,
		`at[eé]\s+que\s+horas`,
		`demora\s+muito`,
		`j[aá]\s+volta`,
	),
	Possessive: regexp.MustCompile(`(?i)\b(meu|minha)\b`),
	Suspicious: compile(
		`\bhmmm+\b`,
		`\bsei\b`,
		`t[aá]\s+bom\s+ent[aã]o`,
		`ah\s+[eé]`,
		`entendi\s*\.{3,}`,
		`😒|🙄|🤨|🧐`,
	),
	Demanding: compile(
		`me\s+responde`,
		`responde\s+(a[ií]|logo)`,
		`por\s+que\s+n[aã]o\s+responde`,
		`vai\s+responder`,
		`me\s+ignora`,
	),
	Aggressive: compile(
		`chega`,
		`cansei`,
		`cansado`,
		`cansada`,
		`n[aã]o\s+aguento`,
		`irritado`,
		`irritada`,
		`saco`,
		`droga`,
		`merda`,
		`inferno`,
	),
	PassiveAggressive: compile(
		`t[aá]\s+bom\s+ent[aã]o`,
		`tanto\s+faz`,
		`faz\s+o\s+que\s+(voc[eê]|vc)\s+quiser`,
		`problema\s+[eé]\s+seu`,
		`boa\s+noite\s+ent[aã]o`,
		`tchau\s+ent[aã]o`,
		`😒|🙄|😑`,
	),
	NeedToTalk: compile(
		`precisamos?\s+conversar`,
		`preciso\s+falar\s+contigo`,
		`tenho\s+que\s+falar`,
		`vamos\s+conversar`,
	),
	Accusation: compile(
		`voc[eê]\s+sempre`,
		`voc[eê]\s+nunca`,
		`vc\s+sempre`,
		`vc\s+nunca`,
		`tu\s+sempre`,
		`tu\s+nunca`,
	),
	Demand: compile(
		`quero\s+que`,
		`tem\s+que`,
		`precisa\s+(fazer|ser|parar)`,
		`exijo`,
	),
	ShortResponse: compile(
		`^(ok|okay)$`,
		`^(t[aá]|ta)$`,
		`^(hm|hmm)$`,
		`^(sim|ss)$`,
		`^(n[aã]o|nn)$`,
		`^(tanto\s+faz)$`,
		`^\.{3,}$`,
	),
	Apology: compile(
		`desculpa`,
		`me\s+perdoa`,
		`perd[aã]o`,
		`foi\s+mal`,
		`me\s+desculpa`,
		`sinto\s+muito`,
	),
	Affection: []string{"❤", "💕"},
}

func compile(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(`(?i)` + p)
	}
	return out
}

func anyMatch(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
