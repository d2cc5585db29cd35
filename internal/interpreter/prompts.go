package interpreter

import (
	"fmt"
	"strings"

	"github.com/dueloapp/duelo/internal/chat"
	"github.com/dueloapp/duelo/internal/detector"
)

// Transcript caps keep the prompt bounded; the pride prompt is tighter
// because post-conflict context clusters in fewer messages.
const (
	jealousyMessageCap = 300
	prideMessageCap    = 200
)

func buildJealousyPrompt(metrics detector.RawBattleMetrics, person1, person2 string) string {
	p1, p2 := metrics.Jealousy.Person1, metrics.Jealousy.Person2

	return fmt.Sprintf(`
# ANÁLISE DE CIÚME - Conversa WhatsApp

## CONTEXTO (Regex detectou):
- %s: %d perguntas de localização, %d perguntas sobre companhia, %d tons suspeitos
- %s: %d perguntas de localização, %d perguntas sobre companhia, %d tons suspeitos

## MENSAGENS RELEVANTES (Filtradas):
%s

TAREFA: Analise quem demonstra MAIS CIÚME. Considere:
1. Insegurança e possessividade nas mensagens
2. Frequência de perguntas sobre localização/companhia
3. Tom de desconfiança e cobrança emocional
4. Contexto emocional das conversas

Responda em JSON:
{
  "winner": "%s" ou "%s",
  "confidence": 0-100,
  "result": "descrição viral para Instagram Stories",
  "evidence": ["prova 1", "prova 2", "prova 3"]
}
`,
		person1, p1.LocationQuestions, p1.CompanionQuestions, p1.SuspiciousTone,
		person2, p2.LocationQuestions, p2.CompanionQuestions, p2.SuspiciousTone,
		formatTranscript(metrics.FilteredMessages, jealousyMessageCap),
		person1, person2)
}

func buildPridePrompt(metrics detector.RawBattleMetrics, person1, person2 string) string {
	p1, p2 := metrics.Pride.Person1, metrics.Pride.Person2

	return fmt.Sprintf(`
# ANÁLISE DE ORGULHO - Conversa WhatsApp

## CONTEXTO (Regex detectou):
- %s: %dh de silêncio pós-briga, %d desculpas ignoradas, %d respostas frias
- %s: %dh de silêncio pós-briga, %d desculpas ignoradas, %d respostas frias

## MENSAGENS RELEVANTES (Filtradas - Pós-conflito):
%s

TAREFA: Analise quem tem MAIS ORGULHO. Considere:
1. Quem demora mais para fazer as pazes após brigas
2. Respostas secas/frias após conflitos
3. Recusa em pedir desculpas primeiro
4. Silent treatment e distanciamento emocional

Responda em JSON:
{
  "winner": "%s" ou "%s",
  "confidence": 0-100,
  "result": "descrição viral para Instagram Stories",
  "evidence": ["prova 1", "prova 2", "prova 3"]
}
`,
		person1, p1.SilentTreatmentHours, p1.RefusedApologies, p1.ColdResponses,
		person2, p2.SilentTreatmentHours, p2.RefusedApologies, p2.ColdResponses,
		formatTranscript(metrics.FilteredMessages, prideMessageCap),
		person1, person2)
}

func formatTranscript(messages []chat.Message, limit int) string {
	if len(messages) > limit {
		messages = messages[:limit]
	}

	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", m.Timestamp.Format("02/01/2006 15:04"), m.Sender, m.Content))
	}
	return sb.String()
}
