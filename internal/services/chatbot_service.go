package services

import "strings"

type chatRule struct {
	matches  func(message string) bool
	response string
}

func containsAny(words ...string) func(string) bool {
	return func(message string) bool {
		for _, w := range words {
			if strings.Contains(message, w) {
				return true
			}
		}
		return false
	}
}

// Evaluated top to bottom on the lower-cased message; the last rule always matches.
var chatRules = []chatRule{
	{containsAny("bonjour"), "Bonjour ! Comment puis-je vous aider aujourd'hui ?"},
	{containsAny("aide", "question"), "Je suis là pour répondre à vos questions sur l'application CIVIC. N'hésitez pas !"},
	{containsAny("points"), "Les points sont gagnés en participant à des actions et en validant votre code de participation."},
	{containsAny("action"), "Vous pouvez proposer une action via le formulaire dédié ou participer à une action existante."},
	{func(string) bool { return true }, "Je n'ai pas compris votre question. Pouvez-vous reformuler ?"},
}

// ChatbotService answers messages from a fixed keyword table.
type ChatbotService struct{}

// NewChatbotService creates a new ChatbotService.
func NewChatbotService() *ChatbotService {
	return &ChatbotService{}
}

// Reply returns the response of the first rule matching message.
func (s *ChatbotService) Reply(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range chatRules {
		if rule.matches(lowered) {
			return rule.response
		}
	}
	return ""
}
