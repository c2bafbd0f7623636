package rag

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"portfolio-chat/internal/ai"
	"portfolio-chat/internal/model"
)

// ErrGeneratorUnavailable means no external generation model is configured.
var ErrGeneratorUnavailable = errors.New("generator not configured")

const systemPromptTemplate = `You are a conversational AI assistant representing a product designer's portfolio. Your role is to help visitors learn about the designer's work, skills, experience, and design philosophy in a natural, engaging way.

PERSONALITY:
- Professional but friendly and approachable
- Enthusiastic about design and problem-solving
- Confident but humble about achievements
- Use first person ("I", "my") when discussing the designer's work
- Be conversational, not robotic or overly formal

GUIDELINES:
- Answer questions based ONLY on the provided context
- If you don't have information, say so honestly and suggest what you can help with instead
- When discussing projects, highlight the design process, challenges, and outcomes
- Be specific about technologies, tools, and methodologies when relevant
- Offer to show or explain more details when appropriate
- Keep responses focused and not overly long unless asked for detailed explanations

CONTEXT ABOUT THE DESIGNER:
%s

Remember: You are speaking AS the designer, so use first person when appropriate. Be helpful, informative, and engaging while staying true to the provided information.`

const (
	cannedNotConfigured = "I'm sorry, the chat service is not properly configured. Please check the OpenAI API key."
	cannedCallFailed    = "I'm sorry, I'm having trouble processing your question right now. Could you please try rephrasing it?"
)

// OpenAIGenerator produces the answer through an OpenAI-compatible chat
// completion. Failures degrade to a canned apology with Err set; the caller
// checks Err rather than receiving an error, because degraded output is an
// expected mode, not an exceptional one.
type OpenAIGenerator struct {
	client *ai.OpenAICompatibleClient
	cfg    ai.ChatConfig
}

func NewOpenAIGenerator(client *ai.OpenAICompatibleClient, cfg ai.ChatConfig) *OpenAIGenerator {
	return &OpenAIGenerator{client: client, cfg: cfg}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, query, contextText string) Generation {
	if g.cfg.APIKey == "" {
		return Generation{Content: cannedNotConfigured, Err: ErrGeneratorUnavailable}
	}

	messages := []ai.ChatMessage{
		{Role: "system", Content: fmt.Sprintf(systemPromptTemplate, contextText)},
		{Role: "user", Content: query},
	}

	result, err := g.client.Complete(ctx, g.cfg, messages)
	if err != nil {
		log.Printf("llm generation failed: %v", err)
		return Generation{Content: cannedCallFailed, Err: err}
	}

	return Generation{
		Content:    result.Content,
		TokensUsed: result.TokensUsed,
	}
}

// ProfileSource supplies the designer's profile row for templated answers.
type ProfileSource interface {
	FirstPersonalInfo() (*model.PersonalInfo, error)
}

// RuleBasedGenerator is the offline fallback: it classifies the query by
// keyword groups and returns a templated first-person sentence. It never
// calls an external service and never reports token usage.
type RuleBasedGenerator struct {
	profiles ProfileSource
}

func NewRuleBasedGenerator(profiles ProfileSource) *RuleBasedGenerator {
	return &RuleBasedGenerator{profiles: profiles}
}

var keywordGroups = []struct {
	group string
	words []string
}{
	{"greeting", []string{"hello", "hi", "hey"}},
	{"project", []string{"project", "work", "portfolio"}},
	{"skill", []string{"skill", "technology", "tool"}},
	{"experience", []string{"experience", "background", "career"}},
	{"contact", []string{"contact", "hire", "available"}},
}

func (g *RuleBasedGenerator) Generate(ctx context.Context, query, contextText string) Generation {
	name := "the designer"
	availability := ""
	if g.profiles != nil {
		if info, err := g.profiles.FirstPersonalInfo(); err == nil && info != nil {
			name = info.Name
			availability = info.AvailabilityStatus
		}
	}

	hasContext := strings.TrimSpace(contextText) != ""
	var content string

	switch classifyQuery(query) {
	case "greeting":
		content = fmt.Sprintf("Hello! I'm here to help you learn about %s's work and experience. What would you like to know?", name)
	case "project":
		if hasContext {
			content = fmt.Sprintf("I found some relevant projects for you! %s has worked on various design projects including web design, mobile apps, and user experience research. You can see some examples below.", name)
		} else {
			content = fmt.Sprintf("%s has worked on many exciting projects. Let me know if you'd like to hear about specific types of work!", name)
		}
	case "skill":
		content = fmt.Sprintf("%s has experience with various design tools and technologies. This includes both technical skills and creative abilities across different design disciplines.", name)
	case "experience":
		content = fmt.Sprintf("I'd be happy to tell you about %s's professional background and career journey. They have experience in design and development across various industries.", name)
	case "contact":
		if availability != "" {
			content = fmt.Sprintf("%s is currently %s. Feel free to reach out to discuss potential opportunities!", name, strings.ToLower(availability))
		} else {
			content = fmt.Sprintf("You can contact %s to discuss potential projects and collaborations.", name)
		}
	default:
		if hasContext {
			content = fmt.Sprintf("I found some information related to your question about %s's work. Let me share what I know!", name)
		} else {
			content = fmt.Sprintf("That's an interesting question! While I don't have specific information about that topic, I'd be happy to tell you about %s's projects, skills, or experience. What would you like to know more about?", name)
		}
	}

	return Generation{Content: content}
}

func classifyQuery(query string) string {
	lower := strings.ToLower(query)
	for _, group := range keywordGroups {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				return group.group
			}
		}
	}
	return "other"
}
