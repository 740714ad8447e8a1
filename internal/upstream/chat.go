package upstream

import (
	"context"
	"fmt"
	"net/http"
)

// SourceGroq marks replies generated by the Groq chat API.
const SourceGroq = "Groq"

const travelPlannerPrompt = `You are an expert AI travel planner. Your job is to help users plan their perfect trip by extracting their travel preferences from natural language conversations.

Key responsibilities:
1. Extract travel preferences from user messages
2. Ask clarifying questions when needed
3. Provide helpful travel advice and suggestions
4. Guide users through the planning process

Travel preference categories to extract:
- Budget per person (e.g., "$1000-2000", "$500+")
- Number of people traveling (e.g., "2 people", "family of 4")
- Travel from location (ask for their city and country)
- Travel type: "domestic" or "international"
- Destination type: "beach", "mountain", "city", "adventure", "relaxing"
- Travel dates (e.g., "next summer", "December 2024")
- Currency preference (prices are compared in USD and displayed in the user's currency)
- Additional preferences (e.g., "romantic getaway", "family-friendly")

Always respond in a friendly, helpful manner. If you need more information, ask specific questions.`

// FallbackReply is returned when the chat model is unavailable.
const FallbackReply = "I'd love to help you plan your trip! What type of destination are you looking for: beach, mountain, city, adventure, or relaxing?"

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

// ChatClient talks to an OpenAI-compatible chat completions endpoint on Groq.
type ChatClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

const (
	groqDefaultURL = "https://api.groq.com/openai/v1/chat/completions"
	groqModel      = "llama3-70b-8192"
)

// NewChatClient constructs a ChatClient with the given API key.
func NewChatClient(apiKey string) *ChatClient {
	return NewChatClientWithURL(groqDefaultURL, apiKey)
}

// NewChatClientWithURL constructs a ChatClient pointing at a custom URL (for tests).
func NewChatClientWithURL(baseURL, apiKey string) *ChatClient {
	return &ChatClient{apiKey: apiKey, baseURL: baseURL, model: groqModel, client: newHTTPClient()}
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []ChatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
}

type chatResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// Reply sends the conversation plus message and returns the assistant's answer.
func (c *ChatClient) Reply(ctx context.Context, history []ChatMessage, message string) (string, error) {
	msgs := make([]ChatMessage, 0, len(history)+2)
	msgs = append(msgs, ChatMessage{Role: "system", Content: travelPlannerPrompt})
	msgs = append(msgs, history...)
	msgs = append(msgs, ChatMessage{Role: "user", Content: message})

	body := chatRequest{
		Model:            c.model,
		Messages:         msgs,
		Temperature:      0.3,
		MaxTokens:        800,
		TopP:             0.8,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
	}

	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.apiKey)

	var raw chatResponse
	if err := doPostJSON(ctx, c.client, c.baseURL, header, body, &raw); err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(raw.Choices) == 0 || raw.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("groq chat completion: empty response")
	}

	return raw.Choices[0].Message.Content, nil
}
