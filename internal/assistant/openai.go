package assistant

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"compliance-ai/backend/internal/model"
)

const defaultOpenAIModel = "gpt-4o-mini"

// DocumentsSystemPrompt is the default instructions of the document chatbot
// when answers come straight from OpenAI.
const DocumentsSystemPrompt = "Sei un assistente esperto di sicurezza dei macchinari e di conformità normativa " +
	"(Regolamento UE 2023/1230, Direttiva Macchine 2006/42/CE e norme armonizzate). " +
	"Rispondi in italiano, in modo chiaro e operativo. Se non conosci la risposta, dillo esplicitamente."

const assessmentSystemPrompt = "Sei un consulente di sicurezza dei macchinari. " +
	"Aiuti l'utente a capire le non conformità rilevate nell'assessment %d e come risolverle. " +
	"Rispondi in italiano con indicazioni pratiche e priorità chiare."

// OpenAIClient answers questions directly with an OpenAI chat model. It has
// no document index, so answers never carry sources.
type OpenAIClient struct {
	*openai.Client
	Model string
}

// NewOpenAIClient creates a client. An empty baseURL keeps the OpenAI default.
func NewOpenAIClient(apiKey, modelName, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if modelName == "" {
		modelName = defaultOpenAIModel
	}
	return &OpenAIClient{Client: openai.NewClientWithConfig(cfg), Model: modelName}
}

func (c *OpenAIClient) AskAssessment(ctx context.Context, assessmentID int64, req AskRequest) (*Answer, error) {
	return c.complete(ctx, fmt.Sprintf(assessmentSystemPrompt, assessmentID), req)
}

func (c *OpenAIClient) AskDocuments(ctx context.Context, req AskRequest) (*Answer, error) {
	prompt := strings.TrimSpace(req.SystemPrompt)
	if prompt == "" {
		prompt = DocumentsSystemPrompt
	}
	return c.complete(ctx, prompt, req)
}

func (c *OpenAIClient) DefaultSystemPrompt(context.Context) (string, error) {
	return DocumentsSystemPrompt, nil
}

func (c *OpenAIClient) complete(ctx context.Context, systemPrompt string, req AskRequest) (*Answer, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: systemPrompt})
	for _, h := range req.History {
		role := openai.ChatMessageRoleUser
		if h.Role == model.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: h.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Question})

	resp, err := c.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.Model,
		Messages: messages,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return nil, &BackendError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		var reqErr *openai.RequestError
		if errors.As(err, &reqErr) {
			return nil, &BackendError{StatusCode: reqErr.HTTPStatusCode, Message: http.StatusText(reqErr.HTTPStatusCode)}
		}
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	answer := &Answer{Sources: []model.Source{}}
	if len(resp.Choices) > 0 {
		answer.Text = resp.Choices[0].Message.Content
	}
	return answer, nil
}
