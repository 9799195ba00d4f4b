package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/example/lingocoach/internal/session"
	"github.com/example/lingocoach/pkg/models"
)

// Service is the content-generation and grading collaborator: it turns a
// session plan plus source material into question records and judges free-form
// answers. The scheduling core never inspects the generated content.
type Service struct {
	client      *openai.Client
	model       string
	temperature float32
}

// New creates the AI service from environment configuration.
func New() (*Service, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
	}

	return &Service{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       model,
		temperature: 0.7,
	}, nil
}

// generatedQuestion is the shape the model is asked to emit per question.
type generatedQuestion struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Hint        string   `json:"hint"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
	Word        string   `json:"word"`
	Difficulty  int      `json:"difficulty"`
}

const questionSchema = `{
	"type": "object",
	"properties": {
		"questions": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"type": {"type": "string", "enum": ["single_choice", "fill_blank"]},
					"question": {"type": "string"},
					"hint": {"type": "string"},
					"options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4},
					"answer": {"type": "string"},
					"explanation": {"type": "string"},
					"word": {"type": "string"},
					"difficulty": {"type": "integer", "minimum": 1, "maximum": 10}
				},
				"required": ["type", "question", "answer", "explanation", "word", "difficulty"]
			}
		}
	},
	"required": ["questions"]
}`

// GenerateRequest describes the content the questions should be built from.
type GenerateRequest struct {
	PracticeID string
	Plan       *session.Plan
	Article    string
	Language   string
	Level      int // Vocabulary level, 1-10
}

// GenerateQuestions asks the model for one question per plan entry. Questions
// must center on the plan's core words; review entries become recall exercises
// for their word, new entries draw on the article.
func (s *Service) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]models.QuestionRecord, error) {
	prompt := buildPrompt(req)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: s.temperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf("You are a professional %s language teacher who designs practice questions.", req.Language),
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Tools: []openai.Tool{
			{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        "create_questions",
					Description: "Create the requested practice questions",
					Parameters:  json.RawMessage(questionSchema),
				},
			},
		},
		ToolChoice: openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: "create_questions"},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %v", err)
	}
	if len(resp.Choices) == 0 || len(resp.Choices[0].Message.ToolCalls) == 0 {
		return nil, fmt.Errorf("model returned no question payload")
	}

	var payload struct {
		Questions []generatedQuestion `json:"questions"`
	}
	args := resp.Choices[0].Message.ToolCalls[0].Function.Arguments
	if err := json.Unmarshal([]byte(args), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode question payload: %v", err)
	}

	now := time.Now()
	records := make([]models.QuestionRecord, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		record, ok := toRecord(q, req, now)
		if !ok {
			continue
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("model returned no valid questions")
	}
	return records, nil
}

// GradeAnswer judges a learner's answer, tolerating spelling slips and
// synonyms. On model failure it falls back to a case-insensitive comparison.
func (s *Service) GradeAnswer(ctx context.Context, question models.QuestionRecord, userAnswer string) (bool, error) {
	prompt := fmt.Sprintf(`Judge whether the student's answer is correct.

Question: %s
Expected answer: %s
Student's answer: %s

Accept minor spelling mistakes and exact synonyms. Respond with JSON:
{"is_correct": true or false}`, question.Question, question.Answer, userAnswer)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a professional language teacher."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(question.Answer)), nil
	}

	var verdict struct {
		IsCorrect bool `json:"is_correct"`
	}
	content := stripFences(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &verdict); err != nil {
		return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(question.Answer)), nil
	}
	return verdict.IsCorrect, nil
}

// Explain produces a teaching explanation for a missed question.
func (s *Service) Explain(ctx context.Context, question models.QuestionRecord, userAnswer string) (string, error) {
	prompt := fmt.Sprintf(`Explain this practice question to a student.

Question: %s
Correct answer: %s
Student's answer: %s
Core word: %s

Cover why the correct answer is right, what went wrong with the student's
answer, and how to remember the word. Be encouraging and concise.`,
		question.Question, question.Answer, userAnswer, question.Word)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.5,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a patient language teacher."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate explanation: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("model returned no explanation")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(req GenerateRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d %s practice questions for a student at vocabulary level %d/10.\n\n",
		len(req.Plan.Entries), req.Language, req.Level)

	fmt.Fprintf(&b, "The questions must interrelate around these core words: %s.\n\n",
		strings.Join(req.Plan.CoreWords, ", "))

	b.WriteString("Question slots, in order:\n")
	for i, e := range req.Plan.Entries {
		fmt.Fprintf(&b, "%d. word %q (%s)\n", i+1, e.Word, e.Role)
	}

	b.WriteString(`
Rules:
1. Mix single_choice and fill_blank questions.
2. Slots marked "review" must test recall of their word directly.
3. Slots marked "new" should introduce their word in context.
4. Every question includes a short explanation.
`)

	if req.Article != "" {
		fmt.Fprintf(&b, "\nSource article for new words:\n%s\n", req.Article)
	}
	b.WriteString("\nCall create_questions with the result.")
	return b.String()
}

func toRecord(q generatedQuestion, req GenerateRequest, now time.Time) (models.QuestionRecord, bool) {
	if q.Question == "" || q.Answer == "" || q.Word == "" {
		return models.QuestionRecord{}, false
	}

	qType := models.QuestionType(q.Type)
	switch qType {
	case models.SingleChoice:
		if len(q.Options) != 4 || !contains(q.Options, q.Answer) {
			return models.QuestionRecord{}, false
		}
	case models.FillBlank:
		q.Options = nil
	default:
		return models.QuestionRecord{}, false
	}

	difficulty := q.Difficulty
	if difficulty < 1 || difficulty > 10 {
		difficulty = 5
	}

	return models.QuestionRecord{
		QuestionID:  uuid.NewString(),
		PracticeID:  req.PracticeID,
		Timestamp:   now,
		Type:        qType,
		Word:        q.Word,
		Question:    q.Question,
		Hint:        q.Hint,
		Options:     models.StringSet(q.Options),
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Difficulty:  difficulty,
		Language:    req.Language,
	}, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// stripFences removes a markdown code fence around a JSON payload, which
// some models add despite instructions.
func stripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.Index(content, "```"); idx >= 0 {
			content = content[:idx]
		}
	}
	return strings.TrimSpace(content)
}
