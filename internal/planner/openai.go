// internal/planner/openai.go
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go_5_study_planner/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

const planSystemMessage = "You are an expert AI study planner. Always respond with valid JSON only, no markdown formatting."

// OpenAIPlanner は Chat Completions API でプランを生成する実装です。
// 出力形式は FallbackPlanner と同じ PlanData です。モデルの失敗や
// パース不能な応答はエラーとして返すだけで、フォールバックへの
// 切り替えはサービス層が行います。
type OpenAIPlanner struct {
	client *openai.Client
	model  string
}

func NewOpenAIPlanner(apiKey, model string) *OpenAIPlanner {
	return &OpenAIPlanner{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (p *OpenAIPlanner) GeneratePlan(ctx context.Context, learner *model.Learner, subjects []*model.Subject, startDate time.Time) (*model.PlanData, error) {
	prompt, err := buildPlanPrompt(learner, subjects, startDate)
	if err != nil {
		return nil, fmt.Errorf("building plan prompt: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	var plan model.PlanData
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &plan); err != nil {
		return nil, fmt.Errorf("parsing plan response: %w", err)
	}
	if len(plan.Sessions) == 0 {
		return nil, fmt.Errorf("plan response contains no sessions")
	}

	return &plan, nil
}

func buildPlanPrompt(learner *model.Learner, subjects []*model.Subject, startDate time.Time) (string, error) {
	type subjectInfo struct {
		Name            string   `json:"name"`
		Credits         int      `json:"credits"`
		StrongAreas     []string `json:"strong_areas"`
		WeakAreas       []string `json:"weak_areas"`
		ConfidenceLevel int      `json:"confidence_level"`
	}
	infos := make([]subjectInfo, 0, len(subjects))
	for _, s := range subjects {
		infos = append(infos, subjectInfo{
			Name:            s.Name,
			Credits:         s.Credits,
			StrongAreas:     s.StrongAreas,
			WeakAreas:       s.WeakAreas,
			ConfidenceLevel: s.ConfidenceLevel,
		})
	}
	subjectsJSON, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return "", err
	}

	targetDate := startDate.AddDate(0, 0, 90).Format("2006-01-02")
	if learner.TargetDate != nil && *learner.TargetDate != "" {
		targetDate = *learner.TargetDate
	}
	branch := "Engineering"
	if learner.Branch != nil && *learner.Branch != "" {
		branch = *learner.Branch
	}

	return fmt.Sprintf(`You are an AI study planner for engineering students. Generate a detailed study plan based on the following information:

STUDENT PROFILE:
- Name: %s
- Branch: %s
- Available study hours on weekdays: %g hours/day
- Available study hours on weekends: %g hours/day
- Preferred study time: %s
- Target completion date: %s

SUBJECTS:
%s

Generate a study plan for the next %d days. Return ONLY a valid JSON object (no markdown, no code blocks) with this exact structure:
{
    "sessions": [
        {
            "subject_name": "Subject Name",
            "date": "YYYY-MM-DD",
            "start_time": "HH:MM",
            "end_time": "HH:MM",
            "duration_hours": 1.5,
            "session_type": "learning|practice|revision|buffer",
            "topics": ["topic1", "topic2"],
            "cognitive_load": "high|medium|low"
        }
    ],
    "subject_breakdown": {
        "Subject Name": {
            "total_hours": 10,
            "percentage": 33,
            "justification": "Why this allocation"
        }
    },
    "recommendations": ["recommendation 1", "recommendation 2"],
    "next_steps": ["Focus on weak areas first", "..."],
    "estimated_completion": "YYYY-MM-DD"
}

IMPORTANT RULES:
1. Allocate more time to subjects with lower confidence and higher credits
2. Schedule weak topics earlier in the plan
3. Place high cognitive load sessions during preferred study time
4. Include buffer time for unexpected delays
5. Mix learning, practice, and revision sessions
6. Start dates from today: %s
7. Respect the daily hour limits strictly`,
		learner.Name,
		branch,
		learner.WeekdayHours,
		learner.WeekendHours,
		learner.PreferredStudyTime,
		targetDate,
		string(subjectsJSON),
		DefaultHorizonDays,
		startDate.Format("2006-01-02"),
	), nil
}

// モデルがJSONモードを無視してコードブロックで返してきた場合の保険
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
