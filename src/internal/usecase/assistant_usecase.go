package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillswitch-service/src/internal/gateway/ai"
	"skillswitch-service/src/internal/model"
	httpError "skillswitch-service/src/pkg/http-error"
	"skillswitch-service/src/pkg/log"
	"skillswitch-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

const (
	chatHistoryWindow = 5
	maxSuggestions    = 5

	ReplyNotConnected = "I'm currently not connected to the AI service. Please make sure the Gemini API key is configured."
	ReplyFailed       = "Oops! Something went wrong. Please try again later."
)

const supportContext = `You are SkillSwitch Support Bot, a helpful AI assistant for the SkillSwitch platform - a peer-to-peer tutoring marketplace for students.

Key Features of SkillSwitch:
1. Find Help: Students can search for tutors by subject/skill using AI-powered matching
2. SkillCoins: Platform currency for booking sessions
3. Safe Zones: Map showing verified safe locations for in-person tutoring
4. Marketplace: Buy/sell digital resources (notes, templates, code) created by tutors
5. Tools: Get discounts on student tools (Canva, Grammarly, GitHub Copilot) and earn SkillCoins
6. Reviews: Rate tutors and students after sessions
7. Profile: Customize your profile, add skills, manage your student info

How it Works:
- Students earn SkillCoins by teaching others
- Spend coins to get help from expert tutors
- Platform takes 12.5% transaction fee on paid sessions
- All sessions must be at verified Safe Zones for safety

Be helpful, concise, and friendly. Answer questions about how to use the platform, features, safety, and coins.`

type AssistantUseCase struct {
	Log               log.Log
	Validate          *validator.Validate
	Generator         ai.Generator
	UserRepository    UserStore
	SessionRepository SessionStore
}

func NewAssistantUseCase(
	logger log.Log,
	validate *validator.Validate,
	generator ai.Generator,
	userRepository UserStore,
	sessionRepository SessionStore,
) *AssistantUseCase {
	return &AssistantUseCase{
		Log:               logger,
		Validate:          validate,
		Generator:         generator,
		UserRepository:    userRepository,
		SessionRepository: sessionRepository,
	}
}

func (c *AssistantUseCase) Chat(ctx context.Context, request *model.ChatRequest) utils.Result {
	var result utils.Result

	request.Message = strings.TrimSpace(request.Message)
	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	if c.Generator == nil {
		result.Data = model.ChatResponse{Reply: ReplyNotConnected, Connected: false}
		return result
	}

	reply, err := c.Generator.Generate(ctx, buildChatPrompt(request.History, request.Message))
	if err != nil {
		c.Log.Error("assistant-usecase", err.Error(), "Chat", request.UserID)
		reply = ReplyFailed
	}
	result.Data = model.ChatResponse{Reply: reply, Connected: true}
	return result
}

// Suggestions never fails; without AI or on any error the list is empty.
func (c *AssistantUseCase) Suggestions(ctx context.Context, request *model.SuggestionsRequest) utils.Result {
	empty := utils.Result{Data: model.SuggestionsResponse{Suggestions: []string{}}}
	if c.Generator == nil {
		return empty
	}

	user, err := c.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		c.Log.Error("assistant-usecase", err.Error(), "Suggestions", request.UserID)
		return empty
	}
	problems, err := c.SessionRepository.RecentProblems(ctx, request.UserID, 5)
	if err != nil {
		c.Log.Error("assistant-usecase", err.Error(), "Suggestions", request.UserID)
		problems = nil
	}

	text, err := c.Generator.Generate(ctx, buildSuggestionsPrompt(user.Skills, problems))
	if err != nil {
		c.Log.Error("assistant-usecase", err.Error(), "Suggestions", request.UserID)
		return empty
	}

	var parsed []string
	if err := json.Unmarshal([]byte(ai.StripCodeFence(text)), &parsed); err != nil {
		c.Log.Error("assistant-usecase", "unparseable suggestions", "Suggestions", text)
		return empty
	}

	out := make([]string, 0, maxSuggestions)
	for _, s := range parsed {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
		if len(out) == maxSuggestions {
			break
		}
	}
	return utils.Result{Data: model.SuggestionsResponse{Suggestions: out}}
}

func buildChatPrompt(history []model.ChatMessage, message string) string {
	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}
	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "Assistant"
		if m.Role == "user" {
			speaker = "User"
		}
		lines = append(lines, speaker+": "+m.Content)
	}
	return fmt.Sprintf("%s\n\nRecent Conversation:\n%s\n\nUser: %s\n\nAssistant:",
		supportContext, strings.Join(lines, "\n"), message)
}

func buildSuggestionsPrompt(skills []string, problems []string) string {
	return fmt.Sprintf(`Based on a student's profile:
- Current skills: %s
- Recent help requests: %s

Suggest 3-5 skill areas they should learn next or tutors they might need.
Respond with a JSON array of strings: ["suggestion1", "suggestion2"]
`, strings.Join(skills, ", "), strings.Join(problems, "; "))
}
