package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"skillswitch-service/src/internal/gateway/ai"
	"skillswitch-service/src/internal/model"
	"skillswitch-service/src/pkg/log"
)

const (
	keywordMatchConfidence   = 0.6
	keywordNoMatchConfidence = 0.3
)

type aiRanking struct {
	RankedTutorIDs []string `json:"rankedTutorIds"`
	Confidence     float64  `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
}

// TutorRanker orders candidates for a problem, asking the generator first and
// falling back to keyword overlap whenever the generator is missing or misbehaves.
type TutorRanker struct {
	Generator ai.Generator
	Log       log.Log
}

func NewTutorRanker(generator ai.Generator, logger log.Log) *TutorRanker {
	return &TutorRanker{Generator: generator, Log: logger}
}

func (r *TutorRanker) Rank(ctx context.Context, problem string, candidates []model.Tutor) model.MatchResponse {
	if len(candidates) == 0 {
		return model.MatchResponse{Tutors: []model.Tutor{}, Confidence: keywordNoMatchConfidence, Source: model.MatchSourceFallback}
	}
	if r.Generator == nil {
		return KeywordRank(problem, candidates)
	}

	text, err := r.Generator.Generate(ctx, buildMatchPrompt(problem, candidates))
	if err != nil {
		r.Log.Error("tutor-ranker", err.Error(), "Rank", "falling back to keyword ranking")
		return KeywordRank(problem, candidates)
	}

	var parsed aiRanking
	if err := json.Unmarshal([]byte(ai.StripCodeFence(text)), &parsed); err != nil {
		r.Log.Error("tutor-ranker", "unparseable ranking response", "Rank", text)
		return KeywordRank(problem, candidates)
	}

	byID := make(map[string]model.Tutor, len(candidates))
	for _, t := range candidates {
		byID[t.ID] = t
	}
	ranked := make([]model.Tutor, 0, len(parsed.RankedTutorIDs))
	used := make(map[string]struct{}, len(parsed.RankedTutorIDs))
	for _, id := range parsed.RankedTutorIDs {
		t, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := used[id]; dup {
			continue
		}
		used[id] = struct{}{}
		ranked = append(ranked, t)
	}
	if len(ranked) == 0 {
		r.Log.Info("tutor-ranker", "ranking named no known tutor", "Rank", text)
	}

	confidence := parsed.Confidence / 100
	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	return model.MatchResponse{
		Tutors:     ranked,
		Confidence: confidence,
		Source:     model.MatchSourceAI,
		Reasoning:  parsed.Reasoning,
	}
}

// KeywordRank scores each tutor by how many problem words appear in its skills text.
func KeywordRank(problem string, candidates []model.Tutor) model.MatchResponse {
	tokens := strings.Fields(strings.ToLower(problem))

	type scored struct {
		tutor model.Tutor
		score int
	}
	list := make([]scored, len(candidates))
	for i, t := range candidates {
		skills := strings.ToLower(strings.Join(t.Skills, " "))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(skills, tok) {
				score++
			}
		}
		list[i] = scored{tutor: t, score: score}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	res := model.MatchResponse{
		Tutors:     make([]model.Tutor, len(list)),
		Confidence: keywordNoMatchConfidence,
		Source:     model.MatchSourceFallback,
	}
	for i, s := range list {
		res.Tutors[i] = s.tutor
	}
	if len(list) > 0 && list[0].score > 0 {
		res.Confidence = keywordMatchConfidence
	}
	return res
}

func buildMatchPrompt(problem string, candidates []model.Tutor) string {
	var sb strings.Builder
	sb.WriteString("You are an intelligent tutor matching system for a student peer-learning platform.\n\n")
	fmt.Fprintf(&sb, "Given the following problem description:\n%q\n\n", problem)
	sb.WriteString("And these available tutors with their skills:\n")
	for i, t := range candidates {
		fmt.Fprintf(&sb, "%d. %s (id: %s) - Skills: %s\n", i+1, t.Name, t.ID, strings.Join(t.Skills, ", "))
	}
	sb.WriteString(`
Task:
1. Analyze the problem and identify the subject/skill area needed
2. Rank the tutors from most to least suitable (1 being best match)
3. Provide a confidence score (0-100) for the overall matching

Respond ONLY in this JSON format:
{
  "rankedTutorIds": ["tutor1_id", "tutor2_id"],
  "confidence": 85,
  "reasoning": "Brief explanation of why top tutor is best match"
}
`)
	return sb.String()
}
