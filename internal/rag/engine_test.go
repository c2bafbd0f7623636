package rag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-chat/internal/model"
)

func TestEngineAnswerEndToEnd(t *testing.T) {
	resolver := &fakeResolver{contents: map[string]*model.Content{
		"project:p1": {Kind: model.KindProject, Project: &model.Project{
			ID:            "p1",
			Title:         "Mobile Banking App",
			FeaturedImage: "featured.png",
		}},
		"skill:1": {Kind: model.KindSkill, Skill: &model.Skill{ID: 1, Name: "Figma"}},
	}}
	searcher := &fakeSearcher{results: []Result{
		{Entry: model.ContentEmbedding{Kind: model.KindProject, RefID: "p1"}, Score: 0.6},
		{Entry: model.ContentEmbedding{Kind: model.KindSkill, RefID: "1"}, Score: 0.2},
	}}
	engine := NewEngine(
		searcher,
		NewContextBuilder(resolver, 0.3),
		&fakeGenerator{generation: Generation{Content: "Let me tell you about my mobile app.", TokensUsed: 42}},
		NewEnhancer(resolver, 0.4, 3),
		5,
	)

	answer, err := engine.Answer(context.Background(), "tell me about your mobile app")
	require.NoError(t, err)

	// The skill at 0.2 sits under both floors: it neither reaches the
	// context nor produces a reference, but it still counts as a match.
	assert.Equal(t, []string{"p1"}, answer.ReferencedProjects)
	assert.Empty(t, answer.ReferencedSkills)
	assert.Equal(t, []string{"featured.png"}, answer.MediaURLs)
	assert.Equal(t, model.ResponseTypeProjectShowcase, answer.ResponseType)
	assert.Equal(t, 0.6, answer.ConfidenceScore)
	assert.Equal(t, 42, answer.TokensUsed)
	assert.Equal(t, 2, answer.RetrievalContext.QueryMatches)
}

func TestEngineAnswerEmptyCorpus(t *testing.T) {
	resolver := &fakeResolver{contents: map[string]*model.Content{}}
	engine := NewEngine(
		&fakeSearcher{},
		NewContextBuilder(resolver, 0.3),
		&fakeGenerator{generation: Generation{Content: "I don't have anything on that yet."}},
		NewEnhancer(resolver, 0.4, 3),
		5,
	)

	answer, err := engine.Answer(context.Background(), "anything")
	require.NoError(t, err)

	assert.NotEmpty(t, answer.Content)
	assert.Equal(t, model.ResponseTypeText, answer.ResponseType)
	assert.Equal(t, 0.0, answer.ConfidenceScore)
	assert.Empty(t, answer.ReferencedProjects)
	assert.Empty(t, answer.ReferencedSkills)
	assert.Empty(t, answer.ReferencedExperiences)
}

func TestEngineAnswerPropagatesSearchErrors(t *testing.T) {
	resolver := &fakeResolver{}
	engine := NewEngine(
		&fakeSearcher{err: errBoom},
		NewContextBuilder(resolver, 0.3),
		&fakeGenerator{},
		NewEnhancer(resolver, 0.4, 3),
		5,
	)

	_, err := engine.Answer(context.Background(), "query")
	assert.ErrorIs(t, err, errBoom)
}

// Degraded mode wired the way bootstrap does it: hash embedder, keyword
// retrieval, templated generation. A greeting must still produce a real
// answer with zero token usage.
func TestEngineDegradedModeAnswer(t *testing.T) {
	store := &fakeScanner{}
	engine := NewEngine(
		NewKeywordRetriever(store),
		NewContextBuilder(&fakeResolver{}, 0.3),
		NewRuleBasedGenerator(&fakeProfiles{}),
		NewEnhancer(&fakeResolver{}, 0.4, 2),
		5,
	)

	answer, err := engine.Answer(context.Background(), "hello")
	require.NoError(t, err)

	assert.NotEmpty(t, answer.Content)
	assert.Equal(t, model.ResponseTypeText, answer.ResponseType)
	assert.Zero(t, answer.TokensUsed)
}

func TestSuggestedQuestionsFixedList(t *testing.T) {
	questions := SuggestedQuestions()
	assert.Len(t, questions, 10)
	assert.Equal(t, "What kind of design projects have you worked on?", questions[0])
	assert.Equal(t, "Are you available for new projects?", questions[9])
}
