package rag

import "context"

// Engine sequences retrieval, context assembly, generation, and enhancement
// into one call. Each query is answered independently; no dialogue state
// feeds back into retrieval or generation, and there are no internal retries.
type Engine struct {
	searcher  Searcher
	contexts  *ContextBuilder
	generator Generator
	enhancer  *Enhancer
	topK      int
}

func NewEngine(searcher Searcher, contexts *ContextBuilder, generator Generator, enhancer *Enhancer, topK int) *Engine {
	if topK <= 0 {
		topK = 5
	}
	return &Engine{
		searcher:  searcher,
		contexts:  contexts,
		generator: generator,
		enhancer:  enhancer,
		topK:      topK,
	}
}

// Answer produces the structured answer for one user query.
func (e *Engine) Answer(ctx context.Context, query string) (*Answer, error) {
	results, err := e.searcher.Search(ctx, query, e.topK)
	if err != nil {
		return nil, err
	}

	contextText := e.contexts.Build(results)
	generated := e.generator.Generate(ctx, query, contextText)
	return e.enhancer.Enhance(generated, results), nil
}

// Search exposes raw retrieval for the diagnostic endpoint.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	if topK <= 0 {
		topK = e.topK
	}
	return e.searcher.Search(ctx, query, topK)
}

// SuggestedQuestions returns the fixed list of example prompts shown in the
// chat UI. No retrieval is involved.
func SuggestedQuestions() []string {
	return []string{
		"What kind of design projects have you worked on?",
		"Tell me about your design process",
		"What tools and technologies do you use?",
		"Can you show me some of your recent work?",
		"What's your experience with user research?",
		"How do you approach problem-solving in design?",
		"What are you passionate about in design?",
		"Tell me about your background and experience",
		"What's your design philosophy?",
		"Are you available for new projects?",
	}
}
