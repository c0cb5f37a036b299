package content

import "github.com/karandv/lingua/internal/llm"

// ThemeSchema defines the JSON schema for context scanning.
var ThemeSchema = &llm.Schema{
	Name:        "theme-scan",
	Description: "A context description with three suggested learning themes",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"context_description": map[string]any{
				"type":        "string",
				"description": "Description of the visual or situational context, in English",
			},
			"suggested_themes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":   map[string]any{"type": "string"},
						"tagline": map[string]any{"type": "string"},
						"available_roles": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "tagline", "available_roles"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"context_description", "suggested_themes"},
		"additionalProperties": false,
	},
}

// VocabularySchema defines the JSON schema for vocabulary batches.
var VocabularySchema = &llm.Schema{
	Name:        "vocabulary-batch",
	Description: "A batch of vocabulary items for a theme",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vocabulary": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"word":                map[string]any{"type": "string"},
						"pronunciation":       map[string]any{"type": "string"},
						"meaning":             map[string]any{"type": "string"},
						"example":             map[string]any{"type": "string"},
						"example_translation": map[string]any{"type": "string"},
					},
					"required":             []any{"word", "meaning", "example", "example_translation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"vocabulary"},
		"additionalProperties": false,
	},
}

// QuizSchema defines the JSON schema for quiz batches.
var QuizSchema = &llm.Schema{
	Name:        "quiz-batch",
	Description: "A batch of quiz questions over a vocabulary set",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quizzes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "integer"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"multiple-choice", "sentence-scramble", "matching"},
						},
						"question":    map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correct_answer":  map[string]any{"type": "string"},
						"source_sentence": map[string]any{"type": "string"},
						"target_words": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"pairs": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"term":       map[string]any{"type": "string"},
									"definition": map[string]any{"type": "string"},
								},
								"required":             []any{"term", "definition"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"id", "type", "question", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"quizzes"},
		"additionalProperties": false,
	},
}

// GrammarSchema defines the JSON schema for grammar analysis.
var GrammarSchema = &llm.Schema{
	Name:        "grammar-analysis",
	Description: "Grammar review of one learner utterance",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"has_error":                   map[string]any{"type": "boolean"},
			"user_original":               map[string]any{"type": "string"},
			"corrected_text":              map[string]any{"type": "string"},
			"explanation":                 map[string]any{"type": "string"},
			"better_response":             map[string]any{"type": "string"},
			"better_response_explanation": map[string]any{"type": "string"},
		},
		"required":             []any{"has_error", "corrected_text", "explanation", "better_response", "better_response_explanation"},
		"additionalProperties": false,
	},
}

// WordChainSchema defines the JSON schema for word-chain verdicts.
var WordChainSchema = &llm.Schema{
	Name:        "word-chain-turn",
	Description: "Validation of a word-chain play plus the opponent's next word",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_valid":       map[string]any{"type": "boolean"},
			"invalid_reason": map[string]any{"type": "string"},
			"ai_word":        map[string]any{"type": "string"},
			"ai_definition":  map[string]any{"type": "string"},
		},
		"required":             []any{"is_valid"},
		"additionalProperties": false,
	},
}
