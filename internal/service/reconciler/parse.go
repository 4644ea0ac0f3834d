package reconciler

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/humanbelnik/cinemind/core/internal/model"
)

const DefaultResponseText = "Here's what I found for you."

type ParseStage int

const (
	StageFailed ParseStage = iota
	StageDirect
	StageExtracted
)

func (s ParseStage) String() string {
	switch s {
	case StageDirect:
		return "direct"
	case StageExtracted:
		return "extracted"
	default:
		return "failed"
	}
}

// ParsedModel is the model reply after schema normalization.
type ParsedModel struct {
	ResponseText    string
	Recommendations []model.RecommendationCandidate
}

// ParseResult is either a parsed reply (Parsed != nil) or the raw text the
// model produced.
type ParseResult struct {
	Stage  ParseStage
	Parsed *ParsedModel
	Raw    string
}

func (r ParseResult) Ok() bool {
	return r.Parsed != nil
}

// Model returns the parsed reply, synthesizing one from the raw text when
// parsing failed.
func (r ParseResult) Model() ParsedModel {
	if r.Parsed != nil {
		return *r.Parsed
	}
	text := strings.TrimSpace(r.Raw)
	if text == "" {
		text = DefaultResponseText
	}
	return ParsedModel{ResponseText: text, Recommendations: []model.RecommendationCandidate{}}
}

// Parse decodes the raw model output. It tries the whole text first, then
// the first balanced {...} block.
func Parse(raw string) ParseResult {
	if parsed, ok := decode(raw); ok {
		return ParseResult{Stage: StageDirect, Parsed: parsed, Raw: raw}
	}
	if block, ok := ExtractObject(raw); ok {
		if parsed, ok := decode(block); ok {
			return ParseResult{Stage: StageExtracted, Parsed: parsed, Raw: raw}
		}
	}
	return ParseResult{Stage: StageFailed, Raw: raw}
}

func decode(text string) (*ParsedModel, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &obj); err != nil || obj == nil {
		return nil, false
	}

	parsed := &ParsedModel{Recommendations: []model.RecommendationCandidate{}}
	if s, ok := obj["response_text"].(string); ok {
		parsed.ResponseText = strings.TrimSpace(s)
	}
	if parsed.ResponseText == "" {
		parsed.ResponseText = DefaultResponseText
	}

	recs, _ := obj["recommendations"].([]any)
	for _, item := range recs {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		parsed.Recommendations = append(parsed.Recommendations, model.RecommendationCandidate{
			Title: scalar(entry["title"]),
			Year:  scalar(entry["year"]),
		})
	}
	return parsed, true
}

// scalar renders a string or number field, anything else is empty.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return fmt.Sprintf("%.0f", t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}

// ExtractObject returns the first balanced {...} substring of text. Braces
// inside JSON strings are ignored.
func ExtractObject(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	for start >= 0 {
		if end, ok := matchBrace(text, start); ok {
			return text[start : end+1], true
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return "", false
}

func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
