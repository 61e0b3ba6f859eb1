// Package suggest implements the image pipeline: encode the photo, ask a
// vision backend for a fixed-shape JSON bundle of editing suggestions, and
// validate the reply against that shape.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/lightart/lightart/internal/adapter"
	"github.com/lightart/lightart/internal/generate"
	"github.com/lightart/lightart/internal/prompt"
)

// normalCount is the exact length of the general-suggestion list.
const normalCount = 15

// ErrSchema means the model produced output that did not match the bundle
// shape even after the fallback raw decode. Distinct from ErrGeneration: the
// model ran, only the shape contract was violated.
var ErrSchema = errors.New("suggest: output does not match suggestion schema")

// MainSuggestions holds the four categorized suggestions. Field names match
// the wire shape the model is instructed to emit.
type MainSuggestions struct {
	MovieStyle string `json:"movie_style_suggestion"`
	Mood       string `json:"mood_suggestion"`
	ColorFocus string `json:"color_focus_suggestion"`
	Other      string `json:"other_main_suggestion"`
}

// Bundle is the fixed-shape suggestion set: exactly 4 main fields and
// exactly 15 normal suggestions.
type Bundle struct {
	Main   MainSuggestions `json:"main_suggestions"`
	Normal []string        `json:"normal_suggestions"`
}

// Total returns the derived suggestion count (4 main + normals) for caller
// convenience.
func (b Bundle) Total() int {
	return 4 + len(b.Normal)
}

var suggestOpts = adapter.GenOptions{Temperature: 0.2, TopP: 0.9}

// Suggester runs the image pipeline against one long-lived vision backend.
type Suggester struct {
	backend adapter.VisionCompleter
}

// NewSuggester wraps the given backend. A nil backend is allowed; every call
// then fails with ErrModelUnavailable.
func NewSuggester(backend adapter.VisionCompleter) *Suggester {
	return &Suggester{backend: backend}
}

// Ready reports whether the vision backend is initialized and reachable.
func (s *Suggester) Ready() bool {
	return s.backend != nil && s.backend.Available()
}

// FromImage analyzes the image and returns the validated suggestion bundle.
func (s *Suggester) FromImage(ctx context.Context, img image.Image) (Bundle, error) {
	if s.backend == nil || !s.backend.Available() {
		return Bundle{}, generate.ErrModelUnavailable
	}

	payload, err := EncodeJPEG(img)
	if err != nil {
		return Bundle{}, fmt.Errorf("suggest: encode image: %w", err)
	}

	raw, err := s.backend.CompleteWithImage(ctx, prompt.StyleSuggestions(FormatInstructions()), payload, suggestOpts)
	if err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", generate.ErrGeneration, err)
	}

	return ParseBundle(raw)
}

// ParseBundle validates raw model output against the bundle shape. The
// primary path is a strict decode that rejects unknown fields and enforces
// cardinality. If it fails for any reason, a raw JSON decode plus structural
// coercion recovers output that is valid JSON but decorated with extra
// metadata; when both tiers fail the result is ErrSchema.
func ParseBundle(raw string) (Bundle, error) {
	text := generate.StripCodeFence(raw)
	if text == "" {
		return Bundle{}, fmt.Errorf("%w: empty output", ErrSchema)
	}

	bundle, strictErr := parseStrict(text)
	if strictErr == nil {
		return bundle, nil
	}

	bundle, looseErr := parseLoose(text)
	if looseErr != nil {
		return Bundle{}, fmt.Errorf("%w: %v (strict: %v)", ErrSchema, looseErr, strictErr)
	}
	return bundle, nil
}

func parseStrict(text string) (Bundle, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.DisallowUnknownFields()

	var b Bundle
	if err := dec.Decode(&b); err != nil {
		return Bundle{}, err
	}
	if err := checkShape(b); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

// parseLoose decodes into a generic map and coerces field by field,
// tolerating extra fields the strict decoder rejects.
func parseLoose(text string) (Bundle, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return Bundle{}, err
	}

	main, ok := doc["main_suggestions"].(map[string]any)
	if !ok {
		return Bundle{}, errors.New("missing main_suggestions object")
	}

	var b Bundle
	var err error
	if b.Main.MovieStyle, err = stringField(main, "movie_style_suggestion"); err != nil {
		return Bundle{}, err
	}
	if b.Main.Mood, err = stringField(main, "mood_suggestion"); err != nil {
		return Bundle{}, err
	}
	if b.Main.ColorFocus, err = stringField(main, "color_focus_suggestion"); err != nil {
		return Bundle{}, err
	}
	if b.Main.Other, err = stringField(main, "other_main_suggestion"); err != nil {
		return Bundle{}, err
	}

	rawNormal, ok := doc["normal_suggestions"].([]any)
	if !ok {
		return Bundle{}, errors.New("missing normal_suggestions list")
	}
	for i, v := range rawNormal {
		s, ok := v.(string)
		if !ok {
			return Bundle{}, fmt.Errorf("normal_suggestions[%d] is not a string", i)
		}
		b.Normal = append(b.Normal, s)
	}

	if err := checkShape(b); err != nil {
		return Bundle{}, err
	}
	return b, nil
}

func stringField(m map[string]any, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("missing field %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("field %s is not a string", key)
	}
	return s, nil
}

func checkShape(b Bundle) error {
	for name, v := range map[string]string{
		"movie_style_suggestion": b.Main.MovieStyle,
		"mood_suggestion":        b.Main.Mood,
		"color_focus_suggestion": b.Main.ColorFocus,
		"other_main_suggestion":  b.Main.Other,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("main suggestion %s is empty", name)
		}
	}
	if len(b.Normal) != normalCount {
		return fmt.Errorf("normal_suggestions has %d elements, want %d", len(b.Normal), normalCount)
	}
	return nil
}
