// Package almanacdoc encodes and decodes almanac documents as YAML or JSON.
//
// A document lists the seeds and the stages in order. Each rule may be written
// either as a [dest, source, length] triple or as an object:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    rules:
//	      - [50, 98, 2]
//	      - {dest: 52, source: 50, length: 48}
package almanacdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helixml/almanac/domain/almanac"
)

// ErrUnknownFormat indicates a document format that is neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown document format")

// Format is a serialisation format.
type Format string

// Format values.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Rule is a single mapping rule.
type Rule struct {
	Dest   uint64 `json:"dest" yaml:"dest"`
	Source uint64 `json:"source" yaml:"source"`
	Length uint64 `json:"length" yaml:"length"`
}

var ruleKeys = []string{"dest", "source", "length"}

// ruleObject is the object form of a rule. Pointers tell a missing key
// apart from an explicit zero.
type ruleObject struct {
	Dest   *uint64 `json:"dest" yaml:"dest"`
	Source *uint64 `json:"source" yaml:"source"`
	Length *uint64 `json:"length" yaml:"length"`
}

func (o ruleObject) rule() (Rule, error) {
	var missing []string
	for i, v := range []*uint64{o.Dest, o.Source, o.Length} {
		if v == nil {
			missing = append(missing, ruleKeys[i])
		}
	}
	if len(missing) > 0 {
		return Rule{}, fmt.Errorf("rule is missing %s", strings.Join(missing, ", "))
	}
	return Rule{Dest: *o.Dest, Source: *o.Source, Length: *o.Length}, nil
}

func ruleFromTriple(vals []uint64) (Rule, error) {
	if len(vals) != 3 {
		return Rule{}, fmt.Errorf("rule needs 3 numbers (dest source length), got %d", len(vals))
	}
	return Rule{Dest: vals[0], Source: vals[1], Length: vals[2]}, nil
}

// UnmarshalJSON accepts [dest, source, length] or an object.
func (r *Rule) UnmarshalJSON(data []byte) error {
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		var vals []uint64
		if err := json.Unmarshal(data, &vals); err != nil {
			return err
		}
		rule, err := ruleFromTriple(vals)
		if err != nil {
			return err
		}
		*r = rule
		return nil
	}
	var f ruleObject
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return err
	}
	rule, err := f.rule()
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// UnmarshalYAML accepts [dest, source, length] or a mapping.
func (r *Rule) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var vals []uint64
		if err := node.Decode(&vals); err != nil {
			return err
		}
		rule, err := ruleFromTriple(vals)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*r = rule
		return nil
	}
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if key := node.Content[i].Value; !slices.Contains(ruleKeys, key) {
				return fmt.Errorf("line %d: unknown rule field %q", node.Content[i].Line, key)
			}
		}
	}
	var f ruleObject
	if err := node.Decode(&f); err != nil {
		return err
	}
	rule, err := f.rule()
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = rule
	return nil
}

// Stage is a named list of rules.
type Stage struct {
	Name  string `json:"name" yaml:"name"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Document is the serialised form of almanac.Document.
type Document struct {
	Seeds  []uint64 `json:"seeds" yaml:"seeds"`
	Stages []Stage  `json:"stages" yaml:"stages"`
}

// ToDomain converts the document to almanac.Document.
func (d Document) ToDomain() almanac.Document {
	doc := almanac.Document{
		Seeds:  append([]uint64(nil), d.Seeds...),
		Stages: make([]almanac.StageSpec, 0, len(d.Stages)),
	}
	for _, s := range d.Stages {
		spec := almanac.StageSpec{Name: s.Name, Rules: make([]almanac.RuleSpec, 0, len(s.Rules))}
		for _, r := range s.Rules {
			spec.Rules = append(spec.Rules, almanac.RuleSpec{Dest: r.Dest, Source: r.Source, Length: r.Length})
		}
		doc.Stages = append(doc.Stages, spec)
	}
	return doc
}

// FromDomain converts almanac.Document to its serialised form.
func FromDomain(doc almanac.Document) Document {
	out := Document{
		Seeds:  append([]uint64(nil), doc.Seeds...),
		Stages: make([]Stage, 0, len(doc.Stages)),
	}
	for _, s := range doc.Stages {
		stage := Stage{Name: s.Name, Rules: make([]Rule, 0, len(s.Rules))}
		for _, r := range s.Rules {
			stage.Rules = append(stage.Rules, Rule{Dest: r.Dest, Source: r.Source, Length: r.Length})
		}
		out.Stages = append(out.Stages, stage)
	}
	return out
}

// Decode reads a document in the given format.
func Decode(r io.Reader, format Format) (almanac.Document, error) {
	var d Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return almanac.Document{}, fmt.Errorf("decode json document: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				return almanac.Document{}, fmt.Errorf("decode yaml document: %w", almanac.ErrEmptyInput)
			}
			return almanac.Document{}, fmt.Errorf("decode yaml document: %w", err)
		}
	default:
		return almanac.Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return d.ToDomain(), nil
}

// DecodeFile reads a document, choosing the format from the file extension.
func DecodeFile(path string) (almanac.Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return almanac.Document{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return almanac.Document{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f, format)
}

// Encode writes a document in the given format.
func Encode(w io.Writer, doc almanac.Document, format Format) error {
	d := FromDomain(doc)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
