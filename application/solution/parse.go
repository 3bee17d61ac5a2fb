package solution

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/helixml/almanac/domain/almanac"
)

// ErrParse indicates puzzle input that does not follow the almanac grammar.
var ErrParse = errors.New("parse almanac")

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
)

// ParseAlmanac reads the seed list and the mapping tables:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Stages keep the order they appear in. Carriage returns are ignored.
func ParseAlmanac(input string) (almanac.Document, error) {
	var (
		doc     almanac.Document
		current *almanac.StageSpec
		seen    bool
	)

	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.ReplaceAll(scanner.Text(), "\r", ""))

		switch {
		case line == "":
			current = nil
		case strings.HasPrefix(line, seedsPrefix):
			if seen {
				return almanac.Document{}, fmt.Errorf("%w: line %d: duplicate seeds line", ErrParse, lineNo)
			}
			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return almanac.Document{}, fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
			}
			doc.Seeds = seeds
			seen = true
		case strings.HasSuffix(line, mapSuffix):
			doc.Stages = append(doc.Stages, almanac.StageSpec{Name: strings.TrimSuffix(line, mapSuffix)})
			current = &doc.Stages[len(doc.Stages)-1]
		default:
			if current == nil {
				return almanac.Document{}, fmt.Errorf("%w: line %d: rule outside a map: %q", ErrParse, lineNo, line)
			}
			rule, err := parseRule(line)
			if err != nil {
				return almanac.Document{}, fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
			}
			current.Rules = append(current.Rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return almanac.Document{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if !seen {
		return almanac.Document{}, fmt.Errorf("%w: missing seeds line", ErrParse)
	}
	return doc, nil
}

func parseRule(line string) (almanac.RuleSpec, error) {
	nums, err := parseNumbers(line)
	if err != nil {
		return almanac.RuleSpec{}, err
	}
	if len(nums) != 3 {
		return almanac.RuleSpec{}, fmt.Errorf("want 3 numbers, got %d in %q", len(nums), line)
	}
	return almanac.RuleSpec{Dest: nums[0], Source: nums[1], Length: nums[2]}, nil
}

func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	nums := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		nums = append(nums, n)
	}
	return nums, nil
}
