// Package fixture holds the worked almanac example shared by tests.
package fixture

import "github.com/helixml/almanac/domain/almanac"

// Answers for the worked example.
const (
	SamplePartA uint64 = 35
	SamplePartB uint64 = 46
)

// SampleInput is the worked example in puzzle text form.
const SampleInput = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

// SampleDocument is SampleInput in structured form.
func SampleDocument() almanac.Document {
	return almanac.Document{
		Seeds: []uint64{79, 14, 55, 13},
		Stages: []almanac.StageSpec{
			{Name: "seed-to-soil", Rules: []almanac.RuleSpec{{Dest: 50, Source: 98, Length: 2}, {Dest: 52, Source: 50, Length: 48}}},
			{Name: "soil-to-fertilizer", Rules: []almanac.RuleSpec{{Dest: 0, Source: 15, Length: 37}, {Dest: 37, Source: 52, Length: 2}, {Dest: 39, Source: 0, Length: 15}}},
			{Name: "fertilizer-to-water", Rules: []almanac.RuleSpec{{Dest: 49, Source: 53, Length: 8}, {Dest: 0, Source: 11, Length: 42}, {Dest: 42, Source: 0, Length: 7}, {Dest: 57, Source: 7, Length: 4}}},
			{Name: "water-to-light", Rules: []almanac.RuleSpec{{Dest: 88, Source: 18, Length: 7}, {Dest: 18, Source: 25, Length: 70}}},
			{Name: "light-to-temperature", Rules: []almanac.RuleSpec{{Dest: 45, Source: 77, Length: 23}, {Dest: 81, Source: 45, Length: 19}, {Dest: 68, Source: 64, Length: 13}}},
			{Name: "temperature-to-humidity", Rules: []almanac.RuleSpec{{Dest: 0, Source: 69, Length: 1}, {Dest: 1, Source: 0, Length: 69}}},
			{Name: "humidity-to-location", Rules: []almanac.RuleSpec{{Dest: 60, Source: 56, Length: 37}, {Dest: 56, Source: 93, Length: 4}}},
		},
	}
}
