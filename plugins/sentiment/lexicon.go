package main

import (
	"math"
	"strings"
	"unicode"
)

const (
	labelPositive = "positive"
	labelNeutral  = "neutral"
	labelNegative = "negative"

	// scores inside (-threshold, threshold) read as neutral
	threshold = 0.2
)

var lexicon = map[string]float64{
	"great": 1, "good": 0.6, "productive": 0.8, "focused": 0.7, "flow": 0.7,
	"calm": 0.5, "done": 0.4, "finished": 0.5, "progress": 0.6, "happy": 0.8,
	"easy": 0.4, "energized": 0.8, "clear": 0.4,
	"bad": -0.6, "tired": -0.6, "distracted": -0.8, "stuck": -0.7, "slow": -0.4,
	"frustrated": -0.9, "anxious": -0.7, "interrupted": -0.6, "bored": -0.5,
	"hard": -0.3, "exhausted": -0.9, "meh": -0.2,
}

var negators = map[string]bool{"not": true, "no": true, "never": true, "hardly": true}

// classify averages lexicon hits, flipping a word preceded by a negator.
func classify(text string) (string, float64) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	total, hits := 0.0, 0
	for i, word := range words {
		weight, ok := lexicon[word]
		if !ok {
			continue
		}
		if i > 0 && negators[words[i-1]] {
			weight = -weight
		}
		total += weight
		hits++
	}
	if hits == 0 {
		return labelNeutral, 0
	}
	score := math.Round(total/float64(hits)*100) / 100
	switch {
	case score >= threshold:
		return labelPositive, score
	case score <= -threshold:
		return labelNegative, score
	default:
		return labelNeutral, score
	}
}
