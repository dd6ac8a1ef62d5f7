package models

import (
	"fmt"
	"strings"
)

// Category selects the kind of insight requested from the model.
type Category string

const (
	Motivation   Category = "Motivation"
	Productivity Category = "Productivity"
	Learning     Category = "Learning"
)

// Categories lists the categories offered by the dashboard, in display order.
var Categories = []Category{Motivation, Productivity, Learning}

// ParseCategory matches s case-insensitively against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown insight category %q", s)
}

// Insight is a short generated message, optionally attributed to an author.
type Insight struct {
	Message string `json:"message"`
	Author  string `json:"author,omitempty"`
}

// FallbackInsight is shown whenever the generation provider fails.
func FallbackInsight() Insight {
	return Insight{
		Message: "Believe you can and you're halfway there.",
		Author:  "Theodore Roosevelt",
	}
}
