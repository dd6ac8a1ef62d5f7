package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lumina/internal/client/metrics"
	"github.com/dmitrijs2005/lumina/internal/client/models"
)

// Insight requests an insight for the current user. The first argument
// selects the category; without one the last category is repeated, and
// Motivation is used when there is none yet.
func (a *App) Insight(ctx context.Context, args []string) error {
	category := a.lastCategory
	if category == "" {
		category = models.Motivation
	}
	if len(args) > 0 {
		c, err := models.ParseCategory(args[0])
		if err != nil {
			return err
		}
		category = c
	}
	a.lastCategory = category

	fmt.Fprintf(a.out, "Generating %s insight...\n", category)
	ins := a.insights.Generate(ctx, a.session.Current(), category)

	fmt.Fprintf(a.out, "%q\n", ins.Message)
	if ins.Author != "" {
		fmt.Fprintf(a.out, "  - %s\n", ins.Author)
	}
	return nil
}

// arrive shows the dashboard greeting insight after a user logs in, signs
// up or has their session restored.
func (a *App) arrive(ctx context.Context) {
	a.lastCategory = models.Motivation
	_ = a.Insight(ctx, nil)
}

// Stats prints how many insights were generated and how many fell back,
// per category, in this process.
func (a *App) Stats(_ context.Context) error {
	for _, c := range models.Categories {
		fmt.Fprintf(a.out, "%-12s generated: %.0f  fallback: %.0f\n", c,
			a.metrics.InsightCount(string(c), metrics.OutcomeSuccess),
			a.metrics.InsightCount(string(c), metrics.OutcomeFallback),
		)
	}
	return nil
}
