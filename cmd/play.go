package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/billel/trivia/internal/app"
	"github.com/billel/trivia/internal/quiz"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a question for a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("category")
		if id <= 0 {
			return fmt.Errorf("--category is required: %w", quiz.ErrNoCategory)
		}

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		cat := resolveCategory(cmd.Context(), env.client, id, env.logger)

		opts := env.appOptions()
		opts.StartCategory = &cat
		return app.Run(opts)
	},
}

func init() {
	playCmd.Flags().Int("category", 0, "Category id (see `trivia categories`)")
}

// resolveCategory looks up the name for id. The directory is only used for
// the header, so a failed lookup falls back to a generic name.
func resolveCategory(ctx context.Context, dir quiz.CategoryDirectory, id int, log *zap.Logger) quiz.Category {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fallback := quiz.Category{ID: id, Name: fmt.Sprintf("Category %d", id)}

	cats, err := dir.ListCategories(ctx)
	if err != nil {
		log.Warn("category lookup failed", zap.Int("category_id", id), zap.Error(err))
		return fallback
	}
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	log.Warn("unknown category", zap.Int("category_id", id))
	return fallback
}
