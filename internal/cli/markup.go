package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkmark/internal/config"
	"github.com/yaklabco/inkmark/internal/logging"
	"github.com/yaklabco/inkmark/internal/ui/pretty"
	"github.com/yaklabco/inkmark/pkg/syntax"
	"github.com/yaklabco/inkmark/pkg/syntax/ast"
	"github.com/yaklabco/inkmark/pkg/treefile"
)

// ErrSyntaxErrors signals that the tree contained error nodes.
// It carries no message for the user beyond the exit code; the dropped
// spans are logged individually.
var ErrSyntaxErrors = errors.New("tree contains syntax errors")

// ErrNotMarkup indicates a tree whose root is not a markup container.
var ErrNotMarkup = errors.New("root node is not a markup container")

func newMarkupCommand(color *string, cfg *config.Config) *cobra.Command {
	var sourceID uint16
	var detectLang bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "markup FILE",
		Short: "Cast a green tree to the typed markup AST and print it",
		Long: `Cast a green tree to the typed markup AST and print it.

Error-tagged nodes are dropped from the AST, exactly as the evaluator
would see it; --strict makes their presence fail the command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Default()

			if !cmd.Flags().Changed("detect-lang") {
				detectLang = cfg.DetectLang
			}

			root, err := treefile.Load(args[0])
			if err != nil {
				return fmt.Errorf("load tree: %w", err)
			}

			red := syntax.NewRoot(root, syntax.SourceID(sourceID))
			markup, ok := ast.CastMarkup(red)
			if !ok {
				return fmt.Errorf("%w: %s", ErrNotMarkup, red.Kind().Tag)
			}

			styles := pretty.NewStyles(pretty.IsColorEnabled(*color, os.Stdout))
			renderer := pretty.NewMarkupRenderer(styles)
			renderer.DetectLang = detectLang
			if err := renderer.Render(os.Stdout, markup); err != nil {
				return fmt.Errorf("render markup: %w", err)
			}

			errs := red.Errors()
			for _, errRef := range errs {
				kind := errRef.Kind()
				logger.Warn("dropped error node",
					logging.FieldSpan, errRef.Span(),
					logging.FieldError, kind.Error.Message,
				)
			}
			if strict && len(errs) > 0 {
				return ErrSyntaxErrors
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&sourceID, "source", 0, "source id for spans")
	cmd.Flags().BoolVar(&detectLang, "detect-lang", false,
		"detect a language for untagged raw blocks")
	cmd.Flags().BoolVar(&strict, "strict", false,
		"fail if the tree contains error nodes")

	return cmd
}
