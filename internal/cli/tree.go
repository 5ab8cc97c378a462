package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/inkmark/internal/logging"
	"github.com/yaklabco/inkmark/internal/ui/pretty"
	"github.com/yaklabco/inkmark/pkg/syntax"
	"github.com/yaklabco/inkmark/pkg/treefile"
)

func newTreeCommand(color *string) *cobra.Command {
	var sourceID uint16

	cmd := &cobra.Command{
		Use:   "tree FILE",
		Short: "Render a green tree as a red tree with absolute spans",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := logging.Default()

			root, err := treefile.Load(args[0])
			if err != nil {
				return fmt.Errorf("load tree: %w", err)
			}

			red := syntax.NewRoot(root, syntax.SourceID(sourceID))
			logger.Debug("loaded tree",
				logging.FieldPath, args[0],
				logging.FieldKind, red.Kind().Tag,
				logging.FieldSpan, red.Span(),
			)

			styles := pretty.NewStyles(pretty.IsColorEnabled(*color, os.Stdout))
			renderer := pretty.NewTreeRenderer(styles, pretty.TerminalWidth(os.Stdout))
			if err := renderer.Render(os.Stdout, red); err != nil {
				return fmt.Errorf("render tree: %w", err)
			}

			if errs := red.Errors(); len(errs) > 0 {
				logger.Warn("tree contains parse errors", logging.FieldErrorNodes, len(errs))
			}
			return nil
		},
	}

	cmd.Flags().Uint16Var(&sourceID, "source", 0, "source id for spans")

	return cmd
}
