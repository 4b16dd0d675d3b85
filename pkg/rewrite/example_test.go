package rewrite_test

import (
	"context"
	"fmt"

	"github.com/walteh/logrc/pkg/rewrite"
)

func ExampleRewrite() {
	// Define some ordered rules
	rules := []rewrite.Rule{
		{
			Match:   `console\.log\('([^']+)'\);`,
			Replace: "logger.info('$1');",
		},
		{
			Match:   "console.error",
			Replace: "logger.error",
			Literal: true,
		},
	}

	content := []byte("console.log('ready');\nconsole.error('boom');")

	// Apply the rules in order
	result, err := rewrite.Rewrite(context.Background(), content, rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Changes: %d\n", result.ReplacementCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: logger.info('ready');
	// logger.error('boom');
	// Changes: 2
	// Was Modified: true
}

func ExampleCheckIdempotent() {
	// The replacement still contains the pattern, so re-running the
	// migration would keep rewriting already-migrated text.
	rules := []rewrite.Rule{
		{Match: "log(", Replace: "log(ctx, ", Literal: true},
	}

	offenders, err := rewrite.CheckIdempotent(context.Background(), []byte("log(msg)"), rules)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Non-idempotent rules: %v\n", offenders)

	// Output:
	// Non-idempotent rules: [0]
}
