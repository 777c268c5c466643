package people

import (
	"context"
	"fmt"
)

// readinessSample is a record the factory must always accept.
var readinessSample = Input{Name: "Ada Lovelace", Age: 36, Email: "ada@example.com", Website: "https://example.com"}

// ReadinessCheck reports whether f accepts a known good record. It is meant
// for httpserver.HealthCheckHandler and catches a constraint set that rejects
// everything.
func ReadinessCheck(f *Factory) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if failure, failed := f.Create(readinessSample).Err(); failed {
			return fmt.Errorf("%w: %s rejects a known good record: %s", ErrNotReady, f.Name(), failure.Error())
		}
		return nil
	}
}
