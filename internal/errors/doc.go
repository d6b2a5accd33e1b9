// Package errors provides the structured error type used across fitd.
//
// Errors carry a Code, a short message, an optional cause and free-form
// metadata. The command line entry point maps the code of a fatal error to
// a process exit status; everything below the CLI uses the codes to decide
// whether a failure degrades a single item or the whole run.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("move table not found")
//	err := errors.DataLossf("entry %d overruns container", i)
//
// Adding metadata:
//
//	err := errors.DataLoss("string table has no terminator").
//	    WithMeta("path", path).
//	    WithMeta("offset", off)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", name)
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // optional input, carry on without it
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Configuration structs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Writer == nil {
//	    vb.RequiredField("Writer")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Parsers (containers, scripts):
//   - Return DataLoss for truncated or out-of-range structures
//   - Include the path and byte offset in metadata
//
// Builders and orchestrators:
//   - Log and skip per-item DataLoss errors, never abort the batch
//   - Return InvalidArgument for bad input structs
//
// Repositories:
//   - Return NotFound for cache misses
//   - Wrap client errors with context
//
// CLI:
//   - Convert the code of a fatal error into the exit status
package errors
