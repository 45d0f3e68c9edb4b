// Package codecheck type-checks the code samples embedded in standards.
//
// For each standard with at least one fenced block in the configured
// language, the blocks of its declared dependencies are concatenated in
// declaration order, followed by its own blocks. The result is written to a
// temporary file and handed to an external verifier command. The verifier is
// opaque: a zero exit status accepts the source, anything else rejects it.
package codecheck
