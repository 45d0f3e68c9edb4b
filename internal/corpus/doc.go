// Package corpus enumerates the standards of a corpus and loads their
// primary documents.
//
// A corpus root holds one directory per standard. The directory name
// encodes the numeric key of the standard through a fixed pattern, by
// default `ics-<number>-<slug>`; zero padding of the number is not
// significant. Inside a directory, files matching the document glob are the
// standard's document resources and the primary one carries the dependency
// declarations.
//
// Loading is read-only. Any directory that does not follow the naming
// convention aborts the load with a MalformedPathError before the caller
// can build anything from a partial corpus.
package corpus
