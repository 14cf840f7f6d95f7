// Package err provides the error structure shared across gitlet's packages.
//
// Every package declares a pkgName constant, its own Code constants and
// typed errors that embed *Error:
//
//	const (
//	    pkgName      = "store"
//	    CodeNotFound = "COMMIT_NOT_FOUND"
//	)
//
//	type CommitNotFoundError struct {
//	    baseError *err.Error
//	    ID        string
//	}
//
// Errors that an operator should see as a single line (for example
// "No commit with that id exists.") implement UserFacing. The command layer
// calls Reported to decide between printing that line and printing the
// full diagnostic chain.
//
//	if line, ok := err.Reported(e); ok {
//	    fmt.Println(line)
//	}
package err
