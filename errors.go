package datafile

import "errors"

// ErrSectionNotFound is returned when an operation targets a section that
// does not exist and the operation is not allowed to create it.
var ErrSectionNotFound = errors.New("section not found")

// ErrKeyNotFound is returned when an operation targets a key that does not
// exist and the operation is not allowed to create it.
var ErrKeyNotFound = errors.New("key not found")

// ErrNoFileName is returned by Save when the File has no file name to write
// to.
var ErrNoFileName = errors.New("no file name has been set")

// ErrEmptyModuleName is returned when an Fx module is created with an empty
// name.
var ErrEmptyModuleName = errors.New("module name must not be empty")
