// Package organizer sorts the top-level files of one directory into category
// folders.
//
// A pass creates the category folders, lists the directory's immediate
// children, classifies every regular file by extension, picks a destination
// that does not collide with anything already there (name_1.ext, name_2.ext,
// ...), and moves the file. Failures are isolated per file: a file that
// cannot be moved is logged and recorded in the summary while the pass
// continues. Subdirectories, excluded names, and the running executable are
// left alone.
//
// Dry runs go through the same classification and collision logic and only
// record the plan, so their output matches what a real pass would do.
package organizer
