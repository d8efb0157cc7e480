// Package category maps file names to the category folders they are sorted
// into.
//
// A Table is an ordered list of categories, each owning a set of lower-cased
// extensions, plus a fallback name for everything that matches nothing. The
// first category whose set contains an extension wins, so order in the
// configuration is significant. Tables are immutable once built and safe to
// share.
package category
