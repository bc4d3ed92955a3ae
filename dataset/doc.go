// Package dataset bootstraps a local copy of the DIMACS coloring
// benchmark archive.
//
// Fetch downloads the instance tarball and unpacks its regular files into
// a target directory in one streaming pass; the archive itself never
// touches disk. Entries that would escape the target directory are
// rejected with ErrUnsafePath, and non-2xx responses surface as
// ErrBadStatus wrapped with the HTTP status. The download honors its
// context, so callers can bound or cancel the transfer.
package dataset
