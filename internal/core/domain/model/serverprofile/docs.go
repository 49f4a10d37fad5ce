// Package serverprofile contains the process-server directory profile.
//
// A ProcessServerProfile describes a registered process server: contact
// details, the zip codes they cover, their job record and rating, and whether
// they appear in the global directory. Profiles feed the global server
// listing and the contact directory; order assignment references them by ID
// but never mutates them.
package serverprofile
