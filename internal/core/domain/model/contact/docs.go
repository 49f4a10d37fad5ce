// Package contact contains the customer's personal process-server directory.
//
// A ContactEntry links a customer to a process server they work with. Entries
// are created either by adding a registered server directly or by inviting
// someone by email: an invited entry has no server profile yet and stays
// NotActivated until the invitee completes registration, at which point it is
// reconciled with the new server's profile and flips to Activated.
//
// The personal list is idempotent: adding a server that is already present
// updates the existing entry instead of creating a duplicate.
package contact
