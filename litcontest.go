// Package litcontest harvests writing-grant opportunities from a paginated
// listing site and persists them into a normalized SQLite store, keyed on
// the (issuer, title, deadline) natural key and linked to a controlled
// vocabulary of genre tags.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package litcontest
