// Package models defines the core domain models for the gift shuffler.
//
// # Models
//
//   - Person: someone who can take part in a gift exchange
//   - Group: a set of persons who exchange gifts together
//   - Occasion: a recurring event category (e.g. "Christmas")
//   - Edition: one run of a group for an occasion, numbered per (group, occasion)
//   - Assignment: one giver → recipient pair produced by shuffling an edition
//   - Organizer: an account allowed to manage the directory when auth is on
//
// # Design Principles
//
//  1. Relationships are ID strings, never pointers.
//  2. Timestamps are Unix seconds.
//  3. Assignments are immutable; they are written once per edition and only
//     disappear together with their edition.
package models
