// Package scoring computes how well a catalog food fits a user's health profile.
//
// Scores start at a base of 50 and move additively: matched health benefits,
// dietary compatibility, constitution balance, an activity bonus, a season
// bonus and a single allergen penalty. The result is clamped to [0, 100].
// Scoring is pure: no I/O, no clock, no randomness.
package scoring
