// Package cli is the interactive surface of the SkillMarket client: a
// line-oriented REPL whose command set follows the session state. Logged
// out, only login and register exist; logged in, the command set is the
// dashboard for the session's role (seeker search/filter, provider
// profile editor).
package cli
