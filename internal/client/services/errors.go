package services

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need an active session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAlreadyAuthenticated is returned by login/register under the
	// "block" re-auth policy when a session is already active.
	ErrAlreadyAuthenticated = errors.New("already authenticated, log out first")

	// ErrProfileNotFound means the provider has no profile on the server yet.
	ErrProfileNotFound = errors.New("no provider profile found")

	// ErrProfileNotLoaded means an edit was started before the profile was fetched.
	ErrProfileNotLoaded = errors.New("profile not loaded")

	// ErrEditNotActive means a draft mutation arrived outside edit mode.
	ErrEditNotActive = errors.New("no edit in progress")

	// ErrEditInProgress means StartEdit was called while a draft already exists.
	ErrEditInProgress = errors.New("edit already in progress")

	// ErrSaveInFlight rejects a save that overlaps one still running.
	// One in-flight update per profile; no silent last-write-wins.
	ErrSaveInFlight = errors.New("a save is already in flight")

	// ErrEmptySkill rejects adding a blank skill to a draft.
	ErrEmptySkill = errors.New("skill must not be empty")

	// ErrSkillIndexOutOfRange rejects removing a skill at a bad position.
	ErrSkillIndexOutOfRange = errors.New("skill index out of range")
)
