// Package engine implements the Vietnamese input-method core: a
// character-at-a-time state machine that turns Telex or VNI keystrokes into
// edit actions a host text buffer can apply.
package engine
