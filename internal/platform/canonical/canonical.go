// Copyright (c) 2026 Cadenza. All rights reserved.

// Package canonical converts user-supplied catalog names into their storage form.
//
// # Usage
//
// Canonical names are the identity of every catalog resource: "The Beatles" and
// "The-Beatles" must collide. Canonicalization therefore runs before every
// existence check, creation and comparison, never after.
package canonical

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
)

// Length bounds, in Unicode characters.
const (
	// MaxNameLen bounds artist, album and song names.
	MaxNameLen = 50

	// MaxUsernameLen bounds account usernames.
	MaxUsernameLen = 20

	// MaxLyricsLen bounds song lyrics.
	MaxLyricsLen = 5000
)

// Name canonicalizes a resource name: NFC Unicode normalization, then each
// space replaced with a dash. Case is preserved; name uniqueness is
// case-sensitive.
//
// The kind ("artist", "album", "song") only shapes the error message.
//
// # Returns
//   - The canonical form.
//   - [apperr.ValidationError] if the name is empty or longer than [MaxNameLen].
func Name(raw, kind string) (string, error) {
	normalized := norm.NFC.String(raw)

	if normalized == "" {
		return "", apperr.ValidationError(fmt.Sprintf("you must supply a %s", kind))
	}
	if utf8.RuneCountInString(normalized) > MaxNameLen {
		return "", apperr.ValidationError(fmt.Sprintf("%s must be at most %d characters", kind, MaxNameLen))
	}

	return strings.ReplaceAll(normalized, " ", "-"), nil
}

// Key returns the lookup form of a path name: NFC normalization and dash
// substitution without the length bounds. Resolution uses it on every path
// segment, so the spaced and dashed spellings address the same record. An
// address that could never have been stored simply resolves to nothing.
func Key(raw string) string {
	return strings.ReplaceAll(norm.NFC.String(raw), " ", "-")
}

// Lyrics validates song lyrics. Lyrics are free text: no dash substitution,
// only NFC normalization and the length bound.
func Lyrics(raw string) (string, error) {
	normalized := norm.NFC.String(raw)

	if utf8.RuneCountInString(normalized) > MaxLyricsLen {
		return "", apperr.ValidationError(fmt.Sprintf("lyrics must be at most %d characters", MaxLyricsLen))
	}

	return normalized, nil
}
