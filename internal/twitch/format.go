package twitch

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lukeramljak/charsibot/internal/domain"
)

// FormatCompletedCollections renders "Coobubu: alice, bob | Olliepop: carol".
// A cases.Caser is not safe for concurrent use, so each call builds its own.
func FormatCompletedCollections(completed []domain.CompletedCollection) string {
	if len(completed) == 0 {
		return MsgNoCompleted
	}

	titleCaser := cases.Title(language.English)

	parts := make([]string, 0, len(completed))
	for _, c := range completed {
		parts = append(parts, fmt.Sprintf("%s: %s",
			titleCaser.String(c.CollectionType),
			strings.Join(c.Usernames, CompletedNamesJoiner)))
	}
	return strings.Join(parts, CompletedSeparator)
}

// statNames lists the accepted stat names for error replies
func statNames() string {
	names := make([]string, 0, len(domain.StatList))
	for _, s := range domain.StatList {
		names = append(names, string(s.Column))
	}
	return strings.Join(names, ", ")
}
