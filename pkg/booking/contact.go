package booking

import (
	"fmt"
	"regexp"
	"strings"
)

// ContactInfo holds contact details extracted from free text.
type ContactInfo struct {
	Email string
	Name  string
	Phone string
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	namePattern  = regexp.MustCompile(`(?i)(?:my name is|i am|i'm)\s+([A-Za-z\s]+)`)
	phonePattern = regexp.MustCompile(`(\d{3})[^\d]?(\d{3})[^\d]?(\d{4})`)
)

// ExtractContactInfo pulls an email address, a self-introduced name and a
// US-style phone number out of free text. Missing pieces are left empty;
// extraction never fails.
func ExtractContactInfo(text string) ContactInfo {
	var info ContactInfo

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	if m := namePattern.FindStringSubmatch(text); m != nil {
		info.Name = titleCase(m[1])
	}

	if m := phonePattern.FindStringSubmatch(text); m != nil {
		info.Phone = fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	}

	return info
}

// titleCase capitalizes each word of an extracted name.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// String renders the extracted pieces as a single contact line, preferring
// email over phone.
func (c ContactInfo) String() string {
	var parts []string
	if c.Name != "" {
		parts = append(parts, c.Name)
	}
	if c.Email != "" {
		parts = append(parts, c.Email)
	} else if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	return strings.Join(parts, " ")
}
