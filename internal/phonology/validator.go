package phonology

import (
	"fmt"
	"strings"
)

// ViolationType classifies a detected problem.
type ViolationType string

const (
	ViolationInvalidPhoneme    ViolationType = "invalid_phoneme"
	ViolationSyllableStructure ViolationType = "syllable_structure"
	ViolationPhonotacticRule   ViolationType = "phonotactic_rule"
)

func (t ViolationType) String() string { return string(t) }

func (t ViolationType) IsValid() bool {
	switch t {
	case ViolationInvalidPhoneme, ViolationSyllableStructure, ViolationPhonotacticRule:
		return true
	}
	return false
}

// Severity grades a violation. Only SeverityError makes a word
// invalid; warnings and infos are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Violation is one detected problem in a word's transcription.
type Violation struct {
	Type        ViolationType `json:"type"`
	Description string        `json:"description"`
	Severity    Severity      `json:"severity"`
}

// ValidationResult is the outcome of validating one IPA string.
// Violations keep detection order: invalid phonemes, then syllable
// structure, then phonotactic rules. The result carries no reference
// back to the Validator; the caller owns it.
type ValidationResult struct {
	IsValid    bool        `json:"isValid"`
	Violations []Violation `json:"violations"`
}

// Validator checks candidate words against one language configuration.
// It is immutable after construction; build a new Validator when the
// configuration changes.
type Validator struct {
	inventory Inventory
	structure string
	rules     string

	all        phonemeSet
	consonants phonemeSet
	nuclei     phonemeSet
}

// NewValidator builds a validator from a language's phoneme inventory,
// syllable structure template, and free-text phonotactic rules.
func NewValidator(inventory Inventory, structure, rules string) *Validator {
	return &Validator{
		inventory:  inventory,
		structure:  structure,
		rules:      rules,
		all:        newPhonemeSet(inventory.Consonants, inventory.Vowels, inventory.Diphthongs),
		consonants: newPhonemeSet(inventory.Consonants),
		nuclei:     newPhonemeSet(inventory.Vowels, inventory.Diphthongs),
	}
}

// Validate checks an IPA string and returns every violation found.
// Problems are surfaced as data, never as errors: the worst case is a
// result with many violations.
func (v *Validator) Validate(ipa string) ValidationResult {
	var violations []Violation

	if invalid := invalidPhonemes(ipa, v.all); len(invalid) > 0 {
		violations = append(violations, Violation{
			Type:        ViolationInvalidPhoneme,
			Severity:    SeverityError,
			Description: "invalid phonemes: " + strings.Join(invalid, ", "),
		})
	}

	violations = append(violations, checkSyllables(ipa, v.structure, v.consonants, v.nuclei)...)
	violations = append(violations, checkRules(ipa, v.rules, v.inventory.Consonants)...)

	isValid := true
	for _, viol := range violations {
		if viol.Severity == SeverityError {
			isValid = false
			break
		}
	}

	return ValidationResult{IsValid: isValid, Violations: violations}
}

// Summarize renders a result as a short human-readable line for the
// editor UI.
func Summarize(result ValidationResult) string {
	if len(result.Violations) == 0 {
		return "✓ No issues found"
	}

	var errs, warns int
	for _, v := range result.Violations {
		switch v.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warns++
		}
	}

	return fmt.Sprintf("⚠ %s, %s", pluralize(errs, "error"), pluralize(warns, "warning"))
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
