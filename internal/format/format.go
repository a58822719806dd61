// Package format holds the Arabic-locale presentation helpers: prices,
// numbers, dates and a few input checks. All functions are pure.
package format

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var arabic = message.NewPrinter(language.MustParse("ar-SY"))

// Price renders an amount in Syrian pounds with no fraction digits,
// e.g. "٨٥٠٬٠٠٠ ل.س"
func Price(amount float64) string {
	return arabic.Sprintf("%v ل.س", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// Number renders a number with Arabic digit grouping
func Number(n float64) string {
	return arabic.Sprintf("%v", number.Decimal(n))
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Date renders a date with Arabic month names, e.g. "٢ يناير ٢٠٢٤"
func Date(t time.Time) string {
	day := ArabicNumerals(strconv.Itoa(t.Day()))
	year := ArabicNumerals(strconv.Itoa(t.Year()))
	return day + " " + arabicMonths[t.Month()-1] + " " + year
}

// DateTime renders a date with the time of day appended
func DateTime(t time.Time) string {
	clock := ArabicNumerals(t.Format("15:04"))
	return Date(t) + " " + clock
}

var arabicDigits = [...]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// ArabicNumerals replaces Latin digits with Arabic-Indic digits
func ArabicNumerals(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return arabicDigits[r-'0']
		}
		return r
	}, s)
}

// LatinNumerals replaces Arabic-Indic digits with Latin digits
func LatinNumerals(s string) string {
	return strings.Map(func(r rune) rune {
		for i, d := range arabicDigits {
			if r == d {
				return rune('0' + i)
			}
		}
		return r
	}, s)
}

var (
	slugInvalid  = regexp.MustCompile(`[^\w-]+`)
	slugDashes   = regexp.MustCompile(`-{2,}`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+963|0)?[0-9]{9}$`)
)

// Slugify turns text into a URL-safe slug
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Join(strings.Fields(s), "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Unslugify turns a slug back into title-cased words
func Unslugify(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Truncate cuts text to maxLength runes, appending an ellipsis when cut
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// ValidEmail checks the basic shape of an email address
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone checks a Syrian phone number, with or without the +963 prefix
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// DiscountedPrice applies a percentage discount to a price
func DiscountedPrice(original float64, discountPercent int) float64 {
	return original - original*float64(discountPercent)/100
}

// DiscountPercent computes the rounded discount percentage between an
// original and a discounted price
func DiscountPercent(original, discounted float64) int {
	if original <= 0 {
		return 0
	}
	return int((original-discounted)/original*100 + 0.5)
}
