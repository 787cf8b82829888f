package timezone

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_MX"
	"github.com/rs/zerolog/log"
)

// Style selects how a single date/time field is rendered.
type Style int

const (
	Omit Style = iota
	Numeric
	TwoDigit
	Short
	Long
)

// DisplayOptions chooses which fields appear and how.
type DisplayOptions struct {
	Weekday Style
	Year    Style
	Month   Style
	Day     Style
	Hour    Style
	Minute  Style
	Second  Style
	Hour12  bool
}

var (
	// DefaultDisplay renders the full date and the time to the minute.
	DefaultDisplay = DisplayOptions{
		Year:   Numeric,
		Month:  Long,
		Day:    Numeric,
		Hour:   TwoDigit,
		Minute: TwoDigit,
	}

	// TargetDisplay renders the countdown target.
	TargetDisplay = DisplayOptions{
		Weekday: Long,
		Year:    Numeric,
		Month:   Long,
		Day:     Numeric,
		Hour:    TwoDigit,
		Minute:  TwoDigit,
	}

	// NowDisplay renders the ticking current time.
	NowDisplay = DisplayOptions{
		Weekday: Short,
		Month:   Short,
		Day:     Numeric,
		Hour:    TwoDigit,
		Minute:  TwoDigit,
		Second:  TwoDigit,
	}
)

var translators = map[string]func() locales.Translator{
	"es_MX": es_MX.New,
	"es":    es.New,
	"en_US": en_US.New,
	"en":    en.New,
}

func translatorFor(locale string) locales.Translator {
	if newTranslator, ok := translators[locale]; ok {
		return newTranslator()
	}

	log.Warn().Str("locale", locale).Msg("Unsupported display locale, falling back to es_MX")

	return es_MX.New()
}

// FormatInZone renders instant as civil time in zoneID. An invalid instant
// renders as "Invalid Date".
func (n *Normalizer) FormatInZone(instant Instant, zoneID string, opts DisplayOptions) (string, error) {
	loc, err := n.Location(zoneID)
	if err != nil {
		return "", err
	}

	if !instant.IsValid() {
		return invalidDate, nil
	}

	f := formatter{
		translator: n.translator,
		spanish:    strings.HasPrefix(n.translator.Locale(), "es"),
		opts:       opts,
	}

	zoned := instant.Time().In(loc)

	return f.format(CivilOf(zoned), zoned.Weekday()), nil
}

type formatter struct {
	translator locales.Translator
	spanish    bool
	opts       DisplayOptions
}

func (f formatter) format(civil CivilDateTime, weekday time.Weekday) string {
	parts := make([]string, 0, 3)

	if name := f.weekday(weekday); name != "" {
		parts = append(parts, name)
	}

	if date := f.date(civil); date != "" {
		parts = append(parts, date)
	}

	if clock := f.clock(civil); clock != "" {
		parts = append(parts, clock)
	}

	return strings.Join(parts, ", ")
}

func (f formatter) weekday(day time.Weekday) string {
	switch f.opts.Weekday {
	case Omit:
		return ""
	case Short, Numeric, TwoDigit:
		return f.translator.WeekdayAbbreviated(day)
	default:
		return f.translator.WeekdayWide(day)
	}
}

func (f formatter) date(civil CivilDateTime) string {
	day := number(civil.Day, f.opts.Day)
	year := number(civil.Year, f.opts.Year)

	switch f.opts.Month {
	case Omit:
		return joinNonEmpty(" ", day, year)
	case Numeric, TwoDigit:
		month := number(int(civil.Month), f.opts.Month)
		if f.spanish {
			return joinNonEmpty("/", day, month, year)
		}

		return joinNonEmpty("/", month, day, year)
	}

	month := f.translator.MonthWide(civil.Month)
	if f.opts.Month == Short {
		month = f.translator.MonthAbbreviated(civil.Month)
	}

	if f.spanish {
		sep := " de "
		if f.opts.Month == Short {
			sep = " "
		}

		return joinNonEmpty(sep, day, month, year)
	}

	monthDay := joinNonEmpty(" ", month, day)
	if year == "" {
		return monthDay
	}

	return joinNonEmpty(", ", monthDay, year)
}

func (f formatter) clock(civil CivilDateTime) string {
	if f.opts.Hour == Omit && f.opts.Minute == Omit && f.opts.Second == Omit {
		return ""
	}

	hour := civil.Hour
	if f.opts.Hour12 {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	value := joinNonEmpty(":",
		number(hour, f.opts.Hour),
		number(civil.Minute, twoDigitWhenShown(f.opts.Minute)),
		number(civil.Second, twoDigitWhenShown(f.opts.Second)),
	)

	if f.opts.Hour12 && f.opts.Hour != Omit {
		value += " " + f.period(civil.Hour)
	}

	return value
}

func (f formatter) period(hour int) string {
	switch {
	case f.spanish && hour < 12:
		return "a. m."
	case f.spanish:
		return "p. m."
	case hour < 12:
		return "AM"
	default:
		return "PM"
	}
}

// Minutes and seconds are always zero-padded once shown.
func twoDigitWhenShown(style Style) Style {
	if style == Omit {
		return Omit
	}

	return TwoDigit
}

func number(value int, style Style) string {
	switch style {
	case Omit:
		return ""
	case TwoDigit:
		return fmt.Sprintf("%02d", value%100)
	default:
		return strconv.Itoa(value)
	}
}

func joinNonEmpty(sep string, values ...string) string {
	kept := values[:0:0]

	for _, value := range values {
		if value != "" {
			kept = append(kept, value)
		}
	}

	return strings.Join(kept, sep)
}
