// Package mailer composes the notification emails and delivers them over SMTP.
package mailer

import (
	"fmt"
	"os"

	"weather-notifier/summary"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UmbrellaSubject is the subject of the rain warning
const UmbrellaSubject = "Don't forget your umbrella!"

var titleCaser = cases.Title(language.English)

func newMessage(from, to, subject string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetMessageIDWithValue(uuid.NewString() + "@weather-notifier")
	msg.SetDate()
	return msg, nil
}

// NewUmbrellaMessage builds the plain-text rain warning.
// The caller decides whether rain is due; this only writes the message.
func NewUmbrellaMessage(from, to string, s summary.Summary) (*mail.Msg, error) {
	msg, err := newMessage(from, to, UmbrellaSubject)
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextPlain, s.RainPhrase())
	return msg, nil
}

// ReportSubject is the subject line of the daily report, e.g. "Oslo: cool and calm"
func ReportSubject(s summary.Summary) string {
	place := s.Location.Query
	if place == "" {
		place = s.Location.Address
	}
	return fmt.Sprintf("%s: %s", titleCaser.String(place), s.Headline())
}

// NewReportMessage builds the summary email with the chart at chartPath attached
func NewReportMessage(from, to string, s summary.Summary, chartPath string) (*mail.Msg, error) {
	// go-mail reads attachments lazily at send time; fail early instead
	if _, err := os.Stat(chartPath); err != nil {
		return nil, fmt.Errorf("chart attachment: %w", err)
	}

	msg, err := newMessage(from, to, ReportSubject(s))
	if err != nil {
		return nil, err
	}
	msg.SetBodyString(mail.TypeTextPlain, s.Text())
	msg.AttachFile(chartPath)
	return msg, nil
}
