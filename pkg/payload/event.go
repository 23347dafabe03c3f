package payload

import (
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

const icalProductID = "-//QR Generator//EN"

// Event encodes a single calendar event wrapped in a VCALENDAR.
type Event struct {
	Summary     string `field:"summary"`
	Start       string `field:"start"`
	End         string `field:"end"`
	Description string `field:"description"`
	Location    string `field:"location"`
	AllDay      bool   `field:"allday"`
}

func (Event) Kind() Kind { return KindEvent }
func (Event) isPayload() {}

func (p Event) Validate() error {
	rules := []validator.Rule{
		validator.Required("summary", p.Summary),
		validator.Required("start", p.Start),
		validator.Required("end", p.End),
	}

	start, startOK := parseEventTime(p.Start)
	end, endOK := parseEventTime(p.End)
	if present(p.Start) && !startOK {
		rules = append(rules, validator.Fail("start", "unrecognized date/time format", "validation.date_format"))
	}
	if present(p.End) && !endOK {
		rules = append(rules, validator.Fail("end", "unrecognized date/time format", "validation.date_format"))
	}
	if startOK && endOK {
		rules = append(rules, validator.After("end", end, "start", start))
	}

	return validator.Apply(rules...)
}

func (p Event) Build() (string, error) {
	if p.Summary == "" || p.Start == "" || p.End == "" {
		return "", buildError(ErrMissingEventField)
	}
	start, ok := parseEventTime(p.Start)
	if !ok {
		return "", buildError(ErrUnrecognizedDate)
	}
	end, ok := parseEventTime(p.End)
	if !ok {
		return "", buildError(ErrUnrecognizedDate)
	}

	lines := []string{"BEGIN:VEVENT", "SUMMARY:" + p.Summary}
	if p.AllDay {
		startDay, endDay := dateOnly(start), dateOnly(end)
		if !endDay.After(startDay) {
			endDay = startDay.AddDate(0, 0, 1)
		}
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+startDay.Format(compactDate),
			"DTEND;VALUE=DATE:"+endDay.Format(compactDate),
		)
	} else {
		lines = append(lines,
			"DTSTART:"+start.Format(compactTime),
			"DTEND:"+end.Format(compactTime),
		)
	}
	if p.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeNewlines(p.Description))
	}
	if p.Location != "" {
		lines = append(lines, "LOCATION:"+escapeNewlines(p.Location))
	}
	lines = append(lines, "END:VEVENT")

	return "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icalProductID + "\r\n" +
		strings.Join(lines, "\r\n") + "\r\nEND:VCALENDAR", nil
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}
