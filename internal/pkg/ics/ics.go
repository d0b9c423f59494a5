// Package ics renders all-day iCalendar events and calendar deep links.
package ics

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	prodID     = "-//HRIS App//EN"
	dateLayout = "20060102"
)

// Event is an all-day event. End is the last day of the event (inclusive).
type Event struct {
	UID         string
	Start       time.Time
	End         time.Time
	Summary     string
	Description string
}

// Calendar renders a published VCALENDAR holding events, stamped at stamp.
func Calendar(stamp time.Time, events ...Event) []byte {
	cal := ical.NewCalendar()
	cal.SetProductId(prodID)
	cal.SetCalscale("GREGORIAN")
	cal.SetMethod(ical.MethodPublish)

	for _, e := range events {
		vevent := cal.AddEvent(e.UID)
		vevent.SetDtStampTime(stamp)
		vevent.SetAllDayStartAt(e.Start)
		vevent.SetAllDayEndAt(exclusiveEnd(e.End))
		vevent.SetSummary(e.Summary)
		vevent.SetDescription(e.Description)
	}

	return []byte(cal.Serialize())
}

// DateStamp formats a date as YYYYMMDD.
func DateStamp(t time.Time) string {
	return t.Format(dateLayout)
}

// GoogleURL builds a Google Calendar "add event" link for an all-day event.
func GoogleURL(e Event) string {
	return "https://calendar.google.com/calendar/render?action=TEMPLATE" +
		"&text=" + encodeComponent(e.Summary) +
		"&details=" + encodeComponent(e.Description) +
		"&dates=" + e.Start.Format(dateLayout) + "/" + exclusiveEnd(e.End).Format(dateLayout)
}

// OutlookURL builds an Outlook.com compose link for an all-day event.
func OutlookURL(e Event) string {
	return "https://outlook.live.com/calendar/0/deeplink/compose?path=/calendar/action/compose&rru=addevent" +
		"&startdt=" + e.Start.Format("2006-01-02") +
		"&enddt=" + e.End.Format("2006-01-02") +
		"&subject=" + encodeComponent(e.Summary) +
		"&body=" + encodeComponent(e.Description) +
		"&allday=true"
}

// All-day DTEND is exclusive, so it is the day after the last day.
func exclusiveEnd(end time.Time) time.Time {
	return end.AddDate(0, 0, 1)
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// FileName is the download name for a calendar starting on start.
func FileName(prefix string, start time.Time) string {
	return fmt.Sprintf("%s-%s.ics", prefix, start.Format("2006-01-02"))
}
